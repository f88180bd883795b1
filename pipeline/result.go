/* SPDX-License-Identifier: AGPL-3.0-or-later
 *
 * Cladealign - A viral genome analysis library for Go.
 * Copyright (C) 2025 Cladealign Contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published
 * by the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package pipeline wires the aligner, translator, mutation caller, and tree
// placement packages into the per-query batch orchestrator (spec §4.7):
// batch setup once, then a worker pool that runs each query through
// align -> strip -> translate -> call -> place -> attribute.
package pipeline

import (
	"github.com/biostrand/cladealign/align"
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/mutation"
	"github.com/biostrand/cladealign/placement"
	"github.com/biostrand/cladealign/translate"
	"github.com/biostrand/cladealign/treegraph"
)

// Query is one input record: a name and its raw (possibly mixed-case,
// possibly containing non-IUPAC characters upstream) nucleotide sequence.
type Query struct {
	Index int
	Name  string
	Seq   []alphabet.Nuc
}

// CdsResult is the per-CDS slice of a query's output: the translated
// protein plus the structural annotations translate.TranslateCds and
// AlignCdsPeptides produce for it.
type CdsResult struct {
	Seq             []alphabet.Aa
	Insertions      []translate.AaIns
	FrameShifts     []translate.FrameShift
	AlignmentRanges []coord.RefAaRange
}

// Result is the full per-query output record (spec §6).
type Result struct {
	Index   int
	SeqName string

	QryAln, RefAln      []alphabet.Nuc
	Score               int
	IsReverseComplement bool
	AlignmentRange      coord.RefNucRange

	Substitutions []mutation.NucSub
	Deletions     []mutation.NucDel
	DeletionRanges []mutation.NucDelRange
	Insertions    []align.Insertion
	Missing       []mutation.NucRange
	NonACGTNs     []mutation.NucRange

	NucleotideComposition mutation.NucComposition
	TotalFrameShifts      int
	FrameShifts           []translate.FrameShift

	Translations map[string]CdsResult

	AaSubstitutions  []mutation.AaSub
	AaDeletions      []mutation.AaDel
	AaChangesGroups  []mutation.AaChangesGroup

	Clade          string
	CladeNodeAttrs map[string]string

	PrivateNucMutations placement.PrivateNucMutations
	PrivateAaMutations  map[string]placement.PrivateAaMutations

	NearestNodeID treegraph.NodeKey
	NearestNodes  []placement.NearestNode

	PcrPrimerChanges []mutation.PcrPrimerChange

	// QC is left unpopulated: QC rule bodies are out of scope (spec §1
	// Non-goals) beyond the inputs this record already exposes. The field
	// exists so a caller wiring in its own QC layer has somewhere to put
	// the result.
	QC any

	Warnings   []string
	MissingCds []string
	Errors     []error
}
