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

package pipeline

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/biostrand/cladealign/align"
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/gene"
	"github.com/biostrand/cladealign/mutation"
	"github.com/biostrand/cladealign/translate"
	"github.com/biostrand/cladealign/treegraph"
)

// VirusProperties is the batch-wide diagnostic metadata a caller supplies
// alongside the reference and gene map (spec §6): named PCR primers, and a
// set of nucleotide positions worth flagging in a query's private
// mutations ("labeled substitutions" - e.g. known diagnostic or
// immune-escape sites).
type VirusProperties struct {
	PcrPrimers []mutation.PcrPrimer
	Labels     map[coord.RefNucPosition]bool
}

// BatchSetup is the immutable state computed once per batch and shared
// read-only by every worker (spec §4.7 steps 1-4, spec §5): the reference
// sequence, its validated gene map, the codon-aware gap-open vector, each
// reference CDS's own translation (the fixed point every query CDS is
// diffed against), and the reference tree with its ancestral mutation maps
// precomputed.
type BatchSetup struct {
	RefSeq  []alphabet.Nuc
	RefMap  *coord.Map
	GeneMap *gene.Map

	AlignParams   align.Params
	GapOpen       align.GapOpenVector
	TranslateParams translate.TranslateParams
	AaAlignParams translate.AaAlignParams

	RefTranslations map[string]*translate.CdsTranslation

	Tree *treegraph.RefTree

	Virus VirusProperties
}

// NewBatchSetup performs the one-time batch setup described in spec §4.7:
// validating the gene map, building the codon-aware gap-open vector,
// translating every reference CDS against itself, and converting the
// Auspice tree into a RefTree with ancestral mutation maps precomputed.
//
// Every failure is collected rather than stopping at the first, mirroring
// gene.Map.Validate's aggregation, since these are all batch-setup errors
// (spec §7) that must be reported together before any query is processed.
func NewBatchSetup(refSeq []alphabet.Nuc, geneMap *gene.Map, auspiceTree *treegraph.AuspiceTree, alignParams align.Params, translateParams translate.TranslateParams, aaAlignParams translate.AaAlignParams, virus VirusProperties) (*BatchSetup, error) {
	var errs error

	if err := geneMap.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("gene map: %w", err))
	}

	gapOpen := align.CodonAwareGapOpenVector(len(refSeq), geneMap.Genes, alignParams)

	refMap := coord.NewMap(refSeq)
	refRange := coord.NewRange[coord.Reference, coord.Nuc](0, len(refSeq))

	refTranslations := make(map[string]*translate.CdsTranslation)
	for _, cds := range geneMap.AllCdses() {
		tr, err := translate.TranslateCds(cds, refMap, refSeq, refSeq, refRange, translateParams)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("reference translation of CDS %q: %w", cds.Name, err))
			continue
		}
		refTranslations[cds.Name] = tr
	}

	tree, err := treegraph.BuildFromAuspice(auspiceTree)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("reference tree: %w", err))
	}

	if errs != nil {
		return nil, errs
	}

	return &BatchSetup{
		RefSeq:          refSeq,
		RefMap:          refMap,
		GeneMap:         geneMap,
		AlignParams:     alignParams,
		GapOpen:         gapOpen,
		TranslateParams: translateParams,
		AaAlignParams:   aaAlignParams,
		RefTranslations: refTranslations,
		Tree:            tree,
		Virus:           virus,
	}, nil
}
