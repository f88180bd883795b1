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

	"github.com/biostrand/cladealign/align"
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/errs"
	"github.com/biostrand/cladealign/mutation"
	"github.com/biostrand/cladealign/placement"
	"github.com/biostrand/cladealign/translate"
)

// Process runs one query through the full per-worker pipeline (spec §4.7):
// align, strip, call nucleotide mutations, translate every CDS and call
// amino-acid mutations, place against the reference tree, and derive
// private mutations.
//
// A bare error return means the query failed at a stage that leaves
// nothing worth reporting (alignment or placement); it is always an
// *errs.QueryError, so a caller can attach it to the batch without
// aborting the remaining queries (spec §7). A CDS that cannot be
// translated is not such a failure: it is recorded in result.MissingCds and
// result.Warnings, and the rest of the query proceeds.
func Process(setup *BatchSetup, q Query) (*Result, error) {
	result := &Result{Index: q.Index, SeqName: q.Name}

	aln, err := align.Align(q.Seq, setup.RefSeq, setup.GapOpen, setup.AlignParams)
	if err != nil {
		return nil, queryErr(q, "align", err)
	}
	result.QryAln = aln.QryAln
	result.RefAln = aln.RefAln
	result.Score = aln.Score
	result.IsReverseComplement = aln.IsReverseComplement

	stripped := align.Strip(aln.QryAln, aln.RefAln)
	result.Insertions = stripped.Insertions

	nucChanges := mutation.FindNucChanges(stripped.QryStripped, setup.RefSeq)
	result.Substitutions = nucChanges.Substitutions
	result.Deletions = nucChanges.Deletions
	result.AlignmentRange = nucChanges.AlignmentRange
	result.DeletionRanges = mutation.GroupAdjacentDeletions(nucChanges.Deletions)

	result.Missing = mutation.FindMissingRanges(stripped.QryStripped, nucChanges.AlignmentRange)
	result.NonACGTNs = mutation.FindNonAcgtnRanges(stripped.QryStripped, nucChanges.AlignmentRange)
	result.NucleotideComposition = mutation.Composition(stripped.QryStripped)

	result.PcrPrimerChanges = mutation.FindPcrPrimerChanges(result.Substitutions, setup.Virus.PcrPrimers)

	result.Translations = make(map[string]CdsResult)
	translateEachCds(setup, aln, nucChanges, result)

	result.TotalFrameShifts = len(result.FrameShifts)

	nearest, err := placement.FindNearestNode(setup.Tree, result.Substitutions, result.Missing, result.AlignmentRange)
	if err != nil {
		return nil, queryErr(q, "place", err)
	}
	result.NearestNodeID = nearest.Key
	result.Clade = nearest.Node.Clade
	result.CladeNodeAttrs = nearest.Node.CladeNodeAttrs

	result.PrivateNucMutations = placement.FindPrivateNucMutations(
		nearest.Node.Substitutions, result.Substitutions, result.Missing, result.AlignmentRange, setup.Virus.Labels)

	derivePrivateAaMutations(nearest, result)

	return result, nil
}

// translateEachCds runs the per-CDS translation, amino-acid change calling,
// and peptide self-alignment (for insertion reporting) steps of spec §4.3
// and §4.4, appending a CDS's results onto result or recording it as
// unavailable (spec §7's TranslationUnavailable, a warning rather than a
// query failure).
func translateEachCds(setup *BatchSetup, aln *align.Alignment, nucChanges mutation.NucChanges, result *Result) {
	for _, cds := range setup.GeneMap.AllCdses() {
		qryTr, err := translate.TranslateCds(cds, setup.RefMap, aln.QryAln, aln.RefAln, nucChanges.AlignmentRange, setup.TranslateParams)
		if err != nil {
			result.MissingCds = append(result.MissingCds, cds.Name)
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}

		refTr := setup.RefTranslations[cds.Name]
		if refTr == nil {
			result.MissingCds = append(result.MissingCds, cds.Name)
			result.Warnings = append(result.Warnings, fmt.Sprintf("CDS %q: no reference translation available", cds.Name))
			continue
		}

		// FindAaChanges indexes refTr.Seq/qryTr.Seq by codon position
		// against qryTr.AlignmentRanges, so it must run before
		// AlignCdsPeptides inserts gap codons and shifts those indices.
		// refTr is setup-wide and shared by every worker, so a private
		// copy is aligned rather than the original.
		refTrCopy := &translate.CdsTranslation{
			Name:            refTr.Name,
			Strand:          refTr.Strand,
			Seq:             append([]alphabet.Aa(nil), refTr.Seq...),
			NucSeq:          refTr.NucSeq,
			FrameShifts:     refTr.FrameShifts,
			AlignmentRanges: refTr.AlignmentRanges,
			LocalCoordMap:   refTr.LocalCoordMap,
		}

		subs, dels := mutation.FindAaChanges(cds.Name, refTrCopy, qryTr)
		result.AaSubstitutions = append(result.AaSubstitutions, subs...)
		result.AaDeletions = append(result.AaDeletions, dels...)

		groups := mutation.GroupAdjacentAaChanges(cds.Name, subs, dels, result.Substitutions, result.Deletions, result.DeletionRanges)
		result.AaChangesGroups = append(result.AaChangesGroups, groups...)

		aaIns := translate.AlignCdsPeptides(cds.Name, refTrCopy, qryTr, setup.AaAlignParams)

		result.Translations[cds.Name] = CdsResult{
			Seq:             qryTr.Seq,
			Insertions:      aaIns,
			FrameShifts:     qryTr.FrameShifts,
			AlignmentRanges: qryTr.AlignmentRanges,
		}
		result.FrameShifts = append(result.FrameShifts, qryTr.FrameShifts...)
	}
}

// derivePrivateAaMutations computes, for every CDS that was translated,
// the private amino-acid mutations and reversions against the nearest
// node's precomputed ancestral genotype for that CDS (spec §4.6).
func derivePrivateAaMutations(nearest placement.NearestNode, result *Result) {
	result.PrivateAaMutations = make(map[string]placement.PrivateAaMutations)
	for cdsName, cdsResult := range result.Translations {
		var cdsSubs []mutation.AaSub
		for _, s := range result.AaSubstitutions {
			if s.CdsName == cdsName {
				cdsSubs = append(cdsSubs, s)
			}
		}

		result.PrivateAaMutations[cdsName] = placement.FindPrivateAaMutations(
			cdsName, nearest.Node.AaSubstitutions[cdsName], cdsSubs, isSequencedIn(cdsResult.AlignmentRanges))
	}
}

// isSequencedIn reports, for a CDS's alignment ranges, whether a given
// codon position falls within any of them - the same rule as
// translate.CdsTranslation.IsSequenced, restated here because only the
// ranges (not the full CdsTranslation) survive into a Result.
func isSequencedIn(ranges []coord.RefAaRange) func(coord.RefAaPosition) bool {
	return func(pos coord.RefAaPosition) bool {
		for _, r := range ranges {
			if r.Contains(pos) {
				return true
			}
		}
		return false
	}
}

func queryErr(q Query, stage string, err error) error {
	return &errs.QueryError{Index: q.Index, SeqName: q.Name, Stage: stage, Err: err}
}
