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

package translate

import (
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/errs"
	"github.com/biostrand/cladealign/gene"
)

// CdsTranslation is one CDS's translated peptide plus everything needed
// to map codon positions back to nucleotides (spec §3).
type CdsTranslation struct {
	Name            string
	Strand          gene.Strand
	Seq             []alphabet.Aa
	NucSeq          []alphabet.Nuc
	Insertions      []AaIns
	FrameShifts     []FrameShift
	AlignmentRanges []coord.RefAaRange
	LocalCoordMap   *coord.MapLocal
}

// GeneTranslation bundles the CdsTranslations of every CDS in a gene,
// plus any per-CDS warnings raised while translating (e.g. a CDS that
// could not be translated at all).
type GeneTranslation struct {
	Cdses    map[string]*CdsTranslation
	Order    []string
	Warnings []string
}

// Translation is the full per-query (or per-reference) translation
// result across all genes.
type Translation struct {
	Genes      map[string]*GeneTranslation
	Order      []string
	MissingCds []string
}

// TranslateCds extracts, strips, and translates a single CDS for one
// sequence (reference or query), given the full-length aligned pair
// produced by the nucleotide aligner and the query's overall nucleotide
// alignment range in reference coordinates (spec §4.3).
func TranslateCds(cds *gene.Cds, refAlnMap *coord.Map, qryAln, refAln []alphabet.Nuc, nucAlignmentRange coord.RefNucRange, params TranslateParams) (*CdsTranslation, error) {
	if cds.Len()%3 != 0 {
		return nil, &errs.TranslationUnavailable{Cds: cds.Name, Reason: "CDS length is not a multiple of three"}
	}

	extracted := Extract(cds, refAlnMap, qryAln, refAln)

	localCoordMap := coord.NewMapLocal(extracted.RefAln)

	stripped := stripLocal(extracted.QryAln, extracted.RefAln)

	if len(stripped.qry)%3 != 0 {
		// Trim a trailing partial codon. The stripped query has one base per
		// reference base, so this happens only when the leading phase trim
		// left a length that is not a multiple of three.
		stripped.qry = stripped.qry[:len(stripped.qry)-len(stripped.qry)%3]
	}

	seq := TranslateSeq(stripped.qry, params.TranslatePastStop)

	frameShifts := FindFrameShifts(cds, extracted.QryAln, extracted.RefAln)

	strand := gene.StrandForward
	if len(cds.Segments) > 0 {
		strand = cds.Segments[0].Strand
	}

	return &CdsTranslation{
		Name:            cds.Name,
		Strand:          strand,
		Seq:             seq,
		NucSeq:          stripped.qry,
		FrameShifts:     frameShifts,
		AlignmentRanges: AlignmentRanges(cds, nucAlignmentRange),
		LocalCoordMap:   localCoordMap,
	}, nil
}

// AlignmentRanges derives the codon-position ranges a CDS is actually
// sequenced over, by intersecting the query's overall nucleotide
// alignment range (in reference coordinates) with each of the CDS's
// segments and codon-rounding the result (spec §4.3).
func AlignmentRanges(cds *gene.Cds, nucAlignmentRange coord.RefNucRange) []coord.RefAaRange {
	ordered := wrappingOrder(cds.Segments)

	phase := 0
	if len(ordered) > 0 {
		phase = int(ordered[0].Phase)
	}

	var ranges []coord.RefAaRange
	cumulative := 0
	for _, seg := range ordered {
		segBegin, segEnd := seg.GlobalRange.Begin.Int(), seg.GlobalRange.End.Int()

		interBegin := maxInt(segBegin, nucAlignmentRange.Begin.Int())
		interEnd := minInt(segEnd, nucAlignmentRange.End.Int())

		if interBegin < interEnd {
			var localBegin, localEnd int
			if seg.Strand == gene.StrandReverse {
				localBegin = cumulative + (segEnd - interEnd)
				localEnd = cumulative + (segEnd - interBegin)
			} else {
				localBegin = cumulative + (interBegin - segBegin)
				localEnd = cumulative + (interEnd - segBegin)
			}
			localBegin -= phase
			localEnd -= phase
			if localBegin < 0 {
				localBegin = 0
			}
			if localEnd > localBegin {
				ranges = append(ranges, coord.RefAaRange{
					Begin: coord.LocalToCodonRefPosition(coord.NewPosition[coord.Reference, coord.NucLocal](localBegin)),
					End:   coord.LocalToCodonRefPosition(coord.NewPosition[coord.Reference, coord.NucLocal](localEnd)),
				})
			}
		}

		cumulative += segEnd - segBegin
	}
	return ranges
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TranslateParams carries the translation-time knobs that are not part of
// the nucleotide aligner's Params.
type TranslateParams struct {
	TranslatePastStop bool
}

type strippedPair struct {
	qry, ref []alphabet.Nuc
}

// stripLocal removes CDS-local columns where the reference row is a gap,
// the CDS-local analogue of align.Strip.
func stripLocal(qryAln, refAln []alphabet.Nuc) strippedPair {
	qry := make([]alphabet.Nuc, 0, len(refAln))
	ref := make([]alphabet.Nuc, 0, len(refAln))
	for i, r := range refAln {
		if r.IsGap() {
			continue
		}
		qry = append(qry, qryAln[i])
		ref = append(ref, r)
	}
	return strippedPair{qry: qry, ref: ref}
}

// AlignCdsPeptides protein-aligns a reference and query translation for
// the same CDS and records insertions relative to the reference,
// producing equal-length Seq fields on both (spec §3 invariant:
// |ref_tr.seq| == |qry_tr.seq|).
func AlignCdsPeptides(cdsName string, refTr, qryTr *CdsTranslation, params AaAlignParams) []AaIns {
	refAln, qryAln := AlignAa(refTr.Seq, qryTr.Seq, params)
	refTr.Seq = refAln
	qryTr.Seq = qryAln

	var insertions []AaIns
	i := 0
	for i < len(refAln) {
		if !refAln[i].IsGap() {
			i++
			continue
		}
		start := i
		for i < len(refAln) && refAln[i].IsGap() {
			i++
		}
		insertions = append(insertions, AaIns{
			CdsName:     cdsName,
			AaPos:       start,
			InsertedAas: append([]alphabet.Aa(nil), qryAln[start:i]...),
		})
	}
	qryTr.Insertions = insertions
	return insertions
}

// IsSequenced reports whether the given reference-AA position falls
// within any of the translation's alignment ranges. Shared between the
// mutation caller and the placement package so both agree on which codon
// positions are eligible for mutation calls versus treated as unsequenced.
func (t *CdsTranslation) IsSequenced(pos coord.RefAaPosition) bool {
	if pos.Int() < 0 {
		return false
	}
	for _, r := range t.AlignmentRanges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}
