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
	"github.com/biostrand/cladealign/gene"
)

// ExtractedCds holds a CDS-local aligned pair (gaps in either row still
// present) before ref-gap stripping, concatenated across all of a CDS's
// segments in wrapping-part order (spec §4.3).
type ExtractedCds struct {
	QryAln, RefAln []alphabet.Nuc
}

// wrappingOrder returns the segment order to concatenate in: by wrapping
// part (Start, Central(1..), End(1..)) when any segment is wrapping,
// otherwise by segment Index, which is how a non-wrapping, possibly
// spliced CDS is ordered along the genome.
func wrappingOrder(segments []*gene.CdsSegment) []*gene.CdsSegment {
	ordered := append([]*gene.CdsSegment(nil), segments...)
	anyWrapping := false
	for _, s := range ordered {
		if s.WrappingPart.Kind != gene.NonWrapping {
			anyWrapping = true
			break
		}
	}
	if !anyWrapping {
		for i := 1; i < len(ordered); i++ {
			for j := i; j > 0 && ordered[j].Index < ordered[j-1].Index; j-- {
				ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
			}
		}
		return ordered
	}

	rank := func(s *gene.CdsSegment) int {
		switch s.WrappingPart.Kind {
		case gene.WrappingStart:
			return 0
		case gene.WrappingCentral:
			return 1000 + s.WrappingPart.Index
		case gene.WrappingEnd:
			return 2000 + s.WrappingPart.Index
		default:
			return s.Index
		}
	}

	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && rank(ordered[j]) < rank(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}

// Extract builds the CDS-local aligned pair by walking the CDS's ordered
// segments, taking each segment's reference-aligned slice (before ref-gap
// stripping, so query insertions inside the segment are preserved),
// reverse-complementing reverse-strand segments, and concatenating in
// wrapping-part order. The first segment's phase is then applied as a
// leading trim so the result starts in-frame.
func Extract(cds *gene.Cds, refAlnMap *coord.Map, qryAln, refAln []alphabet.Nuc) ExtractedCds {
	ordered := wrappingOrder(cds.Segments)

	var qryParts, refParts []alphabet.Nuc
	for _, seg := range ordered {
		alnBegin := refAlnMap.RefToAlnPosition(seg.GlobalRange.Begin).Int()
		alnEnd := refAlnMap.RefToAlnPosition(coord.NewPosition[coord.Reference, coord.Nuc](seg.GlobalRange.End.Int()-1)).Int() + 1

		segQry := append([]alphabet.Nuc(nil), qryAln[alnBegin:alnEnd]...)
		segRef := append([]alphabet.Nuc(nil), refAln[alnBegin:alnEnd]...)

		if seg.Strand == gene.StrandReverse {
			segQry = alphabet.ReverseComplement(segQry)
			segRef = alphabet.ReverseComplement(segRef)
		}

		qryParts = append(qryParts, segQry...)
		refParts = append(refParts, segRef...)
	}

	if len(ordered) > 0 {
		phase := int(ordered[0].Phase)
		trimmed := 0
		i := 0
		for trimmed < phase && i < len(refParts) {
			if !refParts[i].IsGap() {
				trimmed++
			}
			i++
		}
		qryParts = qryParts[i:]
		refParts = refParts[i:]
	}

	return ExtractedCds{QryAln: qryParts, RefAln: refParts}
}
