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

package align

import "github.com/biostrand/cladealign/gene"

// GapOpenVector holds a per-reference-position gap-open penalty (entry i is
// reference position i), two entries longer than the reference so the DP
// can index one past the last reference position.
type GapOpenVector []int

// FlatGapOpenVector builds a uniform gap-open vector with no codon bias.
// CodonAwareGapOpenVector starts from it; protein alignment in the
// translate package uses its own flat penalty and not this vector.
func FlatGapOpenVector(refLen int, params Params) GapOpenVector {
	v := make(GapOpenVector, refLen+2)
	for i := range v {
		v[i] = params.PenaltyGapOpen
	}
	return v
}

// CodonAwareGapOpenVector builds the gap-open vector biasing gaps onto
// codon boundaries (spec §4.1): inside a CDS segment, codon position 0
// gets PenaltyGapOpenInFrame and positions 1/2 get
// PenaltyGapOpenOutOfFrame; everywhere else gets the uniform
// PenaltyGapOpen. Codon positions are counted in the segment's reading
// direction, starting after the segment's leading phase bases.
func CodonAwareGapOpenVector(refLen int, genes []*gene.Gene, params Params) GapOpenVector {
	v := FlatGapOpenVector(refLen, params)
	for _, g := range genes {
		for _, cds := range g.Cdses {
			for _, seg := range cds.Segments {
				begin, end := seg.GlobalRange.Begin.Int(), seg.GlobalRange.End.Int()
				for i := begin; i < end; i++ {
					offset := i - begin
					if seg.Strand == gene.StrandReverse {
						offset = end - 1 - i
					}
					if ((offset-int(seg.Phase))%3+3)%3 == 0 {
						v[i] = params.PenaltyGapOpenInFrame
					} else {
						v[i] = params.PenaltyGapOpenOutOfFrame
					}
				}
			}
		}
	}
	return v
}
