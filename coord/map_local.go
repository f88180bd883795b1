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

package coord

import "github.com/biostrand/cladealign/alphabet"

// MapLocal is Map's counterpart for a single CDS: it converts between
// the CDS-local gapped alignment space and the CDS-local un-gapped
// nucleotide space, and further projects nucleotide-local positions onto
// codon (amino-acid) positions.
type MapLocal struct {
	alnToRef []int // index: local aln position, value: local ref nuc position
}

// NewMapLocal builds a MapLocal from a single CDS's aligned, unstripped
// reference nucleotides.
func NewMapLocal(refSeqUnstripped []alphabet.Nuc) *MapLocal {
	alnToRef := make([]int, len(refSeqUnstripped))
	refPos := 0
	for i, n := range refSeqUnstripped {
		if n.IsGap() {
			if i == 0 {
				alnToRef[i] = 0
			} else {
				alnToRef[i] = alnToRef[i-1]
			}
		} else {
			alnToRef[i] = refPos
			refPos++
		}
	}
	return &MapLocal{alnToRef: alnToRef}
}

// AlnToRefPosition converts a CDS-local alignment position to a CDS-local
// reference-nucleotide position.
func (m *MapLocal) AlnToRefPosition(aln AlnLocalPosition) RefLocalPosition {
	return NewPosition[Reference, NucLocal](m.alnToRef[aln.Int()])
}

// AlnToRefRange converts a CDS-local alignment range to a CDS-local
// reference-nucleotide range.
func (m *MapLocal) AlnToRefRange(aln AlnLocalRange) RefLocalRange {
	return RefLocalRange{
		Begin: m.AlnToRefPosition(aln.Begin),
		End:   m.AlnToRefPosition(NewPosition[Alignment, NucLocal](aln.End.Int()-1)).Add(1),
	}
}

// LocalToCodonRefPosition projects a CDS-local nucleotide position onto its
// containing codon position, rounding up to the next codon boundary. The
// caller is responsible for orienting pos relative to the CDS's reading
// direction before calling this (reverse-strand CDSs are normalized to
// forward-local coordinates upstream, by the translate package's Extract
// and AlignmentRanges).
func LocalToCodonRefPosition(pos RefLocalPosition) RefAaPosition {
	p := pos.Int()
	adjusted := p + (3-((p%3+3)%3))%3
	return NewPosition[Reference, Aa](adjusted / 3)
}

// LocalToCodonRefRange converts a CDS-local alignment range all the way to
// a codon (amino-acid) range.
func (m *MapLocal) LocalToCodonRefRange(aln AlnLocalRange) RefAaRange {
	r := m.AlnToRefRange(aln)
	return RefAaRange{
		Begin: LocalToCodonRefPosition(r.Begin),
		End:   LocalToCodonRefPosition(r.End),
	}
}
