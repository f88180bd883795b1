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

// Map converts positions between the alignment coordinate space (the gapped
// ref_aln produced by the aligner) and the reference coordinate space (the
// ungapped original reference). Both tables are built once from the
// aligned reference row and then reused for every lookup, per spec §4.2.
type Map struct {
	alnToRef []int // index: aln position, value: ref position
	refToAln []int // index: ref position, value: aln position
}

// NewMap builds a Map from the aligned reference row (gaps included).
// alnToRef maps a gap position to the reference position of the nearest
// preceding non-gap letter (or 0 if the alignment begins with a gap), so
// that insertions relative to the reference collapse onto a single
// reference coordinate rather than going out of bounds.
func NewMap(refAln []alphabet.Nuc) *Map {
	alnToRef := make([]int, len(refAln))
	refToAln := make([]int, 0, len(refAln))

	refPos := 0
	for i, n := range refAln {
		if n.IsGap() {
			if i == 0 {
				alnToRef[i] = 0
			} else {
				alnToRef[i] = alnToRef[i-1]
			}
		} else {
			alnToRef[i] = refPos
			refToAln = append(refToAln, i)
			refPos++
		}
	}

	return &Map{alnToRef: alnToRef, refToAln: refToAln}
}

// AlnToRefPosition converts a single alignment-space position to its
// reference-space position.
func (m *Map) AlnToRefPosition(aln AlnNucPosition) RefNucPosition {
	return NewPosition[Reference, Nuc](m.alnToRef[aln.Int()])
}

// RefToAlnPosition converts a single reference-space position to its
// alignment-space position.
func (m *Map) RefToAlnPosition(ref RefNucPosition) AlnNucPosition {
	return NewPosition[Alignment, Nuc](m.refToAln[ref.Int()])
}

// AlnToRefRange converts a half-open alignment-space range to the
// corresponding half-open reference-space range.
func (m *Map) AlnToRefRange(aln AlnNucRange) RefNucRange {
	return RefNucRange{
		Begin: m.AlnToRefPosition(aln.Begin),
		End:   m.AlnToRefPosition(NewPosition[Alignment, Nuc](aln.End.Int()-1)).Add(1),
	}
}

// RefToAlnRange converts a half-open reference-space range to the
// corresponding half-open alignment-space range.
func (m *Map) RefToAlnRange(ref RefNucRange) AlnNucRange {
	return AlnNucRange{
		Begin: m.RefToAlnPosition(ref.Begin),
		End:   m.RefToAlnPosition(NewPosition[Reference, Nuc](ref.End.Int()-1)).Add(1),
	}
}

// RefLength returns the length of the ungapped reference sequence this map
// was built from.
func (m *Map) RefLength() int { return len(m.refToAln) }
