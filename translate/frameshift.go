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

// FrameShift is a run of CDS-local nucleotide positions where the reading
// frame is broken by an indel whose net length is not a multiple of
// three (spec §4.3).
type FrameShift struct {
	CdsName        string
	NucRangeRel    [2]int // begin, end in CDS-local ungapped reference coordinates
	NucRangeAbs    [2]int // begin, end in genome reference coordinates
	CodonRange     [2]int
	CodonMaskRange [2]int
	GapsLeading    int // length of the gap run that opened the region
	GapsTrailing   int // length of the gap run that closed the region
}

// FindFrameShifts walks a CDS-local aligned pair tracking
// shift = (inserted - deleted) mod 3, opening a frame-shift region when
// the shift becomes non-zero and closing it when the shift returns to
// zero or the CDS ends. The shift/close decision is only evaluated at the
// boundary of each contiguous indel run, never mid-run: an indel run whose
// net length is already a multiple of three (e.g. a clean in-frame codon
// insertion) nets shift back to zero before the next boundary check and so
// never opens a region at all.
func FindFrameShifts(cds *gene.Cds, qryAln, refAln []alphabet.Nuc) []FrameShift {
	var shifts []FrameShift

	shift := 0
	openPos := -1
	leadingGaps := 0
	lastRunLen := 0
	lastRunEnd := -1

	closeRegion := func(endPos, trailingGaps int) {
		if openPos < 0 {
			return
		}
		nucRange := [2]int{openPos, endPos}
		codonBegin := nucRange[0] / 3
		codonEnd := (nucRange[1] + 2) / 3
		maskBegin := codonBegin - 1
		if maskBegin < 0 {
			maskBegin = 0
		}
		maskEnd := codonEnd + 1

		shifts = append(shifts, FrameShift{
			CdsName:     cds.Name,
			NucRangeRel: nucRange,
			NucRangeAbs: [2]int{
				cdsLocalToGlobalNuc(cds, nucRange[0]).Int(),
				cdsLocalToGlobalNuc(cds, nucRange[1]).Int(),
			},
			CodonRange:     [2]int{codonBegin, codonEnd},
			CodonMaskRange: [2]int{maskBegin, maskEnd},
			GapsLeading:    leadingGaps,
			GapsTrailing:   trailingGaps,
		})
		openPos = -1
		leadingGaps = 0
	}

	pos := 0
	i, n := 0, len(refAln)
	for i < n {
		if !refAln[i].IsGap() && !qryAln[i].IsGap() {
			pos++
			i++
			continue
		}

		// Consume one contiguous indel run and only then decide whether it
		// opened, extended, or closed a frame-shift region.
		runStartPos := pos
		runLen := 0
		for i < n && (refAln[i].IsGap() || qryAln[i].IsGap()) {
			if refAln[i].IsGap() {
				shift = ((shift+1)%3 + 3) % 3
			} else {
				shift = ((shift-1)%3 + 3) % 3
				pos++
			}
			runLen++
			i++
		}
		lastRunLen = runLen
		lastRunEnd = pos

		if shift != 0 {
			if openPos < 0 {
				openPos = runStartPos
				leadingGaps = runLen
			}
		} else if openPos >= 0 {
			closeRegion(pos, runLen)
		}
	}
	if openPos >= 0 {
		// The CDS end closes the region; only a gap run that reaches the
		// end counts as trailing gaps.
		trailing := 0
		if lastRunEnd == pos {
			trailing = lastRunLen
		}
		closeRegion(pos, trailing)
	}

	return shifts
}

// cdsLocalToGlobalNuc converts a CDS-local, phase-adjusted, ungapped
// nucleotide position back to its genome reference position, walking the
// CDS's segments in the same wrapping order Extract concatenated them in.
func cdsLocalToGlobalNuc(cds *gene.Cds, localPos int) coord.RefNucPosition {
	ordered := wrappingOrder(cds.Segments)
	if len(ordered) == 0 {
		return coord.NewPosition[coord.Reference, coord.Nuc](0)
	}

	target := localPos + int(ordered[0].Phase)
	cumulative := 0
	for _, seg := range ordered {
		segBegin, segEnd := seg.GlobalRange.Begin.Int(), seg.GlobalRange.End.Int()
		segLen := segEnd - segBegin
		if target < cumulative+segLen {
			offset := target - cumulative
			if seg.Strand == gene.StrandReverse {
				return coord.NewPosition[coord.Reference, coord.Nuc](segEnd - 1 - offset)
			}
			return coord.NewPosition[coord.Reference, coord.Nuc](segBegin + offset)
		}
		cumulative += segLen
	}

	last := ordered[len(ordered)-1]
	if last.Strand == gene.StrandReverse {
		return coord.NewPosition[coord.Reference, coord.Nuc](last.GlobalRange.Begin.Int())
	}
	return coord.NewPosition[coord.Reference, coord.Nuc](last.GlobalRange.End.Int())
}
