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

package mutation

import (
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
)

// FindLetterRangesBy finds contiguous same-letter runs in seq for which
// pred holds, restricted to [begin, end) (the alignment range). Every run
// it returns is maximal and made of a single repeated letter, never mixed.
func FindLetterRangesBy(seq []alphabet.Nuc, begin, end int, pred func(alphabet.Nuc) bool) []NucRange {
	var ranges []NucRange

	i := begin
	for i < end {
		if !pred(seq[i]) {
			i++
			continue
		}
		letter := seq[i]
		start := i
		for i < end && seq[i] == letter {
			i++
		}
		ranges = append(ranges, NucRange{
			Range:  coord.NewRange[coord.Reference, coord.Nuc](start, i),
			Letter: letter,
		})
	}
	return ranges
}

// FindMissingRanges finds contiguous runs of the fully-ambiguous letter N
// within the alignment range.
func FindMissingRanges(seq []alphabet.Nuc, alignmentRange coord.RefNucRange) []NucRange {
	return FindLetterRangesBy(seq, alignmentRange.Begin.Int(), alignmentRange.End.Int(), alphabet.Nuc.IsUnknown)
}

// FindNonAcgtnRanges finds contiguous runs of ambiguity codes other than N
// (and other than Gap) within the alignment range.
func FindNonAcgtnRanges(seq []alphabet.Nuc, alignmentRange coord.RefNucRange) []NucRange {
	return FindLetterRangesBy(seq, alignmentRange.Begin.Int(), alignmentRange.End.Int(), alphabet.Nuc.IsAmbiguous)
}

// GroupAdjacentDeletions collapses a list of individually-called, ordered
// deletions into deletion ranges: two positions belong to the same run iff
// they are exactly one apart.
func GroupAdjacentDeletions(dels []NucDel) []NucDelRange {
	if len(dels) == 0 {
		return nil
	}

	ranges := make([]NucDelRange, 0, len(dels)/2+1)
	begin := dels[0].Pos
	end := begin

	for _, del := range dels[1:] {
		if del.Pos.Int() != end.Int()+1 {
			ranges = append(ranges, NucDelRange{Range: coord.NewRange[coord.Reference, coord.Nuc](begin.Int(), end.Int()+1)})
			begin = del.Pos
		}
		end = del.Pos
	}
	ranges = append(ranges, NucDelRange{Range: coord.NewRange[coord.Reference, coord.Nuc](begin.Int(), end.Int()+1)})
	return ranges
}
