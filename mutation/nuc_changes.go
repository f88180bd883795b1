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

// NucChanges is the result of scanning a stripped pairwise alignment for
// nucleotide substitutions and deletions, along with the alignment range
// the query actually covers.
type NucChanges struct {
	Substitutions  []NucSub
	Deletions      []NucDel
	AlignmentRange coord.RefNucRange
}

// FindNucChanges scans a stripped query/reference pair (equal length, no
// insertion columns: qryStripped[i] and refStripped[i] both refer to
// reference position i) for substitutions and deletion runs, and records
// the first/last position where the query has real sequence data. Leading
// and trailing query gaps are not deletions: they are unsequenced.
func FindNucChanges(qryStripped, refStripped []alphabet.Nuc) NucChanges {
	var subs []NucSub
	var dels []NucDel

	beforeAlignment := true
	alignmentStart, alignmentEnd := -1, -1

	for i, q := range qryStripped {
		r := refStripped[i]

		if !q.IsGap() {
			if beforeAlignment {
				alignmentStart = i
				beforeAlignment = false
			}
			alignmentEnd = i + 1
		} else if !beforeAlignment {
			// A gap after the alignment has started is a real deletion, not
			// trailing unsequenced data, so it still extends the range.
			alignmentEnd = i + 1
		}

		switch {
		case !q.IsGap() && q != r && q.IsACGT():
			subs = append(subs, NucSub{
				Pos:    coord.NewPosition[coord.Reference, coord.Nuc](i),
				RefNuc: r,
				QryNuc: q,
			})
		case q.IsGap() && !beforeAlignment:
			dels = append(dels, NucDel{
				Pos:    coord.NewPosition[coord.Reference, coord.Nuc](i),
				RefNuc: r,
			})
		}
	}

	if alignmentStart < 0 {
		alignmentStart, alignmentEnd = 0, 0
	}

	return NucChanges{
		Substitutions:  subs,
		Deletions:      dels,
		AlignmentRange: coord.NewRange[coord.Reference, coord.Nuc](alignmentStart, alignmentEnd),
	}
}
