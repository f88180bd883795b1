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

import "github.com/biostrand/cladealign/alphabet"

// Insertion is a run of query nucleotides with no reference counterpart.
// Pos is the reference position of the last non-gap reference column
// before the insertion (-1 if the insertion precedes the first reference
// base).
type Insertion struct {
	Pos     int
	Letters []alphabet.Nuc
}

// StripResult is the output of removing ref-gap columns from an aligned
// pair.
type StripResult struct {
	QryStripped []alphabet.Nuc
	Insertions  []Insertion
}

// Strip removes columns where refAln[i] is a gap, producing a query
// sequence whose length equals the reference and the list of insertions
// that were removed to get there (spec §4.2).
//
// Each run of consecutive ref-gap columns pushes its query letters onto a
// single pending insertion exactly once per column; the original
// reference implementation this is ported from double-pushed the first
// letter of every run, which this fixes.
func Strip(qryAln, refAln []alphabet.Nuc) StripResult {
	qryStripped := make([]alphabet.Nuc, 0, len(refAln))
	insertions := make([]Insertion, 0)

	refPos := -1
	insertionStart := -1
	current := make([]alphabet.Nuc, 0, 16)

	for i, r := range refAln {
		if r.IsGap() {
			if len(current) == 0 {
				insertionStart = refPos
			}
			current = append(current, qryAln[i])
		} else {
			qryStripped = append(qryStripped, qryAln[i])
			refPos++
			if len(current) > 0 {
				insertions = append(insertions, Insertion{Pos: insertionStart, Letters: append([]alphabet.Nuc(nil), current...)})
				current = current[:0]
				insertionStart = -1
			}
		}
	}

	if len(current) > 0 {
		insertions = append(insertions, Insertion{Pos: insertionStart, Letters: append([]alphabet.Nuc(nil), current...)})
	}

	return StripResult{QryStripped: qryStripped, Insertions: insertions}
}
