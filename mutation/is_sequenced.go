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

import "github.com/biostrand/cladealign/coord"

// IsNucSequenced reports whether pos is considered sequenced: within the
// alignment range and not covered by any missing (N) range.
func IsNucSequenced(pos coord.RefNucPosition, missing []NucRange, alignmentRange coord.RefNucRange) bool {
	if !alignmentRange.Contains(pos) {
		return false
	}
	for _, m := range missing {
		if m.Range.Contains(pos) {
			return false
		}
	}
	return true
}
