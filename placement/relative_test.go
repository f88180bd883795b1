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

package placement

import (
	"testing"

	"github.com/biostrand/cladealign/coord"
	"github.com/stretchr/testify/require"
)

func TestFindRelativeNucMutationsMatchesOnClade(t *testing.T) {
	graph, keys := buildTestTree(t)
	alignmentRange := coord.NewRange[coord.Reference, coord.Nuc](0, 30000)

	criteria := []SearchCriterion{
		{Name: "clade-20A", AttrKey: "clade_membership", AttrValue: "20A"},
		{Name: "clade-none", AttrKey: "clade_membership", AttrValue: "99Z"},
	}

	results, err := FindRelativeNucMutations(graph, keys["B"], criteria, nil, nil, alignmentRange, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.True(t, results[0].Matched)
	require.Equal(t, keys["B"], results[0].NodeKey)

	require.False(t, results[1].Matched)
}
