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
	"testing"

	"github.com/biostrand/cladealign/coord"
	"github.com/stretchr/testify/require"
)

func TestFindMissingRanges(t *testing.T) {
	seq := nucs(t, "ACNNGTNA")
	ranges := FindMissingRanges(seq, coord.NewRange[coord.Reference, coord.Nuc](0, 8))
	require.Len(t, ranges, 2)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](2, 4), ranges[0].Range)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](6, 7), ranges[1].Range)
}

func TestFindNonAcgtnRanges(t *testing.T) {
	seq := nucs(t, "ACRRGTYA")
	ranges := FindNonAcgtnRanges(seq, coord.NewRange[coord.Reference, coord.Nuc](0, 8))
	require.Len(t, ranges, 2)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](2, 4), ranges[0].Range)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](6, 7), ranges[1].Range)
}

func TestGroupAdjacentDeletionsEmptyInput(t *testing.T) {
	require.Empty(t, GroupAdjacentDeletions(nil))
}

func TestGroupAdjacentDeletionsSingle(t *testing.T) {
	dels := []NucDel{{Pos: coord.NewPosition[coord.Reference, coord.Nuc](5)}}
	ranges := GroupAdjacentDeletions(dels)
	require.Equal(t, []NucDelRange{{Range: coord.NewRange[coord.Reference, coord.Nuc](5, 6)}}, ranges)
}

func TestGroupAdjacentDeletionsNonAdjacent(t *testing.T) {
	dels := []NucDel{
		{Pos: coord.NewPosition[coord.Reference, coord.Nuc](1)},
		{Pos: coord.NewPosition[coord.Reference, coord.Nuc](3)},
		{Pos: coord.NewPosition[coord.Reference, coord.Nuc](5)},
	}
	ranges := GroupAdjacentDeletions(dels)
	require.Equal(t, []NucDelRange{
		{Range: coord.NewRange[coord.Reference, coord.Nuc](1, 2)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](3, 4)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](5, 6)},
	}, ranges)
}

func TestGroupAdjacentDeletionsComplexMixed(t *testing.T) {
	positions := []int{1, 3, 4, 6, 8, 9, 10, 12}
	dels := make([]NucDel, len(positions))
	for i, p := range positions {
		dels[i] = NucDel{Pos: coord.NewPosition[coord.Reference, coord.Nuc](p)}
	}
	ranges := GroupAdjacentDeletions(dels)
	require.Equal(t, []NucDelRange{
		{Range: coord.NewRange[coord.Reference, coord.Nuc](1, 2)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](3, 5)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](6, 7)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](8, 11)},
		{Range: coord.NewRange[coord.Reference, coord.Nuc](12, 13)},
	}, ranges)
}
