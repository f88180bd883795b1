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

	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/stretchr/testify/require"
)

func nucs(t *testing.T, s string) []alphabet.Nuc {
	t.Helper()
	seq, err := alphabet.ToNucSeq(s)
	require.NoError(t, err)
	return seq
}

func TestFindNucChangesSubstitution(t *testing.T) {
	ref := nucs(t, "ACGTACGT")
	qry := nucs(t, "ACGAACGT")

	out := FindNucChanges(qry, ref)
	require.Len(t, out.Substitutions, 1)
	require.Equal(t, 3, out.Substitutions[0].Pos.Int())
	require.Equal(t, alphabet.NucT, out.Substitutions[0].RefNuc)
	require.Equal(t, alphabet.NucA, out.Substitutions[0].QryNuc)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](0, 8), out.AlignmentRange)
}

func TestFindNucChangesLeadingTrailingGapsAreUnsequenced(t *testing.T) {
	ref := nucs(t, "ACGTACGT")
	qry := nucs(t, "--GTACG-")

	out := FindNucChanges(qry, ref)
	require.Empty(t, out.Substitutions)
	// the leading two gaps are unsequenced, not deletions; the trailing gap
	// at position 7 is a real deletion since real sequence precedes it.
	require.Len(t, out.Deletions, 1)
	require.Equal(t, 7, out.Deletions[0].Pos.Int())
	require.Equal(t, coord.NewRange[coord.Reference, coord.Nuc](2, 8), out.AlignmentRange)
}

func TestFindNucChangesAllGapsYieldEmptyAlignmentRange(t *testing.T) {
	ref := nucs(t, "ACGT")
	qry := nucs(t, "----")

	out := FindNucChanges(qry, ref)
	require.Empty(t, out.Substitutions)
	require.Empty(t, out.Deletions)
	require.True(t, out.AlignmentRange.Empty())
}

func TestFindNucChangesDoesNotCallAmbiguousAsSubstitution(t *testing.T) {
	ref := nucs(t, "ACGT")
	qry := nucs(t, "ACNT")

	out := FindNucChanges(qry, ref)
	require.Empty(t, out.Substitutions)
}
