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

import (
	"testing"

	"github.com/biostrand/cladealign/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMatchSimple(t *testing.T) {
	kmer, err := alphabet.ToNucSeq("ACG")
	require.NoError(t, err)
	ref, err := alphabet.ToNucSeq("AAAAAAACGAAAAA")
	require.NoError(t, err)

	refPos, score := seedMatch(kmer, ref, 0, len(ref), 0)
	assert.Equal(t, 6, refPos)
	assert.Equal(t, 3, score)
}

func TestSeedMatchAcceptsSuboptimal(t *testing.T) {
	kmer, err := alphabet.ToNucSeq("ACG")
	require.NoError(t, err)
	ref, err := alphabet.ToNucSeq("AACTGCAA")
	require.NoError(t, err)

	refPos, score := seedMatch(kmer, ref, 0, len(ref), 1)
	assert.Equal(t, 1, refPos)
	assert.Equal(t, 2, score)
}

func TestSeedMatchFindsMatchFlushAgainstReferenceEnd(t *testing.T) {
	kmer, err := alphabet.ToNucSeq("ACG")
	require.NoError(t, err)
	ref, err := alphabet.ToNucSeq("AAAAAACG")
	require.NoError(t, err)

	refPos, score := seedMatch(kmer, ref, 0, len(ref), 0)
	assert.Equal(t, 5, refPos)
	assert.Equal(t, 3, score)
}

func TestMonotoneChainRejectsNonMonotone(t *testing.T) {
	chain := MonotoneChain([]Seed{
		{QryPos: 0, RefPos: 0},
		{QryPos: 10, RefPos: 5},
		{QryPos: 5, RefPos: 20}, // non-monotone in qry: dropped
		{QryPos: 20, RefPos: 25},
	})
	require.Len(t, chain, 3)
	assert.Equal(t, 0, chain[0].QryPos)
	assert.Equal(t, 10, chain[1].QryPos)
	assert.Equal(t, 20, chain[2].QryPos)
}

func TestFindSeedsIdenticalSequences(t *testing.T) {
	seq, err := alphabet.ToNucSeq("ACGTTGCAACGGTTCCAAGGCTAGCTAGGCATTACGGCA")
	require.NoError(t, err)

	params := DefaultParams()
	params.SeedLength = 8
	params.MinSeeds = 2
	params.SeedSpacing = 10
	params.MismatchesAllowed = 0

	seeds := FindSeeds(seq, seq, params)
	require.NotEmpty(t, seeds)
	for _, s := range seeds {
		assert.Equal(t, s.QryPos, s.RefPos)
	}
}
