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
	"github.com/biostrand/cladealign/translate"
	"github.com/stretchr/testify/require"
)

func aas(t *testing.T, s string) []alphabet.Aa {
	t.Helper()
	seq, err := alphabet.ToAaSeq(s)
	require.NoError(t, err)
	return seq
}

func TestFindAaChangesSubstitutionAndDeletion(t *testing.T) {
	refTr := &translate.CdsTranslation{
		Seq:             aas(t, "MKVLAT"),
		AlignmentRanges: []coord.RefAaRange{coord.NewRange[coord.Reference, coord.Aa](0, 6)},
	}
	qryTr := &translate.CdsTranslation{
		Seq:             aas(t, "MRV-AT"),
		AlignmentRanges: []coord.RefAaRange{coord.NewRange[coord.Reference, coord.Aa](0, 6)},
	}

	subs, dels := FindAaChanges("ORF1", refTr, qryTr)
	require.Len(t, subs, 1)
	require.Equal(t, 1, subs[0].Pos.Int())
	require.Equal(t, alphabet.AaK, subs[0].RefAa)
	require.Equal(t, alphabet.AaR, subs[0].QryAa)

	require.Len(t, dels, 1)
	require.Equal(t, 3, dels[0].Pos.Int())
}

func TestFindAaChangesSkipsUnknown(t *testing.T) {
	refTr := &translate.CdsTranslation{
		Seq:             aas(t, "MKV"),
		AlignmentRanges: []coord.RefAaRange{coord.NewRange[coord.Reference, coord.Aa](0, 3)},
	}
	qryTr := &translate.CdsTranslation{
		Seq:             aas(t, "MXV"),
		AlignmentRanges: []coord.RefAaRange{coord.NewRange[coord.Reference, coord.Aa](0, 3)},
	}

	subs, dels := FindAaChanges("ORF1", refTr, qryTr)
	require.Empty(t, subs)
	require.Empty(t, dels)
}

func TestGroupAdjacentAaChangesCollapsesAdjacentCodons(t *testing.T) {
	subs := []AaSub{
		{CdsName: "ORF1", Pos: coord.NewPosition[coord.Reference, coord.Aa](1), RefAa: alphabet.AaK, QryAa: alphabet.AaR},
		{CdsName: "ORF1", Pos: coord.NewPosition[coord.Reference, coord.Aa](2), RefAa: alphabet.AaV, QryAa: alphabet.AaL},
		{CdsName: "ORF1", Pos: coord.NewPosition[coord.Reference, coord.Aa](9), RefAa: alphabet.AaA, QryAa: alphabet.AaG},
	}
	nucSubs := []NucSub{
		{Pos: coord.NewPosition[coord.Reference, coord.Nuc](3), RefNuc: alphabet.NucA, QryNuc: alphabet.NucG},
		{Pos: coord.NewPosition[coord.Reference, coord.Nuc](27), RefNuc: alphabet.NucC, QryNuc: alphabet.NucG},
	}

	groups := GroupAdjacentAaChanges("ORF1", subs, nil, nucSubs, nil, nil)
	require.Len(t, groups, 2)
	require.Equal(t, coord.NewRange[coord.Reference, coord.Aa](1, 3), groups[0].Range)
	require.Len(t, groups[0].Subs, 2)
	require.Len(t, groups[0].NucSubs, 1)

	require.Equal(t, coord.NewRange[coord.Reference, coord.Aa](9, 10), groups[1].Range)
	require.Len(t, groups[1].Subs, 1)
	require.Len(t, groups[1].NucSubs, 1)
}
