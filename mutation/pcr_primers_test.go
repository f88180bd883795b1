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

func TestFindPcrPrimerChangesReportsMutationInRange(t *testing.T) {
	primer := PcrPrimer{Name: "F1", Range: coord.NewRange[coord.Reference, coord.Nuc](10, 30)}
	sub := NucSub{Pos: coord.NewPosition[coord.Reference, coord.Nuc](15), RefNuc: alphabet.NucA, QryNuc: alphabet.NucG}

	changes := FindPcrPrimerChanges([]NucSub{sub}, []PcrPrimer{primer})
	require.Len(t, changes, 1)
	require.Equal(t, "F1", changes[0].Primer.Name)
	require.Equal(t, []NucSub{sub}, changes[0].Substitutions)
}

func TestFindPcrPrimerChangesIgnoresOutOfRange(t *testing.T) {
	primer := PcrPrimer{Name: "F1", Range: coord.NewRange[coord.Reference, coord.Nuc](10, 30)}
	sub := NucSub{Pos: coord.NewPosition[coord.Reference, coord.Nuc](5), RefNuc: alphabet.NucA, QryNuc: alphabet.NucG}

	changes := FindPcrPrimerChanges([]NucSub{sub}, []PcrPrimer{primer})
	require.Empty(t, changes)
}

func TestFindPcrPrimerChangesToleratesExistingAmbiguity(t *testing.T) {
	primer := PcrPrimer{
		Name:  "F1",
		Range: coord.NewRange[coord.Reference, coord.Nuc](10, 30),
		NonAcgts: []PcrPrimerNonAcgt{
			{Pos: coord.NewPosition[coord.Reference, coord.Nuc](15), Qry: alphabet.NucR},
		},
	}
	// R = {A, G}; a mutation to G at that position is already tolerated.
	sub := NucSub{Pos: coord.NewPosition[coord.Reference, coord.Nuc](15), RefNuc: alphabet.NucA, QryNuc: alphabet.NucG}

	changes := FindPcrPrimerChanges([]NucSub{sub}, []PcrPrimer{primer})
	require.Empty(t, changes)
}
