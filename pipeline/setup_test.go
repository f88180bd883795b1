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

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/gene"
)

func TestNewBatchSetupBuildsReferenceTranslations(t *testing.T) {
	fx := newTestFixture(t)
	tree := flatAuspiceTree(t, 11, 'G', 'A')

	setup, err := NewBatchSetup(fx.RefSeq, fx.GeneMap, tree, fx.AlignParams, fx.TranslateParams, fx.AaAlignParams, VirusProperties{})
	require.NoError(t, err)

	require.Contains(t, setup.RefTranslations, "ORF1")
	require.Equal(t, 2, setup.Tree.NodeCount())
}

func TestNewBatchSetupAggregatesCdsLengthError(t *testing.T) {
	fx := newTestFixture(t)
	tree := flatAuspiceTree(t, 11, 'G', 'A')

	badCds := &gene.Cds{
		Name: "BAD",
		Segments: []*gene.CdsSegment{{
			Index:       0,
			GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 10),
			Strand:      gene.StrandForward,
		}},
	}
	fx.GeneMap.Genes = append(fx.GeneMap.Genes, &gene.Gene{Name: "BAD", Cdses: []*gene.Cds{badCds}})

	_, err := NewBatchSetup(fx.RefSeq, fx.GeneMap, tree, fx.AlignParams, fx.TranslateParams, fx.AaAlignParams, VirusProperties{})
	require.Error(t, err)
}

func TestNewBatchSetupRejectsInvalidTree(t *testing.T) {
	fx := newTestFixture(t)
	badTree, err := parseBadTree(t)
	require.NoError(t, err)

	_, err = NewBatchSetup(fx.RefSeq, fx.GeneMap, badTree, fx.AlignParams, fx.TranslateParams, fx.AaAlignParams, VirusProperties{})
	require.Error(t, err)
}
