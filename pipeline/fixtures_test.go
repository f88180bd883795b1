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
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biostrand/cladealign/align"
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/gene"
	"github.com/biostrand/cladealign/translate"
	"github.com/biostrand/cladealign/treegraph"
)

// repeatFreeSeq builds an n-letter sequence with no internal repeats long
// enough to confuse the seed finder, the same motif the align package's
// own tests use.
func repeatFreeSeq(n int) string {
	const motif = "ACGTTGCAACGGTTCCAAGGCTAGCTAGGCATTACGGCATGGACCTTAGCA"
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(motif)
	}
	return b.String()[:n]
}

// smallAlignParams mirrors align's own test helper: params small enough for
// a 120nt fixture genome instead of a full viral genome.
func smallAlignParams() align.Params {
	params := align.DefaultParams()
	params.MinLength = 10
	params.SeedLength = 10
	params.MinSeeds = 2
	params.SeedSpacing = 20
	params.MismatchesAllowed = 1
	params.TerminalBandwidth = 20
	params.ExcessBandwidth = 10
	params.MaxIndel = 50
	return params
}

// testFixture bundles a single-CDS reference genome and the aligner/
// translator parameters tuned to exercise it.
type testFixture struct {
	RefSeq          []alphabet.Nuc
	GeneMap         *gene.Map
	AlignParams     align.Params
	TranslateParams translate.TranslateParams
	AaAlignParams   translate.AaAlignParams
}

// newTestFixture builds a 120nt single-gene, single-CDS reference genome
// (the whole genome is one forward-strand CDS, "ORF1").
func newTestFixture(t *testing.T) testFixture {
	t.Helper()

	refSeq, err := alphabet.ToNucSeq(repeatFreeSeq(120))
	require.NoError(t, err)

	cds := &gene.Cds{
		Name: "ORF1",
		Segments: []*gene.CdsSegment{{
			Index:       0,
			GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 120),
			Strand:      gene.StrandForward,
		}},
	}

	return testFixture{
		RefSeq:          refSeq,
		GeneMap:         &gene.Map{Genes: []*gene.Gene{{Name: "ORF1", Cdses: []*gene.Cds{cds}}}},
		AlignParams:     smallAlignParams(),
		TranslateParams: translate.TranslateParams{},
		AaAlignParams:   translate.DefaultAaAlignParams(),
	}
}

// flatAuspiceTree returns a two-node tree (root -> variant) where variant
// carries one nucleotide mutation at 1-based position pos (ref letter r,
// query letter q).
func flatAuspiceTree(t *testing.T, pos int, r, q byte) *treegraph.AuspiceTree {
	t.Helper()
	doc := []byte(`{
		"tree": {
			"name": "root",
			"branch_attrs": {"mutations": {}},
			"node_attrs": {"div": 0, "clade_membership": {"value": "root"}},
			"children": [
				{
					"name": "variant",
					"branch_attrs": {"mutations": {"nuc": ["` + string(r) + strconv.Itoa(pos) + string(q) + `"]}},
					"node_attrs": {"div": 1, "clade_membership": {"value": "variant-clade"}}
				}
			]
		}
	}`)
	tree, err := treegraph.ParseAuspiceTree(doc)
	require.NoError(t, err)
	return tree
}

// parseBadTree returns an Auspice tree whose single branch mutation string
// cannot be parsed, exercising BuildFromAuspice's failure path.
func parseBadTree(t *testing.T) (*treegraph.AuspiceTree, error) {
	t.Helper()
	doc := []byte(`{
		"tree": {
			"name": "root",
			"branch_attrs": {"mutations": {}},
			"node_attrs": {"div": 0, "clade_membership": {"value": "root"}},
			"children": [
				{
					"name": "variant",
					"branch_attrs": {"mutations": {"nuc": ["X"]}},
					"node_attrs": {"div": 1, "clade_membership": {"value": "variant-clade"}}
				}
			]
		}
	}`)
	return treegraph.ParseAuspiceTree(doc)
}

func mustQuery(t *testing.T, index int, name, s string) Query {
	t.Helper()
	seq, err := alphabet.ToNucSeq(s)
	require.NoError(t, err)
	return Query{Index: index, Name: name, Seq: seq}
}
