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

// Package placement finds, for a query's called mutations, the reference
// tree node it is genetically closest to, and derives the private
// mutations that separate the query from that node.
package placement

import (
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/mutation"
	"github.com/biostrand/cladealign/treegraph"
)

// minPlacementBias floors a node's placement_bias at a small positive value
// (1000 machine epsilons), so a zero or negative bias still leaves the
// distance strictly below raw + 1. Nodes that share the floor and the same
// raw distance still tie.
const minPlacementBias = 1000 * 2.220446049250313e-16

// NodeDistance computes the nucleotide distance metric between a query
// (its substitutions, missing ranges, and alignment range) and a tree
// node's ancestral substitution map D:
//
//	shared_diff   = |{q in Q : D[q.pos] == q.qry}|
//	shared_site   = |{q in Q : q.pos in dom(D), D[q.pos] != q.qry}|
//	undetermined  = |{p in dom(D) : p not in A or p in M}|
//	distance      = |D| + |Q| - 2*shared_diff - shared_site - undetermined + 1 - eps
func NodeDistance(node *treegraph.TreeNode, qrySubs []mutation.NucSub, qryMissing []mutation.NucRange, alignmentRange coord.RefNucRange) float64 {
	d := node.Substitutions

	var sharedDiff, sharedSite int
	for _, q := range qrySubs {
		der, ok := d[q.Pos]
		if !ok {
			continue
		}
		if der == q.QryNuc {
			sharedDiff++
		} else {
			sharedSite++
		}
	}

	var undetermined int
	for pos := range d {
		if !mutation.IsNucSequenced(pos, qryMissing, alignmentRange) {
			undetermined++
		}
	}

	raw := float64(len(d)+len(qrySubs)) - 2*float64(sharedDiff) - float64(sharedSite) - float64(undetermined)

	bias := node.PlacementBias
	if bias < minPlacementBias {
		bias = minPlacementBias
	}

	return raw + 1 - bias
}
