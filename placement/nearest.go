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
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/mutation"
	"github.com/biostrand/cladealign/treegraph"
)

// NearestNode is the result of searching a RefTree for the node closest to
// a query's called mutations.
type NearestNode struct {
	Key      treegraph.NodeKey
	Node     *treegraph.TreeNode
	Distance float64
}

// FindNearestNode scans every node of the tree in depth-first preorder and
// returns the one minimising NodeDistance, breaking ties by lower NodeKey
// (equivalently, by preorder position, since node keys are assigned in
// insertion order during the Auspice conversion).
func FindNearestNode(tree *treegraph.RefTree, qrySubs []mutation.NucSub, qryMissing []mutation.NucRange, alignmentRange coord.RefNucRange) (NearestNode, error) {
	var best NearestNode
	haveBest := false

	for _, key := range tree.IterDepthFirstPreorder() {
		node, err := tree.GetNode(key)
		if err != nil {
			return NearestNode{}, err
		}
		distance := NodeDistance(&node.Payload, qrySubs, qryMissing, alignmentRange)
		if !haveBest || distance < best.Distance || (distance == best.Distance && key < best.Key) {
			best = NearestNode{Key: key, Node: &node.Payload, Distance: distance}
			haveBest = true
		}
	}

	return best, nil
}
