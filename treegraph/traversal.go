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

package treegraph

import (
	"fmt"

	"github.com/biostrand/cladealign/errs"
)

// IterChildKeysOf returns the keys of key's direct children, in the order
// their edges were added.
func (g *Graph[N, E]) IterChildKeysOf(key NodeKey) []NodeKey {
	node := &g.nodes[key]
	children := make([]NodeKey, len(node.outbound))
	for i, ek := range node.outbound {
		children[i] = g.edges[ek].Target
	}
	return children
}

// IterDepthFirstPreorder walks the graph from its root, visiting a node
// before any of its children, and children in edge-insertion order.
func (g *Graph[N, E]) IterDepthFirstPreorder() []NodeKey {
	roots := g.RootKeys()
	if len(roots) == 0 {
		return nil
	}

	var order []NodeKey
	visited := make([]bool, len(g.nodes))
	stack := []NodeKey{roots[0]}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[k] {
			continue
		}
		visited[k] = true
		order = append(order, k)

		children := g.IterChildKeysOf(k)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return order
}

// AncestorsOf walks inbound edges from key back to the root and returns the
// path, nearest ancestor first. It fails with errs.ErrAmbiguousAncestry if
// any node on the path has more than one inbound edge, since the ancestor
// path is then not uniquely defined.
func (g *Graph[N, E]) AncestorsOf(key NodeKey) ([]NodeKey, error) {
	if !g.validKey(key) {
		return nil, fmt.Errorf("%w: key %d", errs.ErrNodeNotFound, key)
	}

	var path []NodeKey
	cur := key
	for {
		node := &g.nodes[cur]
		if len(node.inbound) == 0 {
			return path, nil
		}
		if len(node.inbound) > 1 {
			return nil, fmt.Errorf("%w: node %d has %d inbound edges", errs.ErrAmbiguousAncestry, cur, len(node.inbound))
		}
		parent := g.edges[node.inbound[0]].Source
		path = append(path, parent)
		cur = parent
	}
}
