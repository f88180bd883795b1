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

// Package treegraph implements a small generic arena graph used to hold the
// reference tree: nodes and edges live in flat slices and refer to each
// other by integer key rather than by pointer, so the whole graph can be
// built once from an Auspice JSON tree and then walked or randomly accessed
// without further allocation.
package treegraph

import (
	"fmt"

	"github.com/biostrand/cladealign/errs"
)

// NodeKey indexes a Node within a Graph's node arena.
type NodeKey int

// EdgeKey indexes an Edge within a Graph's edge arena.
type EdgeKey int

// Node holds a payload N plus the keys of its inbound and outbound edges.
type Node[N any] struct {
	key      NodeKey
	Payload  N
	inbound  []EdgeKey
	outbound []EdgeKey
}

func (n *Node[N]) Key() NodeKey { return n.key }

// Inbound returns the keys of edges that point at this node.
func (n *Node[N]) Inbound() []EdgeKey { return n.inbound }

// Outbound returns the keys of edges that leave this node.
func (n *Node[N]) Outbound() []EdgeKey { return n.outbound }

func (n *Node[N]) IsRoot() bool { return len(n.inbound) == 0 }

func (n *Node[N]) IsLeaf() bool { return len(n.outbound) == 0 }

// Edge connects a source node to a target node and carries payload E.
type Edge[E any] struct {
	key     EdgeKey
	Source  NodeKey
	Target  NodeKey
	Payload E
}

func (e *Edge[E]) Key() EdgeKey { return e.key }

// Graph is an arena of Node[N] and Edge[E] values. Zero value is not usable;
// construct with New.
type Graph[N any, E any] struct {
	nodes []Node[N]
	edges []Edge[E]
	built bool
}

// New returns an empty graph ready to accept nodes and edges via AddNode and
// AddEdge. Call Build once construction is complete to validate the
// single-root/acyclic/reachable invariants.
func New[N any, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// AddNode appends a new node carrying payload and returns its key.
func (g *Graph[N, E]) AddNode(payload N) NodeKey {
	key := NodeKey(len(g.nodes))
	g.nodes = append(g.nodes, Node[N]{key: key, Payload: payload})
	return key
}

// AddEdge appends a new edge from source to target carrying payload, and
// registers it in both endpoints' edge lists.
func (g *Graph[N, E]) AddEdge(source, target NodeKey, payload E) (EdgeKey, error) {
	if !g.validKey(source) || !g.validKey(target) {
		return 0, fmt.Errorf("%w: edge references key outside node arena", errs.ErrNodeNotFound)
	}
	key := EdgeKey(len(g.edges))
	g.edges = append(g.edges, Edge[E]{key: key, Source: source, Target: target, Payload: payload})
	g.nodes[source].outbound = append(g.nodes[source].outbound, key)
	g.nodes[target].inbound = append(g.nodes[target].inbound, key)
	return key, nil
}

func (g *Graph[N, E]) validKey(k NodeKey) bool {
	return int(k) >= 0 && int(k) < len(g.nodes)
}

// GetNode returns the node stored under key.
func (g *Graph[N, E]) GetNode(key NodeKey) (*Node[N], error) {
	if !g.validKey(key) {
		return nil, fmt.Errorf("%w: key %d", errs.ErrNodeNotFound, key)
	}
	return &g.nodes[key], nil
}

// GetEdge returns the edge stored under key.
func (g *Graph[N, E]) GetEdge(key EdgeKey) (*Edge[E], error) {
	if int(key) < 0 || int(key) >= len(g.edges) {
		return nil, fmt.Errorf("%w: edge key %d", errs.ErrNodeNotFound, key)
	}
	return &g.edges[key], nil
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// IterNodes returns all nodes in arena (insertion) order.
func (g *Graph[N, E]) IterNodes() []*Node[N] {
	out := make([]*Node[N], len(g.nodes))
	for i := range g.nodes {
		out[i] = &g.nodes[i]
	}
	return out
}

// RootKeys returns the keys of every node with no inbound edges.
func (g *Graph[N, E]) RootKeys() []NodeKey {
	var roots []NodeKey
	for i := range g.nodes {
		if g.nodes[i].IsRoot() {
			roots = append(roots, g.nodes[i].key)
		}
	}
	return roots
}

// Build validates the graph's structural invariants: exactly one root, no
// cycles, and every node reachable from that root. It returns the same
// graph so construction can be chained as g, err := New[N, E]()....Build().
func (g *Graph[N, E]) Build() (*Graph[N, E], error) {
	roots := g.RootKeys()
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one root, found %d", errs.ErrTreeInvalid, len(roots))
	}

	visited := make([]bool, len(g.nodes))
	onStack := make([]bool, len(g.nodes))
	var visit func(NodeKey) error
	visit = func(k NodeKey) error {
		if onStack[k] {
			return fmt.Errorf("%w: cycle detected at node %d", errs.ErrTreeInvalid, k)
		}
		if visited[k] {
			return nil
		}
		visited[k] = true
		onStack[k] = true
		for _, ek := range g.nodes[k].outbound {
			if err := visit(g.edges[ek].Target); err != nil {
				return err
			}
		}
		onStack[k] = false
		return nil
	}
	if err := visit(roots[0]); err != nil {
		return nil, err
	}

	for i := range g.nodes {
		if !visited[i] {
			return nil, fmt.Errorf("%w: node %d is not reachable from the root", errs.ErrTreeInvalid, i)
		}
	}

	g.built = true
	return g, nil
}
