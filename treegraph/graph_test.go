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
	"testing"

	"github.com/biostrand/cladealign/errs"
	"github.com/stretchr/testify/require"
)

// buildSampleGraph constructs the a/b/c/d/e/f/g tree used by the teacher
// corpus's own DFS-preorder test:
//
//	a -> b, a -> c, c -> d, c -> e, b -> f, b -> g
func buildSampleGraph(t *testing.T) (*Graph[string, string], map[string]NodeKey) {
	t.Helper()
	g := New[string, string]()
	keys := make(map[string]NodeKey)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		keys[name] = g.AddNode(name)
	}
	edges := [][2]string{{"a", "b"}, {"a", "c"}, {"c", "d"}, {"c", "e"}, {"b", "f"}, {"b", "g"}}
	for _, e := range edges {
		_, err := g.AddEdge(keys[e[0]], keys[e[1]], e[0]+"->"+e[1])
		require.NoError(t, err)
	}
	built, err := g.Build()
	require.NoError(t, err)
	return built, keys
}

func TestBuildAcceptsSingleRootAcyclicTree(t *testing.T) {
	g, keys := buildSampleGraph(t)
	require.Equal(t, []NodeKey{keys["a"]}, g.RootKeys())
}

func TestBuildRejectsMultipleRoots(t *testing.T) {
	g := New[string, string]()
	g.AddNode("a")
	g.AddNode("b")
	_, err := g.Build()
	require.ErrorIs(t, err, errs.ErrTreeInvalid)
}

func TestBuildRejectsCycle(t *testing.T) {
	g := New[string, string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	_, err := g.AddEdge(a, b, "a->b")
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, "b->a")
	require.NoError(t, err)
	_, err = g.Build()
	require.ErrorIs(t, err, errs.ErrTreeInvalid)
}

func TestBuildRejectsUnreachableNode(t *testing.T) {
	// a is the sole root; x and y form their own disconnected cycle, so
	// they are unreachable from a even though neither is itself a root.
	g := New[string, string]()
	a := g.AddNode("a")
	x := g.AddNode("x")
	y := g.AddNode("y")
	_, err := g.AddEdge(x, y, "x->y")
	require.NoError(t, err)
	_, err = g.AddEdge(y, x, "y->x")
	require.NoError(t, err)

	_, err = g.Build()
	require.ErrorIs(t, err, errs.ErrTreeInvalid)
	_ = a
}

func TestIterDepthFirstPreorderMatchesTeacherOrder(t *testing.T) {
	g, keys := buildSampleGraph(t)
	order := g.IterDepthFirstPreorder()

	var names []string
	for _, k := range order {
		node, err := g.GetNode(k)
		require.NoError(t, err)
		names = append(names, node.Payload)
	}
	require.Equal(t, []string{"a", "b", "f", "g", "c", "d", "e"}, names)
	_ = keys
}

func TestAncestorsOfWalksToRoot(t *testing.T) {
	g, keys := buildSampleGraph(t)
	ancestors, err := g.AncestorsOf(keys["d"])
	require.NoError(t, err)
	require.Equal(t, []NodeKey{keys["c"], keys["a"]}, ancestors)
}

func TestAncestorsOfRootIsEmpty(t *testing.T) {
	g, keys := buildSampleGraph(t)
	ancestors, err := g.AncestorsOf(keys["a"])
	require.NoError(t, err)
	require.Empty(t, ancestors)
}

func TestAncestorsOfFailsOnAmbiguousAncestry(t *testing.T) {
	g := New[string, string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	_, err := g.AddEdge(a, c, "a->c")
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, "b->c")
	require.NoError(t, err)

	_, err = g.AncestorsOf(c)
	require.ErrorIs(t, err, errs.ErrAmbiguousAncestry)
}
