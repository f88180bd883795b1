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

	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
)

// TreeNode is the payload carried by every node of a RefTree. Substitutions
// and AaSubstitutions are the node's precomputed genotype relative to the
// reference: the set of positions at which this node (and therefore every
// descendant that does not itself revert it) differs from the reference
// sequence.
type TreeNode struct {
	Name            string
	Divergence      float64
	Clade           string
	PlacementBias   float64
	CladeNodeAttrs  map[string]string
	Substitutions   map[coord.RefNucPosition]alphabet.Nuc
	AaSubstitutions map[string]map[coord.RefAaPosition]alphabet.Aa
}

// TreeEdge is the payload carried by every edge of a RefTree: the parsed
// branch mutations that separate a node from its parent.
type TreeEdge struct {
	NucMutations []NucMutation
	AaMutations  map[string][]AaMutation
}

// RefTree is the reference tree graph: an arena of TreeNode/TreeEdge
// payloads with each node's ancestral mutation maps precomputed.
type RefTree = Graph[TreeNode, TreeEdge]

// BuildFromAuspice converts a parsed Auspice tree into a RefTree, validating
// the arena's structural invariants and precomputing each node's ancestral
// substitution maps in the same depth-first pass used to build it.
func BuildFromAuspice(tree *AuspiceTree) (*RefTree, error) {
	g := New[TreeNode, TreeEdge]()
	if _, err := convertRecursive(tree.Tree, g, nil); err != nil {
		return nil, err
	}
	built, err := g.Build()
	if err != nil {
		return nil, err
	}
	return built, nil
}

func convertRecursive(node *AuspiceTreeNode, g *RefTree, parent *NodeKey) (NodeKey, error) {
	payload := TreeNode{
		Name:           node.Name,
		Divergence:     node.Divergence,
		Clade:          node.Clade,
		CladeNodeAttrs: node.CladeNodeAttrs,
	}
	if node.HasPlacementBias {
		payload.PlacementBias = node.PlacementBias
	}

	nucMuts, err := parseNucMutations(node.Mutations["nuc"])
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", node.Name, err)
	}

	aaMuts := make(map[string][]AaMutation)
	for gene, strs := range node.Mutations {
		if gene == "nuc" {
			continue
		}
		muts, err := parseAaMutations(gene, strs)
		if err != nil {
			return 0, fmt.Errorf("node %q: %w", node.Name, err)
		}
		if len(muts) > 0 {
			aaMuts[gene] = muts
		}
	}

	if parent == nil {
		payload.Substitutions = map[coord.RefNucPosition]alphabet.Nuc{}
		payload.AaSubstitutions = map[string]map[coord.RefAaPosition]alphabet.Aa{}
	} else {
		parentNode, err := g.GetNode(*parent)
		if err != nil {
			return 0, err
		}
		payload.Substitutions = applyNucMutations(parentNode.Payload.Substitutions, nucMuts)
		payload.AaSubstitutions = applyAaMutations(parentNode.Payload.AaSubstitutions, aaMuts)
	}

	key := g.AddNode(payload)
	if parent != nil {
		if _, err := g.AddEdge(*parent, key, TreeEdge{NucMutations: nucMuts, AaMutations: aaMuts}); err != nil {
			return 0, err
		}
	}

	for _, child := range node.Children {
		if _, err := convertRecursive(child, g, &key); err != nil {
			return 0, err
		}
	}
	return key, nil
}

// applyNucMutations copies parent's substitution map and applies the
// branch's mutations: a sub sets pos -> qry, a reversion to the reference
// letter (qry == ref) removes the entry instead, since the node then once
// again matches the reference at that position.
func applyNucMutations(parent map[coord.RefNucPosition]alphabet.Nuc, muts []NucMutation) map[coord.RefNucPosition]alphabet.Nuc {
	out := make(map[coord.RefNucPosition]alphabet.Nuc, len(parent)+len(muts))
	for k, v := range parent {
		out[k] = v
	}
	for _, m := range muts {
		if m.Qry == m.Ref {
			delete(out, m.Pos)
		} else {
			out[m.Pos] = m.Qry
		}
	}
	return out
}

func applyAaMutations(parent map[string]map[coord.RefAaPosition]alphabet.Aa, muts map[string][]AaMutation) map[string]map[coord.RefAaPosition]alphabet.Aa {
	out := make(map[string]map[coord.RefAaPosition]alphabet.Aa, len(parent))
	for gene, m := range parent {
		cp := make(map[coord.RefAaPosition]alphabet.Aa, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[gene] = cp
	}
	for gene, genemuts := range muts {
		cp, ok := out[gene]
		if !ok {
			cp = make(map[coord.RefAaPosition]alphabet.Aa, len(genemuts))
		}
		for _, m := range genemuts {
			if m.Qry == m.Ref {
				delete(cp, m.Pos)
			} else {
				cp[m.Pos] = m.Qry
			}
		}
		out[gene] = cp
	}
	return out
}
