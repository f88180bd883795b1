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

// SearchCriterion names a reference node of interest by a clade-node
// attribute key/value pair, e.g. {AttrKey: "pango_lineage", AttrValue:
// "BA.2"}. It mirrors the Auspice "reference nodes" feature: a curated set
// of named ancestors that every query is additionally compared against,
// independent of which node it was nearest-placed to.
type SearchCriterion struct {
	Name      string
	AttrKey   string
	AttrValue string
}

// RelativeNucMutations is the outcome of searching the ancestors of a
// query's placement for a node matching one SearchCriterion.
type RelativeNucMutations struct {
	Criterion SearchCriterion
	Matched   bool
	NodeKey   treegraph.NodeKey
	Mutations PrivateNucMutations
}

// FindRelativeNucMutations walks the ancestor path of start (nearest first,
// start itself included) looking for a node whose CladeNodeAttrs satisfy
// each criterion, and reports the query's private mutations relative to
// the nearest matching ancestor. A criterion with no match on the path
// returns Matched: false and a zero-value Mutations.
func FindRelativeNucMutations(tree *treegraph.RefTree, start treegraph.NodeKey, criteria []SearchCriterion, qrySubs []mutation.NucSub, qryMissing []mutation.NucRange, alignmentRange coord.RefNucRange, labels map[coord.RefNucPosition]bool) ([]RelativeNucMutations, error) {
	path, err := ancestorPathInclusive(tree, start)
	if err != nil {
		return nil, err
	}

	results := make([]RelativeNucMutations, 0, len(criteria))
	for _, crit := range criteria {
		result := RelativeNucMutations{Criterion: crit}
		for _, key := range path {
			node, err := tree.GetNode(key)
			if err != nil {
				return nil, err
			}
			if nodeAttr(&node.Payload, crit.AttrKey) == crit.AttrValue {
				result.Matched = true
				result.NodeKey = key
				result.Mutations = FindPrivateNucMutations(node.Payload.Substitutions, qrySubs, qryMissing, alignmentRange, labels)
				break
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// nodeAttr resolves a clade-node attribute by key, special-casing the
// well-known "clade_membership" key (parsed into its own TreeNode field)
// alongside the arbitrary custom attributes captured in CladeNodeAttrs.
func nodeAttr(node *treegraph.TreeNode, key string) string {
	if key == "clade_membership" {
		return node.Clade
	}
	return node.CladeNodeAttrs[key]
}

// ancestorPathInclusive returns start followed by its ancestors, nearest
// first.
func ancestorPathInclusive(tree *treegraph.RefTree, start treegraph.NodeKey) ([]treegraph.NodeKey, error) {
	ancestors, err := tree.AncestorsOf(start)
	if err != nil {
		return nil, err
	}
	path := make([]treegraph.NodeKey, 0, len(ancestors)+1)
	path = append(path, start)
	path = append(path, ancestors...)
	return path, nil
}
