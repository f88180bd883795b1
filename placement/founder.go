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

import "github.com/biostrand/cladealign/treegraph"

// FindCladeFounder walks ancestors of start (start itself included) while
// each node's clade attribute equals clade, and returns the last (i.e.
// most distant, closest-to-root) ancestor for which that holds. If start
// itself does not belong to clade, start is returned unchanged.
func FindCladeFounder(tree *treegraph.RefTree, start treegraph.NodeKey, clade string) (treegraph.NodeKey, error) {
	startNode, err := tree.GetNode(start)
	if err != nil {
		return 0, err
	}
	if startNode.Payload.Clade != clade {
		return start, nil
	}

	ancestors, err := tree.AncestorsOf(start)
	if err != nil {
		return 0, err
	}

	founder := start
	for _, key := range ancestors {
		node, err := tree.GetNode(key)
		if err != nil {
			return 0, err
		}
		if node.Payload.Clade != clade {
			break
		}
		founder = key
	}
	return founder, nil
}

// FindCladeNodeAttrFounder is the same search generalized to an arbitrary
// custom clade-node attribute (e.g. a lineage or Pango-style designation)
// instead of the primary clade field.
func FindCladeNodeAttrFounder(tree *treegraph.RefTree, start treegraph.NodeKey, attrKey, attrValue string) (treegraph.NodeKey, error) {
	startNode, err := tree.GetNode(start)
	if err != nil {
		return 0, err
	}
	if startNode.Payload.CladeNodeAttrs[attrKey] != attrValue {
		return start, nil
	}

	ancestors, err := tree.AncestorsOf(start)
	if err != nil {
		return 0, err
	}

	founder := start
	for _, key := range ancestors {
		node, err := tree.GetNode(key)
		if err != nil {
			return 0, err
		}
		if node.Payload.CladeNodeAttrs[attrKey] != attrValue {
			break
		}
		founder = key
	}
	return founder, nil
}
