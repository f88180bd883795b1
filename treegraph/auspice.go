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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/compress"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/errs"
)

// knownNodeAttrs are the well-known Auspice node_attrs keys that are parsed
// into dedicated TreeNode fields rather than CladeNodeAttrs.
var knownNodeAttrs = map[string]bool{
	"div":              true,
	"clade_membership": true,
	"placement_bias":   true,
}

// auspiceValueAttr is the common {"value": ..., ...} shape Auspice uses for
// every categorical node attribute.
type auspiceValueAttr struct {
	Value string `json:"value"`
}

// AuspiceTreeNode mirrors the subset of the Auspice v2 JSON tree schema this
// module consumes: a name, the mutations on the branch leading to this node,
// a handful of well-known node attributes, and an open set of custom
// clade-defining attributes alongside them.
type AuspiceTreeNode struct {
	Name         string
	Mutations    map[string][]string
	Divergence   float64
	Clade        string
	PlacementBias float64
	HasPlacementBias bool
	CladeNodeAttrs map[string]string
	Children     []*AuspiceTreeNode
}

func (n *AuspiceTreeNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string `json:"name"`
		BranchAttrs struct {
			Mutations map[string][]string `json:"mutations"`
		} `json:"branch_attrs"`
		NodeAttrs map[string]json.RawMessage `json:"node_attrs"`
		Children  []*AuspiceTreeNode         `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.Name = raw.Name
	n.Mutations = raw.BranchAttrs.Mutations
	n.Children = raw.Children
	n.CladeNodeAttrs = make(map[string]string)

	if div, ok := raw.NodeAttrs["div"]; ok {
		if err := json.Unmarshal(div, &n.Divergence); err != nil {
			return fmt.Errorf("node %q: node_attrs.div: %w", n.Name, err)
		}
	}
	if clade, ok := raw.NodeAttrs["clade_membership"]; ok {
		var attr auspiceValueAttr
		if err := json.Unmarshal(clade, &attr); err != nil {
			return fmt.Errorf("node %q: node_attrs.clade_membership: %w", n.Name, err)
		}
		n.Clade = attr.Value
	}
	if bias, ok := raw.NodeAttrs["placement_bias"]; ok {
		var attr auspiceValueAttr
		if err := json.Unmarshal(bias, &attr); err == nil {
			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				n.PlacementBias = v
				n.HasPlacementBias = true
			}
		}
	}
	for key, raw := range raw.NodeAttrs {
		if knownNodeAttrs[key] {
			continue
		}
		var attr auspiceValueAttr
		if err := json.Unmarshal(raw, &attr); err == nil && attr.Value != "" {
			n.CladeNodeAttrs[key] = attr.Value
		}
	}
	return nil
}

// AuspiceTree is the root document's recursive node tree; any meta block
// in the document is ignored.
type AuspiceTree struct {
	Tree *AuspiceTreeNode `json:"tree"`
}

// ParseAuspiceTree decodes an Auspice v2 JSON tree document.
func ParseAuspiceTree(data []byte) (*AuspiceTree, error) {
	var t AuspiceTree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrTreeInvalid, err)
	}
	if t.Tree == nil {
		return nil, fmt.Errorf("%w: document has no root tree node", errs.ErrTreeInvalid)
	}
	return &t, nil
}

// ParseAuspiceTreeReader reads and decodes an Auspice v2 JSON tree document
// from r, transparently decompressing it first if it is gzip, zstd, xz,
// lz4, zlib, or bzip2 compressed. Nextclade dataset trees are routinely
// distributed pre-compressed (e.g. tree.json.gz), so callers loading a
// dataset tree from disk or a download stream can hand this function the
// raw bytes without sniffing the format themselves.
func ParseAuspiceTreeReader(r io.Reader) (*AuspiceTree, error) {
	dr, err := compress.Decompress(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrTreeInvalid, err)
	}
	defer dr.Close()

	data, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrTreeInvalid, err)
	}
	return ParseAuspiceTree(data)
}

// NucMutation is a single parsed nucleotide mutation on a branch, in the
// <ref><1-based pos><qry> Auspice notation.
type NucMutation struct {
	Pos coord.RefNucPosition
	Ref alphabet.Nuc
	Qry alphabet.Nuc
}

// AaMutation is the amino-acid counterpart of NucMutation, scoped to a CDS.
type AaMutation struct {
	CdsName string
	Pos     coord.RefAaPosition
	Ref     alphabet.Aa
	Qry     alphabet.Aa
}

// parseMutationString parses the Auspice "<ref><1-based-pos><qry>" notation
// shared by nucleotide and amino-acid mutation strings, e.g. "A23403G" or
// "D614G". The middle run of digits is the 1-based position; it is returned
// 0-based.
func parseMutationString(s string) (pos int, ref, qry byte, err error) {
	if len(s) < 3 {
		return 0, 0, 0, fmt.Errorf("%w: mutation string %q is too short", errs.ErrTreeInvalid, s)
	}
	ref = s[0]
	qry = s[len(s)-1]
	digits := s[1 : len(s)-1]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: mutation string %q has no numeric position: %s", errs.ErrTreeInvalid, s, err)
	}
	return n - 1, ref, qry, nil
}

func parseNucMutations(strs []string) ([]NucMutation, error) {
	muts := make([]NucMutation, 0, len(strs))
	for _, s := range strs {
		pos, refCh, qryCh, err := parseMutationString(s)
		if err != nil {
			return nil, err
		}
		ref, err := alphabet.NucFromByte(refCh)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q: %s", errs.ErrTreeInvalid, s, err)
		}
		qry, err := alphabet.NucFromByte(qryCh)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q: %s", errs.ErrTreeInvalid, s, err)
		}
		muts = append(muts, NucMutation{Pos: coord.NewPosition[coord.Reference, coord.Nuc](pos), Ref: ref, Qry: qry})
	}
	return muts, nil
}

func parseAaMutations(cdsName string, strs []string) ([]AaMutation, error) {
	muts := make([]AaMutation, 0, len(strs))
	for _, s := range strs {
		pos, refCh, qryCh, err := parseMutationString(s)
		if err != nil {
			return nil, err
		}
		ref, err := alphabet.AaFromByte(refCh)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q on CDS %s: %s", errs.ErrTreeInvalid, s, cdsName, err)
		}
		qry, err := alphabet.AaFromByte(qryCh)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q on CDS %s: %s", errs.ErrTreeInvalid, s, cdsName, err)
		}
		muts = append(muts, AaMutation{CdsName: cdsName, Pos: coord.NewPosition[coord.Reference, coord.Aa](pos), Ref: ref, Qry: qry})
	}
	return muts, nil
}
