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
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAuspiceTreeReaderDecompressesGzip(t *testing.T) {
	doc := []byte(`{
		"tree": {
			"name": "root",
			"branch_attrs": {"mutations": {}},
			"node_attrs": {"div": 0, "clade_membership": {"value": "19A"}},
			"children": [
				{
					"name": "child1",
					"branch_attrs": {"mutations": {"nuc": ["C241T"]}},
					"node_attrs": {"div": 1, "clade_membership": {"value": "20A"}}
				}
			]
		}
	}`)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(doc)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	tree, err := ParseAuspiceTreeReader(&buf)
	require.NoError(t, err)
	require.Equal(t, "root", tree.Tree.Name)
	require.Len(t, tree.Tree.Children, 1)
	require.Equal(t, "20A", tree.Tree.Children[0].Clade)
}

func TestParseAuspiceTreeReaderAcceptsUncompressedInput(t *testing.T) {
	doc := bytes.NewReader([]byte(`{
		"tree": {
			"name": "root",
			"branch_attrs": {"mutations": {}},
			"node_attrs": {"div": 0, "clade_membership": {"value": "root"}}
		}
	}`))

	tree, err := ParseAuspiceTreeReader(doc)
	require.NoError(t, err)
	require.Equal(t, "root", tree.Tree.Name)
}

func TestParseAuspiceTreeReaderRejectsInvalidDocument(t *testing.T) {
	_, err := ParseAuspiceTreeReader(bytes.NewReader([]byte(`{}`)))
	require.Error(t, err)
}
