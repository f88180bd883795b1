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

package compress_test

import (
	"bytes"
	stdgzip "compress/gzip"
	stdzlib "compress/zlib"
	"io"
	"testing"

	"github.com/biostrand/cladealign/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decompress sniffs the magic bytes at the front of the stream, so these
// build fixtures in memory with the standard library's writers rather than
// shelling out to the codecs Compress itself wraps (exercised in
// compress_test.go's round trip instead).

func TestDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := stdgzip.NewWriter(&buf)
	_, err := gw.Write([]byte("Hello, World!\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	dr, err := compress.Decompress(&buf)
	require.NoError(t, err)
	out, err := io.ReadAll(dr)
	require.NoError(t, err)
	require.NoError(t, dr.Close())

	assert.Equal(t, "Hello, World!\n", string(out))
}

func TestDecompressZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := stdzlib.NewWriter(&buf)
	_, err := zw.Write([]byte("Hello, World!\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dr, err := compress.Decompress(&buf)
	require.NoError(t, err)
	out, err := io.ReadAll(dr)
	require.NoError(t, err)
	require.NoError(t, dr.Close())

	assert.Equal(t, "Hello, World!\n", string(out))
}

func TestDecompressPassesThroughUncompressedData(t *testing.T) {
	dr, err := compress.Decompress(bytes.NewReader([]byte("Hello, World!\n")))
	require.NoError(t, err)
	out, err := io.ReadAll(dr)
	require.NoError(t, err)
	require.NoError(t, dr.Close())

	assert.Equal(t, "Hello, World!\n", string(out))
}
