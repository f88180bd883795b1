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

package translate

import (
	"testing"

	"github.com/biostrand/cladealign/alphabet"
	"github.com/stretchr/testify/require"
)

func codon(s string) [3]alphabet.Nuc {
	seq, err := alphabet.ToNucSeq(s)
	if err != nil {
		panic(err)
	}
	return [3]alphabet.Nuc{seq[0], seq[1], seq[2]}
}

func TestTranslateCodonStandardTable(t *testing.T) {
	require.Equal(t, alphabet.AaM, TranslateCodon(codon("ATG")))
	require.Equal(t, alphabet.AaStop, TranslateCodon(codon("TAA")))
	require.Equal(t, alphabet.AaStop, TranslateCodon(codon("TGA")))
	require.Equal(t, alphabet.AaF, TranslateCodon(codon("TTT")))
	require.Equal(t, alphabet.AaL, TranslateCodon(codon("CTA")))
}

func TestTranslateCodonGap(t *testing.T) {
	c := codon("AT-")
	require.Equal(t, alphabet.AaGap, TranslateCodon(c))
}

func TestTranslateCodonAmbiguous(t *testing.T) {
	c := codon("ATN")
	require.Equal(t, alphabet.AaX, TranslateCodon(c))
}

func TestTranslateSeqStopsAtStopByDefault(t *testing.T) {
	nucs, err := alphabet.ToNucSeq("ATGTAAGGG")
	require.NoError(t, err)

	aas := TranslateSeq(nucs, false)
	require.Equal(t, "M*", alphabet.FromAaSeq(aas))
}

func TestTranslateSeqPastStop(t *testing.T) {
	nucs, err := alphabet.ToNucSeq("ATGTAAGGG")
	require.NoError(t, err)

	aas := TranslateSeq(nucs, true)
	require.Equal(t, "M*G", alphabet.FromAaSeq(aas))
}
