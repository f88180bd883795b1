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

// Package alphabet provides the nucleotide and amino-acid sum types shared
// by every other package: enums with gap/unknown/ambiguity predicates, a
// scoring-matrix lookup for the aligner, and string codecs.
package alphabet

import (
	"fmt"

	"github.com/biostrand/cladealign/errs"
)

// Nuc is an IUPAC nucleotide code, represented as a fixed-width byte enum so
// that switches over it can be exhaustive.
type Nuc byte

const (
	NucA Nuc = iota
	NucC
	NucG
	NucT
	NucU
	NucW
	NucY
	NucM
	NucH
	NucK
	NucR
	NucD
	NucS
	NucB
	NucV
	NucN
	NucGap
)

var nucToChar = [...]byte{
	NucA: 'A', NucC: 'C', NucG: 'G', NucT: 'T', NucU: 'U',
	NucW: 'W', NucY: 'Y', NucM: 'M', NucH: 'H', NucK: 'K',
	NucR: 'R', NucD: 'D', NucS: 'S', NucB: 'B', NucV: 'V',
	NucN: 'N', NucGap: '-',
}

var charToNuc = func() map[byte]Nuc {
	m := make(map[byte]Nuc, len(nucToChar))
	for nuc, ch := range nucToChar {
		m[ch] = Nuc(nuc)
	}
	return m
}()

// String returns the single-character IUPAC representation of the
// nucleotide.
func (n Nuc) String() string {
	if int(n) >= len(nucToChar) {
		return "?"
	}
	return string(nucToChar[n])
}

// NucFromByte parses a single IUPAC nucleotide character.
func NucFromByte(c byte) (Nuc, error) {
	n, ok := charToNuc[upper(c)]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid IUPAC nucleotide character", errs.ErrUnknownNucleotide, c)
	}
	return n, nil
}

// ToNucSeq parses a nucleotide string into a letter slice.
func ToNucSeq(s string) ([]Nuc, error) {
	seq := make([]Nuc, len(s))
	for i := 0; i < len(s); i++ {
		n, err := NucFromByte(s[i])
		if err != nil {
			return nil, fmt.Errorf("at position %d: %w", i, err)
		}
		seq[i] = n
	}
	return seq, nil
}

// FromNucSeq renders a letter slice back into its string representation.
func FromNucSeq(seq []Nuc) string {
	buf := make([]byte, len(seq))
	for i, n := range seq {
		if int(n) < len(nucToChar) {
			buf[i] = nucToChar[n]
		} else {
			buf[i] = '?'
		}
	}
	return string(buf)
}

// IsGap reports whether the nucleotide is an alignment gap.
func (n Nuc) IsGap() bool { return n == NucGap }

// IsACGT reports whether the nucleotide is one of the four unambiguous
// bases.
func (n Nuc) IsACGT() bool {
	return n == NucA || n == NucC || n == NucG || n == NucT
}

// IsUnknown reports whether the nucleotide is the fully-ambiguous "N".
func (n Nuc) IsUnknown() bool { return n == NucN }

// IsAmbiguous reports whether the nucleotide is an IUPAC ambiguity code
// other than N and Gap (i.e. it represents more than one, but not all,
// possible bases).
func (n Nuc) IsAmbiguous() bool {
	switch n {
	case NucW, NucY, NucM, NucH, NucK, NucR, NucD, NucS, NucB, NucV:
		return true
	default:
		return false
	}
}

// complements maps each nucleotide to its Watson-Crick (or IUPAC ambiguity)
// complement.
var complements = [...]Nuc{
	NucA: NucT, NucC: NucG, NucG: NucC, NucT: NucA, NucU: NucA,
	NucW: NucW, NucY: NucR, NucM: NucK, NucH: NucD, NucK: NucM,
	NucR: NucY, NucD: NucH, NucS: NucS, NucB: NucV, NucV: NucB,
	NucN: NucN, NucGap: NucGap,
}

// Complement returns the complementary base.
func (n Nuc) Complement() Nuc {
	if int(n) >= len(complements) {
		return NucN
	}
	return complements[n]
}

// ReverseComplement returns the reverse complement of a nucleotide
// sequence, leaving the input untouched.
func ReverseComplement(seq []Nuc) []Nuc {
	out := make([]Nuc, len(seq))
	for i, n := range seq {
		out[len(seq)-1-i] = n.Complement()
	}
	return out
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
