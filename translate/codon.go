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

// Package translate implements per-CDS extraction, translation to amino
// acids, protein alignment, frame-shift detection, and alignment-range
// computation (spec §4.3).
package translate

import "github.com/biostrand/cladealign/alphabet"

// standardCodonTable maps each of the 64 unambiguous codons to its amino
// acid under the standard genetic code.
var standardCodonTable = map[string]alphabet.Aa{
	"TTT": alphabet.AaF, "TTC": alphabet.AaF, "TTA": alphabet.AaL, "TTG": alphabet.AaL,
	"CTT": alphabet.AaL, "CTC": alphabet.AaL, "CTA": alphabet.AaL, "CTG": alphabet.AaL,
	"ATT": alphabet.AaI, "ATC": alphabet.AaI, "ATA": alphabet.AaI, "ATG": alphabet.AaM,
	"GTT": alphabet.AaV, "GTC": alphabet.AaV, "GTA": alphabet.AaV, "GTG": alphabet.AaV,
	"TCT": alphabet.AaS, "TCC": alphabet.AaS, "TCA": alphabet.AaS, "TCG": alphabet.AaS,
	"CCT": alphabet.AaP, "CCC": alphabet.AaP, "CCA": alphabet.AaP, "CCG": alphabet.AaP,
	"ACT": alphabet.AaT, "ACC": alphabet.AaT, "ACA": alphabet.AaT, "ACG": alphabet.AaT,
	"GCT": alphabet.AaA, "GCC": alphabet.AaA, "GCA": alphabet.AaA, "GCG": alphabet.AaA,
	"TAT": alphabet.AaY, "TAC": alphabet.AaY, "TAA": alphabet.AaStop, "TAG": alphabet.AaStop,
	"CAT": alphabet.AaH, "CAC": alphabet.AaH, "CAA": alphabet.AaQ, "CAG": alphabet.AaQ,
	"AAT": alphabet.AaN, "AAC": alphabet.AaN, "AAA": alphabet.AaK, "AAG": alphabet.AaK,
	"GAT": alphabet.AaD, "GAC": alphabet.AaD, "GAA": alphabet.AaE, "GAG": alphabet.AaE,
	"TGT": alphabet.AaC, "TGC": alphabet.AaC, "TGA": alphabet.AaStop, "TGG": alphabet.AaW,
	"CGT": alphabet.AaR, "CGC": alphabet.AaR, "CGA": alphabet.AaR, "CGG": alphabet.AaR,
	"AGT": alphabet.AaS, "AGC": alphabet.AaS, "AGA": alphabet.AaR, "AGG": alphabet.AaR,
	"GGT": alphabet.AaG, "GGC": alphabet.AaG, "GGA": alphabet.AaG, "GGG": alphabet.AaG,
}

// TranslateCodon maps one codon (3 nucleotides) to its amino acid. A
// triplet containing any gap translates to Gap; one containing an N or
// other ambiguity code (and no gap) translates to the unknown residue X;
// anything else is looked up in the standard genetic code.
func TranslateCodon(codon [3]alphabet.Nuc) alphabet.Aa {
	for _, n := range codon {
		if n.IsGap() {
			return alphabet.AaGap
		}
	}
	for _, n := range codon {
		if !n.IsACGT() {
			return alphabet.AaX
		}
	}
	key := string([]byte{byte(codon[0].String()[0]), byte(codon[1].String()[0]), byte(codon[2].String()[0])})
	if aa, ok := standardCodonTable[key]; ok {
		return aa
	}
	return alphabet.AaX
}

// TranslateSeq translates a nucleotide sequence triplet by triplet. If
// translatePastStop is false, translation stops (truncating the output)
// at the first stop codon encountered; the stop codon itself is still
// emitted.
func TranslateSeq(nucs []alphabet.Nuc, translatePastStop bool) []alphabet.Aa {
	n := len(nucs) / 3
	out := make([]alphabet.Aa, 0, n)
	for i := 0; i < n; i++ {
		codon := [3]alphabet.Nuc{nucs[i*3], nucs[i*3+1], nucs[i*3+2]}
		aa := TranslateCodon(codon)
		out = append(out, aa)
		if aa.IsStop() && !translatePastStop {
			break
		}
	}
	return out
}
