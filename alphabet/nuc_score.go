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

package alphabet

// baseSet is a 4-bit mask over {A, C, G, T} used to compute IUPAC overlap
// between ambiguity codes without an explicit lookup table per pair.
type baseSet byte

const (
	baseA baseSet = 1 << iota
	baseC
	baseG
	baseT
)

var nucBaseSets = [...]baseSet{
	NucA: baseA, NucC: baseC, NucG: baseG, NucT: baseT, NucU: baseT,
	NucW: baseA | baseT,
	NucY: baseC | baseT,
	NucM: baseA | baseC,
	NucH: baseA | baseC | baseT,
	NucK: baseG | baseT,
	NucR: baseA | baseG,
	NucD: baseA | baseG | baseT,
	NucS: baseC | baseG,
	NucB: baseC | baseG | baseT,
	NucV: baseA | baseC | baseG,
	NucN: baseA | baseC | baseG | baseT,
	NucGap: 0,
}

func (n Nuc) baseSet() baseSet {
	if int(n) >= len(nucBaseSets) {
		return 0
	}
	return nucBaseSets[n]
}

func popcount4(b baseSet) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// NucScoreParams carries the pairwise scoring constants consumed by
// NucScore; these mirror the AlignParams fields of the same name (spec §6)
// but are kept separate so the alphabet package has no dependency on the
// aligner's parameter struct.
type NucScoreParams struct {
	ScoreMatch       int
	PenaltyMismatch  int
}

// NucScore computes the IUPAC-aware pairwise match/mismatch score for two
// nucleotides, per spec §4.1: an exact ACGT match scores ScoreMatch; an
// unambiguous mismatch scores -PenaltyMismatch; any pair involving an
// ambiguity code that shares at least one possible base scores
// proportionally to the fraction of possible bases the two codes share (a
// partial, non-negative score), while a pair sharing no base scores
// -PenaltyMismatch like an unambiguous mismatch.
func NucScore(a, b Nuc, params NucScoreParams) int {
	if a.IsGap() || b.IsGap() {
		return 0
	}
	if a.IsACGT() && b.IsACGT() {
		if a == b {
			return params.ScoreMatch
		}
		return -params.PenaltyMismatch
	}

	as, bs := a.baseSet(), b.baseSet()
	overlap := popcount4(as & bs)
	if overlap == 0 {
		return -params.PenaltyMismatch
	}

	union := popcount4(as | bs)
	// Fraction of the union covered by the overlap, scaled to ScoreMatch;
	// a perfectly ambiguous pair (identical sets) scores ScoreMatch.
	return (params.ScoreMatch * overlap) / union
}

// IsMatch reports whether two IUPAC nucleotide codes can represent the same
// underlying base, i.e. their possible-base sets overlap. Used to decide
// whether an ambiguity code already present in a primer absorbs a
// substitution rather than breaking the primer's binding.
func IsMatch(a, b Nuc) bool {
	return popcount4(a.baseSet()&b.baseSet()) > 0
}
