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

import "github.com/biostrand/cladealign/alphabet"

// AaIns is an insertion of query amino acids relative to the reference
// peptide.
type AaIns struct {
	CdsName     string
	AaPos       int
	InsertedAas []alphabet.Aa
}

// AaAlignParams carries the (small, codon-unaware) scoring constants for
// protein alignment, per spec §4.3: "smaller bands, codon-unaware
// gap-open".
type AaAlignParams struct {
	ScoreMatch       int
	PenaltyMismatch  int
	PenaltyGapOpen   int
	PenaltyGapExtend int
}

// DefaultAaAlignParams returns the protein-alignment scoring defaults.
func DefaultAaAlignParams() AaAlignParams {
	return AaAlignParams{ScoreMatch: 3, PenaltyMismatch: 1, PenaltyGapOpen: 6, PenaltyGapExtend: 1}
}

// AlignAa produces equal-length ref/query amino-acid alignments via a
// full (unbanded) affine-gap DP: peptides are short enough that, unlike
// the nucleotide aligner, seeding and banding would add complexity
// without a measurable performance benefit.
func AlignAa(ref, qry []alphabet.Aa, params AaAlignParams) (refAln, qryAln []alphabet.Aa) {
	rl, ql := len(ref), len(qry)

	m := make([][]int, rl+1)
	ix := make([][]int, rl+1)
	iy := make([][]int, rl+1)
	for i := range m {
		m[i] = make([]int, ql+1)
		ix[i] = make([]int, ql+1)
		iy[i] = make([]int, ql+1)
	}

	const neg = -(1 << 30)
	for i := 0; i <= rl; i++ {
		for j := 0; j <= ql; j++ {
			if i == 0 && j == 0 {
				continue
			}
			if i > 0 {
				m[i][0], ix[i][0], iy[i][0] = neg, neg, neg
			} else {
				m[0][j], ix[0][j] = neg, neg
			}
		}
	}
	for i := 1; i <= rl; i++ {
		ix[i][0] = -params.PenaltyGapOpen - (i-1)*params.PenaltyGapExtend
	}
	for j := 1; j <= ql; j++ {
		iy[0][j] = -params.PenaltyGapOpen - (j-1)*params.PenaltyGapExtend
	}

	for i := 1; i <= rl; i++ {
		for j := 1; j <= ql; j++ {
			best := max3(m[i-1][j-1], ix[i-1][j-1], iy[i-1][j-1])
			m[i][j] = best + alphabet.AaScore(ref[i-1], qry[j-1], params.ScoreMatch, params.PenaltyMismatch)

			ix[i][j] = max2(m[i-1][j]-params.PenaltyGapOpen, ix[i-1][j]-params.PenaltyGapExtend)
			iy[i][j] = max2(m[i][j-1]-params.PenaltyGapOpen, iy[i][j-1]-params.PenaltyGapExtend)
		}
	}

	i, j := rl, ql
	best, mat := m[i][j], 0
	if ix[i][j] > best {
		best, mat = ix[i][j], 1
	}
	if iy[i][j] > best {
		mat = 2
	}
	_ = best

	for i > 0 || j > 0 {
		switch mat {
		case 0:
			refAln = append(refAln, ref[i-1])
			qryAln = append(qryAln, qry[j-1])
			prev := []int{m[i-1][j-1], ix[i-1][j-1], iy[i-1][j-1]}
			mat = argmax3(prev)
			i, j = i-1, j-1
		case 1:
			refAln = append(refAln, ref[i-1])
			qryAln = append(qryAln, alphabet.AaGap)
			if m[i-1][j]-params.PenaltyGapOpen >= ix[i-1][j]-params.PenaltyGapExtend {
				mat = 0
			}
			i--
		case 2:
			refAln = append(refAln, alphabet.AaGap)
			qryAln = append(qryAln, qry[j-1])
			if m[i][j-1]-params.PenaltyGapOpen >= iy[i][j-1]-params.PenaltyGapExtend {
				mat = 0
			}
			j--
		}
	}

	reverseAas(refAln)
	reverseAas(qryAln)
	return refAln, qryAln
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c int) int { return max2(max2(a, b), c) }

func argmax3(v []int) int {
	best, idx := v[0], 0
	for i := 1; i < len(v); i++ {
		if v[i] > best {
			best, idx = v[i], i
		}
	}
	return idx
}

func reverseAas(s []alphabet.Aa) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
