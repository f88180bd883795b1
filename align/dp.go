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

package align

import (
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/errs"
)

// negInf is used as the "unreachable" sentinel for DP cells outside a
// row's band. It is not math.MinInt to leave headroom for additions
// without overflow.
const negInf = -(1 << 30)

// matrix is which of the three DP layers a traceback step came from.
type matrix int8

const (
	matM matrix = iota
	matIx
	matIy
)

// dpRow holds one reference row's three DP layers, windowed to the row's
// band so memory stays proportional to band width rather than full query
// length.
type dpRow struct {
	lo, hi int // inclusive column window [lo, hi]
	m, ix, iy []int
}

func newDPRow(lo, hi int) dpRow {
	n := hi - lo + 1
	r := dpRow{lo: lo, hi: hi, m: make([]int, n), ix: make([]int, n), iy: make([]int, n)}
	for i := range r.m {
		r.m[i], r.ix[i], r.iy[i] = negInf, negInf, negInf
	}
	return r
}

func (r *dpRow) has(j int) bool { return j >= r.lo && j <= r.hi }
func (r *dpRow) M(j int) int {
	if !r.has(j) {
		return negInf
	}
	return r.m[j-r.lo]
}
func (r *dpRow) Ix(j int) int {
	if !r.has(j) {
		return negInf
	}
	return r.ix[j-r.lo]
}
func (r *dpRow) Iy(j int) int {
	if !r.has(j) {
		return negInf
	}
	return r.iy[j-r.lo]
}

// Result is the output of the banded DP: the aligned pair and its score.
type Result struct {
	QryAln, RefAln []alphabet.Nuc
	Score          int
}

// traceStep records, for one cell, which matrix produced the best value so
// the traceback can walk backward without recomputation.
type traceStep struct {
	from matrix
}

// Run executes the three-matrix banded affine-gap DP of spec §4.1 over
// the given band and returns the traced-back alignment. refSeq/qrySeq are
// 0-indexed, unaligned nucleotide sequences; gapOpen is indexed by DP row
// (row i, which consumes reference position i-1, opens gaps at the cost
// gapOpen[i]).
func Run(refSeq, qrySeq []alphabet.Nuc, band Band, gapOpen GapOpenVector, params Params) (*Result, error) {
	refLen, qryLen := len(refSeq), len(qrySeq)

	rows := make([]dpRow, refLen+1)
	traceM := make([][]traceStep, refLen+1)
	traceIx := make([][]traceStep, refLen+1)
	traceIy := make([][]traceStep, refLen+1)

	scoreParams := alphabet.NucScoreParams{ScoreMatch: params.ScoreMatch, PenaltyMismatch: params.PenaltyMismatch}

	for i := 0; i <= refLen; i++ {
		stripe := band[i]
		lo, hi := stripe.QryLow, stripe.QryHigh
		if lo < 0 {
			lo = 0
		}
		if lo > qryLen {
			lo = qryLen
		}
		if hi > qryLen {
			hi = qryLen
		}
		if hi < lo {
			hi = lo
		}
		rows[i] = newDPRow(lo, hi)
		traceM[i] = make([]traceStep, hi-lo+1)
		traceIx[i] = make([]traceStep, hi-lo+1)
		traceIy[i] = make([]traceStep, hi-lo+1)

		gapOpenI := params.PenaltyGapOpen
		if i < len(gapOpen) {
			gapOpenI = gapOpen[i]
		}

		for j := lo; j <= hi; j++ {
			idx := j - lo

			if i == 0 && j == 0 {
				rows[i].m[idx] = 0
				continue
			}

			// M[i,j]
			if i > 0 && j > 0 {
				prevRow := &rows[i-1]
				best, from := negInf, matM
				if v := prevRow.M(j - 1); v > best {
					best, from = v, matM
				}
				if v := prevRow.Ix(j - 1); v > best {
					best, from = v, matIx
				}
				if v := prevRow.Iy(j - 1); v > best {
					best, from = v, matIy
				}
				if best > negInf {
					sc := alphabet.NucScore(refSeq[i-1], qrySeq[j-1], scoreParams)
					rows[i].m[idx] = best + sc
					traceM[i][idx] = traceStep{from: from}
				}
			}

			// Ix[i,j]: gap in query (reference consumed, query does not advance)
			if i > 0 {
				prevRow := &rows[i-1]
				openFrom := prevRow.M(j) - gapOpenI
				extendFrom := prevRow.Ix(j) - params.PenaltyGapExtend
				if openFrom >= extendFrom {
					if openFrom > negInf {
						rows[i].ix[idx] = openFrom
						traceIx[i][idx] = traceStep{from: matM}
					}
				} else {
					if extendFrom > negInf {
						rows[i].ix[idx] = extendFrom
						traceIx[i][idx] = traceStep{from: matIx}
					}
				}
			}

			// Iy[i,j]: gap in reference (query consumed, reference does not advance)
			if j > 0 {
				openFrom := rows[i].M(j-1) - gapOpenI
				extendFrom := rows[i].Iy(j-1) - params.PenaltyGapExtend
				if openFrom >= extendFrom {
					if openFrom > negInf {
						rows[i].iy[idx] = openFrom
						traceIy[i][idx] = traceStep{from: matM}
					}
				} else {
					if extendFrom > negInf {
						rows[i].iy[idx] = extendFrom
						traceIy[i][idx] = traceStep{from: matIy}
					}
				}
			}
		}
	}

	bestScore, bestI, bestJ, bestMat := negInf, -1, -1, matM
	consider := func(i, j int, m matrix, v int) {
		if v > bestScore {
			bestScore, bestI, bestJ, bestMat = v, i, j, m
		}
	}
	if refLen >= 0 && rows[refLen].lo <= rows[refLen].hi {
		for j := rows[refLen].lo; j <= rows[refLen].hi; j++ {
			consider(refLen, j, matM, rows[refLen].M(j))
			consider(refLen, j, matIx, rows[refLen].Ix(j))
			consider(refLen, j, matIy, rows[refLen].Iy(j))
		}
	}
	for i := 0; i <= refLen; i++ {
		if rows[i].has(qryLen) {
			consider(i, qryLen, matM, rows[i].M(qryLen))
			consider(i, qryLen, matIx, rows[i].Ix(qryLen))
			consider(i, qryLen, matIy, rows[i].Iy(qryLen))
		}
	}

	if bestI < 0 || bestScore <= negInf {
		return nil, errs.ErrAlignmentNoScore
	}

	qryAln, refAln := tracebackAlign(refSeq, qrySeq, rows, traceM, traceIx, traceIy, bestI, bestJ, bestMat)

	return &Result{QryAln: qryAln, RefAln: refAln, Score: bestScore}, nil
}

func tracebackAlign(refSeq, qrySeq []alphabet.Nuc, rows []dpRow, traceM, traceIx, traceIy [][]traceStep, i, j int, mat matrix) ([]alphabet.Nuc, []alphabet.Nuc) {
	var qryAln, refAln []alphabet.Nuc

	for i > 0 || j > 0 {
		switch mat {
		case matM:
			row := &rows[i]
			idx := j - row.lo
			qryAln = append(qryAln, qrySeq[j-1])
			refAln = append(refAln, refSeq[i-1])
			mat = traceM[i][idx].from
			i--
			j--
		case matIx:
			row := &rows[i]
			idx := j - row.lo
			qryAln = append(qryAln, alphabet.NucGap)
			refAln = append(refAln, refSeq[i-1])
			mat = traceIx[i][idx].from
			i--
		case matIy:
			row := &rows[i]
			idx := j - row.lo
			qryAln = append(qryAln, qrySeq[j-1])
			refAln = append(refAln, alphabet.NucGap)
			mat = traceIy[i][idx].from
			j--
		}
	}

	reverseNucs(qryAln)
	reverseNucs(refAln)
	return qryAln, refAln
}

func reverseNucs(s []alphabet.Nuc) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
