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
	"sort"

	"github.com/Workiva/go-datastructures/augmentedtree"
	"github.com/biostrand/cladealign/errs"
)

// seedSpan is an augmentedtree.Interval wrapping a seed's query-coordinate
// footprint, used only during clustering to find and collapse seeds whose
// query spans overlap (e.g. two seeds landing in a repetitive region a
// k-mer apart). The runtime per-reference-position band itself is a flat
// Stripe slice, not a tree (see NewBand).
type seedSpan struct {
	seed Seed
	id   uint64
}

func (s *seedSpan) LowAtDimension(uint64) int64  { return int64(s.seed.QryPos) }
func (s *seedSpan) HighAtDimension(uint64) int64 { return int64(s.seed.QryPos + 1) }
func (s *seedSpan) OverlapsAtDimension(with augmentedtree.Interval, dim uint64) bool {
	o, ok := with.(*seedSpan)
	if !ok {
		return true
	}
	return !(o.seed.QryPos >= s.seed.QryPos+1 || s.seed.QryPos >= o.seed.QryPos+1)
}
func (s *seedSpan) ID() uint64 { return s.id }

// dedupeSeedsByQryPos collapses seeds that share the same query position,
// keeping the highest-scoring one, using an interval tree to find the
// cluster of candidates at each position.
func dedupeSeedsByQryPos(seeds []Seed) []Seed {
	tree := augmentedtree.New(1)
	for i, s := range seeds {
		tree.Add(&seedSpan{seed: s, id: uint64(i) + 1})
	}

	seen := make(map[int]bool, len(seeds))
	out := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		if seen[s.QryPos] {
			continue
		}
		hits := tree.Query(&seedSpan{seed: s})
		best := s
		for _, h := range hits {
			span := h.(*seedSpan)
			if span.seed.Score > best.Score {
				best = span.seed
			}
		}
		seen[s.QryPos] = true
		out = append(out, best)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].QryPos < out[j].QryPos })
	return out
}

// Stripe is the inclusive [QryLow, QryHigh] band of query columns
// permitted for a given reference row during the DP.
type Stripe struct {
	QryLow, QryHigh int
}

// Band is a per-reference-position array of Stripes, one entry per
// reference position (length |ref|+1 to include the terminal column).
type Band []Stripe

// NewBand constructs the band from a monotone seed chain following spec
// §4.1: segments between consecutive seeds interpolate linearly with
// excess-bandwidth slack, segments before the first and after the last
// seed use the terminal bandwidth, and widths clamp to the query's
// extent. Returns ErrIndelBudgetExceeded if the total indel budget implied
// by the chain would exceed params.MaxIndel.
func NewBand(chain []Seed, refLen, qryLen int, params Params) (Band, error) {
	if len(chain) == 0 {
		return nil, errs.ErrSeedMatchFailed
	}

	chain = dedupeSeedsByQryPos(chain)

	totalIndel := 0
	for i := 1; i < len(chain); i++ {
		d := chain[i].RefPos - chain[i-1].RefPos - (chain[i].QryPos - chain[i-1].QryPos)
		if d < 0 {
			d = -d
		}
		totalIndel += d
	}
	if totalIndel > params.MaxIndel {
		return nil, errs.ErrIndelBudgetExceeded
	}

	band := make(Band, refLen+1)

	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > qryLen {
			return qryLen
		}
		return v
	}

	first := chain[0]
	for r := 0; r <= first.RefPos && r < len(band); r++ {
		center := first.QryPos - (first.RefPos - r)
		band[r] = Stripe{
			QryLow:  clamp(center - params.TerminalBandwidth),
			QryHigh: clamp(center + params.TerminalBandwidth),
		}
	}

	for i := 0; i < len(chain)-1; i++ {
		a, b := chain[i], chain[i+1]
		refSpan := b.RefPos - a.RefPos
		if refSpan <= 0 {
			continue
		}
		for r := a.RefPos; r <= b.RefPos && r < len(band); r++ {
			t := float64(r-a.RefPos) / float64(refSpan)
			centerQry := float64(a.QryPos) + t*float64(b.QryPos-a.QryPos)
			band[r] = Stripe{
				QryLow:  clamp(int(centerQry) - params.ExcessBandwidth),
				QryHigh: clamp(int(centerQry) + params.ExcessBandwidth),
			}
		}
	}

	last := chain[len(chain)-1]
	for r := last.RefPos; r < len(band); r++ {
		center := last.QryPos + (r - last.RefPos)
		band[r] = Stripe{
			QryLow:  clamp(center - params.TerminalBandwidth),
			QryHigh: clamp(center + params.TerminalBandwidth),
		}
	}

	// Enforce monotonicity of stripe bounds (spec §4.1 invariant (v)): a
	// later reference row's stripe never retreats below an earlier one.
	for r := 1; r < len(band); r++ {
		if band[r].QryLow < band[r-1].QryLow {
			band[r].QryLow = band[r-1].QryLow
		}
		if band[r].QryHigh < band[r-1].QryHigh {
			band[r].QryHigh = band[r-1].QryHigh
		}
	}

	return band, nil
}
