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

	"github.com/biostrand/cladealign/alphabet"
)

// Seed is one confirmed (query, reference) anchor point.
type Seed struct {
	QryPos int
	RefPos int
	Score  int
}

// seedMatch searches ref_seq[startPos:endPos] left to right for the best
// match of kmer, tolerating up to mismatchesAllowed mismatches and
// accepting the first perfect match found, per the original seed_match
// recipe: an early mismatch budget check aborts unpromising offsets before
// scanning the whole k-mer.
func seedMatch(kmer, refSeq []alphabet.Nuc, startPos, endPos, mismatchesAllowed int) (refPos, score int) {
	refLen := len(refSeq)
	kmerLen := len(kmer)

	if endPos > refLen-kmerLen+1 {
		endPos = refLen - kmerLen + 1
	}

	maxScore, maxRefPos := 0, 0
	for rp := startPos; rp < endPos; rp++ {
		tmpScore := 0
		for pos := 0; pos < kmerLen; pos++ {
			if kmer[pos] == refSeq[rp+pos] {
				tmpScore++
			}
			currentMismatches := 1 + pos - tmpScore
			if currentMismatches > mismatchesAllowed {
				break
			}
		}
		if tmpScore > maxScore {
			maxScore = tmpScore
			maxRefPos = rp
			if maxScore == kmerLen {
				break
			}
		}
	}

	return maxRefPos, maxScore
}

// findSeedAnchor picks the starting offset of a seed k-mer within the
// query, shifting forward past leading stretches of N so the k-mer itself
// carries information to match against.
func findSeedAnchor(qry []alphabet.Nuc, want int, seedLength int) int {
	if want+seedLength > len(qry) {
		want = len(qry) - seedLength
	}
	if want < 0 {
		want = 0
	}
	for want+seedLength <= len(qry) {
		allN := true
		for i := 0; i < seedLength; i++ {
			if !qry[want+i].IsUnknown() {
				allN = false
				break
			}
		}
		if !allN {
			break
		}
		want++
	}
	return want
}

// FindSeeds lays out evenly spaced seed k-mers across the query (spaced by
// params.SeedSpacing, at least params.MinSeeds of them), matches each
// against the reference, discards offset outliers versus the median
// (ref-qry) offset, and returns the surviving seeds sorted by query
// position ascending.
func FindSeeds(qry, ref []alphabet.Nuc, params Params) []Seed {
	if len(qry) < params.SeedLength {
		return nil
	}

	nSeeds := params.MinSeeds
	if spaced := len(qry) / params.SeedSpacing; spaced > nSeeds {
		nSeeds = spaced
	}
	if nSeeds < 1 {
		nSeeds = 1
	}

	step := len(qry) / nSeeds
	if step < 1 {
		step = 1
	}

	seeds := make([]Seed, 0, nSeeds)
	for i := 0; i < nSeeds; i++ {
		want := findSeedAnchor(qry, i*step, params.SeedLength)
		if want+params.SeedLength > len(qry) {
			continue
		}
		kmer := qry[want : want+params.SeedLength]
		refPos, score := seedMatch(kmer, ref, 0, len(ref), params.MismatchesAllowed)
		if score < params.SeedLength-params.MismatchesAllowed {
			continue
		}
		seeds = append(seeds, Seed{QryPos: want, RefPos: refPos, Score: score})
	}

	return filterOffsetOutliers(seeds)
}

// filterOffsetOutliers discards seeds whose (ref - qry) diagonal offset is
// more than 50 positions away from the median offset, which removes
// spurious matches to repetitive regions.
func filterOffsetOutliers(seeds []Seed) []Seed {
	if len(seeds) == 0 {
		return seeds
	}

	offsets := make([]int, len(seeds))
	for i, s := range seeds {
		offsets[i] = s.RefPos - s.QryPos
	}
	sorted := append([]int(nil), offsets...)
	sort.Ints(sorted)
	median := sorted[len(sorted)/2]

	const tolerance = 50
	kept := make([]Seed, 0, len(seeds))
	for i, s := range seeds {
		if abs(offsets[i]-median) <= tolerance {
			kept = append(kept, s)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].QryPos < kept[j].QryPos })
	return kept
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MonotoneChain filters seeds into a strictly ascending (qry, ref) chain,
// dropping any seed that would require a negative indel against the
// previous kept seed (spec §4.1: "reject any chain that would require a
// negative indel").
func MonotoneChain(seeds []Seed) []Seed {
	if len(seeds) == 0 {
		return nil
	}
	chain := make([]Seed, 0, len(seeds))
	chain = append(chain, seeds[0])
	for _, s := range seeds[1:] {
		last := chain[len(chain)-1]
		if s.QryPos > last.QryPos && s.RefPos > last.RefPos {
			chain = append(chain, s)
		}
	}
	return chain
}
