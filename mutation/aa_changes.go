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

package mutation

import (
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/translate"
)

// FindAaChanges compares a reference and query CDS translation
// position-wise, restricted to the query's alignment_ranges, emitting a
// substitution when the letters differ and the query is not Gap/X, and a
// deletion when the query is Gap (spec §4.4).
func FindAaChanges(cdsName string, refTr, qryTr *translate.CdsTranslation) (subs []AaSub, dels []AaDel) {
	for _, r := range qryTr.AlignmentRanges {
		for p := r.Begin.Int(); p < r.End.Int(); p++ {
			if p >= len(refTr.Seq) || p >= len(qryTr.Seq) {
				continue
			}
			refAa := refTr.Seq[p]
			qryAa := qryTr.Seq[p]
			if refAa == qryAa {
				continue
			}
			pos := coord.NewPosition[coord.Reference, coord.Aa](p)
			if qryAa.IsGap() {
				dels = append(dels, AaDel{CdsName: cdsName, Pos: pos, RefAa: refAa})
			} else if !qryAa.IsUnknown() {
				subs = append(subs, AaSub{CdsName: cdsName, Pos: pos, RefAa: refAa, QryAa: qryAa})
			}
		}
	}
	return subs, dels
}

// aaChange is the union of a sub and a del used only to sort/walk both
// kinds of amino-acid change together by codon position.
type aaChange struct {
	pos int
	sub *AaSub
	del *AaDel
}

// GroupAdjacentAaChanges collapses substitutions and deletions whose codon
// positions differ by exactly one into AaChangesGroup records, and attaches
// the nucleotide-level changes whose position falls in any codon of the
// group as nucleotide context.
func GroupAdjacentAaChanges(cdsName string, subs []AaSub, dels []AaDel, nucSubs []NucSub, nucDels []NucDel, nucDelRanges []NucDelRange) []AaChangesGroup {
	changes := make([]aaChange, 0, len(subs)+len(dels))
	for i := range subs {
		changes = append(changes, aaChange{pos: subs[i].Pos.Int(), sub: &subs[i]})
	}
	for i := range dels {
		changes = append(changes, aaChange{pos: dels[i].Pos.Int(), del: &dels[i]})
	}
	insertionSortAaChanges(changes)

	var groups []AaChangesGroup
	i := 0
	for i < len(changes) {
		start := i
		end := changes[i].pos
		i++
		for i < len(changes) && changes[i].pos == end+1 {
			end = changes[i].pos
			i++
		}

		group := AaChangesGroup{
			CdsName: cdsName,
			Range:   coord.NewRange[coord.Reference, coord.Aa](changes[start].pos, end+1),
		}
		for _, c := range changes[start:i] {
			if c.sub != nil {
				group.Subs = append(group.Subs, *c.sub)
			}
			if c.del != nil {
				group.Dels = append(group.Dels, *c.del)
			}
		}
		group.NucSubs = nucSubsInCodonRange(nucSubs, group.Range)
		group.NucDels = nucDelsInCodonRange(nucDels, group.Range)
		group.NucDelRanges = nucDelRangesInCodonRange(nucDelRanges, group.Range)

		groups = append(groups, group)
	}
	return groups
}

func insertionSortAaChanges(changes []aaChange) {
	for i := 1; i < len(changes); i++ {
		for j := i; j > 0 && changes[j].pos < changes[j-1].pos; j-- {
			changes[j], changes[j-1] = changes[j-1], changes[j]
		}
	}
}

// codonRefRange converts an amino-acid (codon) range to the nucleotide
// reference range it spans.
func codonRefRange(aa coord.RefAaRange) coord.RefNucRange {
	return coord.NewRange[coord.Reference, coord.Nuc](aa.Begin.Int()*3, aa.End.Int()*3)
}

func nucSubsInCodonRange(subs []NucSub, aaRange coord.RefAaRange) []NucSub {
	nucRange := codonRefRange(aaRange)
	var out []NucSub
	for _, s := range subs {
		if nucRange.Contains(s.Pos) {
			out = append(out, s)
		}
	}
	return out
}

func nucDelsInCodonRange(dels []NucDel, aaRange coord.RefAaRange) []NucDel {
	nucRange := codonRefRange(aaRange)
	var out []NucDel
	for _, d := range dels {
		if nucRange.Contains(d.Pos) {
			out = append(out, d)
		}
	}
	return out
}

func nucDelRangesInCodonRange(ranges []NucDelRange, aaRange coord.RefAaRange) []NucDelRange {
	nucRange := codonRefRange(aaRange)
	var out []NucDelRange
	for _, r := range ranges {
		if nucRange.Intersects(r.Range) {
			out = append(out, r)
		}
	}
	return out
}
