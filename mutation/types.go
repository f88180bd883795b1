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

// Package mutation catalogues nucleotide and amino-acid mutations from a
// stripped pairwise alignment, groups adjacent changes, computes
// nucleotide composition, and reports PCR primer changes (spec §4.4).
package mutation

import (
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
)

// NucSub is a nucleotide substitution at a reference position.
type NucSub struct {
	Pos    coord.RefNucPosition
	RefNuc alphabet.Nuc
	QryNuc alphabet.Nuc
}

// IsDel reports whether this substitution is in fact a deletion (query
// letter is a gap).
func (s NucSub) IsDel() bool { return s.QryNuc.IsGap() }

// NucDel is a single deleted reference position, before adjacency grouping.
type NucDel struct {
	Pos    coord.RefNucPosition
	RefNuc alphabet.Nuc
}

// NucDelRange is a run of adjacent deleted positions.
type NucDelRange struct {
	Range coord.RefNucRange
}

// NucRange is a run of adjacent positions sharing the same non-ACGT letter
// (used for both the "missing" (N) and "non-ACGTN" (other ambiguity)
// categories).
type NucRange struct {
	Range  coord.RefNucRange
	Letter alphabet.Nuc
}

// AaSub is an amino-acid substitution within one CDS.
type AaSub struct {
	CdsName string
	Pos     coord.RefAaPosition
	RefAa   alphabet.Aa
	QryAa   alphabet.Aa
}

// AaDel is an amino-acid deletion (query codon is Gap) within one CDS.
type AaDel struct {
	CdsName string
	Pos     coord.RefAaPosition
	RefAa   alphabet.Aa
}

// AaChangesGroup bundles adjacent amino-acid changes in one CDS together
// with the nucleotide-level changes that fall within any of the group's
// codons (spec §4.4).
type AaChangesGroup struct {
	CdsName      string
	Range        coord.RefAaRange
	Subs         []AaSub
	Dels         []AaDel
	NucSubs      []NucSub
	NucDels      []NucDel
	NucDelRanges []NucDelRange
}

// NucComposition counts how many times each nucleotide letter occurs in a
// sequence.
type NucComposition map[alphabet.Nuc]int
