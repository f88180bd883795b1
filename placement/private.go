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

package placement

import (
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/mutation"
)

// Reversion records a position where the nearest node carries a mutation
// but the query's sequenced base matches the reference, i.e. the query
// reverted a mutation the node inherited.
type Reversion struct {
	Pos    coord.RefNucPosition
	NodeAa alphabet.Nuc
}

// PrivateNucMutations is a query's nucleotide mutations not explained by
// the ancestral genotype of the node it was placed against.
type PrivateNucMutations struct {
	PrivateSubs          []mutation.NucSub
	Reversions           []Reversion
	LabeledSubstitutions []mutation.NucSub
}

// FindPrivateNucMutations derives private_subs and reversions against a
// node's ancestral substitution map D, per spec.md §4.6:
//
//	private_subs = { q in Q : D[q.pos] != q.qry (or unset) }
//	reversions   = { (p, D[p]) : p in dom(D), p not in positions(Q),
//	                 p in A, p not in M }
//
// labels, if non-nil, restricts LabeledSubstitutions to private subs whose
// position is present in the map (e.g. a set of diagnostic positions).
func FindPrivateNucMutations(d map[coord.RefNucPosition]alphabet.Nuc, qrySubs []mutation.NucSub, qryMissing []mutation.NucRange, alignmentRange coord.RefNucRange, labels map[coord.RefNucPosition]bool) PrivateNucMutations {
	qryPositions := make(map[coord.RefNucPosition]bool, len(qrySubs))
	for _, q := range qrySubs {
		qryPositions[q.Pos] = true
	}

	var private []mutation.NucSub
	for _, q := range qrySubs {
		if der, ok := d[q.Pos]; !ok || der != q.QryNuc {
			private = append(private, q)
		}
	}

	var reversions []Reversion
	for pos, nodeNuc := range d {
		if qryPositions[pos] {
			continue
		}
		if !mutation.IsNucSequenced(pos, qryMissing, alignmentRange) {
			continue
		}
		reversions = append(reversions, Reversion{Pos: pos, NodeAa: nodeNuc})
	}

	var labeled []mutation.NucSub
	if labels != nil {
		for _, p := range private {
			if labels[p.Pos] {
				labeled = append(labeled, p)
			}
		}
	}

	return PrivateNucMutations{PrivateSubs: private, Reversions: reversions, LabeledSubstitutions: labeled}
}

// AaReversion is the amino-acid counterpart of Reversion, scoped to a CDS.
type AaReversion struct {
	CdsName string
	Pos     coord.RefAaPosition
	NodeAa  alphabet.Aa
}

// PrivateAaMutations is the amino-acid counterpart of PrivateNucMutations.
type PrivateAaMutations struct {
	PrivateSubs []mutation.AaSub
	Reversions  []AaReversion
}

// FindPrivateAaMutations derives private_subs and reversions for a single
// CDS's ancestral substitution map, following the same rule as
// FindPrivateNucMutations. isSequenced is called with positions in that
// CDS's own amino-acid coordinate space.
func FindPrivateAaMutations(cdsName string, d map[coord.RefAaPosition]alphabet.Aa, qrySubs []mutation.AaSub, isSequenced func(coord.RefAaPosition) bool) PrivateAaMutations {
	qryPositions := make(map[coord.RefAaPosition]bool, len(qrySubs))
	for _, q := range qrySubs {
		qryPositions[q.Pos] = true
	}

	var private []mutation.AaSub
	for _, q := range qrySubs {
		if der, ok := d[q.Pos]; !ok || der != q.QryAa {
			private = append(private, q)
		}
	}

	var reversions []AaReversion
	for pos, nodeAa := range d {
		if qryPositions[pos] {
			continue
		}
		if isSequenced != nil && !isSequenced(pos) {
			continue
		}
		reversions = append(reversions, AaReversion{CdsName: cdsName, Pos: pos, NodeAa: nodeAa})
	}

	return PrivateAaMutations{PrivateSubs: private, Reversions: reversions}
}
