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
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
)

// PcrPrimerNonAcgt records a reference-side ambiguity code that a primer
// already tolerates at a given position.
type PcrPrimerNonAcgt struct {
	Pos coord.RefNucPosition
	Qry alphabet.Nuc
}

// PcrPrimer is a diagnostic PCR primer's binding site on the reference
// genome, supplementing the spec's nucleotide mutation output with the
// "does this mutation break a widely used diagnostic primer" question that
// the original Nextclade batch reports but the distilled spec omits.
type PcrPrimer struct {
	Name     string
	Range    coord.RefNucRange
	NonAcgts []PcrPrimerNonAcgt
}

// PcrPrimerChange is a primer together with the substitutions found inside
// its binding range.
type PcrPrimerChange struct {
	Primer        PcrPrimer
	Substitutions []NucSub
}

// FindPcrPrimerChanges reports, for each primer whose binding range
// contains at least one substitution not already tolerated by the primer's
// own ambiguity codes, the primer and its affecting substitutions.
func FindPcrPrimerChanges(substitutions []NucSub, primers []PcrPrimer) []PcrPrimerChange {
	var changes []PcrPrimerChange
	for _, primer := range primers {
		var selected []NucSub
		for _, sub := range substitutions {
			if shouldReportPrimerMutation(sub, primer) {
				selected = append(selected, sub)
			}
		}
		if len(selected) > 0 {
			changes = append(changes, PcrPrimerChange{Primer: primer, Substitutions: selected})
		}
	}
	return changes
}

func shouldReportPrimerMutation(sub NucSub, primer PcrPrimer) bool {
	if !primer.Range.Contains(sub.Pos) {
		return false
	}
	for _, nonAcgt := range primer.NonAcgts {
		if nonAcgt.Pos == sub.Pos && alphabet.IsMatch(nonAcgt.Qry, sub.QryNuc) {
			return false
		}
	}
	return true
}
