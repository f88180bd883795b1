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

// Package coord provides phantom-typed positions and ranges so that
// converting between coordinate spaces is a named operation rather than
// bare integer arithmetic. A Position carries its Space (Reference or
// Alignment) and Unit (Nuc, Aa, or NucLocal) as type parameters; the
// compiler rejects mixing positions from different spaces without going
// through an explicit map (see Map and MapLocal in this package).
package coord

// Space tags a Position as belonging to either the reference sequence's own
// coordinate system or the (possibly gapped) pairwise-alignment coordinate
// system.
type Space interface {
	spaceTag()
}

// Reference is the Space of un-gapped reference-sequence coordinates.
type Reference struct{}

func (Reference) spaceTag() {}

// Alignment is the Space of gapped pairwise-alignment coordinates.
type Alignment struct{}

func (Alignment) spaceTag() {}

// Unit tags a Position as counting nucleotides, amino acids, or
// CDS-local nucleotides.
type Unit interface {
	unitTag()
}

// Nuc is the Unit of global (genome-relative) nucleotide positions.
type Nuc struct{}

func (Nuc) unitTag() {}

// Aa is the Unit of amino-acid (codon) positions.
type Aa struct{}

func (Aa) unitTag() {}

// NucLocal is the Unit of nucleotide positions relative to the start of a
// single genetic feature (gene/CDS/segment), as opposed to the whole
// genome.
type NucLocal struct{}

func (NucLocal) unitTag() {}

// Position is an integer position tagged with its coordinate Space and
// Unit. The zero value is position 0. Negative values are a valid sentinel
// meaning "before the start of the alignment" (spec §3).
type Position[S Space, U Unit] int

// NewPosition constructs a tagged position from a plain integer.
func NewPosition[S Space, U Unit](v int) Position[S, U] {
	return Position[S, U](v)
}

// Int returns the underlying integer value.
func (p Position[S, U]) Int() int { return int(p) }

// Add returns the position offset by delta.
func (p Position[S, U]) Add(delta int) Position[S, U] {
	return Position[S, U](int(p) + delta)
}

// Less reports whether p comes before other.
func (p Position[S, U]) Less(other Position[S, U]) bool { return p < other }

// Concrete position aliases used throughout the rest of the module.
type (
	RefNucPosition   = Position[Reference, Nuc]
	AlnNucPosition   = Position[Alignment, Nuc]
	RefAaPosition    = Position[Reference, Aa]
	RefLocalPosition = Position[Reference, NucLocal]
	AlnLocalPosition = Position[Alignment, NucLocal]
)
