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

// Package gene models the genome annotation: genes, their CDSes, the
// segments that make up a CDS (handling splicing, reverse strands, and
// circular wrapping), and the proteins a CDS translates to.
package gene

import "github.com/biostrand/cladealign/coord"

// Strand records the reading direction of a feature relative to the
// reference sequence as given.
type Strand int

const (
	StrandForward Strand = iota
	StrandReverse
	StrandUnknown
)

func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	default:
		return "."
	}
}

// Phase is the in-CDS nucleotide offset that restores the reading frame
// when a segment begins mid-codon.
type Phase int8

// PhaseFromLocalBegin computes the phase of a segment given its CDS-local
// start position, per spec §3: "the in-CDS offset that restores the
// reading frame when a segment begins mid-codon".
func PhaseFromLocalBegin(localBegin coord.RefLocalPosition) Phase {
	p := localBegin.Int() % 3
	return Phase((3 - p) % 3)
}

// Frame is the reference-absolute reading frame of a segment, i.e. which
// of the three possible codon phases the reference genome's own
// coordinate zero belongs to.
type Frame int8

// FrameFromGlobalBegin computes the reference-absolute frame of a segment.
func FrameFromGlobalBegin(globalBegin coord.RefNucPosition) Frame {
	return Frame(((globalBegin.Int() % 3) + 3) % 3)
}

// WrappingKind distinguishes the ordinary case from the parts of a
// circular, wrapping feature.
type WrappingKind int

const (
	NonWrapping WrappingKind = iota
	WrappingStart
	WrappingCentral
	WrappingEnd
)

// WrappingPart marks which part of a circular wrapping feature a segment
// represents. Index is meaningful only for WrappingCentral and WrappingEnd,
// giving the 1-based ordinal of the part within the wrap.
//
//	WrappingStart       : |....<-----|
//	WrappingCentral(1)  : |----------|
//	WrappingEnd(2)      : |---->     |
type WrappingPart struct {
	Kind  WrappingKind
	Index int
}

// Landmark records a reference feature (conventionally named "source")
// that provides the ambient coordinate origin for the annotation.
type Landmark struct {
	ID    string
	Name  string
	Range coord.RefNucRange
}

// Gene groups one or more CDSes under a shared biological name.
type Gene struct {
	Name   string
	ID     string
	Strand Strand
	Cdses  []*Cds
}

// Cds is a coding sequence: an ordered list of segments whose concatenated
// nucleotides translate to a single protein (possibly via multiple mature
// peptide products).
type Cds struct {
	Name     string
	ID       string
	Segments []*CdsSegment
	Proteins []*Protein
}

// Len returns the total nucleotide length of the CDS across all its
// segments.
func (c *Cds) Len() int {
	total := 0
	for _, seg := range c.Segments {
		total += seg.GlobalRange.Len()
	}
	return total
}

// CdsSegment is one contiguous interval of a CDS.
type CdsSegment struct {
	Index        int
	ID           string
	Name         string
	GlobalRange  coord.RefNucRange
	LocalRange   coord.RefLocalRange
	Landmark     *Landmark
	WrappingPart WrappingPart
	Strand       Strand
	Frame        Frame
	Phase        Phase
}

// Len returns the segment's nucleotide length.
func (s *CdsSegment) Len() int { return s.GlobalRange.Len() }

// Protein is a polyprotein cleavage product (or the whole CDS product when
// there is no cleavage) described as one or more protein segments.
type Protein struct {
	ID       string
	Name     string
	Product  string
	Segments []*ProteinSegment
}

// ProteinSegment is one contiguous interval of a mature protein product.
type ProteinSegment struct {
	ID     string
	Name   string
	Range  coord.RefNucRange
	Strand Strand
	Frame  Frame
}
