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

import (
	"testing"

	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/coord"
	"github.com/biostrand/cladealign/gene"
	"github.com/stretchr/testify/require"
)

func mustNucs(t *testing.T, s string) []alphabet.Nuc {
	t.Helper()
	seq, err := alphabet.ToNucSeq(s)
	require.NoError(t, err)
	return seq
}

func TestExtractSingleSegmentNoPhase(t *testing.T) {
	refAln := mustNucs(t, "ATGAAACCCTAA")
	qryAln := mustNucs(t, "ATGAAGCCCTAA")

	refAlnMap := coord.NewMap(refAln)

	seg := &gene.CdsSegment{
		Index:       0,
		GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 12),
		Strand:      gene.StrandForward,
		Phase:       0,
	}
	cds := &gene.Cds{Name: "ORF1", Segments: []*gene.CdsSegment{seg}}

	extracted := Extract(cds, refAlnMap, qryAln, refAln)
	require.Equal(t, "ATGAAACCCTAA", alphabet.FromNucSeq(extracted.RefAln))
	require.Equal(t, "ATGAAGCCCTAA", alphabet.FromNucSeq(extracted.QryAln))
}

func TestExtractReverseStrandSegment(t *testing.T) {
	// Reference plus strand: ATG AAA CCC TAA reverse-complemented is
	// TTA GGG TTT CAT; a reverse-strand CDS over the same bases should
	// come back out as the complement, read 3'->5' on the plus strand.
	refAln := mustNucs(t, "ATGAAACCCTAA")
	qryAln := mustNucs(t, "ATGAAACCCTAA")

	refAlnMap := coord.NewMap(refAln)

	seg := &gene.CdsSegment{
		Index:       0,
		GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 12),
		Strand:      gene.StrandReverse,
		Phase:       0,
	}
	cds := &gene.Cds{Name: "ORF1rc", Segments: []*gene.CdsSegment{seg}}

	extracted := Extract(cds, refAlnMap, qryAln, refAln)
	require.Equal(t, alphabet.ReverseComplement(refAln), extracted.RefAln)
}

func TestExtractAppliesLeadingPhaseTrim(t *testing.T) {
	refAln := mustNucs(t, "CATGAAACCCTAA")
	qryAln := mustNucs(t, "CATGAAACCCTAA")

	refAlnMap := coord.NewMap(refAln)

	seg := &gene.CdsSegment{
		Index:       0,
		GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 13),
		Strand:      gene.StrandForward,
		Phase:       2, // skip the leading 2 bases to restore frame
	}
	cds := &gene.Cds{Name: "ORF1", Segments: []*gene.CdsSegment{seg}}

	extracted := Extract(cds, refAlnMap, qryAln, refAln)
	require.Equal(t, "TGAAACCCTAA", alphabet.FromNucSeq(extracted.RefAln))
}

func TestExtractConcatenatesSplicedSegments(t *testing.T) {
	refAln := mustNucs(t, "ATGAAANNNCCCTAA")
	qryAln := mustNucs(t, "ATGAAANNNCCCTAA")
	refAlnMap := coord.NewMap(refAln)

	seg1 := &gene.CdsSegment{Index: 0, GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](0, 6), Strand: gene.StrandForward}
	seg2 := &gene.CdsSegment{Index: 1, GlobalRange: coord.NewRange[coord.Reference, coord.Nuc](9, 15), Strand: gene.StrandForward}
	cds := &gene.Cds{Name: "spliced", Segments: []*gene.CdsSegment{seg1, seg2}}

	extracted := Extract(cds, refAlnMap, qryAln, refAln)
	require.Equal(t, "ATGAAACCCTAA", alphabet.FromNucSeq(extracted.RefAln))
}
