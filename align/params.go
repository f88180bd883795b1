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

// Package align implements the banded, codon-aware affine-gap pairwise
// aligner (seed discovery, stripe construction, and the three-matrix DP),
// plus the insertion stripper and aln/ref coordinate map builder that
// consume its output.
package align

// Params carries the tunable constants of the seed-and-band aligner. Field
// names and defaults mirror the teacher corpus's pairwise-alignment
// parameter structs.
type Params struct {
	MinLength int

	ScoreMatch              int
	PenaltyMismatch         int
	PenaltyGapExtend        int
	PenaltyGapOpen          int
	PenaltyGapOpenInFrame   int
	PenaltyGapOpenOutOfFrame int

	MaxIndel int

	SeedLength        int
	MinSeeds          int
	SeedSpacing       int
	MismatchesAllowed int
	MinMatchLength    int

	TerminalBandwidth int
	ExcessBandwidth   int

	TranslatePastStop bool
}

// DefaultParams returns the parameter set used when the caller does not
// override individual fields, matching the defaults called out in spec §6.
func DefaultParams() Params {
	return Params{
		MinLength:                100,
		ScoreMatch:               3,
		PenaltyMismatch:          1,
		PenaltyGapExtend:         1,
		PenaltyGapOpen:           6,
		PenaltyGapOpenInFrame:    7,
		PenaltyGapOpenOutOfFrame: 8,
		MaxIndel:                400,
		SeedLength:               21,
		MinSeeds:                 10,
		SeedSpacing:              100,
		MismatchesAllowed:        3,
		MinMatchLength:           30,
		TerminalBandwidth:        50,
		ExcessBandwidth:          9,
		TranslatePastStop:        false,
	}
}
