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
	"fmt"

	"github.com/biogo/hts/sam"
	"github.com/biostrand/cladealign/alphabet"
	"github.com/biostrand/cladealign/errs"
)

// Alignment is the full pairwise alignment result (spec §3): the aligned
// pair, its score, the orientation flag, and the CIGAR derived from it.
type Alignment struct {
	QryAln, RefAln      []alphabet.Nuc
	Score               int
	IsReverseComplement bool
	Cigar               sam.Cigar
}

// Align runs the seed-and-band aligner end to end: seed discovery,
// monotone chaining, band construction, and banded affine-gap DP, retrying
// against the reverse complement of the query if the forward orientation
// fails to seed (spec §4.1).
func Align(qry, ref []alphabet.Nuc, gapOpen GapOpenVector, params Params) (*Alignment, error) {
	if len(qry) < params.MinLength {
		return nil, fmt.Errorf("query length %d: %w", len(qry), errs.ErrQueryTooShort)
	}

	aln, err := tryAlign(qry, ref, gapOpen, params, false)
	if err == nil {
		return aln, nil
	}

	rc := alphabet.ReverseComplement(qry)
	rcAln, rcErr := tryAlign(rc, ref, gapOpen, params, true)
	if rcErr == nil {
		return rcAln, nil
	}

	return nil, err
}

func tryAlign(qry, ref []alphabet.Nuc, gapOpen GapOpenVector, params Params, isRC bool) (*Alignment, error) {
	seeds := FindSeeds(qry, ref, params)
	if len(seeds) < params.MinSeeds {
		return nil, errs.ErrSeedMatchFailed
	}

	chain := MonotoneChain(seeds)
	if len(chain) == 0 {
		return nil, errs.ErrSeedMatchFailed
	}

	band, err := NewBand(chain, len(ref), len(qry), params)
	if err != nil {
		return nil, err
	}

	result, err := Run(ref, qry, band, gapOpen, params)
	if err != nil {
		return nil, err
	}

	return &Alignment{
		QryAln:              result.QryAln,
		RefAln:               result.RefAln,
		Score:                result.Score,
		IsReverseComplement:  isRC,
		Cigar:                ToCigar(result.QryAln, result.RefAln),
	}, nil
}
