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
	"github.com/biogo/hts/sam"
	"github.com/biostrand/cladealign/alphabet"
)

// ToCigar renders an aligned pair as a SAM CIGAR string. This is a
// secondary, derived artifact for interoperability with alignment viewers
// and downstream tooling: internal logic (stripping, coordinate maps,
// mutation calling) never consumes the CIGAR itself, only the qry_aln/
// ref_aln letter arrays it is built from.
func ToCigar(qryAln, refAln []alphabet.Nuc) sam.Cigar {
	if len(qryAln) == 0 {
		return nil
	}

	var ops sam.Cigar
	runOp := sam.CigarMatch
	runLen := 0

	flush := func() {
		if runLen > 0 {
			ops = append(ops, sam.NewCigarOp(runOp, runLen))
		}
	}

	for i := range qryAln {
		var op sam.CigarOpType
		switch {
		case refAln[i].IsGap():
			op = sam.CigarInsertion
		case qryAln[i].IsGap():
			op = sam.CigarDeletion
		default:
			op = sam.CigarMatch
		}

		if runLen > 0 && op == runOp {
			runLen++
			continue
		}
		flush()
		runOp, runLen = op, 1
	}
	flush()

	return ops
}
