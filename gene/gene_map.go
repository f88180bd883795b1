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

package gene

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	cerrs "github.com/biostrand/cladealign/errs"
)

// SanitizeName normalizes a gene or CDS name the way a genome annotation
// file's feature names are standardized before use as a map key: trimmed
// and case-folded to upper, with common chromosome-style "chr"/"gene-"
// prefixes stripped so that e.g. "gene-S" and "S" are treated as the same
// feature.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "chr")
	name = strings.TrimPrefix(name, "gene-")
	return strings.ToUpper(name)
}

// Map is an ordered collection of Gene annotations, as parsed from a
// genome annotation file.
type Map struct {
	Genes []*Gene
}

// namedFeature is satisfied by anything that can be checked for duplicate
// names under distinct IDs.
type namedFeature interface {
	FeatureName() string
	FeatureID() string
}

func (c *Cds) FeatureName() string { return c.Name }
func (c *Cds) FeatureID() string   { return c.ID }

// Validate checks the gene map's structural invariants (spec §3): every
// CDS length is divisible by three, and no two distinct CDSes share a
// name. Every violation is collected rather than stopping at the first,
// since annotation errors are typically batch-setup problems the caller
// wants to see all of at once.
func (m *Map) Validate() error {
	var errs error

	cdses := make([]*Cds, 0)
	for _, g := range m.Genes {
		cdses = append(cdses, g.Cdses...)
	}

	for _, c := range cdses {
		if c.Len()%3 != 0 {
			errs = multierr.Append(errs, fmt.Errorf("CDS %q: length %d: %w", c.Name, c.Len(), cerrs.ErrCdsLengthNotMultipleOfThree))
		}
	}

	errs = multierr.Append(errs, checkDuplicateNames(cdses))

	return errs
}

// checkDuplicateNames finds features that share a name but have distinct
// IDs, which would make per-CDS lookups by name ambiguous.
func checkDuplicateNames[T namedFeature](feats []T) error {
	byName := make(map[string][]T)
	for _, f := range feats {
		byName[f.FeatureName()] = append(byName[f.FeatureName()], f)
	}

	var errs error
	for name, group := range byName {
		if len(group) < 2 {
			continue
		}
		ids := make([]string, 0, len(group))
		seen := make(map[string]bool)
		for _, f := range group {
			if !seen[f.FeatureID()] {
				seen[f.FeatureID()] = true
				ids = append(ids, f.FeatureID())
			}
		}
		if len(ids) > 1 {
			errs = multierr.Append(errs, fmt.Errorf("features with duplicate name %q but different IDs: %s", name, strings.Join(ids, ", ")))
		}
	}
	return errs
}

// AllCdses returns every CDS across every gene, in gene/CDS declaration
// order.
func (m *Map) AllCdses() []*Cds {
	var cdses []*Cds
	for _, g := range m.Genes {
		cdses = append(cdses, g.Cdses...)
	}
	return cdses
}

// ByName returns the CDS with the given sanitized name, if any.
func (m *Map) ByName(name string) *Cds {
	name = SanitizeName(name)
	for _, g := range m.Genes {
		for _, c := range g.Cdses {
			if SanitizeName(c.Name) == name {
				return c
			}
		}
	}
	return nil
}
