/*
Copyright © 2026 the Regrid authors.
This file is part of Regrid.

Regrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Regrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Regrid.  If not, see <http://www.gnu.org/licenses/>.
*/

package regrid

import "fmt"

// GridType discriminates the variants of a GridSpec.
type GridType string

// The supported grid variants.
const (
	GridTypeRegular    GridType = "RegularGrid"
	GridTypeProjection GridType = "ProjectionGrid"
	GridTypeGaussian   GridType = "GaussianGrid"
)

// GridSpec is a tagged union of the three grid variants. Exactly one of the
// variant fields is non-nil, selected by Type. Grid specifications are
// immutable configuration data; they are created once and never mutated.
type GridSpec struct {
	Type       GridType
	Regular    *RegularGrid
	Projection *ProjectionGrid
	Gaussian   *GaussianGridKind
}

// Validate checks that the discriminant matches the populated variant and
// that the variant itself is usable.
func (s GridSpec) Validate() error {
	switch s.Type {
	case GridTypeRegular:
		if s.Regular == nil {
			return &InvalidParameterError{Param: "grid", Reason: "RegularGrid spec has no regular grid parameters"}
		}
		return s.Regular.Validate()
	case GridTypeProjection:
		if s.Projection == nil {
			return &InvalidParameterError{Param: "grid", Reason: "ProjectionGrid spec has no projection grid parameters"}
		}
		if s.Projection.Nx < 1 || s.Projection.Ny < 1 {
			return &InvalidParameterError{Param: "grid", Reason: fmt.Sprintf("projection grid size %d×%d", s.Projection.Nx, s.Projection.Ny)}
		}
		return nil
	case GridTypeGaussian:
		if s.Gaussian == nil {
			return &InvalidParameterError{Param: "grid", Reason: "GaussianGrid spec has no Gaussian grid parameters"}
		}
		_, err := ParseGaussianGridKind(string(*s.Gaussian))
		return err
	}
	return &InvalidParameterError{Param: "grid", Reason: fmt.Sprintf("unknown grid type %q", string(s.Type))}
}
