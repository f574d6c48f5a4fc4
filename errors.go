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

// DomainRangeError reports a row, column, or index argument that lies
// outside the valid range for the grid it was applied to.
type DomainRangeError struct {
	Name     string // name of the offending argument
	Value    int
	Min, Max int // inclusive bounds of the valid range
}

func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("regrid: %s out of range: %d, expected %d..%d",
		e.Name, e.Value, e.Min, e.Max)
}

// ShapeMismatchError reports a data array whose length does not equal the
// point count expected for the declared grid.
type ShapeMismatchError struct {
	Want, Have int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("regrid: data length mismatch: expected %d points, got %d points",
		e.Want, e.Have)
}

// InvalidParameterError reports a grid or conversion parameter that cannot
// describe a valid operation, such as a non-positive step size or parallel
// inputs with mismatched shapes.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("regrid: invalid parameter %s: %s", e.Param, e.Reason)
}

// OutOfBoundsError reports a latitude/longitude query that falls outside a
// regular grid's coverage after wraparound correction has been applied.
type OutOfBoundsError struct {
	Lat, Lon float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("regrid: point (lat=%g, lon=%g) is outside grid bounds", e.Lat, e.Lon)
}

// MissingCapabilityError reports that an external collaborator (an
// interpolation backend or a projection evaluator) was needed but not
// supplied.
type MissingCapabilityError struct {
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("regrid: missing capability: %s", e.Capability)
}
