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

// ProjectionType identifies one of the four supported map projection
// families. The projection mathematics itself lives in an external
// evaluator; this package only carries the parameters.
type ProjectionType string

// The supported projection families.
const (
	LambertConformalConic     ProjectionType = "LambertConformalConicProjection"
	RotatedLatLon             ProjectionType = "RotatedLatLonProjection"
	Stereographic             ProjectionType = "StereographicProjection"
	LambertAzimuthalEqualArea ProjectionType = "LambertAzimuthalEqualAreaProjection"
)

// ProjectionParams holds the numeric parameters of a projection. Which
// fields are meaningful depends on the projection type:
//
//	LambertConformalConic:     Lambda0, Phi0, Phi1, Phi2, Radius
//	RotatedLatLon:             Latitude, Longitude
//	Stereographic:             Latitude, Longitude, Radius
//	LambertAzimuthalEqualArea: Lambda0, Phi1, Radius
type ProjectionParams struct {
	Lambda0    float64
	Phi0       float64
	Phi1, Phi2 float64
	Latitude   float64
	Longitude  float64
	Radius     float64
}

// Projection pairs a projection family with its parameters.
type Projection struct {
	Type   ProjectionType
	Params ProjectionParams
}

// ProjectionGrid is a grid defined on a projected plane. The grid step is
// given either explicitly (Dx/Dy plus the projected origin) or implicitly by
// the geographic bounding ranges, from which an evaluator derives it.
type ProjectionGrid struct {
	Nx, Ny     int
	Projection Projection

	// Geographic bounding ranges of the grid corners, when known.
	LatRange, LonRange [2]float64

	// Geographic coordinates of the first grid point, when given as a
	// single corner instead of ranges.
	CornerLat, CornerLon float64

	// Explicit step and projected origin, when known. Origins are in
	// projected coordinates (degrees or meters, depending on the family).
	OriginLat, OriginLon float64
	Dx, Dy               float64
}

// Projector evaluates projection mathematics for a ProjectionGrid. It is an
// external collaborator: given the grid's projection parameters, it converts
// between geographic coordinates and grid (column, row) positions.
type Projector interface {
	// LatLonToXY returns the grid position nearest the geographic point.
	LatLonToXY(grid ProjectionGrid, lat, lon float64) (x, y int, err error)
	// XYToLatLon returns the geographic coordinates of a grid position.
	XYToLatLon(grid ProjectionGrid, x, y int) (lat, lon float64, err error)
}

// FindPointXY resolves (lat, lon) to a grid position using the supplied
// evaluator. A nil evaluator yields a MissingCapabilityError.
func (g ProjectionGrid) FindPointXY(p Projector, lat, lon float64) (x, y int, err error) {
	if p == nil {
		return 0, 0, &MissingCapabilityError{
			Capability: fmt.Sprintf("projection evaluator for %s", g.Projection.Type),
		}
	}
	return p.LatLonToXY(g, lat, lon)
}
