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

// RegularGrid is an evenly spaced latitude/longitude grid anchored at
// (LatMin, LonMin) with constant steps (Dx, Dy) and Nx·Ny points stored in
// row-major order: the row is the latitude index and longitude varies
// fastest.
type RegularGrid struct {
	Nx, Ny         int
	LatMin, LonMin float64
	Dx, Dy         float64

	// SearchRadius optionally widens nearest-value searches for data
	// sources with missing cells (for example ocean grids near coasts).
	// Zero means exact lookup only.
	SearchRadius int
}

// Validate checks that the grid parameters describe a usable grid.
func (g RegularGrid) Validate() error {
	if g.Nx < 1 {
		return &InvalidParameterError{Param: "nx", Reason: fmt.Sprintf("must be ≥ 1, got %d", g.Nx)}
	}
	if g.Ny < 1 {
		return &InvalidParameterError{Param: "ny", Reason: fmt.Sprintf("must be ≥ 1, got %d", g.Ny)}
	}
	if g.Dx == 0 {
		return &InvalidParameterError{Param: "dx", Reason: "must be nonzero"}
	}
	if g.Dy == 0 {
		return &InvalidParameterError{Param: "dy", Reason: "must be nonzero"}
	}
	return nil
}

// isGlobalLon reports whether the grid wraps the globe in longitude.
func (g RegularGrid) isGlobalLon() bool { return float64(g.Nx)*g.Dx >= 359 }

// isGlobalLat reports whether the grid spans pole to pole.
func (g RegularGrid) isGlobalLat() bool { return float64(g.Ny)*g.Dy >= 179 }

// FindPointXY returns the (column, row) position of the grid point nearest
// (lat, lon). Rounding is ties-away-from-zero, the same convention as the
// reduced Gaussian indexer. On grids spanning ≥359° of longitude a column of
// −1 snaps to 0 and a column of Nx or Nx+1 snaps to Nx−1; on grids spanning
// ≥179° of latitude a row of −1 snaps to 0 and a row of Ny snaps to Ny−1
// (latitude does not wrap, so there is no Ny+1 case). Queries still outside
// the grid after correction return an OutOfBoundsError.
func (g RegularGrid) FindPointXY(lat, lon float64) (x, y int, err error) {
	x = roundAwayFromZero((lon - g.LonMin) / g.Dx)
	y = roundAwayFromZero((lat - g.LatMin) / g.Dy)

	if g.isGlobalLon() {
		switch {
		case x == -1:
			x = 0
		case x == g.Nx || x == g.Nx+1:
			x = g.Nx - 1
		}
	}
	if g.isGlobalLat() {
		switch {
		case y == -1:
			y = 0
		case y == g.Ny:
			y = g.Ny - 1
		}
	}

	if x < 0 || y < 0 || x >= g.Nx || y >= g.Ny {
		return 0, 0, &OutOfBoundsError{Lat: lat, Lon: lon}
	}
	return x, y, nil
}

// FindPoint returns the row-major linear index of the grid point nearest
// (lat, lon).
func (g RegularGrid) FindPoint(lat, lon float64) (int, error) {
	x, y, err := g.FindPointXY(lat, lon)
	if err != nil {
		return 0, err
	}
	return y*g.Nx + x, nil
}

// LatMax returns the latitude of the last grid row.
func (g RegularGrid) LatMax() float64 { return g.LatMin + g.Dy*float64(g.Ny-1) }

// LonMax returns the longitude of the last grid column.
func (g RegularGrid) LonMax() float64 { return g.LonMin + g.Dx*float64(g.Nx-1) }
