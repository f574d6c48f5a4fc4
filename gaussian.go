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

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// GaussianGridKind identifies a supported ECMWF reduced Gaussian grid
// resolution. Row y of such a grid carries 20+4·min(y, 2L−y−1) longitude
// samples, so rows near the poles hold fewer points than rows near the
// equator while keeping the physical point spacing roughly uniform.
type GaussianGridKind string

// The supported reduced Gaussian resolutions.
const (
	O320  GaussianGridKind = "o320"
	O1280 GaussianGridKind = "o1280"
	N160  GaussianGridKind = "n160"
	N320  GaussianGridKind = "n320"
)

// ParseGaussianGridKind converts a grid name such as "o320" to a
// GaussianGridKind, returning an InvalidParameterError for names outside
// the supported set.
func ParseGaussianGridKind(name string) (GaussianGridKind, error) {
	switch k := GaussianGridKind(name); k {
	case O320, O1280, N160, N320:
		return k, nil
	}
	return "", &InvalidParameterError{
		Param:  "gridType",
		Reason: fmt.Sprintf("unsupported Gaussian grid type %q", name),
	}
}

// LatitudeLines returns L, the number of latitude rows per hemisphere.
// The full grid has 2L rows.
func (k GaussianGridKind) LatitudeLines() int {
	switch k {
	case O320:
		return 320
	case O1280:
		return 1280
	case N160:
		return 160
	case N320:
		return 320
	}
	panic(fmt.Sprintf("regrid: unsupported Gaussian grid type %q", string(k)))
}

// TotalPoints returns the total number of data points on the grid,
// 4·L·(L+9).
func (k GaussianGridKind) TotalPoints() int {
	l := k.LatitudeLines()
	return 4 * l * (l + 9)
}

// ReducedGaussianGrid maps between linear data-array indices and
// (column, row) positions on a reduced Gaussian grid, and resolves the grid
// point nearest an arbitrary coordinate. It is a stateless value type; all
// geometry is computed on demand from the kind.
type ReducedGaussianGrid struct {
	Kind GaussianGridKind
}

// RowPoints returns the number of longitude samples on latitude row y.
// Rows are indexed 0 (nearest the north pole) to 2L−1 (nearest the south
// pole).
func (g ReducedGaussianGrid) RowPoints(y int) (int, error) {
	l := g.Kind.LatitudeLines()
	if y < 0 || y >= 2*l {
		return 0, &DomainRangeError{Name: "y", Value: y, Min: 0, Max: 2*l - 1}
	}
	if y < l {
		return 20 + 4*y, nil
	}
	return 20 + 4*(2*l-y-1), nil
}

// RowStart returns the linear index of the first point of row y, i.e. the
// prefix sum of RowPoints over all rows before y. RowStart(2L) equals the
// total point count.
func (g ReducedGaussianGrid) RowStart(y int) (int, error) {
	l := g.Kind.LatitudeLines()
	if y < 0 || y > 2*l {
		return 0, &DomainRangeError{Name: "y", Value: y, Min: 0, Max: 2 * l}
	}
	if y <= l {
		return 2*y*y + 18*y, nil
	}
	// Mirror symmetry about the equator.
	r := 2*l - y
	return g.Kind.TotalPoints() - (2*r*r + 18*r), nil
}

// LatitudeStep returns the fixed spacing in degrees between adjacent
// latitude rows, 180/(2L+0.5).
func (g ReducedGaussianGrid) LatitudeStep() float64 {
	l := g.Kind.LatitudeLines()
	return 180 / (2*float64(l) + 0.5)
}

// RowCoordinates returns the latitude of row y and the longitude spacing
// between adjacent points on that row.
func (g ReducedGaussianGrid) RowCoordinates(y int) (lat, lonStep float64, err error) {
	nx, err := g.RowPoints(y)
	if err != nil {
		return 0, 0, err
	}
	l := g.Kind.LatitudeLines()
	dy := g.LatitudeStep()
	lat = float64(l-y-1)*dy + dy/2
	lonStep = 360 / float64(nx)
	return lat, lonStep, nil
}

// FindPointXY returns the (column, row) position of the grid point nearest
// (lat, lon). The longitude is first normalized to [-180, 180). The search
// tests only the candidate row implied by the latitude and its immediate
// successor; consecutive rows are adjacent in latitude so no other row can
// be closer. Column rounding is ties-away-from-zero, matching the reference
// behavior. An exact distance tie resolves to the lower row.
func (g ReducedGaussianGrid) FindPointXY(lat, lon float64) (x, y int) {
	l := g.Kind.LatitudeLines()
	dy := g.LatitudeStep()

	yRaw := float64(l) - 1 - (lat-dy/2)/dy
	y = int(yRaw)
	if y < 0 {
		y = 0
	} else if y > 2*l-2 {
		y = 2*l - 2
	}
	yUpper := y + 1

	// Row bounds are guaranteed by the clamp above.
	nx, _ := g.RowPoints(y)
	nxUpper, _ := g.RowPoints(yUpper)
	dx := 360 / float64(nx)
	dxUpper := 360 / float64(nxUpper)

	lonW := wrapLongitude(lon)
	x0 := roundAwayFromZero(lonW / dx)
	x1 := roundAwayFromZero(lonW / dxUpper)

	pointLat := float64(l-y-1)*dy + dy/2
	pointLon := float64(x0) * dx
	pointLatUpper := float64(l-yUpper-1)*dy + dy/2
	pointLonUpper := float64(x1) * dxUpper

	dist0 := (pointLat-lat)*(pointLat-lat) + (pointLon-lonW)*(pointLon-lonW)
	dist1 := (pointLatUpper-lat)*(pointLatUpper-lat) + (pointLonUpper-lonW)*(pointLonUpper-lonW)

	if dist0 <= dist1 {
		return (x0 + nx) % nx, y
	}
	return (x1 + nxUpper) % nxUpper, yUpper
}

// FindPoint returns the linear data-array index of the grid point nearest
// (lat, lon).
func (g ReducedGaussianGrid) FindPoint(lat, lon float64) int {
	x, y := g.FindPointXY(lat, lon)
	start, _ := g.RowStart(y) // y is always in range here
	return start + x
}

// LatLonArrays returns the latitude and longitude of every grid point, in
// linear data order: all columns of row 0, then all columns of row 1, and
// so on. Longitudes are normalized to [-180, 180). The result depends only
// on the grid kind, so it may be computed once and reused across many data
// arrays.
func (g ReducedGaussianGrid) LatLonArrays() (lats, lons []float64) {
	l := g.Kind.LatitudeLines()
	dy := g.LatitudeStep()
	total := g.Kind.TotalPoints()
	lats = make([]float64, total)
	lons = make([]float64, total)

	for y := 0; y < 2*l; y++ {
		start, _ := g.RowStart(y)
		nx, _ := g.RowPoints(y)
		lat := float64(l-y-1)*dy + dy/2
		dx := 360 / float64(nx)
		for i := 0; i < nx; i++ {
			lats[start+i] = lat
			lons[start+i] = wrapLongitude(float64(i) * dx)
		}
	}
	return lats, lons
}

// Points returns every grid point as a geometry point with X=longitude and
// Y=latitude, in linear data order. This is the source point cloud consumed
// by scattered-data interpolation.
func (g ReducedGaussianGrid) Points() []geom.Point {
	lats, lons := g.LatLonArrays()
	pts := make([]geom.Point, len(lats))
	for i := range pts {
		pts[i] = geom.Point{X: lons[i], Y: lats[i]}
	}
	return pts
}

// GridInfo describes the overall geometry of a reduced Gaussian grid.
type GridInfo struct {
	Kind           GaussianGridKind
	LatitudeRows   int // 2L
	TotalPoints    int
	LatitudeStep   float64
	LatMin, LatMax float64
}

// Info returns the overall geometry of the grid.
func (g ReducedGaussianGrid) Info() GridInfo {
	l := g.Kind.LatitudeLines()
	dy := g.LatitudeStep()
	return GridInfo{
		Kind:         g.Kind,
		LatitudeRows: 2 * l,
		TotalPoints:  g.Kind.TotalPoints(),
		LatitudeStep: dy,
		LatMin:       -(float64(l)*dy - dy/2),
		LatMax:       float64(l)*dy - dy/2,
	}
}

// wrapLongitude normalizes a longitude to [-180, 180).
func wrapLongitude(lon float64) float64 {
	m := math.Mod(lon+180, 360)
	if m < 0 {
		m += 360
	}
	return m - 180
}

// roundAwayFromZero rounds to the nearest integer with exact halves rounded
// away from zero, e.g. 0.5 → 1 and −0.5 → −1. This differs from the default
// ties-to-even rule and matches the reference grid indexing behavior.
func roundAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}
