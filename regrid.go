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

// Package regrid indexes points on regular latitude/longitude grids,
// map-projected grids, and ECMWF reduced Gaussian grids, and resamples data
// from a reduced Gaussian grid onto a regular latitude/longitude grid.
package regrid

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"github.com/spatialmodel/regrid/interpolate"
)

// RegularGridData is the result of resampling onto a regular grid: the
// latitude and longitude axes, the meshgrid coordinate arrays, and the
// resampled data, all in row-major latitude-major order with longitude
// varying fastest.
type RegularGridData struct {
	Lat, Lon   []float64
	Lats, Lons *sparse.DenseArray
	Data       *sparse.DenseArray
}

// Options configures a conversion onto a regular grid.
type Options struct {
	// DLat and DLon are the target grid resolution in degrees. Both must
	// be strictly positive.
	DLat, DLon float64

	// LatRange and LonRange bound the target grid. A nil LatRange
	// defaults to the Gaussian grid's natural latitude coverage; a nil
	// LonRange defaults to [-180, 180]. Both bounds are inclusive.
	LatRange, LonRange *[2]float64

	// Method selects the interpolation strategy.
	Method interpolate.Method

	// FillValue is assigned to target cells the interpolation cannot
	// determine, for example cells outside the source convex hull under
	// the linear and cubic methods.
	FillValue float64
}

// DefaultOptions returns Options for the given resolution with linear
// interpolation and a not-a-number fill value.
func DefaultOptions(dlat, dlon float64) Options {
	return Options{
		DLat:      dlat,
		DLon:      dlon,
		Method:    interpolate.Linear,
		FillValue: math.NaN(),
	}
}

// Converter resamples flat data arrays defined on a reduced Gaussian grid
// onto regular latitude/longitude grids. The source point cloud is built on
// first use and retained for the lifetime of the converter; a converter is
// meant to be owned by a single goroutine.
type Converter struct {
	Grid   ReducedGaussianGrid
	interp interpolate.Interpolator

	// Cached source point cloud, populated at most once.
	srcPts []geom.Point
}

// NewConverter returns a converter for the given grid kind using the given
// interpolation capability. A nil interpolator is permitted at construction;
// conversions will then fail with a MissingCapabilityError.
func NewConverter(kind GaussianGridKind, interp interpolate.Interpolator) *Converter {
	return &Converter{Grid: ReducedGaussianGrid{Kind: kind}, interp: interp}
}

// sourcePoints returns the cached source point cloud, building it on first
// use.
func (c *Converter) sourcePoints() []geom.Point {
	if c.srcPts == nil {
		c.srcPts = c.Grid.Points()
	}
	return c.srcPts
}

// ToRegularGrid resamples data, whose length must equal the grid's total
// point count, onto a regular grid with the given options.
func (c *Converter) ToRegularGrid(data []float64, opts Options) (*RegularGridData, error) {
	if opts.DLat <= 0 || opts.DLon <= 0 {
		return nil, &InvalidParameterError{
			Param:  "targetResolution",
			Reason: fmt.Sprintf("must be positive, got (%g, %g)", opts.DLat, opts.DLon),
		}
	}
	if want := c.Grid.Kind.TotalPoints(); len(data) != want {
		return nil, &ShapeMismatchError{Want: want, Have: len(data)}
	}
	if c.interp == nil {
		return nil, &MissingCapabilityError{Capability: "scattered-data interpolator"}
	}

	info := c.Grid.Info()
	latMin, latMax := info.LatMin, info.LatMax
	if opts.LatRange != nil {
		latMin, latMax = opts.LatRange[0], opts.LatRange[1]
	}
	lonMin, lonMax := -180.0, 180.0
	if opts.LonRange != nil {
		lonMin, lonMax = opts.LonRange[0], opts.LonRange[1]
	}

	// The axes include the declared maximum: the generation bound is
	// padded by a half step so floating-point truncation cannot drop the
	// last sample.
	lat1d := axis(latMin, latMax+opts.DLat/2, opts.DLat)
	lon1d := axis(lonMin, lonMax+opts.DLon/2, opts.DLon)
	nlat, nlon := len(lat1d), len(lon1d)

	lats2d := sparse.ZerosDense(nlat, nlon)
	lons2d := sparse.ZerosDense(nlat, nlon)
	dst := make([]geom.Point, nlat*nlon)
	for i, lat := range lat1d {
		for j, lon := range lon1d {
			lats2d.Elements[i*nlon+j] = lat
			lons2d.Elements[i*nlon+j] = lon
			dst[i*nlon+j] = geom.Point{X: lon, Y: lat}
		}
	}

	vals, err := c.interp.Interpolate(c.sourcePoints(), data, dst, opts.Method, opts.FillValue)
	if err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(nlat, nlon)
	copy(out.Elements, vals)

	return &RegularGridData{
		Lat:  lat1d,
		Lon:  lon1d,
		Lats: lats2d,
		Lons: lons2d,
		Data: out,
	}, nil
}

// ToRegularGridFast resamples data onto pre-built target coordinate arrays
// using nearest-neighbor lookup. The target arrays must have identical
// shapes; the output shares that shape. This is the fast path for repeated
// conversions onto the same target grid.
func (c *Converter) ToRegularGridFast(data []float64, targetLats, targetLons *sparse.DenseArray) (*sparse.DenseArray, error) {
	if !shapesEqual(targetLats.Shape, targetLons.Shape) {
		return nil, &InvalidParameterError{
			Param: "target coordinates",
			Reason: fmt.Sprintf("latitude and longitude arrays have mismatched shapes: %v vs %v",
				targetLats.Shape, targetLons.Shape),
		}
	}
	if want := c.Grid.Kind.TotalPoints(); len(data) != want {
		return nil, &ShapeMismatchError{Want: want, Have: len(data)}
	}

	field, err := interpolate.NewNearestField(c.sourcePoints(), data)
	if err != nil {
		return nil, err
	}

	dst := make([]geom.Point, len(targetLats.Elements))
	for i := range dst {
		dst[i] = geom.Point{X: targetLons.Elements[i], Y: targetLats.Elements[i]}
	}
	out := sparse.ZerosDense(targetLats.Shape...)
	copy(out.Elements, field.At(dst))
	return out, nil
}

// axis returns start, start+step, start+2·step, … for every value strictly
// below stop.
func axis(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}
	return vals
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
