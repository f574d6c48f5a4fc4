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
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"github.com/spatialmodel/regrid/interpolate"
)

// recordingInterp counts calls and returns a constant field.
type recordingInterp struct {
	calls  int
	method interpolate.Method
	value  float64
}

func (r *recordingInterp) Interpolate(src []geom.Point, vals []float64, dst []geom.Point,
	method interpolate.Method, fill float64) ([]float64, error) {
	r.calls++
	r.method = method
	out := make([]float64, len(dst))
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

func TestToRegularGridArgumentChecks(t *testing.T) {
	interp := &recordingInterp{}
	c := NewConverter(N160, interp)
	data := make([]float64, N160.TotalPoints())

	_, err := c.ToRegularGrid(data, Options{DLat: 0, DLon: 0.25})
	if _, ok := err.(*InvalidParameterError); !ok {
		t.Errorf("zero resolution: expected InvalidParameterError, have %T", err)
	}
	_, err = c.ToRegularGrid(data, Options{DLat: 0.25, DLon: -1})
	if _, ok := err.(*InvalidParameterError); !ok {
		t.Errorf("negative resolution: expected InvalidParameterError, have %T", err)
	}

	_, err = c.ToRegularGrid(data[:len(data)-1], DefaultOptions(1, 1))
	se, ok := err.(*ShapeMismatchError)
	if !ok {
		t.Fatalf("short data: expected ShapeMismatchError, have %T", err)
	}
	if se.Want != N160.TotalPoints() || se.Have != N160.TotalPoints()-1 {
		t.Errorf("want (%d, %d), have (%d, %d)",
			N160.TotalPoints(), N160.TotalPoints()-1, se.Want, se.Have)
	}

	if interp.calls != 0 {
		t.Errorf("interpolator called %d times during argument checks", interp.calls)
	}

	_, err = NewConverter(N160, nil).ToRegularGrid(data, DefaultOptions(1, 1))
	if _, ok := err.(*MissingCapabilityError); !ok {
		t.Errorf("nil interpolator: expected MissingCapabilityError, have %T", err)
	}
}

func TestToRegularGridAxes(t *testing.T) {
	interp := &recordingInterp{value: 3.5}
	c := NewConverter(N160, interp)
	data := make([]float64, N160.TotalPoints())

	opts := DefaultOptions(1, 1)
	opts.LatRange = &[2]float64{-10, 10}
	opts.LonRange = &[2]float64{-20, 20}
	opts.Method = interpolate.Cubic

	result, err := c.ToRegularGrid(data, opts)
	if err != nil {
		t.Fatal(err)
	}

	// Both range bounds are inclusive.
	if len(result.Lat) != 21 {
		t.Fatalf("latitude axis: want 21 samples, have %d", len(result.Lat))
	}
	if len(result.Lon) != 41 {
		t.Fatalf("longitude axis: want 41 samples, have %d", len(result.Lon))
	}
	if result.Lat[0] != -10 || result.Lat[20] != 10 {
		t.Errorf("latitude bounds: have (%g, %g)", result.Lat[0], result.Lat[20])
	}
	if result.Lon[0] != -20 || result.Lon[40] != 20 {
		t.Errorf("longitude bounds: have (%g, %g)", result.Lon[0], result.Lon[40])
	}

	wantShape := []int{21, 41}
	if !shapesEqual(result.Data.Shape, wantShape) {
		t.Errorf("data shape: want %v, have %v", wantShape, result.Data.Shape)
	}
	for i := 0; i < 21; i++ {
		for j := 0; j < 41; j++ {
			if have := result.Lats.Get(i, j); have != result.Lat[i] {
				t.Fatalf("Lats(%d, %d): want %g, have %g", i, j, result.Lat[i], have)
			}
			if have := result.Lons.Get(i, j); have != result.Lon[j] {
				t.Fatalf("Lons(%d, %d): want %g, have %g", i, j, result.Lon[j], have)
			}
		}
	}
	for i, v := range result.Data.Elements {
		if v != 3.5 {
			t.Fatalf("element %d: want 3.5, have %g", i, v)
		}
	}

	if interp.calls != 1 {
		t.Errorf("interpolator calls: want 1, have %d", interp.calls)
	}
	if interp.method != interpolate.Cubic {
		t.Errorf("method: want cubic, have %s", interp.method)
	}
}

// A constant source field must resample to the same constant under every
// method.
func TestToRegularGridConstantField(t *testing.T) {
	c := NewConverter(N160, &interpolate.Scattered{})
	data := make([]float64, N160.TotalPoints())
	for i := range data {
		data[i] = 7
	}

	for _, method := range []interpolate.Method{
		interpolate.Nearest, interpolate.Linear, interpolate.Cubic,
	} {
		opts := DefaultOptions(2.5, 2.5)
		opts.LatRange = &[2]float64{-5, 5}
		opts.LonRange = &[2]float64{0, 10}
		opts.Method = method

		result, err := c.ToRegularGrid(data, opts)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		for i, v := range result.Data.Elements {
			if math.Abs(v-7) > 1e-9 {
				t.Fatalf("%s element %d: want 7, have %g", method, i, v)
			}
		}
	}

	// The default bounds cover the full globe, including targets on the
	// antimeridian and beyond the polar rows.
	for _, method := range []interpolate.Method{
		interpolate.Nearest, interpolate.Linear, interpolate.Cubic,
	} {
		opts := DefaultOptions(5, 5)
		opts.Method = method

		result, err := c.ToRegularGrid(data, opts)
		if err != nil {
			t.Fatalf("%s global: %v", method, err)
		}
		if result.Lon[0] != -180 || result.Lon[len(result.Lon)-1] != 180 {
			t.Fatalf("%s global: longitude axis spans (%g, %g)",
				method, result.Lon[0], result.Lon[len(result.Lon)-1])
		}
		for i, v := range result.Data.Elements {
			if math.Abs(v-7) > 1e-9 {
				t.Fatalf("%s global element %d (lat=%g, lon=%g): want 7, have %g",
					method, i, result.Lats.Elements[i], result.Lons.Elements[i], v)
			}
		}
	}
}

func TestToRegularGridFast(t *testing.T) {
	c := NewConverter(N160, nil) // the fast path needs no interpolator
	data := make([]float64, N160.TotalPoints())
	for i := range data {
		data[i] = float64(i)
	}

	// Targets coincide with the first six source points.
	lats, lons := c.Grid.LatLonArrays()
	targetLats := sparse.ZerosDense(2, 3)
	targetLons := sparse.ZerosDense(2, 3)
	copy(targetLats.Elements, lats[:6])
	copy(targetLons.Elements, lons[:6])

	out, err := c.ToRegularGridFast(data, targetLats, targetLons)
	if err != nil {
		t.Fatal(err)
	}
	if !shapesEqual(out.Shape, []int{2, 3}) {
		t.Fatalf("shape: want [2 3], have %v", out.Shape)
	}
	for i, v := range out.Elements {
		if v != float64(i) {
			t.Errorf("element %d: want %d, have %g", i, i, v)
		}
	}
}

// Targets on the antimeridian and beyond the polar rows must resolve to a
// source value rather than failing the nearest-neighbor lookup.
func TestToRegularGridFastEdgeTargets(t *testing.T) {
	c := NewConverter(N160, nil)
	data := make([]float64, N160.TotalPoints())
	for i := range data {
		data[i] = 7
	}

	targetLats := sparse.ZerosDense(2, 3)
	targetLons := sparse.ZerosDense(2, 3)
	copy(targetLats.Elements, []float64{-84.6, -54.6, 89.9, -89.9, 0, 45})
	copy(targetLons.Elements, []float64{-180, 180, -180, 180, -180, 180})

	out, err := c.ToRegularGridFast(data, targetLats, targetLons)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Elements {
		if v != 7 {
			t.Errorf("target %d (lat=%g, lon=%g): want 7, have %g",
				i, targetLats.Elements[i], targetLons.Elements[i], v)
		}
	}
}

func TestToRegularGridFastArgumentChecks(t *testing.T) {
	c := NewConverter(N160, nil)
	data := make([]float64, N160.TotalPoints())

	_, err := c.ToRegularGridFast(data, sparse.ZerosDense(2, 3), sparse.ZerosDense(3, 2))
	if _, ok := err.(*InvalidParameterError); !ok {
		t.Errorf("mismatched targets: expected InvalidParameterError, have %T", err)
	}

	_, err = c.ToRegularGridFast(data[:10], sparse.ZerosDense(2, 3), sparse.ZerosDense(2, 3))
	if _, ok := err.(*ShapeMismatchError); !ok {
		t.Errorf("short data: expected ShapeMismatchError, have %T", err)
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		start, stop, step float64
		n                 int
		last              float64
	}{
		{0, 10.5, 1, 11, 10},
		{0, 10, 1, 10, 9},
		{-90, 90.125, 0.25, 721, 90},
		{5, 5, 1, 0, 0},
	}
	for _, test := range tests {
		vals := axis(test.start, test.stop, test.step)
		if len(vals) != test.n {
			t.Errorf("axis(%g, %g, %g): want %d samples, have %d",
				test.start, test.stop, test.step, test.n, len(vals))
			continue
		}
		if test.n > 0 {
			if vals[0] != test.start {
				t.Errorf("axis(%g, %g, %g): first sample %g",
					test.start, test.stop, test.step, vals[0])
			}
			if vals[test.n-1] != test.last {
				t.Errorf("axis(%g, %g, %g): want last %g, have %g",
					test.start, test.stop, test.step, test.last, vals[test.n-1])
			}
		}
	}
}
