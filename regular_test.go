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

import "testing"

// era5Grid is the ECMWF ERA5 0.25° global grid.
var era5Grid = RegularGrid{
	Nx: 1440, Ny: 721,
	LatMin: -90, LonMin: -180,
	Dx: 0.25, Dy: 0.25,
}

func TestRegularFindPointXY(t *testing.T) {
	tests := []struct {
		lat, lon float64
		x, y     int
	}{
		{-90, -180, 0, 0},
		{0, 0, 720, 360},
		{90, 180, 1439, 720}, // the north-east corner wraps in longitude
		{52.52, 13.405, 774, 570},
		{-33.87, 151.21, 1325, 225},
	}
	for _, test := range tests {
		x, y, err := era5Grid.FindPointXY(test.lat, test.lon)
		if err != nil {
			t.Errorf("(%g, %g): %v", test.lat, test.lon, err)
			continue
		}
		if x != test.x || y != test.y {
			t.Errorf("(%g, %g): want (%d, %d), have (%d, %d)",
				test.lat, test.lon, test.x, test.y, x, y)
		}
	}
}

func TestRegularFindPoint(t *testing.T) {
	have, err := era5Grid.FindPoint(90, 180)
	if err != nil {
		t.Fatal(err)
	}
	if want := 720*1440 + 1439; have != want {
		t.Errorf("want %d, have %d", want, have)
	}
}

func TestRegularWraparound(t *testing.T) {
	g := RegularGrid{
		Nx: 360, Ny: 181,
		LatMin: -90, LonMin: -180,
		Dx: 1, Dy: 1,
	}
	tests := []struct {
		lat, lon float64
		x, y     int
	}{
		{0, 180.4, 359, 90},     // x == nx snaps to nx-1
		{0, 181.4, 359, 90},     // x == nx+1 snaps to nx-1
		{0, -180.6, 0, 90},      // x == -1 snaps to 0
		{90.6, 0, 180, 180},     // y == ny snaps to ny-1
		{-90.6, 0, 180, 0},      // y == -1 snaps to 0
		{90.6, 181.4, 359, 180}, // both corrections at once
	}
	for _, test := range tests {
		x, y, err := g.FindPointXY(test.lat, test.lon)
		if err != nil {
			t.Errorf("(%g, %g): %v", test.lat, test.lon, err)
			continue
		}
		if x != test.x || y != test.y {
			t.Errorf("(%g, %g): want (%d, %d), have (%d, %d)",
				test.lat, test.lon, test.x, test.y, x, y)
		}
	}

	// Still out of range after correction.
	if _, _, err := g.FindPointXY(0, 183); err == nil {
		t.Error("(0, 183): expected error")
	} else if _, ok := err.(*OutOfBoundsError); !ok {
		t.Errorf("(0, 183): expected OutOfBoundsError, have %T", err)
	}
	if _, _, err := g.FindPointXY(92, 0); err == nil {
		t.Error("(92, 0): expected error")
	}
}

// A grid covering only part of the globe gets no wraparound corrections.
func TestRegularOutOfBounds(t *testing.T) {
	g := RegularGrid{
		Nx: 10, Ny: 10,
		LatMin: 30, LonMin: 100,
		Dx: 0.5, Dy: 0.5,
	}
	if _, _, err := g.FindPointXY(32, 102); err != nil {
		t.Errorf("(32, 102): %v", err)
	}
	for _, test := range []struct{ lat, lon float64 }{
		{90, 180},
		{29, 102},
		{32, 99.6}, // x == -1, but the grid is not global
	} {
		if _, _, err := g.FindPointXY(test.lat, test.lon); err == nil {
			t.Errorf("(%g, %g): expected error", test.lat, test.lon)
		} else if _, ok := err.(*OutOfBoundsError); !ok {
			t.Errorf("(%g, %g): expected OutOfBoundsError, have %T", test.lat, test.lon, err)
		}
	}
}

// Exact midpoints round away from zero, not to even.
func TestRegularRounding(t *testing.T) {
	g := RegularGrid{
		Nx: 360, Ny: 181,
		LatMin: -90, LonMin: -180,
		Dx: 1, Dy: 1,
	}
	x, y, err := g.FindPointXY(-89.5, -179.5)
	if err != nil {
		t.Fatal(err)
	}
	if x != 1 || y != 1 {
		t.Errorf("want (1, 1), have (%d, %d)", x, y)
	}
}

func TestRegularValidate(t *testing.T) {
	tests := []struct {
		grid  RegularGrid
		param string
	}{
		{RegularGrid{Nx: 0, Ny: 10, Dx: 1, Dy: 1}, "nx"},
		{RegularGrid{Nx: 10, Ny: 0, Dx: 1, Dy: 1}, "ny"},
		{RegularGrid{Nx: 10, Ny: 10, Dx: 0, Dy: 1}, "dx"},
		{RegularGrid{Nx: 10, Ny: 10, Dx: 1, Dy: 0}, "dy"},
	}
	for _, test := range tests {
		err := test.grid.Validate()
		if err == nil {
			t.Errorf("%s: expected error", test.param)
			continue
		}
		pe, ok := err.(*InvalidParameterError)
		if !ok {
			t.Errorf("%s: expected InvalidParameterError, have %T", test.param, err)
			continue
		}
		if pe.Param != test.param {
			t.Errorf("want param %s, have %s", test.param, pe.Param)
		}
	}
	if err := era5Grid.Validate(); err != nil {
		t.Errorf("era5: %v", err)
	}
}

func TestRegularBounds(t *testing.T) {
	if want, have := 90.0, era5Grid.LatMax(); have != want {
		t.Errorf("LatMax: want %g, have %g", want, have)
	}
	if want, have := 179.75, era5Grid.LonMax(); have != want {
		t.Errorf("LonMax: want %g, have %g", want, have)
	}
}
