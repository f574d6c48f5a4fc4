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

// Package gridio reads and writes gridded data as NetCDF files. A file acts
// as a flat data source: it declares its dimensions and yields a flattened
// row-major data array, which the caller indexes through a grid
// specification. Reduced-Gaussian-backed files declare shape
// (1, totalPoints); regular-grid-backed files declare (ny, nx).
package gridio

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/spatialmodel/regrid"
)

// File is a flat gridded data source.
type File struct {
	f *cdf.File
}

// Open reads the header of a NetCDF data source.
func Open(rw cdf.ReaderWriterAt) (*File, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("gridio: opening file: %v", err)
	}
	return &File{f: f}, nil
}

// Variables returns the names of the variables in the file.
func (f *File) Variables() []string {
	return f.f.Header.Variables()
}

// Dimensions returns the declared dimension lengths of a variable.
func (f *File) Dimensions(variable string) ([]int, error) {
	dims := f.f.Header.Lengths(variable)
	if len(dims) == 0 {
		return nil, fmt.Errorf("gridio: variable %q not found", variable)
	}
	return dims, nil
}

// Read returns the full contents of a variable as a flattened row-major
// float64 array.
func (f *File) Read(variable string) ([]float64, error) {
	dims, err := f.Dimensions(variable)
	if err != nil {
		return nil, err
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	r := f.f.Reader(variable, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("gridio: reading variable %q: %v", variable, err)
	}
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		o := make([]float64, len(b))
		for i, v := range b {
			o[i] = float64(v)
		}
		return o, nil
	case []int32:
		o := make([]float64, len(b))
		for i, v := range b {
			o[i] = float64(v)
		}
		return o, nil
	}
	return nil, fmt.Errorf("gridio: variable %q has unsupported type %T", variable, buf)
}

// QueryRegular reads the value of variable at the grid point nearest
// (lat, lon) on a regular grid. The file's declared shape must match the
// grid's (ny, nx).
func QueryRegular(f *File, grid regrid.RegularGrid, variable string, lat, lon float64) (float64, error) {
	dims, err := f.Dimensions(variable)
	if err != nil {
		return 0, err
	}
	if len(dims) < 2 {
		return 0, fmt.Errorf("gridio: expected at least 2 dimensions for variable %q, got %v", variable, dims)
	}
	ny, nx := dims[0], dims[1]
	if nx != grid.Nx || ny != grid.Ny {
		return 0, &regrid.ShapeMismatchError{Want: grid.Nx * grid.Ny, Have: nx * ny}
	}
	i, err := grid.FindPoint(lat, lon)
	if err != nil {
		return 0, err
	}
	data, err := f.Read(variable)
	if err != nil {
		return 0, err
	}
	return data[i], nil
}

// QueryGaussian reads the value of variable at the reduced Gaussian grid
// point nearest (lat, lon). The file's declared shape must flatten to the
// grid's total point count.
func QueryGaussian(f *File, kind regrid.GaussianGridKind, variable string, lat, lon float64) (float64, error) {
	dims, err := f.Dimensions(variable)
	if err != nil {
		return 0, err
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	if want := kind.TotalPoints(); n != want {
		return 0, &regrid.ShapeMismatchError{Want: want, Have: n}
	}
	data, err := f.Read(variable)
	if err != nil {
		return 0, err
	}
	grid := regrid.ReducedGaussianGrid{Kind: kind}
	return data[grid.FindPoint(lat, lon)], nil
}
