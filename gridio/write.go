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

package gridio

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/spatialmodel/regrid"
)

// WriteRegular writes a resampled regular grid to w as a NetCDF file
// holding the named data variable on (lat, lon) dimensions plus the two
// axis variables.
func WriteRegular(w *os.File, d *regrid.RegularGridData, name, units string) error {
	if len(d.Data.Shape) != 2 {
		return fmt.Errorf("gridio: expected 2-dimensional data, got shape %v", d.Data.Shape)
	}
	nlat, nlon := d.Data.Shape[0], d.Data.Shape[1]
	if len(d.Lat) != nlat || len(d.Lon) != nlon {
		return fmt.Errorf("gridio: axis lengths (%d, %d) do not match data shape %v",
			len(d.Lat), len(d.Lon), d.Data.Shape)
	}

	h := cdf.NewHeader([]string{"lat", "lon"}, []int{nlat, nlon})
	h.AddAttribute("", "comment", "regridded from a reduced Gaussian grid")
	h.AddAttribute("", "lat_min", []float64{d.Lat[0]})
	h.AddAttribute("", "lon_min", []float64{d.Lon[0]})
	h.AddAttribute("", "nlat", []int32{int32(nlat)})
	h.AddAttribute("", "nlon", []int32{int32(nlon)})

	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddVariable(name, []string{"lat", "lon"}, []float64{0})
	if units != "" {
		h.AddAttribute(name, "units", units)
	}
	h.Define()

	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return fmt.Errorf("gridio: creating output file: %v", err)
	}
	if err := writeVar(f, "lat", d.Lat); err != nil {
		return err
	}
	if err := writeVar(f, "lon", d.Lon); err != nil {
		return err
	}
	if err := writeVar(f, name, d.Data.Elements); err != nil {
		return err
	}
	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("gridio: finalizing output file: %v", err)
	}
	return nil
}

func writeVar(f *cdf.File, name string, data []float64) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("gridio: writing variable %s: %v", name, err)
	}
	return nil
}
