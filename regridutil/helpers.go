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

package regridutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spatialmodel/regrid/gridio"
	"github.com/spf13/cast"
)

// openInput opens a data file path after expanding any environment
// variables it contains.
func openInput(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("regrid: no input file specified; did you mean to set the --File flag?")
	}
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("regrid: opening input file: %v", err)
	}
	return f, nil
}

// pickVariable resolves the variable to read: the requested name if given,
// otherwise the file's first non-axis variable.
func pickVariable(f *gridio.File, name string) (string, error) {
	vars := f.Variables()
	if name != "" {
		for _, v := range vars {
			if v == name {
				return name, nil
			}
		}
		return "", fmt.Errorf("regrid: variable %q not in file; file contains %v", name, vars)
	}
	for _, v := range vars {
		if v != "lat" && v != "lon" {
			return v, nil
		}
	}
	return "", fmt.Errorf("regrid: no data variable in file")
}

// parseRange parses a "min,max" flag value. An empty string means the range
// is unset.
func parseRange(s string) (*[2]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"min,max\", got %q", s)
	}
	min, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	max, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return &[2]float64{min, max}, nil
}
