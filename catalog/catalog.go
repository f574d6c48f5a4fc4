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

// Package catalog holds the static table of named grid definitions for the
// supported weather-model data sources. The table is embedded configuration
// data, parsed once on first use and read-only thereafter.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/regrid"
)

//go:embed grids.toml
var gridsTOML string

// tomlProjection mirrors a projection subtable of grids.toml.
type tomlProjection struct {
	Type      string  `toml:"type"`
	Lambda0   float64 `toml:"lambda0"`
	Phi0      float64 `toml:"phi0"`
	Phi1      float64 `toml:"phi1"`
	Phi2      float64 `toml:"phi2"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Radius    float64 `toml:"radius"`
}

// tomlEntry mirrors one grid table of grids.toml.
type tomlEntry struct {
	Type string `toml:"type"`

	// Regular grids.
	Nx           int     `toml:"nx"`
	Ny           int     `toml:"ny"`
	LatMin       float64 `toml:"latMin"`
	LonMin       float64 `toml:"lonMin"`
	Dx           float64 `toml:"dx"`
	Dy           float64 `toml:"dy"`
	SearchRadius int     `toml:"searchRadius"`

	// Gaussian grids.
	GridType string `toml:"gridType"`

	// Projection grids.
	Latitude      float64         `toml:"latitude"`
	Longitude     float64         `toml:"longitude"`
	LatRange      []float64       `toml:"latRange"`
	LonRange      []float64       `toml:"lonRange"`
	LatOriginProj float64         `toml:"latitudeProjectionOrigin"`
	LonOriginProj float64         `toml:"longitudeProjectionOrigin"`
	Projection    *tomlProjection `toml:"projection"`
}

var (
	loadOnce sync.Once
	loadErr  error
	specs    map[string]map[string]regrid.GridSpec
)

func load() {
	var raw map[string]map[string]tomlEntry
	if _, err := toml.Decode(gridsTOML, &raw); err != nil {
		loadErr = fmt.Errorf("catalog: parsing embedded grid table: %v", err)
		return
	}
	specs = make(map[string]map[string]regrid.GridSpec, len(raw))
	for domain, grids := range raw {
		specs[domain] = make(map[string]regrid.GridSpec, len(grids))
		for name, e := range grids {
			spec, err := e.spec()
			if err != nil {
				loadErr = fmt.Errorf("catalog: %s.%s: %v", domain, name, err)
				return
			}
			specs[domain][name] = spec
		}
	}
}

// spec converts a parsed table entry into a grid specification.
func (e tomlEntry) spec() (regrid.GridSpec, error) {
	switch regrid.GridType(e.Type) {
	case regrid.GridTypeRegular:
		g := &regrid.RegularGrid{
			Nx: e.Nx, Ny: e.Ny,
			LatMin: e.LatMin, LonMin: e.LonMin,
			Dx: e.Dx, Dy: e.Dy,
			SearchRadius: e.SearchRadius,
		}
		if err := g.Validate(); err != nil {
			return regrid.GridSpec{}, err
		}
		return regrid.GridSpec{Type: regrid.GridTypeRegular, Regular: g}, nil

	case regrid.GridTypeGaussian:
		kind, err := regrid.ParseGaussianGridKind(e.GridType)
		if err != nil {
			return regrid.GridSpec{}, err
		}
		return regrid.GridSpec{Type: regrid.GridTypeGaussian, Gaussian: &kind}, nil

	case regrid.GridTypeProjection:
		if e.Projection == nil {
			return regrid.GridSpec{}, fmt.Errorf("projection grid has no projection table")
		}
		g := &regrid.ProjectionGrid{
			Nx: e.Nx, Ny: e.Ny,
			CornerLat: e.Latitude, CornerLon: e.Longitude,
			OriginLat: e.LatOriginProj, OriginLon: e.LonOriginProj,
			Dx: e.Dx, Dy: e.Dy,
			Projection: regrid.Projection{
				Type: regrid.ProjectionType(e.Projection.Type),
				Params: regrid.ProjectionParams{
					Lambda0:   e.Projection.Lambda0,
					Phi0:      e.Projection.Phi0,
					Phi1:      e.Projection.Phi1,
					Phi2:      e.Projection.Phi2,
					Latitude:  e.Projection.Latitude,
					Longitude: e.Projection.Longitude,
					Radius:    e.Projection.Radius,
				},
			},
		}
		if len(e.LatRange) == 2 {
			g.LatRange = [2]float64{e.LatRange[0], e.LatRange[1]}
		}
		if len(e.LonRange) == 2 {
			g.LonRange = [2]float64{e.LonRange[0], e.LonRange[1]}
		}
		switch g.Projection.Type {
		case regrid.LambertConformalConic, regrid.RotatedLatLon,
			regrid.Stereographic, regrid.LambertAzimuthalEqualArea:
		default:
			return regrid.GridSpec{}, fmt.Errorf("unknown projection type %q", e.Projection.Type)
		}
		return regrid.GridSpec{Type: regrid.GridTypeProjection, Projection: g}, nil
	}
	return regrid.GridSpec{}, fmt.Errorf("unknown grid type %q", e.Type)
}

// Lookup returns the grid specification registered for the given domain and
// grid name.
func Lookup(domain, name string) (regrid.GridSpec, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return regrid.GridSpec{}, loadErr
	}
	grids, ok := specs[domain]
	if !ok {
		return regrid.GridSpec{}, fmt.Errorf("catalog: unknown domain %q", domain)
	}
	spec, ok := grids[name]
	if !ok {
		return regrid.GridSpec{}, fmt.Errorf("catalog: unknown grid %q in domain %q", name, domain)
	}
	return spec, nil
}

// Domains returns the registered domain names, sorted.
func Domains() ([]string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	o := make([]string, 0, len(specs))
	for d := range specs {
		o = append(o, d)
	}
	sort.Strings(o)
	return o, nil
}

// Grids returns the grid names registered for a domain, sorted.
func Grids(domain string) ([]string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	grids, ok := specs[domain]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown domain %q", domain)
	}
	o := make([]string, 0, len(grids))
	for g := range grids {
		o = append(o, g)
	}
	sort.Strings(o)
	return o, nil
}
