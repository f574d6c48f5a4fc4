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

package catalog

import (
	"sort"
	"testing"

	"github.com/spatialmodel/regrid"
)

func TestLookupRegular(t *testing.T) {
	spec, err := Lookup("CdsDomain", "era5")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Type != regrid.GridTypeRegular {
		t.Fatalf("type: want %s, have %s", regrid.GridTypeRegular, spec.Type)
	}
	g := spec.Regular
	if g.Nx != 1440 || g.Ny != 721 {
		t.Errorf("size: want 1440×721, have %d×%d", g.Nx, g.Ny)
	}
	if g.LatMin != -90 || g.LonMin != -180 {
		t.Errorf("origin: have (%g, %g)", g.LatMin, g.LonMin)
	}
	if g.Dx != 0.25 || g.Dy != 0.25 {
		t.Errorf("step: have (%g, %g)", g.Dx, g.Dy)
	}
}

func TestLookupGaussian(t *testing.T) {
	tests := []struct {
		domain, name string
		want         regrid.GaussianGridKind
	}{
		{"EcmwfEcpdsDomain", "ifs", regrid.O1280},
		{"EcmwfSeasDomain", "seas5", regrid.O320},
		{"EcmwfSeasDomain", "seas5_12hourly", regrid.N160},
	}
	for _, test := range tests {
		spec, err := Lookup(test.domain, test.name)
		if err != nil {
			t.Errorf("%s.%s: %v", test.domain, test.name, err)
			continue
		}
		if spec.Type != regrid.GridTypeGaussian {
			t.Errorf("%s.%s: type %s", test.domain, test.name, spec.Type)
			continue
		}
		if *spec.Gaussian != test.want {
			t.Errorf("%s.%s: want %s, have %s", test.domain, test.name, test.want, *spec.Gaussian)
		}
	}
}

func TestLookupProjection(t *testing.T) {
	spec, err := Lookup("KmaDomain", "ldps")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Type != regrid.GridTypeProjection {
		t.Fatalf("type: want %s, have %s", regrid.GridTypeProjection, spec.Type)
	}
	g := spec.Projection
	if g.Nx != 602 || g.Ny != 781 {
		t.Errorf("size: want 602×781, have %d×%d", g.Nx, g.Ny)
	}
	if g.Projection.Type != regrid.LambertConformalConic {
		t.Errorf("projection: have %s", g.Projection.Type)
	}
	p := g.Projection.Params
	if p.Lambda0 != 126 || p.Phi0 != 38 || p.Phi1 != 30 || p.Phi2 != 60 {
		t.Errorf("parameters: have %+v", p)
	}
	if p.Radius != 6371229 {
		t.Errorf("radius: want 6371229, have %g", p.Radius)
	}
	if g.CornerLat != 32.2569 || g.CornerLon != 121.834 {
		t.Errorf("corner: have (%g, %g)", g.CornerLat, g.CornerLon)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("NoSuchDomain", "era5"); err == nil {
		t.Error("unknown domain: expected error")
	}
	if _, err := Lookup("CdsDomain", "no_such_grid"); err == nil {
		t.Error("unknown grid: expected error")
	}
}

func TestDomains(t *testing.T) {
	domains, err := Domains()
	if err != nil {
		t.Fatal(err)
	}
	if !sort.StringsAreSorted(domains) {
		t.Error("domains not sorted")
	}
	for _, want := range []string{"CdsDomain", "EcmwfDomain", "KmaDomain", "IconDomains"} {
		i := sort.SearchStrings(domains, want)
		if i >= len(domains) || domains[i] != want {
			t.Errorf("domain %s missing", want)
		}
	}
}

func TestGrids(t *testing.T) {
	grids, err := Grids("CdsDomain")
	if err != nil {
		t.Fatal(err)
	}
	if !sort.StringsAreSorted(grids) {
		t.Error("grids not sorted")
	}
	i := sort.SearchStrings(grids, "era5")
	if i >= len(grids) || grids[i] != "era5" {
		t.Error("grid era5 missing")
	}

	if _, err := Grids("NoSuchDomain"); err == nil {
		t.Error("unknown domain: expected error")
	}
}

// Every catalog entry must produce a self-consistent grid specification.
func TestAllEntriesValid(t *testing.T) {
	domains, err := Domains()
	if err != nil {
		t.Fatal(err)
	}
	for _, domain := range domains {
		grids, err := Grids(domain)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range grids {
			spec, err := Lookup(domain, name)
			if err != nil {
				t.Errorf("%s.%s: %v", domain, name, err)
				continue
			}
			if err := spec.Validate(); err != nil {
				t.Errorf("%s.%s: %v", domain, name, err)
			}
		}
	}
}
