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

package interpolate

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// NearestField is a reusable nearest-neighbor lookup over a fixed set of
// source points. Building the index once and querying it repeatedly is the
// fast path for resampling many data arrays that share the same source
// grid.
type NearestField struct {
	tree *rtree.Rtree
}

// NewNearestField indexes the source points and their values.
func NewNearestField(src []geom.Point, vals []float64) (*NearestField, error) {
	tree, err := buildIndex(src, vals)
	if err != nil {
		return nil, err
	}
	return &NearestField{tree: tree}, nil
}

// At returns the value of the source point nearest each target.
func (f *NearestField) At(dst []geom.Point) []float64 {
	out := make([]float64, len(dst))
	for i, p := range dst {
		out[i] = nearestValue(f.tree, p)
	}
	return out
}
