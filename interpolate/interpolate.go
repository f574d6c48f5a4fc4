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

// Package interpolate estimates values at arbitrary locations from
// scattered data points. It defines the interpolation contract consumed by
// the regridding converter and provides a spatial-index-backed
// implementation of it, so that the converter does not depend on any
// particular numerical backend.
package interpolate

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Method selects an interpolation strategy.
type Method int

const (
	// Nearest assigns each target the value of its nearest source point.
	Nearest Method = iota
	// Linear performs distance-weighted interpolation over the nearest
	// source points.
	Linear
	// Cubic performs distance-weighted interpolation over a wider
	// neighborhood of source points.
	Cubic
)

// ParseMethod converts a method name ("nearest", "linear", or "cubic") to a
// Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return 0, fmt.Errorf("interpolate: unknown method %q; expected nearest, linear, or cubic", name)
}

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Interpolator estimates values at target locations from scattered source
// points and their values. Implementations must be pure functions of their
// inputs: targets that cannot be estimated receive fill.
type Interpolator interface {
	Interpolate(src []geom.Point, vals []float64, dst []geom.Point, method Method, fill float64) ([]float64, error)
}

// srcPoint is a source point stored in the spatial index together with its
// value.
type srcPoint struct {
	geom.Point
	val float64
}

// buildIndex loads the source points into an R-tree.
func buildIndex(src []geom.Point, vals []float64) (*rtree.Rtree, error) {
	if len(src) != len(vals) {
		return nil, fmt.Errorf("interpolate: source points and values have mismatched lengths: %d vs %d",
			len(src), len(vals))
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("interpolate: no source points")
	}
	tree := rtree.NewTree(25, 50)
	for i, p := range src {
		tree.Insert(&srcPoint{Point: p, val: vals[i]})
	}
	return tree, nil
}

// nearestValue returns the value of the source point nearest p. The index's
// single-result nearest lookup prunes too aggressively for some query points
// and finds nothing even inside the indexed bounds, so the k-nearest search
// is used and widened until a candidate appears, with a full scan as the
// last resort.
func nearestValue(tree *rtree.Rtree, p geom.Point) float64 {
	for k := 1; k <= 32; k *= 2 {
		if val, ok := nearestOf(tree.NearestNeighbors(k, p), p); ok {
			return val
		}
	}
	everything := &geom.Bounds{
		Min: geom.Point{X: math.Inf(-1), Y: math.Inf(-1)},
		Max: geom.Point{X: math.Inf(1), Y: math.Inf(1)},
	}
	val, _ := nearestOf(tree.SearchIntersect(everything), p)
	return val
}

// hasCandidate reports whether any search slot is filled.
func hasCandidate(candidates []geom.Geom) bool {
	for _, c := range candidates {
		if c != nil {
			return true
		}
	}
	return false
}

// nearestOf picks the candidate closest to p, skipping empty slots.
func nearestOf(candidates []geom.Geom, p geom.Point) (float64, bool) {
	var val float64
	bestD := math.Inf(1)
	found := false
	for _, c := range candidates {
		if c == nil {
			continue
		}
		sp := c.(*srcPoint)
		if d := sqDist(p, sp.Point); d < bestD {
			bestD = d
			val = sp.val
			found = true
		}
	}
	return val, found
}

func sqDist(a, b geom.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
