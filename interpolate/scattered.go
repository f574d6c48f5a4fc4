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
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Neighborhood sizes for the weighted methods.
const (
	linearNeighbors = 4
	cubicNeighbors  = 12
)

// exactHitTol is the squared distance below which a target is considered to
// coincide with a source point.
const exactHitTol = 1e-24

// Scattered is a general-purpose scattered-data Interpolator backed by an
// R-tree spatial index. Nearest returns the exact nearest-neighbor value.
// Linear and Cubic compute an inverse-distance-weighted average over the
// nearest source points; both reproduce constant fields exactly.
type Scattered struct {
	// MaxDistance, if positive, is the farthest (in coordinate units) a
	// target may lie from its nearest source point under the Linear and
	// Cubic methods before it receives the fill value. Zero disables the
	// cutoff. Nearest never fills.
	MaxDistance float64
}

// Interpolate estimates a value for every target point.
func (s *Scattered) Interpolate(src []geom.Point, vals []float64, dst []geom.Point, method Method, fill float64) ([]float64, error) {
	switch method {
	case Nearest, Linear, Cubic:
	default:
		return nil, fmt.Errorf("interpolate: unsupported method %s", method)
	}

	tree, err := buildIndex(src, vals)
	if err != nil {
		return nil, err
	}

	k := 0
	switch method {
	case Linear:
		k = linearNeighbors
	case Cubic:
		k = cubicNeighbors
	}
	if k > len(src) {
		k = len(src)
	}

	out := make([]float64, len(dst))
	for i, p := range dst {
		if method == Nearest {
			out[i] = nearestValue(tree, p)
			continue
		}
		out[i] = weightedAt(tree, p, k, s.MaxDistance, fill)
	}
	return out, nil
}

// weightedAt computes the inverse-distance-weighted value at p from its k
// nearest source points. A target coincident with a source point takes that
// point's value directly.
func weightedAt(tree *rtree.Rtree, p geom.Point, k int, maxDist, fill float64) float64 {
	// The widened retry mirrors nearestValue: the index's pruning can come
	// back empty for valid query points.
	neighbors := tree.NearestNeighbors(k, p)
	for widen := 2 * k; !hasCandidate(neighbors) && widen <= 1024; widen *= 2 {
		neighbors = tree.NearestNeighbors(widen, p)
	}

	var wSum, vSum float64
	nearest := math.Inf(1)
	for _, n := range neighbors {
		if n == nil {
			continue
		}
		sp := n.(*srcPoint)
		d2 := sqDist(p, sp.Point)
		if d2 < exactHitTol {
			return sp.val
		}
		if d2 < nearest {
			nearest = d2
		}
		w := 1 / d2
		wSum += w
		vSum += w * sp.val
	}
	if wSum == 0 {
		return fill
	}
	if maxDist > 0 && nearest > maxDist*maxDist {
		return fill
	}
	return vSum / wSum
}
