// seehuhn.de/go/stroke - polyline tessellation for GPU rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stroke

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polyline is a sequence of points in pixel coordinates, stored as
// interleaved x, y values.  A trailing odd value is ignored.
type Polyline []float64

// PolylineFromPoints returns the polyline through the given points.
func PolylineFromPoints(pts []vec.Vec2) Polyline {
	p := make(Polyline, 0, 2*len(pts))
	for _, pt := range pts {
		p = append(p, pt.X, pt.Y)
	}
	return p
}

// Len returns the number of points.
func (p Polyline) Len() int {
	return len(p) / 2
}

// At returns point i.
func (p Polyline) At(i int) vec.Vec2 {
	return vec.Vec2{X: p[2*i], Y: p[2*i+1]}
}

// Transform applies the affine transformation m to all points, in place.
func (p Polyline) Transform(m matrix.Matrix) {
	for i := 0; i+1 < len(p); i += 2 {
		x, y := p[i], p[i+1]
		p[i] = m[0]*x + m[2]*y + m[4]
		p[i+1] = m[1]*x + m[3]*y + m[5]
	}
}

// Bounds returns the smallest rectangle containing all finite points.
// The zero rectangle is returned if there are no such points.
func (p Polyline) Bounds() rect.Rect {
	return boundsOf(len(p)/2, func(i int) (float64, float64) {
		return p[2*i], p[2*i+1]
	})
}

func boundsOf(n int, at func(int) (float64, float64)) rect.Rect {
	var r rect.Rect
	first := true
	for i := range n {
		x, y := at(i)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		if first {
			r = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			first = false
			continue
		}
		r.LLx = min(r.LLx, x)
		r.LLy = min(r.LLy, y)
		r.URx = max(r.URx, x)
		r.URy = max(r.URy, y)
	}
	return r
}

func isFinitePoint(p vec.Vec2) bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
