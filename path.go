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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxCurveSteps bounds the number of segments per curve.
const maxCurveSteps = 1 << 16

// AppendPath flattens p and appends one polyline per subpath to dst.
//
// Curves are replaced by line segments which deviate from the curve by at
// most flatness pixels.  A closed subpath ends with a copy of its start
// point.  Subpaths with fewer than two points are omitted.
func AppendPath(dst []Polyline, p path.Path, flatness float64) []Polyline {
	if !(flatness > 0) {
		flatness = 0.25
	}

	var cur Polyline
	var current, start vec.Vec2
	inSubpath := false

	finish := func() {
		if cur.Len() >= 2 {
			dst = append(dst, cur)
		}
		cur = nil
	}
	emit := func(pt vec.Vec2) {
		cur = append(cur, pt.X, pt.Y)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			start = current
			emit(current)
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			current = pts[0]
			emit(current)

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			flattenQuadratic(current, pts[0], pts[1], flatness, emit)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, emit)
			current = pts[2]

		case path.CmdClose:
			if inSubpath {
				if current != start {
					emit(start)
				}
				finish()
				current = start
				inSubpath = false
			}
		}
	}
	finish()

	return dst
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls emit for every point after p0.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// The maximal deviation from the chord is |P0 - 2*P1 + P2| / 4.
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	dev := e.Length()
	if !isFinite(dev) {
		emit(p2)
		return
	}
	n := 1
	if dev > flatness {
		n = int(min(math.Ceil(math.Sqrt(dev/flatness)), maxCurveSteps))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments and calls emit for every point after p0.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	// Wang's formula
	m := max(d1.Length(), d2.Length())
	if !isFinite(m) {
		emit(p3)
		return
	}
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(min(math.Ceil(nf), maxCurveSteps))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		emit(pt)
	}
}
