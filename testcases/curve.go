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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(2, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(2, stroke.EndcapRound, stroke.JoinMiterRound)},
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 40, 60, 0, 4, 0, 54, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinRound)},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(2, stroke.EndcapNone, stroke.JoinMiter)},
	},
	{
		Name:   "spiral",
		Path:   spiralPath(32, 32, 3, 28, 3),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(1.5, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "spiral_thick",
		Path:   spiralPath(32, 32, 2, 26, 2),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapRound, stroke.JoinMiterRound)},
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Iter()
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Iter()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close().
		Iter()
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rMin, Y: cy}}) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			p := vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}
