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

var capCases = []TestCase{
	{
		Name:   "line_none",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapNone, stroke.JoinRound)},
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "diagonal_round",
		Path:   segment(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(5, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "round_coarse",
		Path:   horizontalLine(14, 32, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{Style: stroke.Style{
			Thickness:        10,
			Endcap:           stroke.EndcapRound,
			Join:             stroke.JoinRound,
			EndcapResolution: math.Pi / 2,
			JoinResolution:   0.5,
		}},
	},
}

var joinCases = []TestCase{
	{
		Name:   "corner_none",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinNone)},
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinRound)},
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinMiter)},
	},
	{
		Name:   "corner_miter_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinMiterRound)},
	},
	{
		Name:   "right_angle_miter",
		Path:   corner(10, 10, 40, 10, 40, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapNone, stroke.JoinMiter)},
	},
	{
		Name:   "sharp_miter_round",
		Path:   cornerAngle(10, 32, 50, 32, 170),
		Width:  64,
		Height: 64,
		Op: Stroke{Style: stroke.Style{
			Thickness:        4,
			Endcap:           stroke.EndcapRound,
			Join:             stroke.JoinMiterRound,
			EndcapResolution: 0.4,
			JoinResolution:   0.2,
		}},
	},
	{
		Name:   "zigzag_round",
		Path:   zigzag(8, 40, 20, 20, 32, 40, 44, 20, 56, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "zigzag_miter",
		Path:   zigzag(8, 40, 20, 20, 32, 40, 44, 20, 56, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinMiter)},
	},
	{
		Name:   "square_closed",
		Path:   closedSquare(16, 16, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapNone, stroke.JoinMiterRound)},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return segment(x1, y, x2, y)
}

// segment builds a single line segment.
func segment(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}})
	}
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}

// cornerAngle builds a path with two segments.  The first segment goes
// from (x1, y1) to (cx, cy), the second one turns by the given angle (in
// degrees) and has length 30.
func cornerAngle(x1, y1, cx, cy float64, turnDeg float64) path.Path {
	in := math.Atan2(cy-y1, cx-x1)
	out := in + turnDeg*math.Pi/180
	x2 := cx + 30*math.Cos(out)
	y2 := cy + 30*math.Sin(out)
	return corner(x1, y1, cx, cy, x2, y2)
}

// zigzag builds a zigzag path with three corners.
func zigzag(x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x4, Y: y4}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x5, Y: y5}})
	}
}

// closedSquare builds a closed square path starting at (x, y).
func closedSquare(x, y, side float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x + side, Y: y + side}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y + side}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}
