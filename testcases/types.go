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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
)

// flatness is the curve flattening tolerance, in pixels, used to turn
// test case paths into polylines.
const flatness = 0.25

// TestCase defines a single tessellation test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Path   path.Path // the geometry; only the first subpath is used
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // stroke or native line
}

// Polyline returns the first subpath of tc.Path as a polyline.
// If the path has no subpath with at least two points, the result is
// empty.
func (tc *TestCase) Polyline() stroke.Polyline {
	polys := stroke.AppendPath(nil, tc.Path, flatness)
	if len(polys) == 0 {
		return nil
	}
	return polys[0]
}

// Operation is the tessellation applied to the polyline.
type Operation interface {
	isOperation()
}

// Stroke tessellates the polyline into a triangle strip.
type Stroke struct {
	Style stroke.Style
}

func (Stroke) isOperation() {}

// Line uses the native line strip fast path.
type Line struct{}

func (Line) isOperation() {}

// Tessellate applies the operation of tc, using t.
func (tc *TestCase) Tessellate(t *stroke.Tessellator) (*stroke.Mesh, error) {
	p := tc.Polyline()
	switch op := tc.Op.(type) {
	case Stroke:
		return t.Stroke(p, op.Style)
	default:
		return t.Line(p)
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// style returns the default style, modified by the given thickness,
// cap and join.
func style(thickness float64, c stroke.Endcap, j stroke.Join) stroke.Style {
	s := stroke.DefaultStyle()
	s.Thickness = thickness
	s.Endcap = c
	s.Join = j
	return s
}
