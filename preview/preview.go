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

// Package preview draws stroke meshes in software.
//
// The output is meant for tests and for looking at meshes without a GPU.
// Triangles are anti-aliased by golang.org/x/image/vector.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/stroke"
)

// lineHalfWidth is half the width, in pixels, used for line strips.
const lineHalfWidth = 0.5

// Canvas is a [stroke.Renderer] which draws into an RGBA image.
type Canvas struct {
	Image *image.RGBA

	z *vector.Rasterizer
}

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
	}
}

// Draw composites the mesh described by call onto the canvas.
//
// All triangles of the mesh are collected into a single path, each with
// positive orientation.  Since the rasteriser adds up coverage, the parts
// of the strip which overlap are painted only once.
func (c *Canvas) Draw(call stroke.DrawCall) error {
	n := call.Count
	if len(call.Vertices) < 2*n {
		return fmt.Errorf("preview: %d vertices but only %d coordinates",
			n, len(call.Vertices))
	}

	b := c.Image.Bounds()
	c.z.Reset(b.Dx(), b.Dy())

	v := call.Vertices
	at := func(i int) (float32, float32) { return v[2*i], v[2*i+1] }

	switch call.Mode {
	case stroke.TriangleStrip:
		for i := 2; i < n; i++ {
			ax, ay := at(i - 2)
			bx, by := at(i - 1)
			cx, cy := at(i)
			c.addTriangle(ax, ay, bx, by, cx, cy)
		}
	case stroke.LineStrip:
		for i := 1; i < n; i++ {
			ax, ay := at(i - 1)
			bx, by := at(i)
			c.addLine(ax, ay, bx, by)
		}
	default:
		return fmt.Errorf("preview: unsupported draw mode %s", call.Mode)
	}

	src := image.NewUniform(unpack(call.Color))
	c.z.Draw(c.Image, b, src, image.Point{})
	return nil
}

// addTriangle adds the triangle with counter-clockwise orientation (in
// image coordinates, y pointing down).  Degenerate triangles are skipped.
func (c *Canvas) addTriangle(ax, ay, bx, by, cx, cy float32) {
	area := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	if area == 0 || math.IsNaN(float64(area)) {
		return
	}
	if area < 0 {
		bx, by, cx, cy = cx, cy, bx, by
	}
	c.z.MoveTo(ax, ay)
	c.z.LineTo(bx, by)
	c.z.LineTo(cx, cy)
	c.z.ClosePath()
}

// addLine adds a thin rectangle around the segment from a to b.
func (c *Canvas) addLine(ax, ay, bx, by float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*lineHalfWidth, dx/l*lineHalfWidth
	c.addTriangle(ax+nx, ay+ny, bx+nx, by+ny, bx-nx, by-ny)
	c.addTriangle(ax+nx, ay+ny, bx-nx, by-ny, ax-nx, ay-ny)
}

// unpack converts a packed 0xRRGGBBAA colour.
func unpack(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	}
}
