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

// Package stroke converts polylines into vertex buffers for GPU rendering.
//
// A [Tessellator] turns a [Polyline] and a [Style] into a [Mesh], which
// is drawn as a triangle strip.  Flat and round end caps are supported,
// together with four kinds of corner joins.  The native fast path
// ([Tessellator.Line]) copies the points unchanged, for drawing as a line
// strip.
//
// The vertex buffer is owned by the Tessellator and is reused across calls.
// Its capacity is always a power of two and only changes when the required
// size leaves the range [capacity/2, capacity], so that redrawing a slowly
// changing polyline every frame does not allocate.
package stroke

import (
	"errors"
	"strconv"
)

const (
	// MinSize is the smallest vertex buffer capacity, in float32 values.
	MinSize = 16

	// MaxSize is the largest vertex buffer capacity, in float32 values.
	MaxSize = 1 << 24

	// ResolutionFloor is the smallest angular resolution, in radians,
	// accepted for end caps and joins.  This bounds the number of fan
	// steps per cap or join to ceil(π/ResolutionFloor) = 63.
	ResolutionFloor = 0.05
)

// ErrCapacityExceeded is returned when a mesh would need a vertex buffer
// larger than [MaxSize].
var ErrCapacityExceeded = errors.New("stroke: vertex buffer capacity exceeded")

// DrawMode tells the renderer how to assemble the vertices of a mesh.
type DrawMode uint8

const (
	// TriangleStrip means that every three consecutive vertices form a
	// triangle.
	TriangleStrip DrawMode = iota

	// LineStrip means that consecutive vertices are joined by hairlines.
	LineStrip
)

func (m DrawMode) String() string {
	switch m {
	case TriangleStrip:
		return "TriangleStrip"
	case LineStrip:
		return "LineStrip"
	default:
		return "DrawMode(" + strconv.Itoa(int(m)) + ")"
	}
}
