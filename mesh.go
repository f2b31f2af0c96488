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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mesh is the result of tessellating a polyline.
//
// A Mesh is owned by the [Tessellator] which produced it.  Its contents
// are replaced by the next call to one of the Tessellator's methods.
type Mesh struct {
	buf   vertexBuffer
	count int
	mode  DrawMode
}

// Len returns the number of vertices in the mesh.
func (m *Mesh) Len() int {
	return m.count
}

// Cap returns the capacity of the underlying buffer, in float32 values.
func (m *Mesh) Cap() int {
	return len(m.buf.data)
}

// Mode returns the primitive type which must be used to draw the mesh.
func (m *Mesh) Mode() DrawMode {
	return m.mode
}

// Vertices returns the interleaved x, y coordinates of the vertices.
// The slice has length 2*m.Len() and aliases the mesh storage; it is valid
// until the mesh is next recomputed and must not be modified.
func (m *Mesh) Vertices() []float32 {
	return m.buf.data[:2*m.count]
}

// AppendVertices appends the vertex coordinates to dst and returns the
// extended slice.  Use this to keep a copy which outlives the mesh.
func (m *Mesh) AppendVertices(dst []float32) []float32 {
	return append(dst, m.Vertices()...)
}

// Vertex returns vertex i.  It panics unless 0 <= i < m.Len().
func (m *Mesh) Vertex(i int) vec.Vec2 {
	v := m.Vertices()
	return vec.Vec2{
		X: float64(v[2*i]),
		Y: float64(v[2*i+1]),
	}
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() rect.Rect {
	data := m.buf.data
	return boundsOf(m.count, func(i int) (float64, float64) {
		return float64(data[2*i]), float64(data[2*i+1])
	})
}
