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

// DrawCall is everything a renderer needs to draw one mesh.
type DrawCall struct {
	// Vertices holds 2*Count interleaved x, y pixel coordinates.
	// The slice is only valid for the duration of the Draw call.
	Vertices []float32

	// Count is the number of vertices.
	Count int

	// Mode is the primitive type.
	Mode DrawMode

	// Color is the packed colour 0xRRGGBBAA.
	Color uint32

	// Scale maps pixel coordinates to clip space:
	// clip = (x*Scale[0] - 1, y*Scale[1] + 1).
	Scale [2]float64
}

// Renderer draws meshes.  Implementations issue the actual GPU draw call,
// or rasterise the mesh in software.
type Renderer interface {
	Draw(DrawCall) error
}

// ClipScale returns the scale factors which map a canvas of the given
// size in pixels, with the origin at the top left corner, to clip space.
func ClipScale(width, height int) [2]float64 {
	return [2]float64{2 / float64(width), -2 / float64(height)}
}

// NewDrawCall returns the draw call for the given mesh on a canvas of the
// given size.
func NewDrawCall(m *Mesh, color uint32, width, height int) DrawCall {
	return DrawCall{
		Vertices: m.Vertices(),
		Count:    m.Len(),
		Mode:     m.Mode(),
		Color:    color,
		Scale:    ClipScale(width, height),
	}
}
