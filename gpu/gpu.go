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

// Package gpu describes stroke meshes in terms of WebGPU pipeline state.
//
// The package does not talk to a device.  It translates draw calls into
// the topology, vertex layout, colour and clip-space vertex data which a
// WebGPU backend needs to submit them.
package gpu

import (
	"github.com/gogpu/gputypes"

	"seehuhn.de/go/stroke"
)

// vertexStride is the size of one x, y vertex in bytes.
const vertexStride = 8

// Topology returns the primitive topology for drawing a mesh in mode m.
func Topology(m stroke.DrawMode) gputypes.PrimitiveTopology {
	if m == stroke.LineStrip {
		return gputypes.PrimitiveTopologyLineStrip
	}
	return gputypes.PrimitiveTopologyTriangleStrip
}

// PrimitiveState returns the primitive state for drawing a mesh in mode m.
// Culling is disabled, since consecutive triangles of a strip alternate
// in orientation.
func PrimitiveState(m stroke.DrawMode) gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: Topology(m),
		CullMode: gputypes.CullModeNone,
	}
}

// VertexLayout returns the layout of the vertex buffer: one float32 x, y
// pair per vertex, at shader location 0.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}

// UnpackColor converts a packed 0xRRGGBBAA colour into a gputypes.Color.
func UnpackColor(rgba uint32) gputypes.Color {
	return gputypes.Color{
		R: float64(rgba>>24&0xff) / 255,
		G: float64(rgba>>16&0xff) / 255,
		B: float64(rgba>>8&0xff) / 255,
		A: float64(rgba&0xff) / 255,
	}
}

// PixelToClip appends the vertices in src, converted from pixel to clip
// coordinates, to dst.  Each x becomes x*scale[0] - 1 and each y becomes
// y*scale[1] + 1.
func PixelToClip(dst, src []float32, scale [2]float64) []float32 {
	sx, sy := float32(scale[0]), float32(scale[1])
	for i := 0; i+1 < len(src); i += 2 {
		dst = append(dst, src[i]*sx-1, src[i+1]*sy+1)
	}
	return dst
}
