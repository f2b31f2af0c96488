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

package gpu

import (
	"errors"

	"github.com/gogpu/gputypes"

	"seehuhn.de/go/stroke"
)

// ErrShortVertexData is returned when a draw call has fewer vertex
// coordinates than its vertex count requires.
var ErrShortVertexData = errors.New("gpu: vertex data shorter than vertex count")

// Command is one recorded draw, ready for submission.
type Command struct {
	Primitive gputypes.PrimitiveState
	Color     gputypes.Color

	// Vertices holds 2*Count clip-space coordinates.
	Vertices []float32
	Count    int
}

// Recorder is a [stroke.Renderer] which records draw calls as commands.
// The vertex data is copied and converted to clip space, so the commands
// stay valid after the meshes change.
//
// The zero value is ready to use.
type Recorder struct {
	Commands []Command

	vertices []float32 // storage shared by all commands
}

// Draw records the draw call.
func (r *Recorder) Draw(call stroke.DrawCall) error {
	n := 2 * call.Count
	if len(call.Vertices) < n {
		return ErrShortVertexData
	}

	start := len(r.vertices)
	r.vertices = PixelToClip(r.vertices, call.Vertices[:n], call.Scale)

	r.Commands = append(r.Commands, Command{
		Primitive: PrimitiveState(call.Mode),
		Color:     UnpackColor(call.Color),
		Vertices:  r.vertices[start:len(r.vertices):len(r.vertices)],
		Count:     call.Count,
	})
	return nil
}

// Reset discards all recorded commands.  Storage is kept for reuse, so
// commands returned before Reset must not be used afterwards.
func (r *Recorder) Reset() {
	clear(r.Commands)
	r.Commands = r.Commands[:0]
	r.vertices = r.vertices[:0]
}
