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
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/stroke"
)

func TestTopology(t *testing.T) {
	if got := Topology(stroke.TriangleStrip); got != gputypes.PrimitiveTopologyTriangleStrip {
		t.Errorf("TriangleStrip maps to %v", got)
	}
	if got := Topology(stroke.LineStrip); got != gputypes.PrimitiveTopologyLineStrip {
		t.Errorf("LineStrip maps to %v", got)
	}
	if PrimitiveState(stroke.TriangleStrip).CullMode != gputypes.CullModeNone {
		t.Error("triangle strips must not be culled")
	}
}

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()
	if l.ArrayStride != 8 || len(l.Attributes) != 1 {
		t.Fatalf("unexpected layout %+v", l)
	}
	if l.Attributes[0].Format != gputypes.VertexFormatFloat32x2 {
		t.Errorf("format = %v", l.Attributes[0].Format)
	}
}

func TestUnpackColor(t *testing.T) {
	got := UnpackColor(0xff008040)
	want := gputypes.Color{R: 1, G: 0, B: 128.0 / 255, A: 64.0 / 255}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("unexpected colour (-want +got):\n%s", d)
	}
}

func TestPixelToClip(t *testing.T) {
	scale := stroke.ClipScale(200, 100)
	src := []float32{0, 0, 200, 100, 100, 50}
	got := PixelToClip(nil, src, scale)
	want := []float32{-1, 1, 1, -1, 0, 0}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("unexpected clip coordinates (-want +got):\n%s", d)
	}
}

func TestRecorder(t *testing.T) {
	tess := stroke.NewTessellator()
	s := stroke.DefaultStyle()
	s.Endcap = stroke.EndcapNone

	var rec Recorder
	p := stroke.NewPrimitive(stroke.Polyline{0, 50, 200, 50})
	p.Style = s
	if err := p.Draw(&rec, 200, 100, true); err != nil {
		t.Fatal(err)
	}

	m, err := tess.Line(stroke.Polyline{0, 0, 100, 100})
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Draw(stroke.NewDrawCall(m, 0x00ff00ff, 200, 100)); err != nil {
		t.Fatal(err)
	}

	// The commands must not alias the tessellator's storage.
	if _, err := tess.Line(stroke.Polyline{1, 1, 2, 2}); err != nil {
		t.Fatal(err)
	}

	if len(rec.Commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(rec.Commands))
	}

	c := rec.Commands[0]
	if c.Primitive.Topology != gputypes.PrimitiveTopologyTriangleStrip || c.Count != 4 {
		t.Errorf("first command: topology %v, count %d", c.Primitive.Topology, c.Count)
	}
	want := []float32{-1, -0.04, -1, 0.04, 1, -0.04, 1, 0.04}
	if d := cmp.Diff(want, c.Vertices, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("first command vertices (-want +got):\n%s", d)
	}

	c = rec.Commands[1]
	if c.Primitive.Topology != gputypes.PrimitiveTopologyLineStrip {
		t.Errorf("second command: topology %v", c.Primitive.Topology)
	}
	want = []float32{-1, 1, 0, -1}
	if d := cmp.Diff(want, c.Vertices, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("second command vertices (-want +got):\n%s", d)
	}
	if c.Color.G != 1 || c.Color.R != 0 {
		t.Errorf("second command colour %+v", c.Color)
	}

	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Errorf("%d commands after Reset", len(rec.Commands))
	}
}

func TestRecorderShortData(t *testing.T) {
	var rec Recorder
	call := stroke.DrawCall{
		Vertices: []float32{1, 2, 3},
		Count:    2,
		Scale:    stroke.ClipScale(10, 10),
	}
	if err := rec.Draw(call); !errors.Is(err, ErrShortVertexData) {
		t.Errorf("err = %v, want ErrShortVertexData", err)
	}
	if len(rec.Commands) != 0 {
		t.Error("invalid call was recorded")
	}
}
