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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// callRecorder keeps copies of the draw calls it receives.
type callRecorder struct {
	calls []DrawCall
	err   error
}

func (r *callRecorder) Draw(call DrawCall) error {
	call.Vertices = append([]float32(nil), call.Vertices...)
	r.calls = append(r.calls, call)
	return r.err
}

func TestClipScale(t *testing.T) {
	got := ClipScale(200, 100)
	want := [2]float64{0.01, -0.02}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected scale (-want +got):\n%s", d)
	}
}

func TestPrimitiveDraw(t *testing.T) {
	p := NewPrimitive(Polyline{10, 10, 50, 10})
	p.Color = 0xff0000ff
	p.Style.Endcap = EndcapNone

	r := &callRecorder{}
	if err := p.Draw(r, 100, 50, false); err != nil {
		t.Fatal(err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("got %d draw calls, want 1", len(r.calls))
	}
	call := r.calls[0]
	if call.Mode != TriangleStrip || call.Count != 4 || len(call.Vertices) != 8 {
		t.Errorf("unexpected call: mode %s, count %d, %d values",
			call.Mode, call.Count, len(call.Vertices))
	}
	if call.Color != 0xff0000ff {
		t.Errorf("color = %08x", call.Color)
	}
	if call.Scale != ClipScale(100, 50) {
		t.Errorf("scale = %v", call.Scale)
	}
}

func TestPrimitiveRecalculate(t *testing.T) {
	p := NewPrimitive(Polyline{0, 0, 10, 0})
	p.Style.Endcap = EndcapNone

	m, err := p.Mesh(false)
	if err != nil {
		t.Fatal(err)
	}
	before := m.AppendVertices(nil)

	// Changes take effect only on recalculation.
	p.Vertices = Polyline{0, 0, 10, 0, 10, 10}
	m, err = p.Mesh(false)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(before, m.Vertices()); d != "" {
		t.Errorf("mesh changed without recalculation (-before +after):\n%s", d)
	}

	m, err = p.Mesh(true)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() <= len(before)/2 {
		t.Errorf("recalculated mesh has %d vertices", m.Len())
	}
}

func TestPrimitiveNative(t *testing.T) {
	p := NewPrimitive(Polyline{1, 2, 3, 4, 5, 6})
	p.Native = true

	r := &callRecorder{}
	if err := p.Draw(r, 10, 10, true); err != nil {
		t.Fatal(err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("got %d draw calls, want 1", len(r.calls))
	}
	call := r.calls[0]
	if call.Mode != LineStrip || call.Count != 3 {
		t.Errorf("mode %s, count %d; want LineStrip, 3", call.Mode, call.Count)
	}
}

func TestPrimitiveEmpty(t *testing.T) {
	p := NewPrimitive(Polyline{1, 2})
	r := &callRecorder{}
	if err := p.Draw(r, 10, 10, true); err != nil {
		t.Fatal(err)
	}
	if len(r.calls) != 0 {
		t.Errorf("empty mesh was drawn")
	}
}

func TestPrimitiveRendererError(t *testing.T) {
	errDevice := errors.New("device lost")
	p := NewPrimitive(Polyline{0, 0, 5, 5})
	r := &callRecorder{err: errDevice}
	if err := p.Draw(r, 10, 10, false); !errors.Is(err, errDevice) {
		t.Errorf("err = %v, want %v", err, errDevice)
	}
}
