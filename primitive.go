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

// Primitive is a polyline together with its colour and stroke style.
// It keeps the tessellated mesh between draws, and recomputes it only
// when the caller asks for it.
type Primitive struct {
	// Vertices are the points of the polyline, in pixel coordinates.
	Vertices Polyline

	// Color is the packed colour 0xRRGGBBAA.
	Color uint32

	// Style is used unless Native is set.
	Style Style

	// Native selects the line strip fast path, which ignores Style.
	Native bool

	tess  *Tessellator
	valid bool
}

// NewPrimitive returns an opaque black primitive with the default style.
func NewPrimitive(vertices Polyline) *Primitive {
	return &Primitive{
		Vertices: vertices,
		Color:    0x000000ff,
		Style:    DefaultStyle(),
	}
}

// Mesh returns the tessellated polyline.  The mesh is recomputed if
// recalculate is true, or if it has never been computed.  Changes to the
// exported fields only take effect on recalculation.
func (p *Primitive) Mesh(recalculate bool) (*Mesh, error) {
	if p.tess == nil {
		p.tess = NewTessellator()
	}
	if p.valid && !recalculate {
		return p.tess.Mesh(), nil
	}

	var m *Mesh
	var err error
	if p.Native {
		m, err = p.tess.Line(p.Vertices)
	} else {
		m, err = p.tess.Stroke(p.Vertices, p.Style)
	}
	p.valid = err == nil
	return m, err
}

// Draw draws the primitive on a canvas of the given size.
// See [Primitive.Mesh] for the meaning of recalculate.
// Empty meshes are not passed to the renderer.
func (p *Primitive) Draw(r Renderer, width, height int, recalculate bool) error {
	m, err := p.Mesh(recalculate)
	if err != nil {
		return err
	}
	if m.Len() == 0 {
		return nil
	}
	return r.Draw(NewDrawCall(m, p.Color, width, height))
}
