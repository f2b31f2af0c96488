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
	"seehuhn.de/go/geom/vec"
)

// Tessellator converts polylines into meshes.
//
// Create one instance and reuse it for every redraw of the same polyline.
// The vertex buffer grows as needed and shrinks only when more than half
// of it stays unused, so that the steady state does not allocate.
//
// A Tessellator is not safe for concurrent use.
type Tessellator struct {
	mesh  Mesh
	style Style

	// pts collects the vertices of one control point, so that they can be
	// dropped as a group if any of them is not finite.
	pts []vec.Vec2

	// last is the most recent vertex in the strip, if any.
	last    vec.Vec2
	hasLast bool
}

// NewTessellator returns a Tessellator with an empty mesh.
func NewTessellator() *Tessellator {
	return &Tessellator{
		mesh: Mesh{buf: newVertexBuffer()},
	}
}

// Mesh returns the result of the most recent call to Stroke or Line.
func (t *Tessellator) Mesh() *Mesh {
	return &t.mesh
}

// pointKind classifies a control point by its position in a run.
type pointKind uint8

const (
	startCap pointKind = iota
	interiorJoin
	endCap
)

func classify(i, n int) pointKind {
	switch i {
	case 0:
		return startCap
	case n - 1:
		return endCap
	default:
		return interiorJoin
	}
}

// Stroke tessellates the polyline p into a triangle strip of the given
// style.  The returned mesh is the Tessellator's own mesh.
//
// If the style is invalid or p has fewer than two points, the mesh is
// empty.  Points with non-finite coordinates break the polyline: every
// run of at least two finite points is stroked separately, with its own
// caps.  The same happens at corners for which no finite join exists.
// Runs are joined inside the strip by degenerate triangles only.  The
// only error is [ErrCapacityExceeded]; in this case the mesh is empty as
// well.
//
// The caller must not modify p while Stroke runs.
func (t *Tessellator) Stroke(p Polyline, s Style) (*Mesh, error) {
	m := &t.mesh
	m.buf.reset()
	m.mode = TriangleStrip
	t.hasLast = false

	n := p.Len()
	if n >= 2 && s.Valid() {
		t.style = s
		for lo := 0; lo < n; {
			if !isFinitePoint(p.At(lo)) {
				Logger().Debug("skipping undrawable control point", "index", lo)
				lo++
				continue
			}
			hi := lo + 1
			for hi < n && isFinitePoint(p.At(hi)) {
				hi++
			}
			if hi-lo >= 2 {
				t.strokeRun(p, lo, hi)
			}
			lo = hi
		}
	}

	count, err := m.buf.finalize()
	m.count = count
	return m, err
}

// strokeRun adds the geometry for the finite points lo, ..., hi-1 of p.
func (t *Tessellator) strokeRun(p Polyline, lo, hi int) {
	n := hi - lo
	newRun := true
	for k := range n {
		i := lo + k
		t.pts = t.pts[:0]
		switch classify(k, n) {
		case startCap:
			P := p.At(i)
			t.addStartCap(P, tangent(P, p.At(i+1)))
		case interiorJoin:
			prev, P, next := p.At(i-1), p.At(i), p.At(i+1)
			t.addJoin(prev, P, next)
			if !t.groupFinite() {
				// End the stroke here and start again with a new cap.
				Logger().Debug("breaking stroke at corner", "index", i)
				t.pts = t.pts[:0]
				t.addEndCap(P, tangent(prev, P))
				t.flush(i, false)
				t.pts = t.pts[:0]
				t.addStartCap(P, tangent(P, next))
				newRun = true
			}
		case endCap:
			P := p.At(i)
			t.addEndCap(P, tangent(p.At(i-1), P))
		}
		if t.flush(i, newRun) {
			newRun = false
		}
	}
}

// groupFinite reports whether all vertices collected in t.pts are finite.
func (t *Tessellator) groupFinite() bool {
	for _, pt := range t.pts {
		if !isFinitePoint(pt) {
			return false
		}
	}
	return true
}

// flush copies the vertices collected for control point i into the
// vertex buffer and reports whether it did so.  If any of them is not
// finite, the whole group is dropped.
//
// If newRun is set, the group is linked to the earlier part of the strip
// by repeating the last vertex and the first new vertex.  All triangles
// which contain these two copies have zero area.
func (t *Tessellator) flush(i int, newRun bool) bool {
	if len(t.pts) == 0 {
		return false
	}
	if !t.groupFinite() {
		Logger().Debug("skipping undrawable control point", "index", i)
		return false
	}
	if newRun && t.hasLast {
		t.add(t.last)
		t.add(t.pts[0])
	}
	for _, pt := range t.pts {
		t.add(pt)
	}
	return true
}

func (t *Tessellator) add(pt vec.Vec2) {
	t.mesh.buf.add(pt.X, pt.Y)
	t.last = pt
	t.hasLast = true
}

// Line copies the points of p unchanged into the mesh, for drawing as
// a line strip.  Thickness, caps and joins do not apply.  If p has fewer
// than two points, the mesh is empty.
func (t *Tessellator) Line(p Polyline) (*Mesh, error) {
	m := &t.mesh
	m.buf.reset()
	m.mode = LineStrip

	n := p.Len()
	if n >= 2 && m.buf.reserve(2*n) {
		for i := range n {
			m.buf.add(p[2*i], p[2*i+1])
		}
	}

	count, err := m.buf.finalize()
	m.count = count
	return m, err
}
