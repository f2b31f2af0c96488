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
	"math"

	"seehuhn.de/go/geom/vec"
)

// addJoin adds the corner geometry at the interior point P, where the
// polyline comes from prev and continues to next.
func (t *Tessellator) addJoin(prev, P, next vec.Vec2) {
	d := t.style.Thickness
	T1 := tangent(prev, P)
	T2 := tangent(P, next)

	switch t.style.Join {
	case JoinNone:
		// End the incoming segment, then start the outgoing one.
		t.addPair(P, normal(T1), d)
		t.addPair(P, normal(T2), d)

	case JoinRound:
		t.addRoundJoin(P, T1, T2)

	case JoinMiter:
		// A 180° turn has no finite miter; strokeRun then splits the
		// stroke at P.
		bisector, length := miter(prev, P, next, T1, d)
		t.addPair(P, bisector, length)

	case JoinMiterRound:
		bisector, length := miter(prev, P, next, T1, d)
		// Resolutions beyond π would make the limit negative.
		limit := d / math.Cos(min(t.style.JoinResolution, math.Pi)/2)
		if !isFinite(length) || math.Abs(length) > limit {
			t.addRoundJoin(P, T1, T2)
		} else {
			t.addPair(P, bisector, length)
		}
	}
}

// addRoundJoin ends the incoming segment, fills the outer side of the
// corner with a fan, and starts the outgoing segment.
func (t *Tessellator) addRoundJoin(P, T1, T2 vec.Vec2) {
	d := t.style.Thickness
	N1 := normal(T1)

	t.addPair(P, N1, d)

	sinTheta := T1.X*T2.Y - T1.Y*T2.X // cross product Z component
	cosTheta := T1.Dot(T2)
	if math.Abs(sinTheta) >= collinearityThreshold || cosTheta < 0 {
		// theta is the signed turning angle.  For a left turn (theta > 0)
		// the outer side is -N, for a right turn it is +N.  Rotating the
		// outer normal of T1 by theta gives the outer normal of T2.
		theta := math.Atan2(sinTheta, cosTheta)
		start := N1.Mul(d)
		if theta > 0 {
			start = start.Mul(-1)
		}
		t.addFan(P, start, theta, t.style.JoinResolution)
	}

	t.addPair(P, normal(T2), d)
}

// miter computes the miter at corner P.  It returns the unit bisector b
// and the signed distance m such that P + m·b and P − m·b are the miter
// points on the left and right side of the stroke.
//
// The bisector is the sum of the two edge vectors, each scaled by the
// length of the other one.  This gives the true angle bisector even if
// the two segments differ in length.
func miter(prev, P, next, T1 vec.Vec2, d float64) (vec.Vec2, float64) {
	v1 := prev.Sub(P)
	v2 := next.Sub(P)
	l1 := v1.Length()
	l2 := v2.Length()

	b := v1.Mul(l2).Add(v2.Mul(l1))
	bLen := b.Length()
	if bLen <= collinearityThreshold*l1*l2 {
		// Straight continuation, or a zero-length segment.
		b = normal(T1)
	} else {
		b = b.Mul(1 / bLen)
	}

	// cross(b, -T1) equals b·N1, so P + m·b is always on the +N side.
	u := T1.Mul(-1)
	cross := b.X*u.Y - b.Y*u.X
	return b, d / cross
}
