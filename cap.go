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

const (
	// zeroLengthThreshold is the segment length below which the tangent
	// direction is undefined.
	zeroLengthThreshold = 1e-12

	// collinearityThreshold is the value of sin(θ) below which two
	// tangents are treated as pointing in the same direction.
	collinearityThreshold = 1e-9
)

// tangent returns the unit vector pointing from a to b.
// If the points coincide, the tangent defaults to (1, 0).
func tangent(a, b vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return vec.Vec2{X: 1, Y: 0}
	}
	return d.Mul(1 / length)
}

// normal returns T rotated by 90° counter-clockwise.
func normal(T vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -T.Y, Y: T.X}
}

// rotate returns v rotated counter-clockwise by the given angle.
func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// fanSteps returns the number of steps needed to sweep the given angle
// without any step exceeding res.
func fanSteps(angle, res float64) int {
	// The tolerance stops rounding noise from adding an extra step
	// when angle is an exact multiple of res.
	n := int(math.Ceil(math.Abs(angle)/res - 1e-9))
	return max(n, 1)
}

// addPair adds the two offset points P + d·N and P − d·N.
// Every cross section of the strip is made of such a pair.
func (t *Tessellator) addPair(P, N vec.Vec2, d float64) {
	t.pts = append(t.pts, P.Add(N.Mul(d)), P.Sub(N.Mul(d)))
}

// addFan adds a circular fan around center.  The arc starts at
// center+start and sweeps the given angle (positive = counter-clockwise).
// The vertices alternate between arc points and the center, so that inside
// a triangle strip every arc step becomes one triangle.
func (t *Tessellator) addFan(center, start vec.Vec2, sweep, res float64) {
	n := fanSteps(sweep, res)
	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		dir := rotate(start, float64(i)*dt)
		t.pts = append(t.pts, center.Add(dir), center)
	}
}

// addStartCap adds the cap at the first point P of the polyline.
// T is the unit tangent of the first segment.
func (t *Tessellator) addStartCap(P, T vec.Vec2) {
	d := t.style.Thickness
	N := normal(T)
	if t.style.Endcap == EndcapRound {
		// Half circle behind P: from +N through -T to -N.
		t.addFan(P, N.Mul(d), math.Pi, t.style.EndcapResolution)
	}
	t.addPair(P, N, d)
}

// addEndCap adds the cap at the last point P of the polyline.
// T is the unit tangent of the last segment.
func (t *Tessellator) addEndCap(P, T vec.Vec2) {
	d := t.style.Thickness
	N := normal(T)
	t.addPair(P, N, d)
	if t.style.Endcap == EndcapRound {
		// Half circle beyond P: from +N through T to -N.
		t.addFan(P, N.Mul(d), -math.Pi, t.style.EndcapResolution)
	}
}
