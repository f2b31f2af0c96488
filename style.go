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
	"strconv"

	"seehuhn.de/go/pdf/graphics"
)

// Endcap selects the geometry at the two free ends of a polyline.
type Endcap uint8

const (
	// EndcapNone ends the stroke flush with the end point.
	EndcapNone Endcap = iota

	// EndcapRound adds a half disc around the end point.
	EndcapRound
)

// Valid reports whether c is one of the defined end cap styles.
func (c Endcap) Valid() bool {
	return c <= EndcapRound
}

func (c Endcap) String() string {
	switch c {
	case EndcapNone:
		return "None"
	case EndcapRound:
		return "Round"
	default:
		return "Endcap(" + strconv.Itoa(int(c)) + ")"
	}
}

// Join selects the geometry at the interior vertices of a polyline.
type Join uint8

const (
	// JoinNone ends the incoming segment and starts the outgoing segment
	// independently, without filling the corner.
	JoinNone Join = iota

	// JoinRound fills the outside of the corner with a circular arc.
	JoinRound

	// JoinMiter extends the outer edges of both segments until they meet.
	JoinMiter

	// JoinMiterRound uses a miter join, unless the miter would be too
	// long, in which case a round join is used.
	JoinMiterRound
)

// Valid reports whether j is one of the defined join styles.
func (j Join) Valid() bool {
	return j <= JoinMiterRound
}

func (j Join) String() string {
	switch j {
	case JoinNone:
		return "None"
	case JoinRound:
		return "Round"
	case JoinMiter:
		return "Miter"
	case JoinMiterRound:
		return "MiterRound"
	default:
		return "Join(" + strconv.Itoa(int(j)) + ")"
	}
}

// Style describes how a polyline is stroked.
type Style struct {
	// Thickness is the distance between the centre line and the edge of
	// the stroke, in pixels.  Must be positive.
	Thickness float64

	// Endcap is used at the first and last point.
	Endcap Endcap

	// Join is used at all interior points.
	Join Join

	// EndcapResolution is the largest angle, in radians, spanned by one
	// step of a round end cap.  Must be at least ResolutionFloor.
	EndcapResolution float64

	// JoinResolution is the largest angle, in radians, spanned by one
	// step of a round join.  For JoinMiterRound it also sets the miter
	// limit: miters longer than Thickness/cos(JoinResolution/2) are
	// replaced by round joins.  Values of π and above never limit the
	// miter.  Must be at least ResolutionFloor.
	JoinResolution float64
}

// DefaultStyle returns the style used when the caller does not specify one.
func DefaultStyle() Style {
	return Style{
		Thickness:        2,
		Endcap:           EndcapRound,
		Join:             JoinRound,
		EndcapResolution: 0.4,
		JoinResolution:   0.5,
	}
}

// Valid reports whether the style can be used for tessellation.
// Tessellating with an invalid style produces an empty mesh.
func (s *Style) Valid() bool {
	// The comparisons are written so that NaN values fail.
	if !(s.Thickness > 0) || math.IsInf(s.Thickness, 0) {
		return false
	}
	if !s.Endcap.Valid() || !s.Join.Valid() {
		return false
	}
	if !(s.EndcapResolution >= ResolutionFloor) || !(s.JoinResolution >= ResolutionFloor) {
		return false
	}
	return true
}

// StyleFromPDF converts PDF line style parameters into a Style.
//
// The PDF line width covers both sides of the path, so the thickness is
// half the width.  Square caps have no equivalent and are drawn without a
// cap, bevel joins are drawn as JoinNone.  The miter limit is converted
// into the join resolution of a JoinMiterRound join.
func StyleFromPDF(width float64, capStyle graphics.LineCapStyle, joinStyle graphics.LineJoinStyle, miterLimit float64) Style {
	s := DefaultStyle()
	s.Thickness = width / 2

	if capStyle == graphics.LineCapRound {
		s.Endcap = EndcapRound
	} else {
		s.Endcap = EndcapNone
	}

	switch joinStyle {
	case graphics.LineJoinRound:
		s.Join = JoinRound
	case graphics.LineJoinMiter:
		s.Join = JoinMiterRound
		// A miter of length d/cos(res/2) has ratio 1/cos(res/2) to the
		// half width, which must equal the miter limit.
		if miterLimit > 1 {
			s.JoinResolution = max(2*math.Acos(1/miterLimit), ResolutionFloor)
		} else {
			s.JoinResolution = ResolutionFloor
		}
	default:
		s.Join = JoinNone
	}
	return s
}
