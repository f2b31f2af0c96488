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


package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
)

// degenerateCases contain inputs for which some or all of the geometry
// cannot be drawn.  They check that the tessellator neither crashes nor
// produces stray vertices.
var degenerateCases = []TestCase{
	{
		Name:   "zero_thickness",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(0, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "single_point",
		Path:   polyline(pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "repeated_point",
		Path:   polyline(pt(10, 32), pt(32, 32), pt(32, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapRound, stroke.JoinMiterRound)},
	},
	{
		Name:   "coincident_ends",
		Path:   polyline(pt(32, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(4, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "reversal_miter",
		Path:   polyline(pt(10, 32), pt(50, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapRound, stroke.JoinMiter)},
	},
	{
		Name:   "reversal_round",
		Path:   polyline(pt(10, 32), pt(50, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Style: style(3, stroke.EndcapRound, stroke.JoinRound)},
	},
	{
		Name:   "fine_resolution",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{Style: stroke.Style{
			Thickness:        8,
			Endcap:           stroke.EndcapRound,
			Join:             stroke.JoinRound,
			EndcapResolution: stroke.ResolutionFloor,
			JoinResolution:   stroke.ResolutionFloor,
		}},
	},
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}
