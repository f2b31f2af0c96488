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

// lineCases use the native line strip fast path.
var lineCases = []TestCase{
	{
		Name:   "segment",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "zigzag",
		Path:   zigzag(8, 40, 20, 20, 32, 40, 44, 20, 56, 40),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
}
