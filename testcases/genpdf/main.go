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


// Command genpdf generates reference images for the stroke tests.
// It strokes the test case polylines with the PDF line style closest to
// the tessellation style, and renders the PDFs to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// lineStyle is a PDF line style.
type lineStyle struct {
	width      float64
	capStyle   graphics.LineCapStyle
	joinStyle  graphics.LineJoinStyle
	miterLimit float64
}

// pdfStyle returns the PDF line style which corresponds to the operation.
// This is the inverse of [stroke.StyleFromPDF].
func pdfStyle(op testcases.Operation) lineStyle {
	s, ok := op.(testcases.Stroke)
	if !ok {
		// hairline for the native fast path
		return lineStyle{width: 1, capStyle: graphics.LineCapButt, joinStyle: graphics.LineJoinBevel, miterLimit: 10}
	}

	ls := lineStyle{width: 2 * s.Style.Thickness, miterLimit: 10}
	if s.Style.Endcap == stroke.EndcapRound {
		ls.capStyle = graphics.LineCapRound
	} else {
		ls.capStyle = graphics.LineCapButt
	}
	switch s.Style.Join {
	case stroke.JoinRound:
		ls.joinStyle = graphics.LineJoinRound
	case stroke.JoinMiter:
		ls.joinStyle = graphics.LineJoinMiter
		ls.miterLimit = 1000
	case stroke.JoinMiterRound:
		ls.joinStyle = graphics.LineJoinMiter
		ls.miterLimit = 1 / math.Cos(s.Style.JoinResolution/2)
	default:
		ls.joinStyle = graphics.LineJoinBevel
	}
	return ls
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that the grey value of a pixel is its coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetStrokeColor(color.DeviceGray(1))

	ls := pdfStyle(tc.Op)
	page.SetLineWidth(ls.width)
	page.SetLineCap(ls.capStyle)
	page.SetLineJoin(ls.joinStyle)
	page.SetMiterLimit(ls.miterLimit)

	// Invalid styles produce empty meshes, so nothing is drawn for them.
	drawable := true
	if op, ok := tc.Op.(testcases.Stroke); ok {
		drawable = op.Style.Valid()
	}

	p := tc.Polyline()
	if n := p.Len(); n >= 2 && drawable {
		page.MoveTo(p[0], p[1])
		for i := 1; i < n; i++ {
			q := p.At(i)
			page.LineTo(q.X, q.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
