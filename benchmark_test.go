package stroke_test

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/preview"
)

// BenchmarkStroke benchmarks the tessellation of a wavy polyline with
// each join style.  In the steady state there should be no allocations.
func BenchmarkStroke(b *testing.B) {
	sizes := []int{10, 100, 1000}
	joins := []stroke.Join{stroke.JoinNone, stroke.JoinRound, stroke.JoinMiter, stroke.JoinMiterRound}

	for _, size := range sizes {
		p := makeWave(size)
		for _, join := range joins {
			b.Run(fmt.Sprintf("%s/%d", join, size), func(b *testing.B) {
				s := stroke.DefaultStyle()
				s.Join = join
				tess := stroke.NewTessellator()

				b.ResetTimer()
				b.ReportAllocs()

				for b.Loop() {
					if _, err := tess.Stroke(p, s); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkLine benchmarks the line strip fast path.
func BenchmarkLine(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			p := makeWave(size)
			tess := stroke.NewTessellator()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := tess.Line(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPreview benchmarks tessellating and rasterising a polyline
// in software.
func BenchmarkPreview(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := makeWave(100)
			scale := float64(size) / 100
			for i := range p {
				p[i] *= scale
			}
			prim := stroke.NewPrimitive(p)
			prim.Style.Thickness = float64(size) / 50
			c := preview.NewCanvas(size, size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := prim.Draw(c, size, size, true); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// makeWave returns a sine wave with n points in the square [0, 100]².
func makeWave(n int) stroke.Polyline {
	p := make(stroke.Polyline, 0, 2*n)
	for i := range n {
		x := 100 * float64(i) / float64(max(n-1, 1))
		y := 50 + 40*math.Sin(x/5)
		p = append(p, x, y)
	}
	return p
}
