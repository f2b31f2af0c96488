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
)

func TestCapacityFor(t *testing.T) {
	cases := []struct {
		size, want int
	}{
		{0, MinSize},
		{1, MinSize},
		{MinSize, MinSize},
		{MinSize + 1, 32},
		{32, 32},
		{33, 64},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
		{MaxSize, MaxSize},
	}
	for _, c := range cases {
		if got := capacityFor(c.size); got != c.want {
			t.Errorf("capacityFor(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestBufferGrowth(t *testing.T) {
	b := newVertexBuffer()
	if len(b.data) != MinSize {
		t.Fatalf("initial capacity %d, want %d", len(b.data), MinSize)
	}

	for i := range 8 {
		b.add(float64(i), 0)
	}
	if len(b.data) != 16 {
		t.Errorf("capacity after 16 values: %d, want 16", len(b.data))
	}

	b.add(8, 0)
	if len(b.data) != 32 {
		t.Errorf("capacity after 18 values: %d, want 32", len(b.data))
	}

	for i := 9; i < 17; i++ {
		b.add(float64(i), float64(-i))
	}
	if len(b.data) != 64 {
		t.Errorf("capacity after 34 values: %d, want 64", len(b.data))
	}

	// growth must preserve the contents
	for i := range 17 {
		x, y := b.data[2*i], b.data[2*i+1]
		if x != float32(i) || (i >= 9 && y != float32(-i)) {
			t.Fatalf("vertex %d = (%g, %g) after growth", i, x, y)
		}
	}

	n, err := b.finalize()
	if err != nil {
		t.Fatal(err)
	}
	if n != 17 {
		t.Errorf("finalize returned %d vertices, want 17", n)
	}
}

func TestBufferOverflow(t *testing.T) {
	b := newVertexBuffer()
	b.add(1, 2)

	if b.reserve(MaxSize + 1) {
		t.Fatal("reserve beyond MaxSize succeeded")
	}
	if !errors.Is(b.err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", b.err)
	}

	// the error is sticky until reset
	b.add(3, 4)
	if b.reserve(4) {
		t.Error("reserve succeeded after overflow")
	}
	n, err := b.finalize()
	if n != 0 || !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("finalize = %d, %v; want 0, ErrCapacityExceeded", n, err)
	}
	if len(b.data) != MinSize {
		t.Errorf("capacity changed to %d by failed growth", len(b.data))
	}

	b.reset()
	if !b.reserve(4) {
		t.Error("reserve failed after reset")
	}
	b.add(5, 6)
	n, err = b.finalize()
	if n != 1 || err != nil {
		t.Errorf("finalize after reset = %d, %v; want 1, nil", n, err)
	}
}

func TestBufferShrink(t *testing.T) {
	b := newVertexBuffer()
	fill := func(vertices int) {
		t.Helper()
		b.reset()
		for i := range vertices {
			b.add(float64(i), 0)
		}
		if _, err := b.finalize(); err != nil {
			t.Fatal(err)
		}
	}

	fill(20) // 40 values
	if len(b.data) != 64 {
		t.Fatalf("capacity %d, want 64", len(b.data))
	}

	// Sizes in [cap/2, cap] keep the storage.
	base := &b.data[0]
	for _, n := range []int{16, 17, 20, 32, 17} {
		fill(n)
		if len(b.data) != 64 || &b.data[0] != base {
			t.Fatalf("%d vertices: storage reallocated (capacity %d)", n, len(b.data))
		}
	}

	fill(10) // 20 values < 32
	if len(b.data) != 32 {
		t.Errorf("capacity after shrinking: %d, want 32", len(b.data))
	}

	fill(2)
	if len(b.data) != MinSize {
		t.Errorf("capacity after shrinking: %d, want %d", len(b.data), MinSize)
	}

	fill(0)
	if len(b.data) != MinSize {
		t.Errorf("capacity below MinSize: %d", len(b.data))
	}
}
