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
	"fmt"
	"math/bits"
)

// vertexBuffer is a growable buffer of interleaved x, y coordinates.
//
// len(data) is the capacity and is always a power of two between MinSize
// and MaxSize.  The logical length n counts float32 values, not vertices.
// After a failed growth err is set, and all further appends are ignored
// until the next reset.
type vertexBuffer struct {
	data []float32
	n    int
	err  error
}

func newVertexBuffer() vertexBuffer {
	return vertexBuffer{data: make([]float32, MinSize)}
}

// reset discards the contents but keeps the allocated storage.
func (b *vertexBuffer) reset() {
	b.n = 0
	b.err = nil
}

// add appends the vertex (x, y).
func (b *vertexBuffer) add(x, y float64) {
	if b.n+2 > len(b.data) {
		if !b.reserve(b.n + 2) {
			return
		}
	}
	b.data[b.n] = float32(x)
	b.data[b.n+1] = float32(y)
	b.n += 2
}

// reserve makes sure that the buffer can hold at least size values.
// It reports whether this was possible.
func (b *vertexBuffer) reserve(size int) bool {
	if b.err != nil {
		return false
	}
	if size <= len(b.data) {
		return true
	}
	if size > MaxSize {
		b.err = fmt.Errorf("%w: %d values requested, limit is %d",
			ErrCapacityExceeded, size, MaxSize)
		Logger().Warn("vertex buffer overflow",
			"requested", size, "max", MaxSize)
		return false
	}
	b.resize(capacityFor(size))
	return true
}

// finalize ends a tessellation pass and returns the number of vertices.
// If more than half of the capacity is unused, the buffer shrinks to the
// smallest power of two which holds the data.
func (b *vertexBuffer) finalize() (int, error) {
	if b.err != nil {
		b.n = 0
		return 0, b.err
	}
	if b.n < len(b.data)/2 && len(b.data) > MinSize {
		b.resize(capacityFor(b.n))
	}
	return b.n / 2, nil
}

// resize replaces the storage by a new slice of the given capacity,
// preserving the first b.n values.
func (b *vertexBuffer) resize(capacity int) {
	if capacity == len(b.data) {
		return
	}
	Logger().Debug("vertex buffer resize",
		"from", len(b.data), "to", capacity, "used", b.n)
	data := make([]float32, capacity)
	copy(data, b.data[:b.n])
	b.data = data
}

// capacityFor returns the smallest power of two which is at least size,
// but not smaller than MinSize.  The caller must ensure size <= MaxSize.
func capacityFor(size int) int {
	if size <= MinSize {
		return MinSize
	}
	return 1 << bits.Len(uint(size-1))
}
