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
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	b := newVertexBuffer()
	b.reserve(100)
	b.reserve(MaxSize + 1)

	out := buf.String()
	if !strings.Contains(out, "vertex buffer resize") {
		t.Errorf("resize not logged:\n%s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "vertex buffer overflow") {
		t.Errorf("overflow not logged:\n%s", out)
	}

	SetLogger(nil)
	buf.Reset()
	b.reset()
	b.reserve(1000)
	if buf.Len() != 0 {
		t.Errorf("default logger wrote output:\n%s", buf.String())
	}
	if Logger() == nil {
		t.Error("Logger() returned nil")
	}
}
