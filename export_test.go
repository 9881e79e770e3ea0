// seehuhn.de/go/glyphraster - anti-aliased rasterization of glyph outlines
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

package glyphraster

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestExportUnitSquare(t *testing.T) {
	for _, gamma := range []bool{false, true} {
		ws, err := NewWorkspace(8, 8)
		if err != nil {
			t.Fatal(err)
		}
		drawPolygon(t, ws, vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 4, Y: 3}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 3, Y: 4})

		buf := make([]byte, 64)
		err = ws.Export(buf, 8, &ExportOptions{Gamma: gamma, CheckConservation: true})
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, 64)
		want[3*8+3] = 255
		if d := cmp.Diff(want, buf); d != "" {
			t.Errorf("gamma=%t: unexpected pixels (-want +got):\n%s", gamma, d)
		}
	}
}

func TestExportPartialLane(t *testing.T) {
	const width, height = 10, 3
	ws, err := NewWorkspace(width, height)
	if err != nil {
		t.Fatal(err)
	}
	if ws.Stride() != 2*LaneWidth {
		t.Fatalf("stride is %d", ws.Stride())
	}
	drawPolygon(t, ws, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: width, Y: 0}, vec.Vec2{X: width, Y: height}, vec.Vec2{X: 0, Y: height})

	// exact size buffer, any write past the end would panic
	buf := make([]byte, width*height)
	err = ws.Export(buf, width, &ExportOptions{CheckConservation: true})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range buf {
		if v != 255 {
			t.Errorf("pixel (%d, %d) = %d", i%width, i/width, v)
		}
	}
}

func TestExportStride(t *testing.T) {
	ws, err := NewWorkspace(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	drawPolygon(t, ws, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 1, Y: 2})

	buf := []byte{
		9, 9, 9, 9, 9,
		9, 9, 9, 9, 9,
	}
	err = ws.Export(buf, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0, 255, 0, 9, 9,
		0, 255, 0, 9, 9,
	}
	if d := cmp.Diff(want, buf); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}

	err = ws.Export(make([]byte, 7), 5, nil)
	if err == nil {
		t.Error("short buffer not detected")
	}
	err = ws.Export(make([]byte, 10), 2, nil)
	if err == nil {
		t.Error("short stride not detected")
	}
}

func TestExportLeak(t *testing.T) {
	ws, err := NewWorkspace(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	// an open contour
	err = ws.DrawLine(Line{Beg: vec.Vec2{X: 2, Y: 1}, End: vec.Vec2{X: 5, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 8*4)
	err = ws.Export(buf, 8, &ExportOptions{CheckConservation: true})
	if !errors.Is(err, ErrCoverageLeak) {
		t.Fatalf("expected ErrCoverageLeak, got %v", err)
	}
	var leak *CoverageLeakError
	if !errors.As(err, &leak) {
		t.Fatalf("expected *CoverageLeakError, got %T", err)
	}
	if leak.Column != 2 || leak.Residual != -FixedOne {
		t.Errorf("got column %d with residual %d", leak.Column, leak.Residual)
	}

	// the image is written anyway, all pixels below the line are covered
	for y := range 4 {
		for x := range 8 {
			var want byte
			if x >= 2 && x < 5 && y >= 1 {
				want = 255
			}
			if got := buf[y*8+x]; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	err = ws.Export(buf, 8, &ExportOptions{})
	if err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestExportRGBA(t *testing.T) {
	ws, err := NewWorkspace(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	drawPolygon(t, ws, vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 4, Y: 3}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 3, Y: 4})

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	err = ws.ExportRGBA(img, &ExportOptions{Gamma: true})
	if err != nil {
		t.Fatal(err)
	}
	for y := range 8 {
		for x := range 8 {
			var v uint8
			if x == 3 && y == 3 {
				v = 255
			}
			want := []uint8{v, v, v, 255}
			i := img.PixOffset(x, y)
			if d := cmp.Diff(want, img.Pix[i:i+4]); d != "" {
				t.Errorf("pixel (%d, %d) (-want +got):\n%s", x, y, d)
			}
		}
	}

	err = ws.ExportRGBA(image.NewRGBA(image.Rect(0, 0, 8, 7)), nil)
	if err == nil {
		t.Error("small image not detected")
	}
}

func TestExportHalfCoverage(t *testing.T) {
	ws, err := NewWorkspace(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	drawPolygon(t, ws, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})

	var buf [1]byte
	if err := ws.Export(buf[:], 1, nil); err != nil {
		t.Fatal(err)
	}
	if buf[0] != Linear(FixedOne/2) {
		t.Errorf("linear: got %d, want %d", buf[0], Linear(FixedOne/2))
	}
	if err := ws.Export(buf[:], 1, &ExportOptions{Gamma: true}); err != nil {
		t.Fatal(err)
	}
	if buf[0] != Gamma(FixedOne/2) {
		t.Errorf("gamma: got %d, want %d", buf[0], Gamma(FixedOne/2))
	}
}

func TestExportFillRule(t *testing.T) {
	square := func(x0, y0, x1, y1 float64) []vec.Vec2 {
		return []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	}

	ws, err := NewWorkspace(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	// winding 2 in pixel (3, 3)
	drawPolygon(t, ws, square(3, 3, 4, 4)...)
	drawPolygon(t, ws, square(3, 3, 4, 4)...)
	// winding 2 in the top half of pixel (5, 3), 1 in the bottom half
	drawPolygon(t, ws, square(5, 3, 6, 4)...)
	drawPolygon(t, ws, square(5, 3, 6, 3.5)...)

	cases := []struct {
		evenOdd bool
		p33     byte
		p53     byte
	}{
		{false, 255, 255},
		{true, 0, Linear(FixedOne / 2)},
	}
	for _, tc := range cases {
		buf := make([]byte, 64)
		opt := &ExportOptions{EvenOdd: tc.evenOdd, CheckConservation: true}
		if err := ws.Export(buf, 8, opt); err != nil {
			t.Fatal(err)
		}
		want := make([]byte, 64)
		want[3*8+3] = tc.p33
		want[3*8+5] = tc.p53
		if d := cmp.Diff(want, buf); d != "" {
			t.Errorf("evenOdd=%t: unexpected pixels (-want +got):\n%s", tc.evenOdd, d)
		}
	}
}

func TestExportEmpty(t *testing.T) {
	ws, err := NewWorkspace(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.Export(nil, 0, &ExportOptions{CheckConservation: true}); err != nil {
		t.Error(err)
	}
}
