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

package sfntpath

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster"
)

func loadGoRegular(t testing.TB) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestContoursClosed(t *testing.T) {
	f := loadGoRegular(t)
	p, err := Text(f, "Hello, World", 24)
	if err != nil {
		t.Fatal(err)
	}

	open := false
	quads := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				t.Fatalf("command %d: MoveTo inside an open contour", i)
			}
			open = true
		case path.CmdClose:
			if !open {
				t.Fatalf("command %d: Close without contour", i)
			}
			open = false
		case path.CmdQuadTo:
			quads++
		case path.CmdCubeTo:
			t.Errorf("command %d: unexpected cubic curve in a TrueType font", i)
		}
	}
	if open {
		t.Error("last contour not closed")
	}
	if quads == 0 {
		t.Error("no quadratic curves found")
	}
}

func TestContourCount(t *testing.T) {
	f := loadGoRegular(t)
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{" ", 0},
		{"l", 1},
		{"O", 2},
		{"B", 3},
		{"i", 2},
		{"OO", 4},
	}
	for _, c := range cases {
		p, err := Text(f, c.text, 32)
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		for _, cmd := range p.Cmds {
			if cmd == path.CmdMoveTo {
				n++
			}
		}
		if n != c.want {
			t.Errorf("%q: got %d contours, want %d", c.text, n, c.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	f := loadGoRegular(t)
	one, err := Text(f, "H", 40)
	if err != nil {
		t.Fatal(err)
	}
	two, err := Text(f, "HH", 40)
	if err != nil {
		t.Fatal(err)
	}
	b1 := glyphraster.Bounds(one, glyphraster.Identity)
	b2 := glyphraster.Bounds(two, glyphraster.Identity)
	if b2.Dx() <= b1.Dx() || b2.Min.Y != b1.Min.Y || b2.Max.Y != b1.Max.Y {
		t.Errorf("unexpected bounds %v for one glyph and %v for two", b1, b2)
	}
	if b1.Min.Y < 0 || b1.Max.Y > 40 {
		t.Errorf("glyph H at 40 ppem has vertical extent %d to %d", b1.Min.Y, b1.Max.Y)
	}
}

func TestInvalidSize(t *testing.T) {
	f := loadGoRegular(t)
	for _, size := range []float64{0, -3} {
		if _, err := Text(f, "x", size); err == nil {
			t.Errorf("size %g: no error", size)
		}
	}
}

// TestRender rasterizes a text line and checks that the glyph outlines are
// balanced.
func TestRender(t *testing.T) {
	f := loadGoRegular(t)
	p, err := Text(f, "Quick fox, 42!", 18.5)
	if err != nil {
		t.Fatal(err)
	}
	b := glyphraster.Bounds(p, glyphraster.Identity)

	r := glyphraster.NewRasteriser()
	r.Transform = glyphraster.Transform{
		Scale: vec.Vec2{X: 1, Y: 1},
		Move:  vec.Vec2{X: -float64(b.Min.X), Y: -float64(b.Min.Y)},
	}
	img, err := r.Render(p, b.Dx(), b.Dy())
	if err != nil {
		t.Fatal(err)
	}

	full := 0
	for _, v := range img.Pix {
		if v == 255 {
			full++
		}
	}
	if full == 0 {
		t.Error("no fully covered pixels")
	}
}
