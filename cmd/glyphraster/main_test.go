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

package main

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShowPreview(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		img.SetGray(1, y, color.Gray{Y: 255})
		img.SetGray(2, y, color.Gray{Y: 255})
	}
	img.SetGray(3, 3, color.Gray{Y: 255})

	var buf bytes.Buffer
	showPreview(&buf, img, 80)
	want := []string{" @@", " @@="}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected preview (-want +got):\n%s", d)
	}

	// narrow terminal: two pixels per character
	buf.Reset()
	showPreview(&buf, img, 2)
	want = []string{"=+"}
	got = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected narrow preview (-want +got):\n%s", d)
	}
}

func TestToGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	gray := toGray(img)
	if gray.GrayAt(2, 1).Y != 100 || gray.GrayAt(0, 0).Y != 0 {
		t.Errorf("unexpected conversion %v", gray.Pix)
	}
}

func TestLoadFont(t *testing.T) {
	f, err := loadFont("")
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() == 0 {
		t.Error("default font has no glyphs")
	}
	if _, err := loadFont("does/not/exist.ttf"); err == nil {
		t.Error("missing font file not reported")
	}
}
