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

// Command glyphraster renders a line of text into a BMP image.
//
// Usage:
//
//	glyphraster [flags] [text]
//
// The glyph outlines are taken from a TrueType font file, or from the Go
// Regular font if no font is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/term"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster"
	"seehuhn.de/go/glyphraster/internal/sfntpath"
)

// margin is the number of empty pixels around the text.
const margin = 2

func main() {
	fontFile := flag.String("font", "", "TrueType font file (default Go Regular)")
	size := flag.Float64("size", 48, "font size in pixels per em")
	outFile := flag.String("o", "out.bmp", "output file name")
	gamma := flag.Bool("gamma", false, "use sRGB encoded output")
	rgba := flag.Bool("rgba", false, "write 32 bits per pixel")
	preview := flag.Bool("preview", false, "show the image on the terminal")
	verbose := flag.Bool("v", false, "show debug messages")
	flag.Parse()

	if *verbose {
		glyphraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		text = "Hello"
	}

	f, err := loadFont(*fontFile)
	check(err)

	p, err := sfntpath.Text(f, text, *size)
	check(err)

	b := glyphraster.Bounds(p, glyphraster.Identity).Inset(-margin)
	r := glyphraster.NewRasteriser()
	r.Gamma = *gamma
	r.Transform = glyphraster.Transform{
		Scale: vec.Vec2{X: 1, Y: 1},
		Move:  vec.Vec2{X: -float64(b.Min.X), Y: -float64(b.Min.Y)},
	}

	var img image.Image
	var gray *image.Gray
	if *rgba {
		var im *image.RGBA
		im, err = r.RenderRGBA(p, b.Dx(), b.Dy())
		if im != nil {
			img = im
			gray = toGray(im)
		}
	} else {
		gray, err = r.Render(p, b.Dx(), b.Dy())
		img = gray
	}
	if errors.Is(err, glyphraster.ErrUnsupportedOutline) {
		fmt.Fprintln(os.Stderr, "this type of outline is not implemented yet")
		os.Exit(1)
	}
	check(err)

	out, err := os.Create(*outFile)
	check(err)
	err = bmp.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	check(err)

	if *preview && term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 80
		}
		showPreview(os.Stdout, gray, width)
	}
}

func loadFont(fileName string) (*sfnt.Font, error) {
	data := goregular.TTF
	if fileName != "" {
		var err error
		data, err = os.ReadFile(fileName)
		if err != nil {
			return nil, err
		}
	}
	return sfnt.Parse(data)
}

func toGray(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	res := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			res.Pix[res.PixOffset(x, y)] = img.Pix[img.PixOffset(x, y)]
		}
	}
	return res
}

// ramp lists characters of increasing darkness.
const ramp = " .:-=+*#%@"

// showPreview prints img as ASCII art, at most width characters wide.
// Each character covers a 1×2 block of pixels, scaled down further for
// wide images.
func showPreview(w io.Writer, img *image.Gray, width int) {
	b := img.Bounds()
	step := max(1, (b.Dx()+width-1)/width)
	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x += step {
			sum, n := 0, 0
			for yy := y; yy < min(y+2*step, b.Max.Y); yy++ {
				for xx := x; xx < min(x+step, b.Max.X); xx++ {
					sum += int(img.GrayAt(xx, yy).Y)
					n++
				}
			}
			line.WriteByte(ramp[sum*(len(ramp)-1)/(255*n)])
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "glyphraster:", err)
		os.Exit(1)
	}
}
