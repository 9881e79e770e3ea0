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

// Command genpdf writes the reference images used by the rasteriser tests.
//
// Every outline of the test corpus is drawn as a white fill on a black page
// whose size in points equals the canvas size in pixels.  Ghostscript then
// converts the page to an 8-bit grayscale PNG, so that the gray level of a
// pixel is its coverage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/glyphraster/testcases"
)

func main() {
	refDir := flag.String("d", "testdata/reference", "output directory")
	pdfOnly := flag.Bool("pdf-only", false, "write the PDF files only")
	prefix := flag.String("only", "", "only process cases whose name starts with `prefix`")
	flag.Parse()

	err := run(*refDir, *prefix, !*pdfOnly)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run(refDir, prefix string, withPNG bool) error {
	if withPNG {
		if _, err := exec.LookPath("gs"); err != nil {
			return errors.New("Ghostscript (gs) not found, use -pdf-only")
		}
	}
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := writePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if !withPNG {
				continue
			}
			pngPath := filepath.Join(refDir, name+".png")
			if err := ghostscript(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func writePDF(tc testcases.TestCase, pdfPath string) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(pdfPath, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// pixel space has the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	if trf := tc.PixelTransform().Matrix(); trf != matrix.Identity {
		page.Transform(trf)
	}

	page.SetFillColor(color.DeviceGray(1))
	drawOutline(page, tc.Path)
	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	return page.Close()
}

// pathBuilder is the part of the page content API used by drawOutline.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawOutline adds p to the current path of page.  Quadratic segments are
// converted to cubic ones.
func drawOutline(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// ghostscript renders a single page PDF at 72 dpi, with 4 bit anti-aliasing.
func ghostscript(pdfPath, pngPath string) error {
	cmd := exec.Command("gs", "-q",
		"-sDEVICE=pnggray", "-r72", "-dGraphicsAlphaBits=4",
		"-o", pngPath, pdfPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
