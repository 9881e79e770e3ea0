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
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/glyphraster/internal/lanes"
)

// ExportOptions controls the conversion of coverage to pixel values.
// A nil *ExportOptions is equivalent to the zero value.
//
// Coverage is computed from the magnitude of the accumulated winding, so
// contours fill the same way whether they run clockwise or
// counter-clockwise.
type ExportOptions struct {
	// Gamma selects sRGB encoding of the coverage values.  If false,
	// coverage is scaled linearly to 0-255.
	Gamma bool

	// EvenOdd selects the even-odd fill rule.  If false, the nonzero
	// winding rule is used.
	EvenOdd bool

	// CheckConservation makes the export fail with a *CoverageLeakError if
	// the winding in some column does not return to zero.  This holds for
	// outlines made of closed contours.
	CheckConservation bool
}

// Export converts the accumulated coverage into 8-bit intensities.
// Pixel (x, y) is written to dst[y*stride+x].
//
// Pixels inside a contour are fully covered for either orientation of
// the contour.  Pending writes are flushed first.  If drawing into ws
// failed, the stored error is returned and dst is not modified.
// Otherwise the pixel buffer is completely written, even if a
// *CoverageLeakError is returned.
func (ws *Workspace) Export(dst []byte, stride int, opt *ExportOptions) error {
	if ws.height > 0 && (stride < ws.width || len(dst) < (ws.height-1)*stride+ws.width) {
		return fmt.Errorf("glyphraster: pixel buffer too small for %dx%d image", ws.width, ws.height)
	}
	return ws.export(opt, func(row, col int, px []uint8) {
		copy(dst[row*stride+col:], px)
	})
}

// ExportRGBA converts the accumulated coverage into opaque gray pixels of
// img, which must be at least as large as the workspace.  The image
// origin corresponds to pixel (0, 0) of the workspace.
func (ws *Workspace) ExportRGBA(img *image.RGBA, opt *ExportOptions) error {
	b := img.Bounds()
	if b.Dx() < ws.width || b.Dy() < ws.height {
		return fmt.Errorf("glyphraster: %dx%d image too small for %dx%d workspace",
			b.Dx(), b.Dy(), ws.width, ws.height)
	}
	return ws.export(opt, func(row, col int, px []uint8) {
		out := img.Pix[row*img.Stride+4*col:]
		for i, v := range px {
			out[4*i] = v
			out[4*i+1] = v
			out[4*i+2] = v
			out[4*i+3] = 0xFF
		}
	})
}

// export runs the column-wise prefix sum over the cell grid, LaneWidth
// columns at a time.  For every row of every lane group it calls put with
// the pixel values of the valid columns; in the last lane group this may
// be fewer than LaneWidth.
func (ws *Workspace) export(opt *ExportOptions, put func(row, col int, px []uint8)) error {
	if ws.err != nil {
		return ws.err
	}
	if opt == nil {
		opt = &ExportOptions{}
	}
	ws.Flush()

	var leak error
	var px [LaneWidth]uint8
	for col := 0; col < ws.stride; col += LaneWidth {
		n := min(LaneWidth, ws.width-col)

		var acc lanes.I16x8
		idx := col
		for row := 0; row < ws.height; row++ {
			edge, tail := gather(ws.cells[idx : idx+LaneWidth])
			idx += ws.stride

			value := acc.AddSat(edge).AbsSat()
			if opt.EvenOdd {
				value = value.Fold(FixedOne)
			} else {
				value = value.Min(FixedOne)
			}
			acc = acc.AddSat(tail)

			if opt.Gamma {
				for i, v := range value {
					px[i] = gammaTable[v]
				}
			} else {
				for i, v := range value {
					px[i] = Linear(int(v))
				}
			}
			put(row, col, px[:n])
		}

		// the spill row below the image only carries winding
		_, tail := gather(ws.cells[idx : idx+LaneWidth])
		acc = acc.AddSat(tail)
		if i := acc.FirstNonZero(); i >= 0 && leak == nil {
			leak = &CoverageLeakError{Column: col + i, Residual: int(acc[i])}
		}
	}

	Logger().Debug("export",
		slog.Int("width", ws.width),
		slog.Int("height", ws.height),
		slog.Int("lines", ws.lines),
		slog.Int("dots", ws.dots),
		slog.Int("flushes", ws.flushes),
		slog.Bool("balanced", leak == nil))

	if opt.CheckConservation {
		return leak
	}
	return nil
}

// gather splits one lane group of cells into edge and tail vectors.
func gather(cells []Cell) (edge, tail lanes.I16x8) {
	cells = cells[:LaneWidth]
	for i, c := range cells {
		edge[i] = c.Edge
		tail[i] = c.Tail
	}
	return edge, tail
}
