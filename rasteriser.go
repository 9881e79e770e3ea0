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
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser fills outlines into workspaces and images.
// The caller creates one instance and can reuse it for many outlines;
// all per-render state lives in the [Workspace].
type Rasteriser struct {
	// Transform maps outline coordinates to pixel coordinates.
	Transform Transform

	// Flatness is the curve flattening tolerance in pixels.
	// Must be > 0.
	Flatness float64

	// MaxDepth limits the number of curve subdivision levels.
	MaxDepth int

	// Gamma selects sRGB encoded output in Render and RenderRGBA.
	Gamma bool

	// EvenOdd selects the even-odd fill rule instead of the nonzero
	// winding rule.
	EvenOdd bool

	// CheckConservation makes Render and RenderRGBA fail with a
	// *CoverageLeakError for outlines whose contours are not closed.
	CheckConservation bool
}

// NewRasteriser creates a new Rasteriser with the identity transform,
// default flattening parameters, the nonzero winding rule, linear output
// and conservation checks enabled.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{
		Transform:         Identity,
		Flatness:          DefaultFlatness,
		MaxDepth:          DefaultMaxDepth,
		CheckConservation: true,
	}
}

// Fill adds the coverage of the outline p to ws.
//
// The outline may contain MoveTo, LineTo, QuadTo and Close commands.
// Close draws the closing line of a contour; contours without Close are
// left open.  The whole outline is validated before drawing starts: if it
// contains any other command, a *UnsupportedOutlineError is returned and
// ws is left unchanged.
func (r *Rasteriser) Fill(ws *Workspace, p *path.Data) error {
	if err := checkOutline(p); err != nil {
		return err
	}
	if err := ws.Err(); err != nil {
		return err
	}

	flat := Flattener{Tolerance: r.Flatness, MaxDepth: r.MaxDepth}
	trf := r.Transform

	var err error
	drawLine := func(l Line) bool {
		err = ws.DrawLine(l)
		return err == nil
	}

	var current vec.Vec2 // current point (outline space)
	var subpath vec.Vec2 // subpath start (outline space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			drawLine(trf.ApplyLine(Line{Beg: current, End: next}))
			current = next
			coordIdx++

		case path.CmdQuadTo:
			c := Curve{Beg: current, Ctrl: p.Coords[coordIdx], End: p.Coords[coordIdx+1]}
			flat.Flatten(c, trf, drawLine)
			current = c.End
			coordIdx += 2

		case path.CmdClose:
			if current != subpath {
				drawLine(trf.ApplyLine(Line{Beg: current, End: subpath}))
			}
			current = subpath
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// checkOutline verifies that every command of p is supported and has its
// coordinates.
func checkOutline(p *path.Data) error {
	coordIdx := 0
	for i, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdClose:
			n = 0
		default:
			return &UnsupportedOutlineError{Index: i, Cmd: cmd}
		}
		coordIdx += n
		if coordIdx > len(p.Coords) {
			return &UnsupportedOutlineError{Index: i, Cmd: cmd, Msg: "missing coordinates"}
		}
	}
	return nil
}

// Render fills p into a new width×height grayscale image.
func (r *Rasteriser) Render(p *path.Data, width, height int) (*image.Gray, error) {
	ws, err := r.fillNew(p, width, height)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	err = ws.Export(img.Pix, img.Stride, r.exportOptions())
	if err != nil {
		return nil, err
	}
	return img, nil
}

// RenderRGBA fills p into a new width×height image with 32 bits per pixel.
// The coverage is stored as opaque gray.
func (r *Rasteriser) RenderRGBA(p *path.Data, width, height int) (*image.RGBA, error) {
	ws, err := r.fillNew(p, width, height)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	err = ws.ExportRGBA(img, r.exportOptions())
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *Rasteriser) fillNew(p *path.Data, width, height int) (*Workspace, error) {
	if err := checkOutline(p); err != nil {
		return nil, err
	}
	ws, err := NewWorkspace(width, height)
	if err != nil {
		return nil, err
	}
	if err := r.Fill(ws, p); err != nil {
		return nil, err
	}
	Logger().Debug("filled outline",
		slog.Int("commands", len(p.Cmds)),
		slog.Int("lines", ws.lines),
		slog.Int("dots", ws.dots))
	return ws, nil
}

func (r *Rasteriser) exportOptions() *ExportOptions {
	return &ExportOptions{
		Gamma:             r.Gamma,
		EvenOdd:           r.EvenOdd,
		CheckConservation: r.CheckConservation,
	}
}

// Bounds returns the smallest pixel rectangle which contains all points
// and control points of p after applying trf.  Since a quadratic Bézier
// curve lies inside the convex hull of its control points, the outline is
// contained in the returned rectangle.  For an empty outline the zero
// rectangle is returned.
func Bounds(p *path.Data, trf Transform) image.Rectangle {
	if len(p.Coords) == 0 {
		return image.Rectangle{}
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, c := range p.Coords {
		q := trf.Apply(c)
		xMin = min(xMin, q.X)
		xMax = max(xMax, q.X)
		yMin = min(yMin, q.Y)
		yMax = max(yMax, q.Y)
	}
	return image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)))
}
