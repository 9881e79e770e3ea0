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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster/internal/lanes"
)

// neverCrosses is used as the parameter of the first grid crossing along
// an axis on which the line does not move.  Any value >= 1 works.
const neverCrosses = 2.0

// maxCoord bounds the magnitude of coordinates before quantization, so
// that the fixed point values fit comfortably into an int.
const maxCoord = 1 << 40

// Coverage accumulation model:
//
// Lines are cut at every horizontal and vertical pixel boundary.  Each
// piece (a "dot") lies inside a single cell and contributes
//
//	tail = -(x1 - x0)
//	edge = tail * area / FixedOne
//
// where area is the part of the cell below the dot, measured from the
// top edge of the cell.  The exporter computes, going down each column,
//
//	coverage = |winding + edge|,   winding += tail
//
// so that the horizontal extent of a dot acts as a step in winding for all
// pixels below it.  All quantities are in units of 1/FixedOne pixel.

// DrawLine adds the signed coverage of l to the workspace.
//
// Both end points must lie inside the rectangle [0, Width()]×[0, Height()].
// Otherwise a *GeometryError is returned and the workspace becomes
// unusable: all later calls return the same error.
func (ws *Workspace) DrawLine(l Line) error {
	if ws.err != nil {
		return ws.err
	}
	if err := ws.checkPoint(l.Beg); err != nil {
		ws.err = err
		return err
	}
	if err := ws.checkPoint(l.End); err != nil {
		ws.err = err
		return err
	}
	ws.lines++

	// Lines without horizontal extent do not change the winding of any
	// pixel.
	if quantize(l.Beg.X) == quantize(l.End.X) {
		return nil
	}

	dx := l.End.X - l.Beg.X
	dy := l.End.Y - l.Beg.Y

	// step size along each axis
	sx := stepSize(dx)
	sy := stepSize(dy)
	// t of next vertical / horizontal grid line crossing
	xt := firstCrossing(l.Beg.X, dx, sx)
	yt := firstCrossing(l.Beg.Y, dy, sy)

	prevT := 0.0
	prev := l.Beg
	for xt < 1 || yt < 1 {
		var t float64
		switch {
		case xt < yt:
			t = xt
			xt += sx
		case yt < xt:
			t = yt
			yt += sy
		default:
			t = xt
			xt += sx
			yt += sy
		}
		if t <= prevT {
			continue
		}

		cur := vec.Vec2{X: l.Beg.X + t*dx, Y: l.Beg.Y + t*dy}
		if err := ws.dot(prev, cur); err != nil {
			ws.err = err
			return err
		}
		prevT = t
		prev = cur
	}

	if err := ws.dot(prev, l.End); err != nil {
		ws.err = err
		return err
	}
	return nil
}

// checkPoint verifies that p lies inside the workspace, after quantization.
func (ws *Workspace) checkPoint(p vec.Vec2) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.Abs(p.X) > maxCoord || math.Abs(p.Y) > maxCoord {
		return &GeometryError{X: -1, Y: -1, Width: ws.width, Height: ws.height}
	}
	qx, qy := quantize(p.X), quantize(p.Y)
	if qx < 0 || qx > ws.width<<FracBits || qy < 0 || qy > ws.height<<FracBits {
		return &GeometryError{
			X:     int(math.Floor(p.X)),
			Y:     int(math.Floor(p.Y)),
			Width: ws.width, Height: ws.height,
		}
	}
	return nil
}

// dot accumulates a line segment which is confined to a single cell.
func (ws *Workspace) dot(beg, end vec.Vec2) error {
	bx, by := quantize(beg.X), quantize(beg.Y)
	ex, ey := quantize(end.X), quantize(end.Y)

	windingAndCover := bx - ex
	if windingAndCover == 0 {
		return nil
	}

	px := min(bx, ex) >> FracBits
	py := min(by, ey) >> FracBits
	yMax := max(by, ey)
	if px < 0 || px >= ws.width || py < 0 || py > ws.height ||
		(py == ws.height && yMax != ws.height<<FracBits) {
		return &GeometryError{X: px, Y: py, Width: ws.width, Height: ws.height}
	}

	// area of the cell below the dot, in units of 1/FixedOne
	top := py << FracBits
	area := abs(ey-by)/2 + FixedOne - (yMax - top)

	ws.push(dotWrite{
		idx:  py*ws.stride + px,
		edge: lanes.Sat16(roundDiv(windingAndCover*area, FixedOne)),
		tail: lanes.Sat16(windingAndCover),
	})
	ws.dots++
	return nil
}

// stepSize returns the change of the line parameter t between consecutive
// grid line crossings along an axis.
func stepSize(diff float64) float64 {
	if diff == 0 {
		return 0
	}
	return math.Abs(1 / diff)
}

// firstCrossing returns the line parameter t at which a coordinate which
// starts at beg and changes by diff first reaches an integer value.  This
// is zero if beg already is an integer and diff > 0.
func firstCrossing(beg, diff, stepSize float64) float64 {
	if diff == 0 {
		return neverCrosses
	}
	if diff < 0 {
		beg = -beg
	}
	return stepSize * (math.Ceil(beg) - beg)
}

// quantize converts a coordinate to fixed point.
func quantize(x float64) int {
	return int(math.Round(x * FixedOne))
}

// roundDiv returns a/b rounded to the nearest integer, for b > 0.
func roundDiv(a, b int) int {
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
