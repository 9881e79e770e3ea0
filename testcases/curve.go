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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_deep",
		Path:   quadraticCurve(10, 50, 32, 5, 54, 50), // control point far from chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20), // curves down
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start point
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_point",
		Path:   quadraticCurve(32, 32, 32, 32, 32, 32), // all control points coincide
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_large",
		Path:   circle(64, 64, 60),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "curve_many_segments",
		Path:   quadraticCurve(5, 60, 64, -50, 123, 60), // very detailed curve
		Width:  128,
		Height: 64,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bézier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first curve goes up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).     // second curve goes down
		Close()
}

// circle builds an approximate circle from eight quadratic Bézier curves,
// the way TrueType fonts describe round shapes.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse from eight quadratic Bézier curves.
// The control points lie on the tangents at the octant boundaries.  A
// negative ry reverses the direction.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	const n = 8
	k := 1 / math.Cos(math.Pi/n)

	p := (&path.Data{}).MoveTo(pt(cx+rx, cy))
	for i := range n {
		mid := (float64(i) + 0.5) * 2 * math.Pi / n
		end := float64(i+1) * 2 * math.Pi / n
		p = p.QuadTo(
			pt(cx+k*rx*math.Cos(mid), cy-k*ry*math.Sin(mid)),
			pt(cx+rx*math.Cos(end), cy-ry*math.Sin(end)))
	}
	return p.Close()
}

// reversedCircle builds a circle traversed in the opposite direction to
// circle, for use as a hole.
func reversedCircle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, -r)
}
