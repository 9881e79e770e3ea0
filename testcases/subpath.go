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
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rects",
		Path:   join(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rects_evenodd",
		Path:   join(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "overlapping_rects_opposite",
		Path:   join(rectangle(10, 10, 40, 40), rectangle(24, 54, 54, 24)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "round_ring",
		Path:   join(circle(32, 32, 25), reversedCircle(32, 32, 15)),
		Width:  64,
		Height: 64,
	},
}

// join concatenates the contours of several paths.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return join(
		triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size),
		triangle(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size))
}

// ringShape builds a ring: an outer square with an inner square cutout.
// The inner square runs in the opposite direction.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	return join(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy+innerSize, cx+innerSize, cy-innerSize))
}

// multipleRings builds three separate rings.
func multipleRings(cx, cy float64) *path.Data {
	return join(
		ringShape(cx-30, cy-30, 20, 10),
		ringShape(cx+30, cy-30, 20, 10),
		ringShape(cx, cy+30, 20, 10))
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	res := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			res = join(res, triangle(cx, cy-size, cx+size, cy+size, cx-size, cy+size))
		}
	}
	return res
}
