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

var glyphCases = []TestCase{
	{
		Name:   "letter_o",
		Path:   join(ellipse(32, 32, 20, 26), ellipse(32, 32, 12, -19)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_a",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_i",
		Path:   join(rectangle(28, 24, 36, 58), circle(32, 14, 5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "small_o",
		Path:   join(ellipse(6, 6, 4, 5), ellipse(6, 6, 2, -3)),
		Width:  12,
		Height: 12,
	},
}

// mixedLinesCurves builds a path combining line segments and quadratic
// Bézier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		QuadTo(pt(32, 62), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape similar to a lowercase 'a': a round bowl
// with a counter, joined to a stem on the right.
func glyphLikeShape() *path.Data {
	const cx, cy = 30.0, 38.0
	const r = 16.0
	const ir = 8.0

	bowl := circle(cx, cy, r)
	counter := reversedCircle(cx, cy, ir)
	stem := rectangle(cx+r-6, 12, cx+r+2, cy+r)
	arch := (&path.Data{}).
		MoveTo(pt(12, 20)).
		QuadTo(pt(16, 8), pt(32, 8)).
		QuadTo(pt(cx+r+2, 8), pt(cx+r+2, 20)).
		LineTo(pt(cx+r-6, 20)).
		QuadTo(pt(cx+r-6, 15), pt(32, 15)).
		QuadTo(pt(22, 15), pt(19, 22)).
		Close()

	return join(bowl, counter, stem, arch)
}
