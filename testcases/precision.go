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

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_bar_y_integer",
		Path:   rectangle(5, 10, 59, 11),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_bar_y_half",
		Path:   rectangle(5, 10.5, 59, 11.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hairline_wedge",
		Path:   triangle(2, 30, 62, 30.1, 2, 30.2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tiny_shape",
		Path:   offsetRectangle(31.4, 31.4, 0.3, 0.3, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bottom_edge",
		Path:   rectangle(8, 40, 56, 64),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied
// to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	ox1 := x1 + offset
	oy1 := y1 + offset
	ox2 := x1 + w + offset
	oy2 := y1 + h + offset

	return rectangle(ox1, oy1, ox2, oy2)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *path.Data {
	// These values differ only in the low bits of float64.
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return rectangle(x1, y1, x2, y2)
}
