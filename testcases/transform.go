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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster"
)

var transformCases = []TestCase{
	{
		Name:      "scale_2x",
		Path:      rectangle(0, 0, 20, 20),
		Width:     128,
		Height:    128,
		Transform: scaleMove(2, 2, 24, 24),
	},
	{
		Name:      "scale_half",
		Path:      rectangle(0, 0, 80, 80),
		Width:     64,
		Height:    64,
		Transform: scaleMove(0.5, 0.5, 12, 12),
	},
	{
		Name:      "scale_10x",
		Path:      rectangle(0, 0, 4, 4),
		Width:     128,
		Height:    128,
		Transform: scaleMove(10, 10, 44, 44),
	},
	{
		Name:      "scale_2x_1y",
		Path:      rectangle(-10, -10, 10, 10),
		Width:     128,
		Height:    64,
		Transform: scaleMove(2, 1, 64, 32),
	},
	{
		Name:      "circle_to_ellipse",
		Path:      circle(0, 0, 15),
		Width:     128,
		Height:    64,
		Transform: scaleMove(3.5, 1.5, 64, 32),
	},
	{
		// font units, with the y-axis pointing up
		Name:      "flip_y",
		Path:      quadraticCurve(100, 100, 1000, 1900, 1900, 100),
		Width:     64,
		Height:    64,
		Transform: scaleMove(1.0/32, -1.0/32, 0, 64),
	},
	{
		Name:      "mirror_x",
		Path:      sCurveQuadratic(10, 32, 54, 32),
		Width:     64,
		Height:    64,
		Transform: scaleMove(-1, 1, 64, 0),
	},
	{
		Name:      "subpixel_move",
		Path:      circle(0, 0, 10),
		Width:     32,
		Height:    32,
		Transform: scaleMove(1, 1, 15.3, 16.7),
	},
}

func scaleMove(sx, sy, mx, my float64) glyphraster.Transform {
	return glyphraster.Transform{
		Scale: vec.Vec2{X: sx, Y: sy},
		Move:  vec.Vec2{X: mx, Y: my},
	}
}
