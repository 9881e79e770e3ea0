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

// Package testcases contains a corpus of outlines used to test the
// rasteriser against independent reference renderers.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster"
)

// TestCase defines a single rendering test.
//
// All test cases consist of closed contours made of lines and quadratic
// Bézier curves, and lie inside the canvas after applying the transform.
type TestCase struct {
	Name      string                // lowercase a-z and _ only
	Path      *path.Data            // the outline to render
	Width     int                   // canvas width in pixels
	Height    int                   // canvas height in pixels
	Transform glyphraster.Transform // outline to pixel space (zero-value means identity)
	Rule      FillRule              // fill rule (zero-value means nonzero)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// PixelTransform returns the transform to use for rendering tc.
func (tc TestCase) PixelTransform() glyphraster.Transform {
	if tc.Transform == (glyphraster.Transform{}) {
		return glyphraster.Identity
	}
	return tc.Transform
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
