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

// Package glyphraster converts vector outlines made of straight lines and
// quadratic Bézier curves, such as TrueType glyph contours, into
// anti-aliased 8-bit coverage images.
//
// Rendering proceeds in three strictly sequential stages:
//
//  1. Curves are transformed into pixel space and flattened into line
//     segments ([Flattener]).
//  2. Each line is split at pixel boundaries and its signed area is
//     accumulated, in fixed point, into the cell grid of a [Workspace]
//     ([Workspace.DrawLine]).
//  3. A running sum down every cell column turns the per-cell deltas into
//     pixel coverage, processed [LaneWidth] columns at a time
//     ([Workspace.Export]).
//
// The [Rasteriser] type ties the stages together.  A Workspace is owned by
// exactly one render; independent renders may run concurrently as long as
// they use separate workspaces.
package glyphraster

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphraster/internal/lanes"
)

// Fixed point parameters of the coverage accumulator.
const (
	// FracBits is the number of fractional bits used when quantizing
	// coordinates.
	FracBits = 10

	// FixedOne is the quantization scale: one pixel in fixed point units.
	// Full coverage of a pixel corresponds to FixedOne.
	FixedOne = 1 << FracBits
)

// LaneWidth is the number of pixel columns the exporter processes together.
// The stride of the cell grid is always a multiple of LaneWidth.
const LaneWidth = lanes.Width

// Line is a straight line segment.
type Line struct {
	Beg, End vec.Vec2
}

// Curve is a quadratic Bézier curve.
type Curve struct {
	Beg, Ctrl, End vec.Vec2
}

// Transform maps outline space to pixel space.
// A point p is mapped to p*Scale + Move, where the multiplication is
// component-wise.  Scaling always happens before the translation.
type Transform struct {
	Scale vec.Vec2
	Move  vec.Vec2
}

// Identity is the transform which leaves all points unchanged.
var Identity = Transform{Scale: vec.Vec2{X: 1, Y: 1}}

// Apply maps a single point.
func (trf Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.X*trf.Scale.X + trf.Move.X,
		Y: p.Y*trf.Scale.Y + trf.Move.Y,
	}
}

// ApplyLine maps both end points of a line.
func (trf Transform) ApplyLine(l Line) Line {
	return Line{Beg: trf.Apply(l.Beg), End: trf.Apply(l.End)}
}

// ApplyCurve maps all three control points of a curve.
func (trf Transform) ApplyCurve(c Curve) Curve {
	return Curve{
		Beg:  trf.Apply(c.Beg),
		Ctrl: trf.Apply(c.Ctrl),
		End:  trf.Apply(c.End),
	}
}

// Matrix returns the transform as an affine matrix, for use with code
// which expects a current transformation matrix.
func (trf Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{trf.Scale.X, 0, 0, trf.Scale.Y, trf.Move.X, trf.Move.Y}
}
