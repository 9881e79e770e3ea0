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
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Default values for the curve flattener.
const (
	// DefaultFlatness is the default flattening tolerance in pixels,
	// measured as the Manhattan distance between the control point and
	// the midpoint of the chord.
	DefaultFlatness = 0.5

	// DefaultMaxDepth is the default limit on the number of subdivision
	// levels.  A curve is never split into more than 2^DefaultMaxDepth
	// lines.
	DefaultMaxDepth = 24
)

// Flattener approximates quadratic Bézier curves by line segments.
// The zero value uses DefaultFlatness and DefaultMaxDepth.
type Flattener struct {
	// Tolerance is the maximal Manhattan distance, in pixels, between
	// the control point and the chord midpoint of a curve which is drawn
	// as a single line.
	Tolerance float64

	// MaxDepth limits the recursion depth.  Curves still not flat at this
	// depth are replaced by their chord.
	MaxDepth int
}

// Flatten transforms c into pixel space and calls yield for each line of
// the approximating polyline, in order from c.Beg to c.End.  The first
// line starts exactly at trf.Apply(c.Beg) and the last line ends exactly
// at trf.Apply(c.End).
//
// Flatten stops early and returns false if yield returns false.
func (f Flattener) Flatten(c Curve, trf Transform, yield func(Line) bool) bool {
	tol := f.Tolerance
	if tol <= 0 {
		tol = DefaultFlatness
	}
	maxDepth := f.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return subdivide(trf.ApplyCurve(c), tol, maxDepth, yield)
}

// Lines returns an iterator over the lines produced by [Flattener.Flatten].
func (f Flattener) Lines(c Curve, trf Transform) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		f.Flatten(c, trf, yield)
	}
}

// subdivide emits the chord of c if c is flat enough, and otherwise
// recurses on both halves.  depth counts the remaining subdivision levels.
func subdivide(c Curve, tol float64, depth int, yield func(Line) bool) bool {
	if depth == 0 || isFlat(c, tol) || !isFinite(c) {
		return yield(Line{Beg: c.Beg, End: c.End})
	}
	left, right := splitCurve(c)
	if !subdivide(left, tol, depth-1, yield) {
		return false
	}
	return subdivide(right, tol, depth-1, yield)
}

// isFlat compares the Manhattan distance between the control point and the
// chord midpoint against tol.
func isFlat(c Curve, tol float64) bool {
	mid := midpoint(c.Beg, c.End)
	dist := math.Abs(c.Ctrl.X-mid.X) + math.Abs(c.Ctrl.Y-mid.Y)
	return dist <= tol
}

// splitCurve splits c at t = 1/2.
func splitCurve(c Curve) (Curve, Curve) {
	ctrl0 := midpoint(c.Beg, c.Ctrl)
	ctrl1 := midpoint(c.Ctrl, c.End)
	pivot := midpoint(ctrl0, ctrl1)
	return Curve{Beg: c.Beg, Ctrl: ctrl0, End: pivot},
		Curve{Beg: pivot, Ctrl: ctrl1, End: c.End}
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func isFinite(c Curve) bool {
	for _, x := range [...]float64{c.Beg.X, c.Beg.Y, c.Ctrl.X, c.Ctrl.Y, c.End.X, c.End.Y} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
