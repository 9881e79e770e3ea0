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

// Package lanes provides a fixed-width vector of signed 16-bit values for
// the column-wise coverage export.
//
// The operations are written as simple loops over fixed-size arrays so that
// the Go compiler can keep the values in registers and, where supported,
// emit SIMD instructions.  All arithmetic saturates at the int16 limits,
// matching the behaviour of packed saturating adds on common hardware.
package lanes

import "math"

// Width is the number of lanes processed together.
const Width = 8

// I16x8 holds one int16 value per lane.
type I16x8 [Width]int16

// Splat returns a vector with all lanes set to v.
func Splat(v int16) I16x8 {
	var res I16x8
	for i := range res {
		res[i] = v
	}
	return res
}

// AddSat performs lane-wise addition, saturating at the int16 limits.
func (v I16x8) AddSat(w I16x8) I16x8 {
	var res I16x8
	for i := range v {
		res[i] = Sat16(int32(v[i]) + int32(w[i]))
	}
	return res
}

// AbsSat returns the lane-wise absolute value.
// The value -32768 maps to 32767.
func (v I16x8) AbsSat() I16x8 {
	var res I16x8
	for i := range v {
		x := int32(v[i])
		if x < 0 {
			x = -x
		}
		res[i] = Sat16(x)
	}
	return res
}

// Min returns the lane-wise minimum of v and limit.
func (v I16x8) Min(limit int16) I16x8 {
	var res I16x8
	for i := range v {
		res[i] = min(v[i], limit)
	}
	return res
}

// Fold maps non-negative lane values to even-odd coverage: values are
// reduced modulo 2*one and then reflected at one, so that 0, one, 2*one,
// 3*one, ... map to 0, one, 0, one, ...
func (v I16x8) Fold(one int16) I16x8 {
	period := 2 * int32(one)
	var res I16x8
	for i := range v {
		x := int32(v[i]) % period
		res[i] = int16(int32(one) - abs32(int32(one)-x))
	}
	return res
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// IsZero reports whether all lanes are zero.
func (v I16x8) IsZero() bool {
	return v == I16x8{}
}

// FirstNonZero returns the index of the first non-zero lane, or -1.
func (v I16x8) FirstNonZero() int {
	for i, x := range v {
		if x != 0 {
			return i
		}
	}
	return -1
}

// Sat16 narrows x to int16, saturating at the limits.
func Sat16[T int32 | int64 | int](x T) int16 {
	switch {
	case x > math.MaxInt16:
		return math.MaxInt16
	case x < math.MinInt16:
		return math.MinInt16
	default:
		return int16(x)
	}
}
