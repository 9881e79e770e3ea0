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

import "math"

// gammaTable maps linear coverage 0, ..., FixedOne to sRGB encoded 8-bit
// intensities.  It is filled once during package initialization and is
// read-only afterwards.
var gammaTable [FixedOne + 1]uint8

func init() {
	for i := range gammaTable {
		s := linearToSRGB(float64(i) / FixedOne)
		gammaTable[i] = uint8(math.Round(min(max(s, 0), 1) * 255))
	}
}

// linearToSRGB is the sRGB transfer function.
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Gamma converts a linear coverage value in fixed point (0 to FixedOne)
// into a gamma corrected 8-bit intensity.  Values outside the range are
// clamped.
func Gamma(v int) uint8 {
	return gammaTable[min(max(v, 0), FixedOne)]
}

// Linear converts a linear coverage value in fixed point (0 to FixedOne)
// into an 8-bit intensity without gamma correction.  Values outside the
// range are clamped.
func Linear(v int) uint8 {
	v = min(max(v, 0), FixedOne)
	return uint8((v*255 + FixedOne/2) >> FracBits)
}
