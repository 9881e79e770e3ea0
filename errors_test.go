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
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
)

func TestErrorSentinels(t *testing.T) {
	sentinels := []error{
		ErrGeometryOutOfBounds,
		ErrUnsupportedOutline,
		ErrResourceExhausted,
		ErrCoverageLeak,
	}
	cases := []struct {
		err  error
		want error
	}{
		{&GeometryError{X: 9, Y: 1, Width: 8, Height: 8}, ErrGeometryOutOfBounds},
		{&UnsupportedOutlineError{Index: 2, Cmd: path.CmdCubeTo}, ErrUnsupportedOutline},
		{&ResourceError{Width: 1 << 20, Height: 1 << 20}, ErrResourceExhausted},
		{&CoverageLeakError{Column: 3, Residual: -1024}, ErrCoverageLeak},
	}
	for _, tc := range cases {
		if errors.Unwrap(tc.err) != tc.want {
			t.Errorf("%T: Unwrap returned %v", tc.err, errors.Unwrap(tc.err))
		}
		for _, s := range sentinels {
			if got := errors.Is(tc.err, s); got != (s == tc.want) {
				t.Errorf("errors.Is(%T, %v) = %t", tc.err, s, got)
			}
		}
		if !strings.HasPrefix(tc.err.Error(), "glyphraster: ") {
			t.Errorf("%T: message %q lacks package prefix", tc.err, tc.err.Error())
		}
	}
}
