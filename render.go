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

//go:generate go run ./testcases/genpdf -d testdata/reference

import "seehuhn.de/go/geom/path"

// RenderInto renders the outline p into a grayscale buffer.
// Pixel (x, y) is stored in buf[y*stride+x], in row-major order.  Each
// byte represents coverage from 0 (transparent) to 255 (opaque).  All
// width×height pixels are overwritten.
func (r *Rasteriser) RenderInto(p *path.Data, buf []byte, width, height, stride int) error {
	ws, err := r.fillNew(p, width, height)
	if err != nil {
		return err
	}
	return ws.Export(buf, stride, r.exportOptions())
}
