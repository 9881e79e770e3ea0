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

// Package sfntpath converts glyph outlines of TrueType and OpenType fonts
// into paths.
package sfntpath

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Text returns the outline of a left-to-right run of glyphs, set at ppem
// pixels per em.
//
// The result is in pixel coordinates: the y-axis points down, the origin
// of the first glyph is at x = 0, and the baseline is placed at the
// ascent of the font, so that the tops of most glyphs are close to y = 0.
// Every contour is closed.  Glyphs from CFF-based fonts contain cubic
// Bézier curves.
func Text(f *sfnt.Font, text string, ppem float64) (*path.Data, error) {
	if !(ppem > 0) || math.IsInf(ppem, 0) {
		return nil, fmt.Errorf("sfntpath: invalid font size %g", ppem)
	}
	size := fixed.Int26_6(math.Round(ppem * 64))

	var buf sfnt.Buffer
	metrics, err := f.Metrics(&buf, size, font.HintingNone)
	if err != nil {
		return nil, err
	}

	res := &path.Data{}
	dot := fixed.Point26_6{Y: metrics.Ascent}
	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			kern, err := f.Kern(&buf, prev, gid, size, font.HintingNone)
			if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
				return nil, err
			}
			dot.X += kern
		}

		segments, err := f.LoadGlyph(&buf, gid, size, nil)
		if err != nil {
			return nil, fmt.Errorf("sfntpath: glyph %d (%q): %w", gid, r, err)
		}
		res = appendSegments(res, segments, dot)

		advance, err := f.GlyphAdvance(&buf, gid, size, font.HintingNone)
		if err != nil {
			return nil, err
		}
		dot.X += advance
		prev = gid
	}
	return res, nil
}

// appendSegments adds a glyph outline, shifted to dot, to p.
func appendSegments(p *path.Data, segments sfnt.Segments, dot fixed.Point26_6) *path.Data {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{
			X: float64(q.X+dot.X) / 64,
			Y: float64(q.Y+dot.Y) / 64,
		}
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	return p
}
