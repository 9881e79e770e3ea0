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
	"fmt"

	"seehuhn.de/go/geom/path"
)

var (
	// ErrGeometryOutOfBounds indicates that a line reached outside the
	// cell grid of the workspace.
	ErrGeometryOutOfBounds = errors.New("glyphraster: geometry outside of workspace")

	// ErrUnsupportedOutline indicates that an outline contains a
	// construct which the rasteriser cannot handle.
	ErrUnsupportedOutline = errors.New("glyphraster: unsupported outline kind")

	// ErrResourceExhausted indicates that a workspace or image would be
	// too large to allocate.
	ErrResourceExhausted = errors.New("glyphraster: resource exhausted")

	// ErrCoverageLeak indicates that winding contributions did not cancel
	// at the bottom of a cell column.
	ErrCoverageLeak = errors.New("glyphraster: winding does not cancel")
)

// GeometryError is returned when a coordinate falls outside the workspace.
// The coordinates are in pixel units; non-finite input is reported with
// X and Y set to -1.
type GeometryError struct {
	X, Y          int
	Width, Height int
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("glyphraster: pixel (%d, %d) outside of %dx%d workspace",
		err.X, err.Y, err.Width, err.Height)
}

func (err *GeometryError) Unwrap() error {
	return ErrGeometryOutOfBounds
}

// UnsupportedOutlineError identifies the first path command which the
// rasteriser does not handle.
type UnsupportedOutlineError struct {
	Index int // position of the command in the path
	Cmd   path.Command
	Msg   string
}

func (err *UnsupportedOutlineError) Error() string {
	msg := err.Msg
	if msg == "" {
		msg = "unsupported command"
	}
	return fmt.Sprintf("glyphraster: path command %d (%s): %s",
		err.Index, cmdName(err.Cmd), msg)
}

func (err *UnsupportedOutlineError) Unwrap() error {
	return ErrUnsupportedOutline
}

// ResourceError is returned when the requested workspace is too large.
type ResourceError struct {
	Width, Height int
}

func (err *ResourceError) Error() string {
	return fmt.Sprintf("glyphraster: cannot allocate %dx%d workspace", err.Width, err.Height)
}

func (err *ResourceError) Unwrap() error {
	return ErrResourceExhausted
}

// CoverageLeakError reports a cell column where the accumulated winding
// was not zero after the last row.
type CoverageLeakError struct {
	Column   int
	Residual int
}

func (err *CoverageLeakError) Error() string {
	return fmt.Sprintf("glyphraster: winding residual %d in column %d", err.Residual, err.Column)
}

func (err *CoverageLeakError) Unwrap() error {
	return ErrCoverageLeak
}

func cmdName(cmd path.Command) string {
	switch cmd {
	case path.CmdMoveTo:
		return "MoveTo"
	case path.CmdLineTo:
		return "LineTo"
	case path.CmdQuadTo:
		return "QuadTo"
	case path.CmdCubeTo:
		return "CubeTo"
	case path.CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("command %d", int(cmd))
	}
}
