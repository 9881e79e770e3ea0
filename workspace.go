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
	"fmt"
	"log/slog"

	"seehuhn.de/go/glyphraster/internal/lanes"
)

// PendingCapacity is the number of cell updates a workspace buffers
// before applying them to the cell grid.
const PendingCapacity = 256

// MaxCells limits the size of the cell grid of a workspace.
const MaxCells = 1 << 28

// Cell holds the fixed point coverage deltas of one pixel.
//
// Edge is the contribution to the pixel itself.  Tail is the change in
// winding which applies to every pixel further down in the same column.
type Cell struct {
	Edge int16
	Tail int16
}

// dotWrite is a buffered, not yet applied update of one cell.
type dotWrite struct {
	idx  int
	edge int16
	tail int16
}

// Workspace owns the cell grid for one render.
//
// The grid has Stride() columns, a multiple of LaneWidth, and Height()+1
// rows.  The last row only receives contributions from horizontal lines
// lying exactly on the bottom edge of the image.  It is never exported,
// but it keeps the winding in each column balanced.
//
// A Workspace is not safe for concurrent use.
type Workspace struct {
	width, height int
	stride        int
	cells         []Cell

	pending  [PendingCapacity]dotWrite
	nPending int

	// err is the first error seen by DrawLine.  Once set, the workspace
	// contents are incomplete and all further drawing fails.
	err error

	// statistics, for logging
	lines   int
	dots    int
	flushes int
}

// NewWorkspace allocates a zeroed workspace for a width×height image.
func NewWorkspace(width, height int) (*Workspace, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("glyphraster: invalid workspace size %dx%d", width, height)
	}
	stride := strideFor(width)
	if stride != 0 && (height+1) > MaxCells/stride {
		return nil, &ResourceError{Width: width, Height: height}
	}

	ws := &Workspace{
		width:  width,
		height: height,
		stride: stride,
		cells:  make([]Cell, stride*(height+1)),
	}
	Logger().Debug("new workspace",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("stride", stride))
	return ws, nil
}

// strideFor rounds width up to a multiple of the lane width.
func strideFor(width int) int {
	return (width + LaneWidth - 1) / LaneWidth * LaneWidth
}

// Width returns the width of the output image in pixels.
func (ws *Workspace) Width() int { return ws.width }

// Height returns the height of the output image in pixels.
func (ws *Workspace) Height() int { return ws.height }

// Stride returns the number of cells per grid row.
func (ws *Workspace) Stride() int { return ws.stride }

// Cell returns the accumulated deltas of pixel (x, y).
// Pending writes are applied first.  The row y == Height() addresses the
// bottom spill row.
func (ws *Workspace) Cell(x, y int) Cell {
	ws.Flush()
	return ws.cells[y*ws.stride+x]
}

// Flush applies all buffered writes to the cell grid.
func (ws *Workspace) Flush() {
	if ws.nPending == 0 {
		return
	}
	for _, w := range ws.pending[:ws.nPending] {
		c := &ws.cells[w.idx]
		c.Edge = lanes.Sat16(int32(c.Edge) + int32(w.edge))
		c.Tail = lanes.Sat16(int32(c.Tail) + int32(w.tail))
	}
	ws.nPending = 0
	ws.flushes++
}

// push buffers a cell update, flushing when the buffer is full.
func (ws *Workspace) push(w dotWrite) {
	ws.pending[ws.nPending] = w
	ws.nPending++
	if ws.nPending == PendingCapacity {
		ws.Flush()
	}
}

// Err returns the first error encountered while drawing, if any.
func (ws *Workspace) Err() error {
	return ws.err
}

// Reset clears the cell grid, the pending buffer and any stored error,
// so that the workspace can be used for an unrelated outline of the same
// size.
func (ws *Workspace) Reset() {
	clear(ws.cells)
	ws.nPending = 0
	ws.err = nil
	ws.lines = 0
	ws.dots = 0
	ws.flushes = 0
}
