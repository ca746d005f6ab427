// seehuhn.de/go/chart - a 2D chart layout engine
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

package chart

import "math"

// Margins are the blank borders around the usable area of a canvas, in
// pixels.
type Margins struct {
	Left, Bottom, Right, Top int
}

// GridCell selects a cell of a subplot grid. Index counts row by row
// from the top-left cell, starting at 0. A cell may span several rows
// and columns, extending right and down from the index cell; zero spans
// mean 1.
type GridCell struct {
	Rows, Cols       int
	Index            int
	RowSpan, ColSpan int
}

// Row returns the 0-based row of the cell, counted from the top.
func (g GridCell) Row() int { return g.Index / g.Cols }

// Col returns the 0-based column of the cell.
func (g GridCell) Col() int { return g.Index % g.Cols }

func (g GridCell) withDefaults() GridCell {
	if g.Rows == 0 {
		g.Rows = 1
	}
	if g.Cols == 0 {
		g.Cols = 1
	}
	if g.RowSpan == 0 {
		g.RowSpan = 1
	}
	if g.ColSpan == 0 {
		g.ColSpan = 1
	}
	return g
}

func (g GridCell) check() error {
	if g.Rows < 1 || g.Cols < 1 {
		return invalidf("grid %dx%d has no cells", g.Rows, g.Cols)
	}
	if g.Index < 0 || g.Index >= g.Rows*g.Cols {
		return invalidf("cell index %d outside %dx%d grid", g.Index, g.Rows, g.Cols)
	}
	if g.RowSpan < 1 || g.ColSpan < 1 {
		return invalidf("invalid cell span %dx%d", g.RowSpan, g.ColSpan)
	}
	if g.Row()+g.RowSpan > g.Rows || g.Col()+g.ColSpan > g.Cols {
		return invalidf("cell %d with span %dx%d extends past %dx%d grid",
			g.Index, g.RowSpan, g.ColSpan, g.Rows, g.Cols)
	}
	return nil
}

// CellRect returns the plot rectangle of one grid cell on a canvas of the
// given size. hSpacing and vSpacing give the gap between neighbouring
// cells as a fraction of the cell width and height. Row 0 is the top row.
func CellRect(canvasW, canvasH int, m Margins, g GridCell, hSpacing, vSpacing float64) (Rect, error) {
	g = g.withDefaults()
	if err := g.check(); err != nil {
		return Rect{}, err
	}

	usableW := canvasW - m.Left - m.Right
	usableH := canvasH - m.Bottom - m.Top

	cellW := cellSize(usableW, g.Cols, hSpacing)
	cellH := cellSize(usableH, g.Rows, vSpacing)

	row, col := g.Row(), g.Col()
	left := int(math.Floor(float64(col)*float64(cellW)*(1+hSpacing))) + m.Left
	bottom := int(math.Floor(float64(g.Rows-row-g.RowSpan)*float64(cellH)*(1+vSpacing))) + m.Bottom

	return NewRect(left, bottom, cellW*g.ColSpan, cellH*g.RowSpan)
}

// cellSize divides usable pixels between n cells separated by gaps of
// ratio times the cell size.
func cellSize(usable, n int, ratio float64) int {
	return int(math.Floor(float64(usable) / (1 + (1+ratio)*float64(n-1))))
}
