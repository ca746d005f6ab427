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

import (
	"errors"
	"fmt"
	"testing"
)

var testMargins = Margins{Left: 80, Bottom: 55, Right: 64, Top: 60}

func TestCellRectSingle(t *testing.T) {
	got, err := CellRect(640, 480, testMargins, GridCell{Rows: 1, Cols: 1}, 0.2, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{Left: 80, Bottom: 55, Width: 496, Height: 365}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCellRectGrid(t *testing.T) {
	tests := []struct {
		index int
		want  Rect
	}{
		{0, Rect{Left: 80, Bottom: 253, Width: 225, Height: 165}},
		{1, Rect{Left: 350, Bottom: 253, Width: 225, Height: 165}},
		{2, Rect{Left: 80, Bottom: 55, Width: 225, Height: 165}},
		{3, Rect{Left: 350, Bottom: 55, Width: 225, Height: 165}},
	}
	for _, tc := range tests {
		got, err := CellRect(640, 480, testMargins, GridCell{Rows: 2, Cols: 2, Index: tc.index}, 0.2, 0.2)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("cell %d: got %v, want %v", tc.index, got, tc.want)
		}
	}
}

// TestCellRectPartition checks that the cells of a grid do not overlap
// and stay inside the margins.
func TestCellRectPartition(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 3}, {3, 2}, {4, 4}, {1, 7}} {
		rows, cols := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			var cells []Rect
			for i := range rows * cols {
				r, err := CellRect(800, 600, testMargins, GridCell{Rows: rows, Cols: cols, Index: i}, 0.2, 0.3)
				if err != nil {
					t.Fatal(err)
				}
				if r.Left < testMargins.Left || r.Bottom < testMargins.Bottom ||
					r.Right() > 800-testMargins.Right || r.Top() > 600-testMargins.Top {
					t.Errorf("cell %d %v outside the usable area", i, r)
				}
				for j, other := range cells {
					if r.Left < other.Right() && other.Left < r.Right() &&
						r.Bottom < other.Top() && other.Bottom < r.Top() {
						t.Errorf("cells %d and %d overlap: %v, %v", j, i, other, r)
					}
				}
				cells = append(cells, r)
			}
		})
	}
}

func TestCellRectSpan(t *testing.T) {
	got, err := CellRect(640, 480, testMargins, GridCell{Rows: 2, Cols: 2, ColSpan: 2}, 0.2, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{Left: 80, Bottom: 253, Width: 450, Height: 165}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestCellRectRowSpan checks that a cell spanning rows extends downwards
// from its index row and stays inside the margins.
func TestCellRectRowSpan(t *testing.T) {
	got, err := CellRect(640, 480, testMargins, GridCell{Rows: 2, Cols: 2, RowSpan: 2}, 0.2, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{Left: 80, Bottom: 55, Width: 225, Height: 330}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Top() > 480-testMargins.Top {
		t.Errorf("top %d above the usable area", got.Top())
	}
}

// TestCellRectZeroSpacing checks that cells without gaps fill a row of
// the usable area up to rounding, one pixel per cell at most.
func TestCellRectZeroSpacing(t *testing.T) {
	usable := 800 - testMargins.Left - testMargins.Right
	for _, cols := range []int{1, 3, 7, 9} {
		t.Run(fmt.Sprintf("%d columns", cols), func(t *testing.T) {
			sum := 0
			prevRight := testMargins.Left
			for i := range cols {
				r, err := CellRect(800, 600, testMargins, GridCell{Rows: 1, Cols: cols, Index: i}, 0, 0)
				if err != nil {
					t.Fatal(err)
				}
				if r.Left != prevRight {
					t.Errorf("cell %d starts at %d, previous cell ends at %d", i, r.Left, prevRight)
				}
				prevRight = r.Right()
				sum += r.Width
			}
			if sum > usable || sum < usable-(cols-1) {
				t.Errorf("widths sum to %d of %d pixels", sum, usable)
			}
		})
	}
}

func TestCellRectInvalid(t *testing.T) {
	tests := []GridCell{
		{Rows: -1, Cols: 2},
		{Rows: 2, Cols: 2, Index: 4},
		{Rows: 2, Cols: 2, Index: -1},
		{Rows: 2, Cols: 2, RowSpan: -1},
		{Rows: 1, Cols: 3, Index: 2, ColSpan: 2},
		{Rows: 2, Cols: 2, Index: 2, RowSpan: 2},
		{Rows: 3, Cols: 3, Index: 4, RowSpan: 2, ColSpan: 3},
	}
	for _, g := range tests {
		if _, err := CellRect(640, 480, testMargins, g, 0.2, 0.2); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%+v: got %v", g, err)
		}
	}

	// a canvas which is too small for the margins
	if _, err := CellRect(100, 100, testMargins, GridCell{Rows: 1, Cols: 1}, 0.2, 0.2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("small canvas: got %v", err)
	}
}
