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

import "fmt"

// Rect is a rectangle in pixel space. The origin is at the bottom-left
// corner of the canvas and y grows upwards.
type Rect struct {
	Left, Bottom  int
	Width, Height int
}

// NewRect returns the rectangle with the given lower-left corner and size.
// Width and height must be positive.
func NewRect(left, bottom, width, height int) (Rect, error) {
	r := Rect{Left: left, Bottom: bottom, Width: width, Height: height}
	if err := r.check(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func (r Rect) check() error {
	if r.Width <= 0 {
		return invalidf("plot area width %d is not positive", r.Width)
	}
	if r.Height <= 0 {
		return invalidf("plot area height %d is not positive", r.Height)
	}
	return nil
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Top returns the y coordinate just past the top edge.
func (r Rect) Top() int { return r.Bottom + r.Height }

// Square shrinks the longer side of r to the length of the shorter side,
// keeping the result centred in r.
func (r Rect) Square() Rect {
	switch {
	case r.Width > r.Height:
		r.Left += (r.Width - r.Height) / 2
		r.Width = r.Height
	case r.Width < r.Height:
		r.Bottom += (r.Height - r.Width) / 2
		r.Height = r.Width
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.Left, r.Bottom)
}
