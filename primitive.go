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
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Primitive is a piece of pixel geometry emitted by an artist.
type Primitive interface {
	// Paint draws the primitive.
	Paint(r Renderer)

	// Hits reports whether the primitive occupies part of the legend
	// region box.
	Hits(box rect.Rect) bool
}

// Segment is a straight line between two pixels.
type Segment struct {
	X1, Y1, X2, Y2 int
	Style          LineStyle
	Color          color.Color
}

// Paint implements the Primitive interface.
func (s Segment) Paint(r Renderer) {
	r.Line(s.X1, s.Y1, s.X2, s.Y2, s.Style, s.Color)
}

// Hits implements the Primitive interface.
func (s Segment) Hits(box rect.Rect) bool {
	return SegmentHit(s.X1, s.Y1, s.X2, s.Y2)(box)
}

// Box is an axis-aligned rectangle with inclusive corners.
type Box struct {
	X1, Y1, X2, Y2 int
	Color          color.Color
	Outline        bool // draw only the border

	// Background boxes are painted but ignored when placing the legend.
	Background bool
}

// Paint implements the Primitive interface.
func (b Box) Paint(r Renderer) {
	if b.Outline {
		r.Rectangle(b.X1, b.Y1, b.X2, b.Y2, b.Color)
	} else {
		r.FilledRectangle(b.X1, b.Y1, b.X2, b.Y2, b.Color)
	}
}

// Hits implements the Primitive interface.
func (b Box) Hits(box rect.Rect) bool {
	if b.Background {
		return false
	}
	return BoxHit(b.X1, b.Y1, b.X2, b.Y2)(box)
}

// Dot is a marker glyph centred on a pixel.
type Dot struct {
	X, Y  int
	Size  int
	Shape MarkerShape
	Color color.Color
}

// Paint implements the Primitive interface.
func (d Dot) Paint(r Renderer) {
	drawMarker(r, d.X, d.Y, d.Shape, d.Size, d.Color)
}

// Hits implements the Primitive interface.
func (d Dot) Hits(box rect.Rect) bool {
	half := float64(d.Size) / 2
	x1, x2 := float64(d.X)-half, float64(d.X)+half
	y1, y2 := float64(d.Y)-half, float64(d.Y)+half
	return !(x2 < box.LLx || box.URx < x1 || y2 < box.LLy || box.URy < y1)
}

// Arc is a filled pie slice.
type Arc struct {
	CX, CY     int
	W, H       int
	Start, End float64 // degrees, counter-clockwise
	Color      color.Color
}

// Paint implements the Primitive interface.
func (a Arc) Paint(r Renderer) {
	r.FilledArc(a.CX, a.CY, a.W, a.H, a.Start, a.End, a.Color)
}

// Hits implements the Primitive interface. Pie slices are not taken into
// account for legend placement.
func (a Arc) Hits(rect.Rect) bool { return false }

// Text is a label drawn as part of the data.
type Text struct {
	X, Y   int
	S      string
	Font   Font
	Angle  int
	HAlign HAlign
	VAlign VAlign
	Color  color.Color
}

// Paint implements the Primitive interface.
func (t Text) Paint(r Renderer) {
	r.Text(t.Font, t.X, t.Y, t.S, t.Angle, t.HAlign, t.VAlign, t.Color)
}

// Hits implements the Primitive interface.
func (t Text) Hits(rect.Rect) bool { return false }
