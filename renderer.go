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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/chart/style"
)

// Renderer draws pixel primitives onto a canvas. All coordinates are in
// pixel space with the origin in the bottom-left corner; y grows upwards.
// Rectangle corners are inclusive.
//
// A Renderer is owned by one draw pass at a time.
type Renderer interface {
	Point(x, y int, c color.Color)
	Line(x1, y1, x2, y2 int, style LineStyle, c color.Color)
	Rectangle(x1, y1, x2, y2 int, c color.Color)
	FilledRectangle(x1, y1, x2, y2 int, c color.Color)

	// Ellipse and FilledEllipse take the centre and the full width and
	// height of the ellipse.
	Ellipse(cx, cy, w, h int, c color.Color)
	FilledEllipse(cx, cy, w, h int, c color.Color)

	// FilledArc draws a pie slice. The angles are in degrees, measured
	// counter-clockwise from the positive x axis.
	FilledArc(cx, cy, w, h int, start, end float64, c color.Color)

	Polygon(pts []image.Point, c color.Color)
	FilledPolygon(pts []image.Point, c color.Color)

	// Text draws s anchored at (x, y). The angle is 0 or 90 degrees.
	Text(f Font, x, y int, s string, angle int, h HAlign, v VAlign, c color.Color)

	// MeasureText returns the box Text would cover, without drawing.
	MeasureText(f Font, x, y int, s string, angle int, h HAlign, v VAlign) TextBox
}

// Font selects one of the renderer's fixed-size fonts. Larger sizes give
// larger glyphs.
type Font struct {
	Size int
}

// TextBox is the pixel box covered by a text label.
type TextBox struct {
	X, Y int // lower-left corner
	W, H int
}

// HAlign is the horizontal anchor of a text label.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignHCenter
	AlignRight
)

// VAlign is the vertical anchor of a text label.
type VAlign int

const (
	AlignBottom VAlign = iota
	AlignCenter
	AlignTop
)

// AlignText positions a text of the given unrotated advance width and
// line height. For angle 90 the text runs upwards, so the horizontal
// anchor applies along the y axis and the vertical anchor along x.
func AlignText(width, height, x, y, angle int, h HAlign, v VAlign) TextBox {
	if angle == 0 {
		b := TextBox{W: width, H: height}
		switch h {
		case AlignLeft:
			b.X = x
		case AlignHCenter:
			b.X = x - width/2
		case AlignRight:
			b.X = x - width
		}
		switch v {
		case AlignBottom:
			b.Y = y
		case AlignCenter:
			b.Y = y - height/2
		case AlignTop:
			b.Y = y - height
		}
		return b
	}

	b := TextBox{W: height, H: width}
	switch h {
	case AlignLeft:
		b.Y = y
	case AlignHCenter:
		b.Y = y - width/2
	case AlignRight:
		b.Y = y - width
	}
	switch v {
	case AlignTop:
		b.X = x
	case AlignCenter:
		b.X = x - height/2
	case AlignBottom:
		b.X = x - height
	}
	return b
}

// LineStyle describes how a line is stroked.
type LineStyle struct {
	Width int

	// Dash is a sequence of '-' (long dash) and '.' (dot) characters.
	// The empty string gives a solid line.
	Dash string
}

// DashArray converts a dash string into alternating on/off lengths for a
// line of the given width. A '-' gives a dash four widths long, a '.' a
// dash of one width; each is followed by a gap of one width.
func DashArray(dash string, width float64) ([]float64, error) {
	if dash == "" {
		return nil, nil
	}
	width = max(width, 1)
	res := make([]float64, 0, 2*len(dash))
	for _, c := range dash {
		switch c {
		case '-':
			res = append(res, 4*width, width)
		case '.':
			res = append(res, width, width)
		default:
			return nil, invalidf("invalid dash character %q", c)
		}
	}
	return res, nil
}

// ParseColor converts an SVG colour name (case-insensitive), a one-letter
// colour code or a "#rrggbb" hex string to a colour.
func ParseColor(s string) (color.Color, error) {
	c, err := style.ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on error. It is intended
// for colour constants.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// defaultColors is the colour sequence used for successive data series.
var defaultColors = []color.RGBA{
	colornames.Royalblue, colornames.Orange, colornames.Seagreen, colornames.Red,
	colornames.Purple, colornames.Brown, colornames.Salmon, colornames.Slategray,
	colornames.Yellowgreen, colornames.Aquamarine, colornames.Slateblue, colornames.Peru,
	colornames.Palegreen, colornames.Magenta, colornames.Gold, colornames.Violet,
}

// ColorCycle hands out the default series colours in order, starting
// again after the last one.
type ColorCycle struct {
	next int
}

// Next returns the next colour of the cycle.
func (c *ColorCycle) Next() color.Color {
	col := defaultColors[c.next]
	c.next = (c.next + 1) % len(defaultColors)
	return col
}

// Reset restarts the cycle with the first colour.
func (c *ColorCycle) Reset() {
	c.next = 0
}
