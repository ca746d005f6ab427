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
	"image"
	"image/color"
	"slices"
	"testing"
)

// call is one recorded Renderer method call.
type call struct {
	op   string
	args []int
	text string
	c    color.Color
}

// recorder is a Renderer which records all calls. Text is measured as
// 8x16 pixels per character.
type recorder struct {
	calls []call
}

func (r *recorder) add(op string, c color.Color, args ...int) {
	r.calls = append(r.calls, call{op: op, args: args, c: c})
}

func (r *recorder) Point(x, y int, c color.Color) { r.add("point", c, x, y) }
func (r *recorder) Line(x1, y1, x2, y2 int, _ LineStyle, c color.Color) {
	r.add("line", c, x1, y1, x2, y2)
}
func (r *recorder) Rectangle(x1, y1, x2, y2 int, c color.Color) { r.add("rect", c, x1, y1, x2, y2) }
func (r *recorder) FilledRectangle(x1, y1, x2, y2 int, c color.Color) {
	r.add("fillrect", c, x1, y1, x2, y2)
}
func (r *recorder) Ellipse(cx, cy, w, h int, c color.Color) { r.add("ellipse", c, cx, cy, w, h) }
func (r *recorder) FilledEllipse(cx, cy, w, h int, c color.Color) {
	r.add("fillellipse", c, cx, cy, w, h)
}
func (r *recorder) FilledArc(cx, cy, w, h int, start, end float64, c color.Color) {
	r.add("arc", c, cx, cy, w, h, int(start), int(end))
}
func (r *recorder) Polygon(pts []image.Point, c color.Color)       { r.add("polygon", c, len(pts)) }
func (r *recorder) FilledPolygon(pts []image.Point, c color.Color) { r.add("fillpolygon", c, len(pts)) }

func (r *recorder) Text(f Font, x, y int, s string, angle int, h HAlign, v VAlign, c color.Color) {
	r.calls = append(r.calls, call{op: "text", args: []int{x, y, angle}, text: s, c: c})
}

func (r *recorder) MeasureText(f Font, x, y int, s string, angle int, h HAlign, v VAlign) TextBox {
	return AlignText(8*len(s), 16, x, y, angle, h, v)
}

// ops returns the operation names of all calls.
func (r *recorder) ops() []string {
	res := make([]string, len(r.calls))
	for i, c := range r.calls {
		res[i] = c.op
	}
	return res
}

// texts returns the strings of all text calls.
func (r *recorder) texts() []string {
	var res []string
	for _, c := range r.calls {
		if c.op == "text" {
			res = append(res, c.text)
		}
	}
	return res
}

func TestAlignText(t *testing.T) {
	tests := []struct {
		angle int
		h     HAlign
		v     VAlign
		want  TextBox
	}{
		{0, AlignLeft, AlignBottom, TextBox{X: 100, Y: 50, W: 40, H: 16}},
		{0, AlignHCenter, AlignCenter, TextBox{X: 80, Y: 42, W: 40, H: 16}},
		{0, AlignRight, AlignTop, TextBox{X: 60, Y: 34, W: 40, H: 16}},
		{90, AlignLeft, AlignTop, TextBox{X: 100, Y: 50, W: 16, H: 40}},
		{90, AlignHCenter, AlignCenter, TextBox{X: 92, Y: 30, W: 16, H: 40}},
		{90, AlignRight, AlignBottom, TextBox{X: 84, Y: 10, W: 16, H: 40}},
	}
	for _, tc := range tests {
		got := AlignText(40, 16, 100, 50, tc.angle, tc.h, tc.v)
		if got != tc.want {
			t.Errorf("angle %d, %d/%d: got %+v, want %+v", tc.angle, tc.h, tc.v, got, tc.want)
		}
	}
}

func TestDashArray(t *testing.T) {
	tests := []struct {
		dash  string
		width float64
		want  []float64
	}{
		{"", 1, nil},
		{"-", 1, []float64{4, 1}},
		{"-.", 2, []float64{8, 2, 2, 2}},
		{".", 0, []float64{1, 1}},
	}
	for _, tc := range tests {
		got, err := DashArray(tc.dash, tc.width)
		if err != nil {
			t.Errorf("%q: %v", tc.dash, err)
			continue
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("%q: got %v, want %v", tc.dash, got, tc.want)
		}
	}

	if _, err := DashArray("-x", 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("invalid dash: got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"r", color.RGBA{R: 255, A: 255}},
		{"Red", color.RGBA{R: 255, A: 255}},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"m", color.RGBA{R: 255, B: 255, A: 255}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "nocolor", "#12345g", "#123"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestColorCycle(t *testing.T) {
	var c ColorCycle
	first := c.Next()
	for range len(defaultColors) - 1 {
		c.Next()
	}
	if got := c.Next(); got != first {
		t.Errorf("cycle did not wrap: got %v, want %v", got, first)
	}
	c.Reset()
	if got := c.Next(); got != first {
		t.Errorf("after reset: got %v, want %v", got, first)
	}
}
