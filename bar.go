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

	"gonum.org/v1/gonum/floats"
)

// Bar draws one filled rectangle per data index.
type Bar struct {
	Left, Bottom  []float64
	Width, Height []float64

	Color       color.Color
	LegendWidth int // thickness of the legend swatch
	LegendLabel string
}

// NewBar checks that all four slices have the same, non-zero length and
// returns a bar artist.
func NewBar(left, bottom, width, height []float64, c color.Color) (*Bar, error) {
	n := len(left)
	if n == 0 || len(bottom) != n || len(width) != n || len(height) != n {
		return nil, invalidf("bar: mismatched data lengths %d, %d, %d, %d",
			len(left), len(bottom), len(width), len(height))
	}
	return &Bar{Left: left, Bottom: bottom, Width: width, Height: height, Color: c}, nil
}

// DataExtent implements the Artist interface.
func (b *Bar) DataExtent() Extent {
	right := floats.AddTo(make([]float64, len(b.Left)), b.Left, b.Width)
	top := floats.AddTo(make([]float64, len(b.Bottom)), b.Bottom, b.Height)
	return extentOf(b.Left, b.Bottom).Union(extentOf(right, top))
}

// Geometry implements the Artist interface.
func (b *Bar) Geometry(s *Scaling) ([]Primitive, error) {
	res := make([]Primitive, len(b.Left))
	for i := range b.Left {
		px1, py1 := s.X(b.Left[i]), s.Y(b.Bottom[i])
		px2, py2 := s.X(b.Left[i]+b.Width[i]), s.Y(b.Bottom[i]+b.Height[i])
		if px1 > px2 {
			px1, px2 = px2, px1
		}
		if py1 > py2 {
			py1, py2 = py2, py1
		}
		// neighbouring bars must not share a pixel column
		if px1 != px2 {
			px2--
		}
		if py1 != py2 {
			py2--
		}
		res[i] = Box{X1: px1, Y1: py1, X2: px2, Y2: py2, Color: b.Color}
	}
	return res, nil
}

// DrawLegend implements the Artist interface.
func (b *Bar) DrawLegend(r Renderer, x, y, length int) {
	drawBand(r, x, y, length, b.LegendWidth, b.Color)
}

// drawBand draws a horizontal band centred on y, used as legend swatch
// for area-like artists.
func drawBand(r Renderer, x, y, length, thickness int, c color.Color) {
	y1 := y - thickness/2
	r.FilledRectangle(x, y1, x+length-1, y1+thickness-1, c)
}

// Label implements the Artist interface.
func (b *Bar) Label() string { return b.LegendLabel }

func (*Bar) isArtist() {}
