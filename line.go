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

import "image/color"

// Line connects successive data points by straight segments, optionally
// with a marker glyph at every point.
type Line struct {
	X, Y        []float64
	Width       int // stroke width in pixels
	Dash        string
	Marker      MarkerShape
	MarkerSize  int
	Color       color.Color
	LegendLabel string
}

// NewLine checks the data and returns a line artist.
func NewLine(x, y []float64, width int, c color.Color) (*Line, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, invalidf("line: x has %d values, y has %d", len(x), len(y))
	}
	return &Line{X: x, Y: y, Width: width, Color: c}, nil
}

// DataExtent implements the Artist interface.
func (l *Line) DataExtent() Extent {
	return extentOf(l.X, l.Y)
}

// Geometry implements the Artist interface.
func (l *Line) Geometry(s *Scaling) ([]Primitive, error) {
	style := LineStyle{Width: l.Width, Dash: l.Dash}
	res := make([]Primitive, 0, 2*len(l.X))

	px1, py1 := s.X(l.X[0]), s.Y(l.Y[0])
	if l.Marker != MarkerNone {
		res = append(res, Dot{X: px1, Y: py1, Size: l.MarkerSize, Shape: l.Marker, Color: l.Color})
	}
	for i := 1; i < len(l.X); i++ {
		px2, py2 := s.X(l.X[i]), s.Y(l.Y[i])
		res = append(res, Segment{X1: px1, Y1: py1, X2: px2, Y2: py2, Style: style, Color: l.Color})
		if l.Marker != MarkerNone {
			res = append(res, Dot{X: px2, Y: py2, Size: l.MarkerSize, Shape: l.Marker, Color: l.Color})
		}
		px1, py1 = px2, py2
	}
	return res, nil
}

// DrawLegend implements the Artist interface.
func (l *Line) DrawLegend(r Renderer, x, y, length int) {
	r.Line(x, y, x+length-1, y, LineStyle{Width: l.Width, Dash: l.Dash}, l.Color)
	if l.Marker != MarkerNone {
		drawMarker(r, x+length/2, y, l.Marker, l.MarkerSize, l.Color)
	}
}

// Label implements the Artist interface.
func (l *Line) Label() string { return l.LegendLabel }

func (*Line) isArtist() {}
