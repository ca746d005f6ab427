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
	"image"
	"image/color"
	"math"
)

// MarkerShape selects the glyph drawn at a data point.
type MarkerShape int

// The available marker glyphs. All shapes fit into a square of the marker
// size centred on the data point.
const (
	MarkerNone MarkerShape = iota
	MarkerSmallDot
	MarkerPixel
	MarkerDot
	MarkerYield
	MarkerDelta
	MarkerDown
	MarkerUp
	MarkerTriangle
	MarkerTriangleMid
	MarkerSquare
	MarkerHome
	MarkerStar
	MarkerHourglass
	MarkerBowtie
	MarkerTarget
	MarkerHalfLine
	MarkerBox
	MarkerCircle
	MarkerPlus
	MarkerCross
	MarkerDiamond
	MarkerVertical
	MarkerLine
	MarkerRect
)

var markerNames = map[MarkerShape]string{
	MarkerNone:        "none",
	MarkerSmallDot:    "smalldot",
	MarkerPixel:       "pixel",
	MarkerDot:         "dot",
	MarkerYield:       "yield",
	MarkerDelta:       "delta",
	MarkerDown:        "down",
	MarkerUp:          "up",
	MarkerTriangle:    "triangle",
	MarkerTriangleMid: "trianglemid",
	MarkerSquare:      "square",
	MarkerHome:        "home",
	MarkerStar:        "star",
	MarkerHourglass:   "hourglass",
	MarkerBowtie:      "bowtie",
	MarkerTarget:      "target",
	MarkerHalfLine:    "halfline",
	MarkerBox:         "box",
	MarkerCircle:      "circle",
	MarkerPlus:        "plus",
	MarkerCross:       "cross",
	MarkerDiamond:     "diamond",
	MarkerVertical:    "vertical",
	MarkerLine:        "line",
	MarkerRect:        "rect",
}

func (m MarkerShape) String() string {
	if name, ok := markerNames[m]; ok {
		return name
	}
	return "invalid"
}

// ParseMarkerShape converts a marker name like "dot" or "diamond" to a
// MarkerShape.
func ParseMarkerShape(name string) (MarkerShape, error) {
	for m, n := range markerNames {
		if n == name {
			return m, nil
		}
	}
	return MarkerNone, invalidf("unknown marker %q", name)
}

// markerChars maps the marker characters of format strings to shapes.
var markerChars = map[byte]MarkerShape{
	',': MarkerSmallDot,
	'@': MarkerPixel,
	'o': MarkerDot,
	'^': MarkerYield,
	'v': MarkerDelta,
	'1': MarkerDown,
	'2': MarkerUp,
	'3': MarkerTriangle,
	'4': MarkerTriangleMid,
	's': MarkerSquare,
	'h': MarkerHome,
	'*': MarkerStar,
	'u': MarkerHourglass,
	'e': MarkerBowtie,
	't': MarkerTarget,
	'H': MarkerHalfLine,
	'B': MarkerBox,
	'O': MarkerCircle,
	'+': MarkerPlus,
	'x': MarkerCross,
	'D': MarkerDiamond,
	'|': MarkerVertical,
	'_': MarkerLine,
}

// drawMarker draws a marker glyph of the given size centred on (x, y).
func drawMarker(r Renderer, x, y int, shape MarkerShape, size int, c color.Color) {
	half := size / 2
	x1, x2 := x-half, x+half
	y1, y2 := y-half, y+half
	thin := LineStyle{Width: 1}
	poly := func(pts ...image.Point) []image.Point { return pts }
	pt := func(x, y int) image.Point { return image.Point{X: x, Y: y} }

	switch shape {
	case MarkerNone:
	case MarkerHalfLine:
		r.Line(x1, y, x, y, thin, c)
	case MarkerLine:
		r.Line(x1, y, x2, y, thin, c)
	case MarkerVertical:
		r.Line(x, y1, x, y2, thin, c)
	case MarkerPlus:
		r.Line(x1, y, x2, y, thin, c)
		r.Line(x, y1, x, y2, thin, c)
	case MarkerCross:
		r.Line(x1, y1, x2, y2, thin, c)
		r.Line(x1, y2, x2, y1, thin, c)
	case MarkerCircle:
		r.Ellipse(x, y, size, size, c)
	case MarkerDot:
		r.FilledEllipse(x, y, size, size, c)
	case MarkerSmallDot:
		r.FilledEllipse(x, y, half+1, half+1, c)
	case MarkerPixel:
		r.Point(x, y, c)
	case MarkerDiamond:
		r.FilledPolygon(poly(pt(x1, y), pt(x, y1), pt(x2, y), pt(x, y2)), c)
	case MarkerTriangle:
		r.FilledPolygon(poly(pt(x1, y), pt(x2, y), pt(x, y2)), c)
	case MarkerTriangleMid:
		r.FilledPolygon(poly(pt(x1, y1), pt(x2, y1), pt(x, y)), c)
	case MarkerYield:
		r.FilledPolygon(poly(pt(x1, y1), pt(x2, y1), pt(x, y2)), c)
	case MarkerDelta:
		r.FilledPolygon(poly(pt(x1, y2), pt(x2, y2), pt(x, y1)), c)
	case MarkerStar:
		r.Line(x1, y, x2, y, thin, c)
		r.Line(x, y1, x, y2, thin, c)
		r.Line(x1, y1, x2, y2, thin, c)
		r.Line(x1, y2, x2, y1, thin, c)
	case MarkerHourglass:
		r.FilledPolygon(poly(pt(x1, y1), pt(x2, y1), pt(x1, y2), pt(x2, y2)), c)
	case MarkerBowtie:
		r.FilledPolygon(poly(pt(x1, y1), pt(x1, y2), pt(x2, y1), pt(x2, y2)), c)
	case MarkerTarget:
		r.FilledRectangle(x1, y1, x, y, c)
		r.FilledRectangle(x, y, x2, y2, c)
		r.Rectangle(x1, y1, x2, y2, c)
	case MarkerBox:
		r.Rectangle(x1, y1, x2, y2, c)
	case MarkerHome:
		r.FilledPolygon(poly(pt(x1, y2), pt(x2, y2), pt(x2, y), pt(x, y1), pt(x1, y)), c)
	case MarkerUp:
		r.Polygon(poly(pt(x, y1), pt(x2, y2), pt(x1, y2)), c)
	case MarkerDown:
		r.Polygon(poly(pt(x, y2), pt(x1, y1), pt(x2, y1)), c)
	default: // MarkerSquare, MarkerRect
		r.FilledRectangle(x1, y1, x2, y2, c)
	}
}

// Marker draws a glyph at every data point, as in a scatter plot.
type Marker struct {
	X, Y []float64

	// Sizes optionally gives a per-point area. A point with area s is
	// drawn with size sqrt(s)+3; points with s <= 0 are skipped.
	// If Sizes is nil, every glyph uses Size.
	Sizes []float64

	Size        int
	Shape       MarkerShape
	Color       color.Color
	LegendLabel string
}

// NewMarker checks the data and returns a scatter artist.
func NewMarker(x, y, sizes []float64, shape MarkerShape, size int, c color.Color) (*Marker, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, invalidf("scatter: x has %d values, y has %d", len(x), len(y))
	}
	if sizes != nil && len(sizes) != len(x) {
		return nil, invalidf("scatter: %d sizes for %d points", len(sizes), len(x))
	}
	return &Marker{X: x, Y: y, Sizes: sizes, Size: size, Shape: shape, Color: c}, nil
}

// DataExtent implements the Artist interface.
func (m *Marker) DataExtent() Extent {
	return extentOf(m.X, m.Y)
}

// Geometry implements the Artist interface.
func (m *Marker) Geometry(s *Scaling) ([]Primitive, error) {
	res := make([]Primitive, 0, len(m.X))
	for i := range m.X {
		size := m.Size
		if m.Sizes != nil {
			a := m.Sizes[i]
			if a <= 0 {
				continue
			}
			size = int(math.Sqrt(a)) + 3
		}
		if size <= 0 {
			continue
		}
		res = append(res, Dot{
			X: s.X(m.X[i]), Y: s.Y(m.Y[i]),
			Size: size, Shape: m.Shape, Color: m.Color,
		})
	}
	return res, nil
}

// DrawLegend implements the Artist interface.
func (m *Marker) DrawLegend(r Renderer, x, y, length int) {
	drawMarker(r, x+length/2, y, m.Shape, m.Size, m.Color)
}

// Label implements the Artist interface.
func (m *Marker) Label() string { return m.LegendLabel }

func (*Marker) isArtist() {}
