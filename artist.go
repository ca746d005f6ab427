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
	"strings"

	"seehuhn.de/go/chart/style"
)

// Artist is a data series which can be placed in a plot.
//
// The set of artists is closed: Line, Bar, Marker, Wedge, Image and
// ColorStrip.
type Artist interface {
	// DataExtent returns the bounding box of the data in data space.
	DataExtent() Extent

	// Geometry converts the data to pixel primitives using a fitted
	// scaling. All primitives of one artist count as a single shape for
	// legend placement.
	Geometry(s *Scaling) ([]Primitive, error)

	// DrawLegend draws the legend swatch of the artist, a horizontal
	// sample of the given length starting at (x, y).
	DrawLegend(r Renderer, x, y, length int)

	// Label returns the legend label, or "" if the artist has none.
	Label() string

	isArtist()
}

// Format is the parsed form of a short style string like "r--o".
type Format struct {
	Marker MarkerShape
	Dash   string
	Color  color.Color // nil if the string names no colour
}

// dashCodes lists the line style codes in the order they are matched.
var dashCodes = []struct{ code, dash string }{
	{"--", "-"},
	{"-.", "-."},
	{":", "."},
}

// ParseFormat extracts a marker, a dash pattern and a colour from a
// format string. The first marker character and the first colour letter
// win. Characters which have no meaning are ignored.
func ParseFormat(format string) Format {
	var f Format
	for i := 0; i < len(format); i++ {
		if m, ok := markerChars[format[i]]; ok {
			f.Marker = m
			break
		}
	}
	for _, d := range dashCodes {
		if strings.Contains(format, d.code) {
			f.Dash = d.dash
			break
		}
	}
	for i := 0; i < len(format); i++ {
		if style.IsShortColor(format[i : i+1]) {
			f.Color = MustParseColor(format[i : i+1])
			break
		}
	}
	return f
}
