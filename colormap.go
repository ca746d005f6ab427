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
	"sort"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/gonum/floats"
)

// colormaps holds evenly spaced anchor colours of the built-in colour
// maps. Values between anchors are interpolated linearly in RGB.
var colormaps = map[string][]color.RGBA{
	"viridis": {
		{0x44, 0x01, 0x54, 0xff}, {0x48, 0x28, 0x78, 0xff}, {0x3e, 0x4a, 0x89, 0xff},
		{0x31, 0x68, 0x8e, 0xff}, {0x26, 0x82, 0x8e, 0xff}, {0x1f, 0x9e, 0x89, 0xff},
		{0x35, 0xb7, 0x79, 0xff}, {0x6d, 0xcd, 0x59, 0xff}, {0xb4, 0xde, 0x2c, 0xff},
		{0xfd, 0xe7, 0x25, 0xff},
	},
	"plasma": {
		{0x0d, 0x08, 0x87, 0xff}, {0x47, 0x03, 0x9f, 0xff}, {0x73, 0x01, 0xa8, 0xff},
		{0x9c, 0x17, 0x9e, 0xff}, {0xbd, 0x37, 0x86, 0xff}, {0xd8, 0x57, 0x6b, 0xff},
		{0xed, 0x79, 0x53, 0xff}, {0xfa, 0x9e, 0x3b, 0xff}, {0xfd, 0xc9, 0x26, 0xff},
		{0xf0, 0xf9, 0x21, 0xff},
	},
	"inferno": {
		{0x00, 0x00, 0x04, 0xff}, {0x1b, 0x0c, 0x41, 0xff}, {0x4a, 0x0c, 0x6b, 0xff},
		{0x78, 0x1c, 0x6d, 0xff}, {0xa5, 0x2c, 0x60, 0xff}, {0xcf, 0x44, 0x46, 0xff},
		{0xed, 0x69, 0x25, 0xff}, {0xfb, 0x9b, 0x06, 0xff}, {0xf7, 0xd1, 0x3d, 0xff},
		{0xfc, 0xff, 0xa4, 0xff},
	},
	"coolwarm": {
		{0x3b, 0x4c, 0xc0, 0xff}, {0x68, 0x8a, 0xef, 0xff}, {0x99, 0xba, 0xff, 0xff},
		{0xc9, 0xd7, 0xf0, 0xff}, {0xed, 0xd1, 0xc2, 0xff}, {0xf7, 0xa8, 0x89, 0xff},
		{0xe2, 0x69, 0x52, 0xff}, {0xb4, 0x04, 0x26, 0xff},
	},
	"gray": {
		{0x00, 0x00, 0x00, 0xff}, {0xff, 0xff, 0xff, 0xff},
	},
}

// Colormap returns the named continuous colour map. Known names are
// "coolwarm", "gray", "inferno", "plasma" and "viridis".
func Colormap(name string) (palette.Continuous, error) {
	anchors, ok := colormaps[name]
	if !ok {
		return nil, invalidf("unknown colour map %q (known: %v)", name, ColormapNames())
	}
	return palette.RGBGradient{Colors: anchors}, nil
}

// ColormapNames returns the names of the built-in colour maps in sorted
// order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cmapColor looks up v in cmap. Values below 0 map to black and values
// above 1 to white, so that out-of-range data stands out.
func cmapColor(cmap palette.Continuous, v float64) color.Color {
	switch {
	case v < 0:
		return color.Black
	case v > 1:
		return color.White
	}
	return cmap.Map(v)
}

// normalizer returns a function which maps the range [lo, hi] linearly to
// [0, 1], clamping values outside. A degenerate range maps to 0.
func normalizer(lo, hi float64) func(float64) float64 {
	if !(hi > lo) {
		return func(float64) float64 { return 0 }
	}
	s := scale.Linear{Min: lo, Max: hi, Clamp: true}
	return s.Map
}

// valueRange returns the smallest and largest value of a matrix.
func valueRange(rows [][]float64) (lo, hi float64) {
	first := true
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rlo, rhi := floats.Min(row), floats.Max(row)
		if first {
			lo, hi, first = rlo, rhi, false
			continue
		}
		lo, hi = min(lo, rlo), max(hi, rhi)
	}
	return lo, hi
}
