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

	"github.com/aclements/go-gg/palette"
)

// ImageOrigin selects where row 0 of an image is drawn.
type ImageOrigin int

const (
	// OriginLower draws row 0 at the bottom of the plot.
	OriginLower ImageOrigin = iota
	// OriginUpper draws row 0 at the top of the plot.
	OriginUpper
)

// ParseImageOrigin converts "lower" or "upper" to an ImageOrigin.
func ParseImageOrigin(s string) (ImageOrigin, error) {
	switch s {
	case "lower", "":
		return OriginLower, nil
	case "upper":
		return OriginUpper, nil
	}
	return 0, invalidf("unknown image origin %q", s)
}

// Image draws a matrix as a grid of coloured cells. Cell (row m, column n)
// covers [n-0.5, n+0.5] x [m-0.5, m+0.5] in data space.
//
// Either Values or Colors is set. Values are mapped through Cmap; with
// Norm set, the smallest value maps to 0 and the largest to 1, otherwise
// values are used as they are.
type Image struct {
	Values [][]float64
	Colors [][]color.Color

	Cmap   palette.Continuous
	Norm   bool
	Origin ImageOrigin
}

// NewImage checks that values is a non-empty rectangular matrix and
// returns an image artist using the given colour map.
func NewImage(values [][]float64, cmap palette.Continuous) (*Image, error) {
	if err := checkMatrix(len(values), func(i int) int { return len(values[i]) }); err != nil {
		return nil, err
	}
	return &Image{Values: values, Cmap: cmap, Norm: true}, nil
}

// NewRGBImage returns an image artist which shows the given colours.
func NewRGBImage(colors [][]color.Color) (*Image, error) {
	if err := checkMatrix(len(colors), func(i int) int { return len(colors[i]) }); err != nil {
		return nil, err
	}
	return &Image{Colors: colors}, nil
}

func checkMatrix(rows int, cols func(int) int) error {
	if rows == 0 || cols(0) == 0 {
		return invalidf("image: empty matrix")
	}
	for i := 1; i < rows; i++ {
		if cols(i) != cols(0) {
			return invalidf("image: row %d has %d columns, want %d", i, cols(i), cols(0))
		}
	}
	return nil
}

func (im *Image) size() (rows, cols int) {
	if im.Colors != nil {
		return len(im.Colors), len(im.Colors[0])
	}
	return len(im.Values), len(im.Values[0])
}

// DataExtent implements the Artist interface.
func (im *Image) DataExtent() Extent {
	rows, cols := im.size()
	return Extent{MinX: -0.5, MinY: -0.5, MaxX: float64(cols) - 0.5, MaxY: float64(rows) - 0.5}
}

// Geometry implements the Artist interface.
func (im *Image) Geometry(s *Scaling) ([]Primitive, error) {
	rows, cols := im.size()

	norm := func(v float64) float64 { return v }
	if im.Colors == nil {
		if im.Cmap == nil {
			return nil, invalidf("image: no colour map")
		}
		if im.Norm {
			norm = normalizer(valueRange(im.Values))
		}
	}

	res := make([]Primitive, 0, rows*cols)
	for m := range rows {
		row := float64(m)
		if im.Origin == OriginUpper {
			row = float64(rows - 1 - m)
		}
		py1, py2 := s.Y(row-0.5), s.Y(row+0.5)
		if py2 > py1 {
			py2--
		}
		for n := range cols {
			var c color.Color
			if im.Colors != nil {
				c = im.Colors[m][n]
			} else {
				c = cmapColor(im.Cmap, norm(im.Values[m][n]))
			}
			px1, px2 := s.X(float64(n)-0.5), s.X(float64(n)+0.5)
			if px2 > px1 {
				px2--
			}
			res = append(res, Box{X1: px1, Y1: py1, X2: px2, Y2: py2, Color: c, Background: true})
		}
	}
	return res, nil
}

// DrawLegend implements the Artist interface. Images have no legend entry.
func (im *Image) DrawLegend(Renderer, int, int, int) {}

// Label implements the Artist interface.
func (im *Image) Label() string { return "" }

func (*Image) isArtist() {}
