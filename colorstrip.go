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

import "github.com/aclements/go-gg/palette"

// colorStripBands is the number of bands a colour strip is divided into.
const colorStripBands = 256

// ColorStrip shows a colour map as a vertical stack of bands covering
// [0, 1] in x and [Bottom, Top] in y. It is used for colour bars.
type ColorStrip struct {
	Cmap        palette.Continuous
	Bottom, Top float64
}

// DataExtent implements the Artist interface.
func (c *ColorStrip) DataExtent() Extent {
	lo, hi := widen(c.Bottom, c.Top)
	return Extent{MinX: 0, MinY: lo, MaxX: 1, MaxY: hi}
}

// Geometry implements the Artist interface.
func (c *ColorStrip) Geometry(s *Scaling) ([]Primitive, error) {
	if c.Cmap == nil {
		return nil, invalidf("colour strip: no colour map")
	}
	ext := c.DataExtent()
	step := (ext.MaxY - ext.MinY) / colorStripBands
	px1, px2 := s.X(0), s.X(1)

	res := make([]Primitive, 0, colorStripBands)
	for i := range colorStripBands {
		py1 := s.Y(ext.MinY + float64(i)*step)
		py2 := s.Y(ext.MinY + float64(i+1)*step)
		if py2 > py1 {
			py2--
		}
		col := cmapColor(c.Cmap, float64(i)/colorStripBands)
		res = append(res, Box{X1: px1, Y1: py1, X2: px2, Y2: py2, Color: col, Background: true})
	}
	return res, nil
}

// DrawLegend implements the Artist interface. Colour strips have no
// legend entry.
func (c *ColorStrip) DrawLegend(Renderer, int, int, int) {}

// Label implements the Artist interface.
func (c *ColorStrip) Label() string { return "" }

func (*ColorStrip) isArtist() {}
