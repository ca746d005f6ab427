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

package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/chart"
)

// Face returns the bitmap face used for a chart font size. Sizes up to 3
// use a 7x13 face, size 4 an 8x16 face and larger sizes its bold variant.
func Face(f chart.Font) font.Face {
	switch {
	case f.Size <= 3:
		return basicfont.Face7x13
	case f.Size == 4:
		return inconsolata.Regular8x16
	default:
		return inconsolata.Bold8x16
	}
}

// TextSize returns the advance width and the line height of s, before
// rotation.
func TextSize(f chart.Font, s string) (width, height int) {
	face := Face(f)
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// MeasureText computes the pixel box of a text label in chart
// coordinates.
func MeasureText(f chart.Font, x, y int, s string, angle int, h chart.HAlign, v chart.VAlign) chart.TextBox {
	w, ht := TextSize(f, s)
	return chart.AlignText(w, ht, x, y, angle, h, v)
}

// TextMask renders s into an alpha mask in image coordinates, with the
// origin in the top-left corner. For angle 90 the text runs upwards.
func TextMask(f chart.Font, s string, angle int) *image.Alpha {
	face := Face(f)
	w, h := TextSize(f, s)
	if w == 0 || h == 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	d.DrawString(s)
	if angle != 90 {
		return mask
	}

	rot := image.NewAlpha(image.Rect(0, 0, h, w))
	for y := range h {
		for x := range w {
			rot.Pix[(w-1-x)*rot.Stride+y] = mask.Pix[y*mask.Stride+x]
		}
	}
	return rot
}
