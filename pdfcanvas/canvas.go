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

// Package pdfcanvas draws charts onto a single-page PDF file.
//
// One pixel of the chart corresponds to one PDF point. Shapes are written
// as vector graphics; text is stamped from the same bitmap fonts the
// raster backend uses, so that both outputs share one layout.
package pdfcanvas

import (
	"image"
	stdcolor "image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/raster"
)

// Canvas is a chart.Renderer which writes PDF drawing operators.
type Canvas struct {
	page          *document.Page
	width, height int
}

var _ chart.Renderer = (*Canvas)(nil)

// Create starts a new PDF file with a page of the given size in points.
// The caller must call Close to complete the file.
func Create(fileName string, width, height int) (*Canvas, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// Integer chart coordinates are pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})
	return &Canvas{page: page, width: width, height: height}, nil
}

// Size returns the page size in points.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Close writes the page and closes the file.
func (c *Canvas) Close() error {
	return c.page.Close()
}

// pdfColor converts c to DeviceRGB. PDF pages have no alpha channel here,
// so the colour is un-premultiplied and drawn opaque.
func pdfColor(c stdcolor.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.DeviceRGB{0, 0, 0}
	}
	fa := float64(a)
	return color.DeviceRGB{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

// visible reports whether c would leave a mark.
func visible(c stdcolor.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

func (c *Canvas) fill(col stdcolor.Color) {
	c.page.SetFillColor(pdfColor(col))
	c.page.Fill()
}

func (c *Canvas) stroke(col stdcolor.Color, width float64, lineCap graphics.LineCapStyle, dash []float64) {
	c.page.SetStrokeColor(pdfColor(col))
	c.page.SetLineWidth(width)
	c.page.SetLineCap(lineCap)
	c.page.SetLineJoin(graphics.LineJoinRound)
	c.page.SetLineDash(dash, 0)
	c.page.Stroke()
}

// appendPath adds the segments of p to the current PDF path.
func (c *Canvas) appendPath(p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

func (c *Canvas) polygonPath(pts []image.Point) {
	for i, p := range pts {
		if i == 0 {
			c.page.MoveTo(float64(p.X), float64(p.Y))
		} else {
			c.page.LineTo(float64(p.X), float64(p.Y))
		}
	}
	c.page.ClosePath()
}

// Point implements the chart.Renderer interface.
func (c *Canvas) Point(x, y int, col stdcolor.Color) {
	c.FilledRectangle(x, y, x, y, col)
}

// Line implements the chart.Renderer interface.
func (c *Canvas) Line(x1, y1, x2, y2 int, style chart.LineStyle, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	w := float64(max(style.Width, 1))
	lineCap := graphics.LineCapSquare
	dash, err := chart.DashArray(style.Dash, w)
	if err != nil {
		dash = nil
	}
	if dash != nil {
		lineCap = graphics.LineCapButt
	}
	c.page.MoveTo(float64(x1), float64(y1))
	c.page.LineTo(float64(x2), float64(y2))
	c.stroke(col, w, lineCap, dash)
}

// Rectangle implements the chart.Renderer interface. The outline runs
// through the pixel centres of the border.
func (c *Canvas) Rectangle(x1, y1, x2, y2 int, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	l, r := float64(min(x1, x2)), float64(max(x1, x2))
	b, t := float64(min(y1, y2)), float64(max(y1, y2))
	c.page.Rectangle(l, b, r-l, t-b)
	c.stroke(col, 1, graphics.LineCapSquare, nil)
}

// FilledRectangle implements the chart.Renderer interface.
func (c *Canvas) FilledRectangle(x1, y1, x2, y2 int, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	l, r := float64(min(x1, x2)), float64(max(x1, x2))
	b, t := float64(min(y1, y2)), float64(max(y1, y2))
	c.page.Rectangle(l-0.5, b-0.5, r-l+1, t-b+1)
	c.fill(col)
}

// Ellipse implements the chart.Renderer interface.
func (c *Canvas) Ellipse(cx, cy, w, h int, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	c.appendPath(raster.EllipsePath(cx, cy, w, h))
	c.stroke(col, 1, graphics.LineCapButt, nil)
}

// FilledEllipse implements the chart.Renderer interface.
func (c *Canvas) FilledEllipse(cx, cy, w, h int, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	c.appendPath(raster.EllipsePath(cx, cy, w, h))
	c.fill(col)
}

// FilledArc implements the chart.Renderer interface.
func (c *Canvas) FilledArc(cx, cy, w, h int, start, end float64, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	if end < start {
		end += 360 * math.Ceil((start-end)/360)
	}
	if end-start >= 360 {
		c.FilledEllipse(cx, cy, w, h, col)
		return
	}
	if end == start {
		return
	}
	const rad = math.Pi / 180
	c.appendPath(raster.ArcPath(float64(cx), float64(cy), float64(w)/2, float64(h)/2, start*rad, end*rad, true))
	c.fill(col)
}

// Polygon implements the chart.Renderer interface.
func (c *Canvas) Polygon(pts []image.Point, col stdcolor.Color) {
	if len(pts) == 0 || !visible(col) {
		return
	}
	c.polygonPath(pts)
	c.stroke(col, 1, graphics.LineCapButt, nil)
}

// FilledPolygon implements the chart.Renderer interface.
func (c *Canvas) FilledPolygon(pts []image.Point, col stdcolor.Color) {
	if len(pts) == 0 || !visible(col) {
		return
	}
	c.polygonPath(pts)
	c.fill(col)
}

// Text implements the chart.Renderer interface. Glyph pixels covered at
// least half are painted as unit squares, merged into horizontal runs.
func (c *Canvas) Text(f chart.Font, x, y int, s string, angle int, h chart.HAlign, v chart.VAlign, col stdcolor.Color) {
	if !visible(col) {
		return
	}
	box := raster.MeasureText(f, x, y, s, angle, h, v)
	mask := raster.TextMask(f, s, angle)
	w, ht := mask.Rect.Dx(), mask.Rect.Dy()

	top := box.Y + box.H - 1
	painted := false
	for my := range ht {
		row := mask.Pix[my*mask.Stride : my*mask.Stride+w]
		py := float64(top - my)
		for mx := 0; mx < w; {
			if row[mx] < 128 {
				mx++
				continue
			}
			start := mx
			for mx < w && row[mx] >= 128 {
				mx++
			}
			c.page.Rectangle(float64(box.X+start)-0.5, py-0.5, float64(mx-start), 1)
			painted = true
		}
	}
	if painted {
		c.fill(col)
	}
}

// MeasureText implements the chart.Renderer interface.
func (c *Canvas) MeasureText(f chart.Font, x, y int, s string, angle int, h chart.HAlign, v chart.VAlign) chart.TextBox {
	return raster.MeasureText(f, x, y, s, angle, h, v)
}
