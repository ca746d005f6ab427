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
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart"
)

// Canvas is a chart.Renderer which draws into an RGBA image.
//
// Chart coordinates have the origin in the bottom-left corner. Integer
// coordinates refer to pixel centres, so that a filled rectangle from
// (x1, y1) to (x2, y2) covers exactly the pixels in between, both ends
// included.
type Canvas struct {
	img *image.RGBA
	ras *Rasterizer
}

var _ chart.Renderer = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	ras := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	ras.CTM = matrix.Matrix{1, 0, 0, -1, 0.5, float64(height) - 0.5}
	return &Canvas{img: img, ras: ras}
}

// Image returns the image drawn so far.
func (c *Canvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// paint returns an emit function which composites col over the image
// with the given coverage.
func (c *Canvas) paint(col color.Color) func(y, xMin int, coverage []float32) {
	if col == nil {
		return func(int, int, []float32) {}
	}
	sr, sg, sb, sa := col.RGBA()
	return func(y, xMin int, coverage []float32) {
		row := c.img.Pix[y*c.img.Stride+4*xMin:]
		for i, v := range coverage {
			blend(row[4*i:4*i+4], sr, sg, sb, sa, uint32(v*0xffff+0.5))
		}
	}
}

// blend composites a premultiplied colour with mask value m over a
// pixel, like draw.DrawMask with the Over operator.
func blend(px []uint8, sr, sg, sb, sa, m uint32) {
	const max = 0xffff
	a := (max - sa*m/max) * 0x101
	px[0] = uint8((uint32(px[0])*a/max + sr*m/max) >> 8)
	px[1] = uint8((uint32(px[1])*a/max + sg*m/max) >> 8)
	px[2] = uint8((uint32(px[2])*a/max + sb*m/max) >> 8)
	px[3] = uint8((uint32(px[3])*a/max + sa*m/max) >> 8)
}

func polyPath(pts []vec.Vec2, closed bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// ArcPath returns the outline of an elliptic arc from start to end
// (radians, counter-clockwise), built from cubic Bézier pieces of at
// most 90 degrees. With pie set, the arc is closed through the centre.
func ArcPath(cx, cy, rx, ry, start, end float64, pie bool) path.Path {
	pt := func(phi float64) vec.Vec2 {
		return vec.Vec2{X: cx + rx*math.Cos(phi), Y: cy + ry*math.Sin(phi)}
	}
	tangent := func(phi, k float64) vec.Vec2 {
		return vec.Vec2{X: -rx * k * math.Sin(phi), Y: ry * k * math.Cos(phi)}
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		buf := make([]vec.Vec2, 3)
		if pie {
			buf[0] = vec.Vec2{X: cx, Y: cy}
			if !yield(path.CmdMoveTo, buf[:1]) {
				return
			}
			buf[0] = pt(start)
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
		} else {
			buf[0] = pt(start)
			if !yield(path.CmdMoveTo, buf[:1]) {
				return
			}
		}

		n := max(1, int(math.Ceil((end-start)/(math.Pi/2)-1e-9)))
		delta := (end - start) / float64(n)
		k := 4.0 / 3.0 * math.Tan(delta/4)
		for i := range n {
			a := start + float64(i)*delta
			b := a + delta
			buf[0] = pt(a).Add(tangent(a, k))
			buf[1] = pt(b).Sub(tangent(b, k))
			buf[2] = pt(b)
			if !yield(path.CmdCubeTo, buf) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// EllipsePath returns the closed outline of an ellipse with centre
// (cx, cy), full width w and full height h.
func EllipsePath(cx, cy, w, h int) path.Path {
	return ArcPath(float64(cx), float64(cy), float64(w)/2, float64(h)/2, 0, 2*math.Pi, false)
}

func toVec(pts []image.Point) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}
	return res
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

var hairline = StrokeStyle{Width: 1, Cap: graphics.LineCapButt}

// Point implements the chart.Renderer interface.
func (c *Canvas) Point(x, y int, col color.Color) {
	c.FilledRectangle(x, y, x, y, col)
}

// Line implements the chart.Renderer interface. Solid lines get square
// caps, so that both end pixels are covered. An invalid dash pattern
// gives a solid line.
func (c *Canvas) Line(x1, y1, x2, y2 int, style chart.LineStyle, col color.Color) {
	w := float64(max(style.Width, 1))
	st := StrokeStyle{Width: w, Cap: graphics.LineCapSquare}
	if dash, err := chart.DashArray(style.Dash, w); err == nil && dash != nil {
		st.Dash = dash
		st.Cap = graphics.LineCapButt
	}
	pts := []vec.Vec2{{X: float64(x1), Y: float64(y1)}, {X: float64(x2), Y: float64(y2)}}
	c.ras.Stroke(polyPath(pts, false), st, c.paint(col))
}

// Rectangle implements the chart.Renderer interface.
func (c *Canvas) Rectangle(x1, y1, x2, y2 int, col color.Color) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	c.FilledRectangle(x1, y1, x2, y1, col)
	if y2 > y1 {
		c.FilledRectangle(x1, y2, x2, y2, col)
	}
	if y2-y1 > 1 {
		c.FilledRectangle(x1, y1+1, x1, y2-1, col)
		if x2 > x1 {
			c.FilledRectangle(x2, y1+1, x2, y2-1, col)
		}
	}
}

// FilledRectangle implements the chart.Renderer interface.
func (c *Canvas) FilledRectangle(x1, y1, x2, y2 int, col color.Color) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	l, b := float64(x1)-0.5, float64(y1)-0.5
	r, t := float64(x2)+0.5, float64(y2)+0.5
	pts := []vec.Vec2{{X: l, Y: b}, {X: r, Y: b}, {X: r, Y: t}, {X: l, Y: t}}
	c.ras.Fill(polyPath(pts, true), c.paint(col))
}

// Ellipse implements the chart.Renderer interface.
func (c *Canvas) Ellipse(cx, cy, w, h int, col color.Color) {
	c.ras.Stroke(EllipsePath(cx, cy, w, h), hairline, c.paint(col))
}

// FilledEllipse implements the chart.Renderer interface.
func (c *Canvas) FilledEllipse(cx, cy, w, h int, col color.Color) {
	c.ras.Fill(EllipsePath(cx, cy, w, h), c.paint(col))
}

// FilledArc implements the chart.Renderer interface.
func (c *Canvas) FilledArc(cx, cy, w, h int, start, end float64, col color.Color) {
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
	p := ArcPath(float64(cx), float64(cy), float64(w)/2, float64(h)/2, start*rad, end*rad, true)
	c.ras.Fill(p, c.paint(col))
}

// Polygon implements the chart.Renderer interface.
func (c *Canvas) Polygon(pts []image.Point, col color.Color) {
	c.ras.Stroke(polyPath(toVec(pts), true), hairline, c.paint(col))
}

// FilledPolygon implements the chart.Renderer interface.
func (c *Canvas) FilledPolygon(pts []image.Point, col color.Color) {
	c.ras.Fill(polyPath(toVec(pts), true), c.paint(col))
}

// Text implements the chart.Renderer interface.
func (c *Canvas) Text(f chart.Font, x, y int, s string, angle int, h chart.HAlign, v chart.VAlign, col color.Color) {
	box := MeasureText(f, x, y, s, angle, h, v)
	mask := TextMask(f, s, angle)
	if col == nil || mask.Rect.Empty() {
		return
	}
	sr, sg, sb, sa := col.RGBA()

	height := c.img.Rect.Dy()
	left, top := box.X, height-box.Y-box.H
	for my := range mask.Rect.Dy() {
		py := top + my
		if py < 0 || py >= height {
			continue
		}
		for mx := range mask.Rect.Dx() {
			px := left + mx
			a := mask.Pix[my*mask.Stride+mx]
			if a == 0 || px < 0 || px >= c.img.Rect.Dx() {
				continue
			}
			off := py*c.img.Stride + 4*px
			blend(c.img.Pix[off:off+4], sr, sg, sb, sa, uint32(a)*0x101)
		}
	}
}

// MeasureText implements the chart.Renderer interface.
func (c *Canvas) MeasureText(f chart.Font, x, y int, s string, angle int, h chart.HAlign, v chart.VAlign) chart.TextBox {
	return MeasureText(f, x, y, s, angle, h, v)
}
