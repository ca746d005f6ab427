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
	"math"
	"strconv"

	"seehuhn.de/go/chart/style"
)

// Tick positions of the frame.
const (
	TickDown  = "down"
	TickUp    = "up"
	TickLeft  = "left"
	TickRight = "right"
)

// manualTicks are tick positions chosen by the caller instead of the
// planner. Labels is either nil or has one entry per value.
type manualTicks struct {
	Values []float64
	Labels []string
}

// frame draws the box around a plot area together with its ticks and
// tick labels.
type frame struct {
	st   style.Frame
	plot Rect

	xPos, yPos   string
	xTicks       *manualTicks
	yTicks       *manualTicks
	hideX, hideY bool

	tickColor, textColor color.Color
}

// tickLayout is the geometry shared by all ticks of one axis. For the x
// axis a and b are the y coordinates of the tick ends, half the end of a
// minor tick and text the y coordinate of the label anchor; for the y
// axis they are x coordinates.
type tickLayout struct {
	a, b, half, text int
	h                HAlign
	v                VAlign
}

func (f *frame) xLayout() (tickLayout, error) {
	p := f.plot
	pad, length := f.st.Padding, f.st.XTickLength
	var l tickLayout
	switch f.xPos {
	case TickDown:
		l.a = p.Bottom - pad
		l.b = l.a - length
		l.text = l.b - f.st.XTickLabelMargin
		l.half = l.a - length/2
		if f.st.XTickLabelAngle == 0 {
			l.h, l.v = AlignHCenter, AlignTop
		} else {
			l.h, l.v = AlignRight, AlignCenter
		}
	case TickUp:
		l.a = p.Bottom + p.Height + pad
		l.b = l.a + length
		l.text = l.b + f.st.XTickLabelMargin
		l.half = l.a + length/2
		if f.st.XTickLabelAngle == 0 {
			l.h, l.v = AlignHCenter, AlignBottom
		} else {
			l.h, l.v = AlignLeft, AlignCenter
		}
	default:
		return l, invalidf("unknown x tick position %q", f.xPos)
	}
	return l, nil
}

func (f *frame) yLayout() (tickLayout, error) {
	p := f.plot
	pad, length := f.st.Padding, f.st.YTickLength
	var l tickLayout
	switch f.yPos {
	case TickLeft:
		l.a = p.Left - pad
		l.b = l.a - length
		l.text = l.b - f.st.YTickLabelMargin
		l.half = l.a - length/2
		if f.st.YTickLabelAngle == 0 {
			l.h, l.v = AlignRight, AlignCenter
		} else {
			l.h, l.v = AlignHCenter, AlignBottom
		}
	case TickRight:
		l.a = p.Left + p.Width + pad
		l.b = l.a + length
		l.text = l.b + f.st.YTickLabelMargin
		l.half = l.a + length/2
		if f.st.YTickLabelAngle == 0 {
			l.h, l.v = AlignLeft, AlignCenter
		} else {
			l.h, l.v = AlignHCenter, AlignTop
		}
	default:
		return l, invalidf("unknown y tick position %q", f.yPos)
	}
	return l, nil
}

// footprint returns the number of pixels needed to show the standard
// number of tick labels along one axis.
func (f *frame) footprint(r Renderer, axis Axis, typ ScaleType) float64 {
	st := f.st
	size := st.XTickLabelFontSize
	angle := st.XTickLabelAngle
	if axis == AxisY {
		size = st.YTickLabelFontSize
		angle = st.YTickLabelAngle
	}
	along := (axis == AxisX) == (angle == 0)

	space := st.TickLabelHeight
	if along {
		space = st.TickLabelWidth
		if typ == Log {
			space += 3
		}
	}
	fontWidth := r.MeasureText(Font{Size: size}, 0, 0, "M", 0, AlignLeft, AlignBottom).W
	return float64(st.TickLabelStandardCount * fontWidth * space)
}

// draw draws the frame and returns the automatic tick plans. A plan is
// nil if the ticks of that axis are hidden or chosen manually.
func (f *frame) draw(r Renderer, s *Scaling) (xPlan, yPlan *TickPlan, err error) {
	xl, err := f.xLayout()
	if err != nil {
		return nil, nil, err
	}
	yl, err := f.yLayout()
	if err != nil {
		return nil, nil, err
	}

	p, pad := f.plot, f.st.Padding
	r.Rectangle(p.Left-pad, p.Bottom-pad, p.Left+p.Width+pad, p.Bottom+p.Height+pad, f.tickColor)

	if !f.hideX {
		xPlan, err = f.drawTicks(r, s, AxisX, xl)
		if err != nil {
			return nil, nil, err
		}
	}
	if !f.hideY {
		yPlan, err = f.drawTicks(r, s, AxisY, yl)
		if err != nil {
			return nil, nil, err
		}
	}
	return xPlan, yPlan, nil
}

func (f *frame) drawTicks(r Renderer, s *Scaling, axis Axis, l tickLayout) (*TickPlan, error) {
	font := Font{Size: f.st.XTickLabelFontSize}
	angle := f.st.XTickLabelAngle
	manual := f.xTicks
	typ := s.XScale()
	toPixel := s.X
	if axis == AxisY {
		font = Font{Size: f.st.YTickLabelFontSize}
		angle = f.st.YTickLabelAngle
		manual = f.yTicks
		typ = s.YScale()
		toPixel = s.Y
	}

	tick := func(v int, label string) {
		if axis == AxisX {
			r.Line(v, l.a, v, l.b, LineStyle{Width: 1}, f.tickColor)
			r.Text(font, v, l.text, label, angle, l.h, l.v, f.textColor)
		} else {
			r.Line(l.a, v, l.b, v, LineStyle{Width: 1}, f.tickColor)
			r.Text(font, l.text, v, label, angle, l.h, l.v, f.textColor)
		}
	}
	minor := func(v int) {
		if axis == AxisX {
			r.Line(v, l.a, v, l.half, LineStyle{Width: 1}, f.tickColor)
		} else {
			r.Line(l.a, v, l.half, v, LineStyle{Width: 1}, f.tickColor)
		}
	}

	if manual != nil {
		for i, v := range manual.Values {
			label := formatTick(v, 0)
			if manual.Labels != nil {
				label = manual.Labels[i]
			}
			tick(toPixel(v), label)
		}
		return nil, nil
	}

	plan, err := s.Ticks(axis, f.footprint(r, axis, typ))
	if err != nil {
		return nil, err
	}
	for _, v := range plan.Values() {
		if !plan.Log {
			tick(toPixel(v), formatTick(v, plan.Step))
			continue
		}
		tick(toPixel(math.Pow(10, v)), "10^"+formatTick(v, plan.Step))
		for _, m := range plan.Minor(v) {
			minor(toPixel(m))
		}
	}
	return &plan, nil
}

// formatTick formats a tick value. Values closer to zero than a
// billionth of the tick step are shown as 0.
func formatTick(v, step float64) string {
	if math.Abs(v) < math.Abs(step)*1e-9 || v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 14, 64)
}
