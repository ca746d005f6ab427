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
	"math"
)

// Axis identifies one of the two axes of a plot.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "invalid"
	}
}

// ScaleType selects the transform applied to data values before the
// affine map to pixels.
type ScaleType int

const (
	Linear ScaleType = iota
	Log
)

func (t ScaleType) String() string {
	switch t {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "invalid"
	}
}

// ParseScaleType converts "linear" or "log" to a ScaleType.
func ParseScaleType(s string) (ScaleType, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "log":
		return Log, nil
	}
	return 0, invalidf("unknown scale type %q", s)
}

// Aspect controls whether both axes use the same number of pixels per
// data unit.
type Aspect int

const (
	AspectAuto Aspect = iota
	AspectEqual
)

// Scaling maps data coordinates to pixel coordinates. It is created by
// Fit for one draw pass and is read-only afterwards.
type Scaling struct {
	xType, yType ScaleType
	plot         Rect // plot area after aspect correction
	extent       Extent
	margin       float64

	scaleX, offsetX float64
	scaleY, offsetY float64
}

// Fit computes the transform which maps ext into plot, leaving a blank
// border of margin times the rectangle size on every side.
//
// For logarithmic axes the corresponding bounds of ext must be positive.
// If aspect is AspectEqual, the longer side of plot is shortened first.
// An axis with a zero-width range gets scale 1 and offset origin/2.
func Fit(plot Rect, ext Extent, margin float64, aspect Aspect, xType, yType ScaleType) (*Scaling, error) {
	if err := plot.check(); err != nil {
		return nil, err
	}
	if !(margin >= 0 && margin < 0.5) {
		return nil, invalidf("data area margin %g not in [0, 0.5)", margin)
	}
	if !ext.Valid() {
		return nil, invalidf("invalid data extent %+v", ext)
	}
	if aspect != AspectAuto && aspect != AspectEqual {
		return nil, invalidf("unknown aspect mode %d", aspect)
	}

	s := &Scaling{
		xType:  xType,
		yType:  yType,
		plot:   plot,
		extent: ext,
		margin: margin,
	}

	minX, maxX, err := transformRange(AxisX, xType, ext.MinX, ext.MaxX)
	if err != nil {
		return nil, err
	}
	minY, maxY, err := transformRange(AxisY, yType, ext.MinY, ext.MaxY)
	if err != nil {
		return nil, err
	}

	if aspect == AspectEqual {
		s.plot = plot.Square()
	}
	p := s.plot

	s.scaleX, s.offsetX = fitAxis(float64(p.Left), float64(p.Width), minX, maxX, margin)
	s.scaleY, s.offsetY = fitAxis(float64(p.Bottom), float64(p.Height), minY, maxY, margin)
	return s, nil
}

// transformRange returns the axis bounds in the space where the affine
// map applies.
func transformRange(axis Axis, typ ScaleType, lo, hi float64) (float64, float64, error) {
	switch typ {
	case Linear:
		return lo, hi, nil
	case Log:
		if lo <= 0 || hi <= 0 {
			return 0, 0, &DomainError{Axis: axis, Min: lo, Max: hi}
		}
		return math.Log10(lo), math.Log10(hi), nil
	}
	return 0, 0, invalidf("%s axis: unknown scale type %d", axis, typ)
}

func fitAxis(origin, size, lo, hi, margin float64) (scale, offset float64) {
	if hi == lo {
		return 1, origin / 2
	}
	m := size * margin
	scale = (size - 2*m) / (hi - lo)
	offset = origin + m - lo*scale
	return scale, offset
}

// PlotRect returns the plot area used for fitting. With equal aspect this
// is smaller than the rectangle passed to Fit.
func (s *Scaling) PlotRect() Rect { return s.plot }

// Extent returns the data extent the transform was fitted to.
func (s *Scaling) Extent() Extent { return s.extent }

// Margin returns the data area margin fraction.
func (s *Scaling) Margin() float64 { return s.margin }

// XScale returns the scale type of the x axis.
func (s *Scaling) XScale() ScaleType { return s.xType }

// YScale returns the scale type of the y axis.
func (s *Scaling) YScale() ScaleType { return s.yType }

// PixelScale returns the number of pixels per (possibly logarithmic)
// data unit along the given axis.
func (s *Scaling) PixelScale(axis Axis) float64 {
	if axis == AxisY {
		return s.scaleY
	}
	return s.scaleX
}

func pre(typ ScaleType, v float64) float64 {
	if typ == Log {
		return math.Log10(v)
	}
	return v
}

// X maps a data x coordinate to a pixel column.
func (s *Scaling) X(x float64) int {
	return int(math.Round(s.offsetX + pre(s.xType, x)*s.scaleX))
}

// Y maps a data y coordinate to a pixel row.
func (s *Scaling) Y(y float64) int {
	return int(math.Round(s.offsetY + pre(s.yType, y)*s.scaleY))
}

// Width converts a horizontal data distance into pixels.
func (s *Scaling) Width(w float64) int {
	return int(math.Round(pre(s.xType, w) * s.scaleX))
}

// Height converts a vertical data distance into pixels.
func (s *Scaling) Height(h float64) int {
	return int(math.Round(pre(s.yType, h) * s.scaleY))
}

// Pixels converts a point (x, y) or a box (x, y, w, h) to pixels.
// Any other number of coordinates is an error.
func (s *Scaling) Pixels(coords ...float64) ([]int, error) {
	switch len(coords) {
	case 2:
		return []int{s.X(coords[0]), s.Y(coords[1])}, nil
	case 4:
		return []int{
			s.X(coords[0]), s.Y(coords[1]),
			s.Width(coords[2]), s.Height(coords[3]),
		}, nil
	}
	return nil, invalidf("coordinate tuple has %d elements, want 2 or 4", len(coords))
}
