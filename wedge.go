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
)

// Wedge is one slice of a pie chart. Pie charts are drawn in data space
// around the origin with unit radius, so the data extent is always the
// square [-1, 1] x [-1, 1].
type Wedge struct {
	CenterX, CenterY float64
	Radius           float64
	Start, End       float64 // degrees, counter-clockwise from the x axis

	// Explode moves the wedge outwards along its bisector by this
	// distance in data units.
	Explode float64

	Color       color.Color
	LegendLabel string
	PctText     string // text drawn inside the wedge, if non-empty

	LabelDistance float64 // label position, relative to the radius
	PctDistance   float64 // percentage text position, relative to the radius
	Font          Font
	LabelColor    color.Color
	PctColor      color.Color
	LegendWidth   int
}

// DataExtent implements the Artist interface.
func (w *Wedge) DataExtent() Extent {
	return Extent{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
}

// bisector returns the direction of the middle of the wedge in radians.
func (w *Wedge) bisector() float64 {
	return (w.Start + w.End) * math.Pi / 360
}

// Geometry implements the Artist interface.
func (w *Wedge) Geometry(s *Scaling) ([]Primitive, error) {
	theta := w.bisector()
	x, y := w.CenterX, w.CenterY
	if w.Explode != 0 {
		x += w.Explode * math.Cos(theta)
		y += w.Explode * math.Sin(theta)
	}
	px, err := s.Pixels(x, y, 2*w.Radius, 2*w.Radius)
	if err != nil {
		return nil, err
	}
	res := []Primitive{Arc{
		CX: px[0], CY: px[1], W: px[2], H: px[3],
		Start: w.Start, End: w.End, Color: w.Color,
	}}

	if w.LegendLabel != "" {
		res = append(res, w.text(s, theta, w.LabelDistance+w.Explode, w.LegendLabel, w.LabelColor, false))
	}
	if w.PctText != "" {
		res = append(res, w.text(s, theta, w.PctDistance+w.Explode, w.PctText, w.PctColor, true))
	}
	return res, nil
}

// text places a label at the given distance along the bisector. Unless
// centred, the label is anchored on the side facing the wedge.
func (w *Wedge) text(s *Scaling, theta, distance float64, label string, c color.Color, centred bool) Text {
	tx := distance * math.Cos(theta)
	ty := distance * math.Sin(theta)
	h, v := AlignHCenter, AlignCenter
	if !centred {
		switch {
		case tx < -0.1:
			h = AlignRight
		case tx >= 0.1:
			h = AlignLeft
		}
		switch {
		case ty < -0.1:
			v = AlignTop
		case ty >= 0.1:
			v = AlignBottom
		}
	}
	return Text{
		X: s.X(tx), Y: s.Y(ty), S: label, Font: w.Font,
		HAlign: h, VAlign: v, Color: c,
	}
}

// DrawLegend implements the Artist interface.
func (w *Wedge) DrawLegend(r Renderer, x, y, length int) {
	drawBand(r, x, y, length, w.LegendWidth, w.Color)
}

// Label implements the Artist interface.
func (w *Wedge) Label() string { return w.LegendLabel }

func (*Wedge) isArtist() {}
