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

import "seehuhn.de/go/chart/style"

// axisLabel is a text placed next to one side of the plot area, used
// for axis labels and titles.
type axisLabel struct {
	text string
	st   style.Label
}

// anchor returns the anchor point and alignment of the label.
func (l axisLabel) anchor(p Rect) (x, y int, h HAlign, v VAlign, err error) {
	m := l.st.Margin
	switch l.st.Position {
	case "up":
		return p.Left + p.Width/2, p.Bottom + p.Height + m, AlignHCenter, AlignBottom, nil
	case "down":
		return p.Left + p.Width/2, p.Bottom - m, AlignHCenter, AlignTop, nil
	case "left":
		return p.Left - m, p.Bottom + p.Height/2, AlignHCenter, AlignBottom, nil
	case "right":
		return p.Left + p.Width + m, p.Bottom + p.Height/2, AlignHCenter, AlignTop, nil
	}
	return 0, 0, 0, 0, invalidf("invalid axis label position %q", l.st.Position)
}

func (l axisLabel) draw(r Renderer, p Rect) error {
	if l.text == "" {
		return nil
	}
	c, err := ParseColor(l.st.Color)
	if err != nil {
		return err
	}
	x, y, h, v, err := l.anchor(p)
	if err != nil {
		return err
	}
	r.Text(Font{Size: l.st.FontSize}, x, y, l.text, l.st.Rotate, h, v, c)
	return nil
}
