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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeStyle describes how a path is outlined.
type StrokeStyle struct {
	Width float64 // in user space units
	Cap   graphics.LineCapStyle

	// Dash holds alternating on and off lengths in user space units.
	// Nil gives a solid line.
	Dash []float64
}

// polyline is a flattened subpath.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// Stroke outlines p. Corners are always rounded.
//
// The outline is assembled from one quadrilateral per segment and one
// disc per corner and round cap. All pieces have the same orientation,
// so the nonzero rule fills their union.
func (r *Rasterizer) Stroke(p path.Path, st StrokeStyle, emit func(y, xMin int, coverage []float32)) {
	r.reset()
	if !(st.Width > 0) {
		return
	}
	lines := r.polylines(p)
	if st.Dash != nil {
		lines = dashPolylines(lines, st.Dash)
	}

	d := st.Width / 2
	for _, pl := range lines {
		pts := pl.pts
		if len(pts) == 0 {
			continue
		}
		if len(pts) == 1 {
			// a dot; only round and square caps make it visible
			switch st.Cap {
			case graphics.LineCapRound:
				r.addDisc(pts[0], d)
			case graphics.LineCapSquare:
				r.addQuad(pts[0].Sub(vec.Vec2{X: d}), pts[0].Add(vec.Vec2{X: d}), d)
			}
			continue
		}

		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			if !pl.closed && st.Cap == graphics.LineCapSquare {
				dir := b.Sub(a)
				dir = dir.Mul(d / dir.Length())
				if i == 1 {
					a = a.Sub(dir)
				}
				if i == len(pts)-1 {
					b = b.Add(dir)
				}
			}
			r.addQuad(a, b, d)
		}

		last := len(pts) - 1
		for i := 1; i < last; i++ {
			r.addDisc(pts[i], d)
		}
		switch {
		case pl.closed:
			r.addDisc(pts[0], d)
		case st.Cap == graphics.LineCapRound:
			r.addDisc(pts[0], d)
			r.addDisc(pts[last], d)
		}
	}
	r.render(emit)
}

// polylines flattens p into one polyline per subpath. Zero-length
// segments are dropped.
func (r *Rasterizer) polylines(p path.Path) []polyline {
	var res []polyline
	var cur []vec.Vec2
	r.flatten(p,
		func(a, b vec.Vec2) {
			if len(cur) == 0 {
				cur = append(cur, a)
			}
			if b != cur[len(cur)-1] {
				cur = append(cur, b)
			}
		},
		func(closed bool) {
			if len(cur) > 0 {
				res = append(res, polyline{pts: cur, closed: closed})
			}
			cur = nil
		})
	return res
}

// addQuad adds the rectangle of half-width d around the segment a-b.
func (r *Rasterizer) addQuad(a, b vec.Vec2, d float64) {
	t := b.Sub(a)
	l := t.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d / l)
	p1, p2, p3, p4 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	r.addEdge(p1, p2)
	r.addEdge(p2, p3)
	r.addEdge(p3, p4)
	r.addEdge(p4, p1)
}

// addDisc adds a disc of radius d, traversed in the same direction as
// the quadrilaterals of addQuad.
func (r *Rasterizer) addDisc(c vec.Vec2, d float64) {
	if d <= 0 {
		return
	}
	// Step so that the chord error stays below the flatness.
	dev := max(r.deviceLength(vec.Vec2{X: d}), r.deviceLength(vec.Vec2{Y: d}))
	n := 8
	if dev > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/dev))))
	}
	prev := c.Add(vec.Vec2{X: d})
	for i := 1; i <= n; i++ {
		phi := -2 * math.Pi * float64(i) / float64(n)
		pt := c.Add(vec.Vec2{X: d * math.Cos(phi), Y: d * math.Sin(phi)})
		r.addEdge(prev, pt)
		prev = pt
	}
}

// dashPolylines cuts the polylines into the "on" pieces of a dash
// pattern. The pattern restarts at the beginning of every subpath.
func dashPolylines(lines []polyline, dash []float64) []polyline {
	total := 0.0
	for _, v := range dash {
		total += v
	}
	if !(total > 0) {
		return lines
	}

	var res []polyline
	for _, pl := range lines {
		pts := pl.pts
		if pl.closed && len(pts) > 1 && pts[len(pts)-1] != pts[0] {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}

		idx := 0
		left := dash[0]
		var cur []vec.Vec2
		on := func() bool { return idx%2 == 0 }
		if on() {
			cur = []vec.Vec2{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := b.Sub(a)
			l := seg.Length()
			pos := 0.0
			for l-pos > left {
				pos += left
				pt := a.Add(seg.Mul(pos / l))
				if on() {
					cur = append(cur, pt)
					res = append(res, polyline{pts: cur})
					cur = nil
				} else {
					cur = []vec.Vec2{pt}
				}
				idx = (idx + 1) % len(dash)
				left = dash[idx]
			}
			left -= l - pos
			if on() {
				cur = append(cur, b)
			}
		}
		if on() && len(cur) > 1 {
			res = append(res, polyline{pts: cur})
		}
	}
	return res
}
