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

// Package raster draws charts into an in-memory RGBA image.
//
// The Rasterizer computes anti-aliased pixel coverage for vector paths.
// Canvas builds on it and implements the chart.Renderer interface.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	defaultFlatness = 0.25

	// edges whose device-space height is below this are dropped
	flatEdge = 1e-9
)

// edge is a line segment in device coordinates, with y0 != y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasterizer converts paths to coverage values between 0 (outside) and 1
// (inside), using the nonzero winding rule. Buffers are reused between
// calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and its polygonal approximation.
	Flatness float64

	edges       []edge
	cover, area []float32

	xMin, xMax, yMin, yMax float64 // device bounding box of edges
}

// NewRasterizer returns a rasterizer with the identity transformation.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

func (r *Rasterizer) apply(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device-space length of a user-space vector.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flatten walks p and calls line for every straight piece of the
// outline. Curves are subdivided according to Flatness. Every subpath is
// closed implicitly; closed reports whether the subpath had an explicit
// Close command.
func (r *Rasterizer) flatten(p path.Path, line func(a, b vec.Vec2), endSubpath func(closed bool)) {
	var cur, start vec.Vec2
	open := false
	finish := func(closed bool) {
		if open && endSubpath != nil {
			endSubpath(closed)
		}
		open = false
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			line(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], line)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], line)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
			finish(true)
		}
	}
	finish(false)
}

func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic subdivides a cubic Bézier curve into n pieces, with n
// given by Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

// reset discards the edges of the previous path.
func (r *Rasterizer) reset() {
	r.edges = r.edges[:0]
}

// addEdge transforms a user-space segment to device space and records
// it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p, q := r.apply(a), r.apply(b)
	dy := q.Y - p.Y
	if math.Abs(dy) < flatEdge {
		return
	}
	if len(r.edges) == 0 {
		r.xMin, r.xMax = min(p.X, q.X), max(p.X, q.X)
		r.yMin, r.yMax = min(p.Y, q.Y), max(p.Y, q.Y)
	} else {
		r.xMin, r.xMax = min(r.xMin, p.X, q.X), max(r.xMax, p.X, q.X)
		r.yMin, r.yMax = min(r.yMin, p.Y, q.Y), max(r.yMax, p.Y, q.Y)
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})
}

// Fill fills p with the nonzero winding rule. emit is called once per
// touched row with the coverage of pixels xMin, xMin+1, ...; the slice
// is only valid during the call.
func (r *Rasterizer) Fill(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.reset()
	r.flatten(p, r.addEdge, nil)
	r.render(emit)
}

// render accumulates all recorded edges and emits the coverage.
func (r *Rasterizer) render(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	x0 := max(int(math.Floor(r.xMin)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(r.xMax))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(r.yMin)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(r.yMax))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	w, h := x1-x0, y1-y0

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), y0)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, y1)
		for y := lo; y < hi; y++ {
			k := (y - y0) * w
			accumulate(e, y, r.cover[k:k+w], r.area[k:k+w], x0, x1)
		}
	}

	for row := range h {
		k := row * w
		cov := r.cover[k : k+w]
		integrate(cov, r.area[k:k+w])
		lo, hi := 0, w
		for lo < hi && cov[lo] == 0 {
			lo++
		}
		for hi > lo && cov[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y0+row, x0+lo, cov[lo:hi])
		}
	}
}

// accumulate adds the part of e inside scanline [y, y+1) to the cover
// and area buffers, which are indexed by x-x0. Contributions left of x0
// are folded into the first cell.
//
// For a piece of edge with signed height dy crossing pixel column x at
// horizontal offset f within the pixel, cover[x] gets dy and area[x]
// gets dy*(1-f). Summing cover from the left then gives the winding
// number of each pixel and area the partial coverage of the pixel
// itself.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	add := func(pix int, ya, yb float64) {
		dy := yb - ya
		if dy <= 0 || pix >= x1 {
			return
		}
		c := sign * float32(dy)
		if pix < x0 {
			cover[0] += c
			area[0] += c
			return
		}
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		f := xm - float64(pix)
		cover[pix-x0] += c
		area[pix-x0] += c * float32(1-f)
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	left, right := int(math.Floor(min(xa, xb))), int(math.Floor(max(xa, xb)))
	if left == right {
		add(left, top, bot)
		return
	}

	// the edge crosses several pixel columns; split at column borders
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		add(pix, max(min(ya, yb), top), min(max(ya, yb), bot))
	}
}

// integrate turns accumulated cover and area values of one row into
// coverage, in place.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}
