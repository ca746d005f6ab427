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

	"seehuhn.de/go/geom/rect"
)

// Region identifies one of the eight candidate legend positions inside a
// plot rectangle.
type Region int

// The candidate regions, in the order in which ties are broken.
const (
	UpperRight Region = iota
	UpperLeft
	LowerRight
	LowerLeft
	UpperCenter
	CenterRight
	CenterLeft
	LowerCenter

	numRegions = 8
)

var regionNames = [numRegions]string{
	"upper right", "upper left", "lower right", "lower left",
	"upper center", "center right", "center left", "lower center",
}

func (r Region) String() string {
	if r < 0 || r >= numRegions {
		return "invalid"
	}
	return regionNames[r]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (r Region) MarshalText() ([]byte, error) {
	if r < 0 || r >= numRegions {
		return nil, invalidf("invalid legend region %d", int(r))
	}
	return []byte(regionNames[r]), nil
}

// Handle records which regions one drawn shape has touched.
// Bit i is set once the shape overlaps region i.
type Handle uint8

// Marked reports whether region r is marked in h.
func (h Handle) Marked(r Region) bool {
	return h&(1<<uint(r)) != 0
}

// Regions scores the candidate legend positions of one plot by counting
// how many drawn shapes overlap each of them.
//
// A draw pass uses the regions in three steps. After PrepareRegions, every
// shape calls BeginShape, then Probe once per primitive, then Commit.
// Finally Best selects the least occupied region.
type Regions struct {
	boxes  [numRegions]rect.Rect
	counts [numRegions]int
}

// PrepareRegions computes the candidate rectangles for a legend of the
// given content size. The rectangles are kept inset pixels away from the
// plot border. All corner coordinates are inclusive.
func PrepareRegions(plot Rect, contentW, contentH, inset int) *Regions {
	right := plot.Left + plot.Width - 1 - inset
	top := plot.Bottom + plot.Height - 1 - inset
	left := plot.Left + inset
	bottom := plot.Bottom + inset

	w, h := contentW, contentH
	midLeft := left + (plot.Width-w)/2
	midRight := left + (plot.Width+w)/2
	midBottom := bottom + (plot.Height-h)/2
	midTop := bottom + (plot.Height+h)/2

	box := func(x1, y1, x2, y2 int) rect.Rect {
		return rect.Rect{
			LLx: float64(x1), LLy: float64(y1),
			URx: float64(x2), URy: float64(y2),
		}
	}

	g := &Regions{}
	g.boxes[UpperRight] = box(right-w, top-h, right, top)
	g.boxes[UpperLeft] = box(left, top-h, left+w, top)
	g.boxes[LowerRight] = box(right-w, bottom, right, bottom+h)
	g.boxes[LowerLeft] = box(left, bottom, left+w, bottom+h)
	g.boxes[UpperCenter] = box(midLeft, top-h, midRight, top)
	g.boxes[CenterRight] = box(right-w, midBottom, right, midTop)
	g.boxes[CenterLeft] = box(left, midBottom, left+w, midTop)
	g.boxes[LowerCenter] = box(midLeft, bottom, midRight, bottom+h)
	return g
}

// Box returns the rectangle of region r.
func (g *Regions) Box(r Region) rect.Rect {
	return g.boxes[r]
}

// BeginShape returns an empty handle for a new shape.
func (g *Regions) BeginShape() Handle {
	return 0
}

// Probe tests one primitive of a shape against every region not yet
// marked in h and returns h with the hit regions marked.
func (g *Regions) Probe(h Handle, hit func(rect.Rect) bool) Handle {
	for r := Region(0); r < numRegions; r++ {
		if h.Marked(r) {
			continue
		}
		if hit(g.boxes[r]) {
			h |= 1 << uint(r)
		}
	}
	return h
}

// Commit adds one to the counter of every region marked in h.
func (g *Regions) Commit(h Handle) {
	for r := Region(0); r < numRegions; r++ {
		if h.Marked(r) {
			g.counts[r]++
		}
	}
}

// Best returns the region with the fewest overlapping shapes. Ties go to
// the region which comes first in the fixed order.
func (g *Regions) Best() (Region, rect.Rect) {
	best := Region(0)
	for r := Region(1); r < numRegions; r++ {
		if g.counts[r] < g.counts[best] {
			best = r
		}
	}
	return best, g.boxes[best]
}

// Count returns the number of shapes committed against region r.
func (g *Regions) Count(r Region) int {
	return g.counts[r]
}

// Counts returns a copy of all counters, indexed by Region.
func (g *Regions) Counts() [numRegions]int {
	return g.counts
}

// Reset zeroes all counters.
func (g *Regions) Reset() {
	g.counts = [numRegions]int{}
}

// BoxHit returns a predicate which reports whether the box with inclusive
// corners (x1, y1) and (x2, y2) intersects a region.
func BoxHit(x1, y1, x2, y2 int) func(rect.Rect) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	bx1, by1, bx2, by2 := float64(x1), float64(y1), float64(x2), float64(y2)
	return func(r rect.Rect) bool {
		return !(bx2 < r.LLx || r.URx < bx1 || by2 < r.LLy || r.URy < by1)
	}
}

// SegmentHit returns a predicate for the line segment from (x1, y1) to
// (x2, y2). A segment hits a region if one of its endpoints lies inside,
// or if it lies within the region's horizontal (vertical) extent and
// crosses the region from bottom to top (left to right).
//
// Diagonal segments which cross a region without an endpoint inside are
// not detected.
func SegmentHit(x1, y1, x2, y2 int) func(rect.Rect) bool {
	px1, py1, px2, py2 := float64(x1), float64(y1), float64(x2), float64(y2)
	tx1, tx2 := min(px1, px2), max(px1, px2)
	ty1, ty2 := min(py1, py2), max(py1, py2)
	return func(r rect.Rect) bool {
		inX := func(x float64) bool { return r.LLx <= x && x <= r.URx }
		inY := func(y float64) bool { return r.LLy <= y && y <= r.URy }
		switch {
		case inX(px1) && inY(py1), inX(px2) && inY(py2):
			return true
		case inX(px1) && inX(px2) && ty1 <= r.LLy && r.URy <= ty2:
			return true
		case inY(py1) && inY(py2) && tx1 <= r.LLx && r.URx <= tx2:
			return true
		}
		return false
	}
}

// LegendEntry is one row of a legend.
type LegendEntry struct {
	Artist Artist
	Label  string
}

// Legend draws the labels of a set of artists into the least occupied
// region of a plot.
type Legend struct {
	Entries []LegendEntry

	LineSpacing   int
	SwatchWidth   int
	Margin        int
	Font          Font
	BorderColor   color.Color
	LabelColor    color.Color
	contentWidth  int
	contentHeight int
	lineHeight    int
}

// measure computes the size of the legend box from the label extents.
func (l *Legend) measure(r Renderer) {
	maxW, maxH := 0, 0
	for _, e := range l.Entries {
		b := r.MeasureText(l.Font, 0, 0, e.Label, 0, AlignLeft, AlignBottom)
		maxW = max(maxW, b.W)
		maxH = max(maxH, b.H)
	}
	n := len(l.Entries)
	l.contentWidth = l.SwatchWidth + maxW + 3*l.Margin
	l.contentHeight = maxH*n + l.LineSpacing*(n-1) + 2*l.Margin
	l.lineHeight = r.MeasureText(l.Font, 0, 0, "M", 0, AlignLeft, AlignBottom).H
}

// Regions measures the legend and returns fresh candidate regions for the
// given plot rectangle.
func (l *Legend) Regions(r Renderer, plot Rect) *Regions {
	l.measure(r)
	return PrepareRegions(plot, l.contentWidth, l.contentHeight, l.Margin)
}

// Draw draws the border and the entries of the legend into box.
func (l *Legend) Draw(r Renderer, box rect.Rect) {
	x1, y2 := int(box.LLx), int(box.URy)
	r.Rectangle(x1, int(box.LLy), int(box.URx), y2, l.BorderColor)
	for i, e := range l.Entries {
		ypos := y2 - int(float64(l.lineHeight+l.LineSpacing)*(0.5+float64(i))) - l.Margin
		xpos := x1 + l.Margin
		e.Artist.DrawLegend(r, xpos, ypos, l.SwatchWidth)
		r.Text(l.Font, xpos+l.SwatchWidth+l.Margin, ypos, e.Label, 0, AlignLeft, AlignCenter, l.LabelColor)
	}
}
