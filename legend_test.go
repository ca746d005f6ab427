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
	"encoding/json"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func testRegions() *Regions {
	return PrepareRegions(Rect{Left: 0, Bottom: 0, Width: 400, Height: 300}, 80, 40, 5)
}

func TestRegionBoxes(t *testing.T) {
	g := testRegions()

	// corner regions are mirror images of each other
	ur, ul := g.Box(UpperRight), g.Box(UpperLeft)
	lr, ll := g.Box(LowerRight), g.Box(LowerLeft)
	if ul.LLx-0 != 399-ur.URx {
		t.Errorf("upper regions not symmetric: %v, %v", ul, ur)
	}
	if ll.LLy-0 != 299-ul.URy {
		t.Errorf("left regions not symmetric: %v, %v", ll, ul)
	}
	if lr.LLy != ll.LLy || ur.URy != ul.URy {
		t.Errorf("regions not aligned: %v %v %v %v", ur, ul, lr, ll)
	}
	for r := Region(0); r < numRegions; r++ {
		b := g.Box(r)
		if b.URx-b.LLx != 80 || b.URy-b.LLy != 40 {
			t.Errorf("%s: box %v does not have the content size", r, b)
		}
	}
}

// Shapes confined to the lower-left quadrant leave a zero-count region
// elsewhere, which is chosen.
func TestBestAvoidsOccupiedCorner(t *testing.T) {
	g := testRegions()
	shapes := [][][4]int{
		{{10, 10, 50, 50}},
		{{60, 20, 100, 60}, {20, 70, 40, 90}},
		{{30, 30, 35, 35}},
	}
	for _, shape := range shapes {
		h := g.BeginShape()
		for _, b := range shape {
			h = g.Probe(h, BoxHit(b[0], b[1], b[2], b[3]))
		}
		g.Commit(h)
	}

	if n := g.Count(LowerLeft); n != 3 {
		t.Errorf("lower left count %d, want 3", n)
	}
	best, box := g.Best()
	if best == LowerLeft {
		t.Fatal("legend placed in the occupied corner")
	}
	if g.Count(best) != 0 {
		t.Errorf("best region %s has count %d", best, g.Count(best))
	}
	if best != UpperRight {
		t.Errorf("ties must go to the first region, got %s", best)
	}
	if box != g.Box(best) {
		t.Errorf("box %v does not match region %s", box, best)
	}
}

// TestCornerCountsSymmetric adds every shape together with its mirror
// images about the plot centre. The four corner regions must then see
// the same number of shapes.
func TestCornerCountsSymmetric(t *testing.T) {
	g := testRegions()
	mirror := func(x, y int, fx, fy bool) (int, int) {
		if fx {
			x = 399 - x
		}
		if fy {
			y = 299 - y
		}
		return x, y
	}

	boxes := [][4]int{{10, 10, 50, 50}, {60, 20, 100, 60}, {150, 100, 170, 120}, {0, 0, 399, 20}}
	segments := [][4]int{{20, 0, 20, 299}, {0, 30, 120, 30}, {90, 40, 90, 45}}
	for _, fx := range []bool{false, true} {
		for _, fy := range []bool{false, true} {
			for _, b := range boxes {
				x1, y1 := mirror(b[0], b[1], fx, fy)
				x2, y2 := mirror(b[2], b[3], fx, fy)
				g.Commit(g.Probe(g.BeginShape(), BoxHit(x1, y1, x2, y2)))
			}
			for _, s := range segments {
				x1, y1 := mirror(s[0], s[1], fx, fy)
				x2, y2 := mirror(s[2], s[3], fx, fy)
				g.Commit(g.Probe(g.BeginShape(), SegmentHit(x1, y1, x2, y2)))
			}
		}
	}

	want := g.Count(UpperRight)
	if want == 0 {
		t.Fatal("no shape reached the corners")
	}
	for _, r := range []Region{UpperLeft, LowerRight, LowerLeft} {
		if n := g.Count(r); n != want {
			t.Errorf("%s: count %d, upper right %d", r, n, want)
		}
	}
}

func TestCommitOncePerShape(t *testing.T) {
	g := testRegions()
	h := g.BeginShape()
	for range 5 {
		h = g.Probe(h, BoxHit(10, 10, 20, 20))
	}
	g.Commit(h)
	if n := g.Count(LowerLeft); n != 1 {
		t.Errorf("count %d after one shape, want 1", n)
	}

	g.Reset()
	if g.Counts() != [numRegions]int{} {
		t.Errorf("counts after reset: %v", g.Counts())
	}
}

func TestProbeSkipsMarked(t *testing.T) {
	g := testRegions()
	h := g.Probe(g.BeginShape(), BoxHit(0, 0, 399, 299))
	if h != 0xff {
		t.Fatalf("full box marks %08b, want all regions", h)
	}
	calls := 0
	g.Probe(h, func(rect.Rect) bool {
		calls++
		return true
	})
	if calls != 0 {
		t.Errorf("predicate called %d times for a fully marked handle", calls)
	}
}

func TestSegmentHit(t *testing.T) {
	g := testRegions()
	ll := g.Box(LowerLeft) // x 5..85, y 5..45

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           bool
	}{
		{"endpoint inside", 20, 20, 300, 200, true},
		{"vertical crossing", 20, 0, 20, 299, true},
		{"horizontal crossing", 0, 30, 399, 30, true},
		{"outside", 100, 100, 200, 200, false},
		{"diagonal crossing", 0, 40, 40, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentHit(tc.x1, tc.y1, tc.x2, tc.y2)(ll); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestBoxHitInclusive(t *testing.T) {
	g := testRegions()
	ll := g.Box(LowerLeft)
	if !BoxHit(85, 45, 90, 50)(ll) {
		t.Error("touching corner not detected")
	}
	if BoxHit(86, 46, 90, 50)(ll) {
		t.Error("disjoint box reported as hit")
	}
	if !BoxHit(90, 50, 85, 45)(ll) {
		t.Error("swapped corners not handled")
	}
}

func TestRegionJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Region{"r": CenterLeft})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"r":"center left"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := json.Marshal(Region(12)); err == nil {
		t.Error("invalid region marshalled without error")
	}
}
