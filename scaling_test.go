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
	"errors"
	"slices"
	"testing"
)

func TestFitLinear(t *testing.T) {
	plot := Rect{Left: 0, Bottom: 0, Width: 100, Height: 100}
	s, err := Fit(plot, Extent{MaxX: 10, MaxY: 10}, 0.05, AspectAuto, Linear, Linear)
	if err != nil {
		t.Fatal(err)
	}
	if x := s.X(0); x != 5 {
		t.Errorf("X(0) = %d, want 5", x)
	}
	if x := s.X(10); x != 95 {
		t.Errorf("X(10) = %d, want 95", x)
	}
	if y := s.Y(5); y != 50 {
		t.Errorf("Y(5) = %d, want 50", y)
	}
	if w := s.Width(2); w != 18 {
		t.Errorf("Width(2) = %d, want 18", w)
	}
}

func TestFitMonotone(t *testing.T) {
	plot := Rect{Left: 30, Bottom: 20, Width: 317, Height: 211}
	ext := Extent{MinX: -3.7, MinY: 0.001, MaxX: 12.2, MaxY: 4000}
	for _, yType := range []ScaleType{Linear, Log} {
		s, err := Fit(plot, ext, 0.1, AspectAuto, Linear, yType)
		if err != nil {
			t.Fatal(err)
		}
		prevX, prevY := s.X(ext.MinX), s.Y(ext.MinY)
		for i := 1; i <= 100; i++ {
			f := float64(i) / 100
			x := s.X(ext.MinX + f*(ext.MaxX-ext.MinX))
			y := s.Y(ext.MinY + f*(ext.MaxY-ext.MinY))
			if x < prevX || y < prevY {
				t.Fatalf("%s: mapping not monotone at step %d", yType, i)
			}
			prevX, prevY = x, y
		}
		if x := s.X(ext.MaxX); x > plot.Right() {
			t.Errorf("%s: X(max) = %d outside the plot", yType, x)
		}
	}
}

func TestFitLogDomain(t *testing.T) {
	plot := Rect{Width: 100, Height: 100}
	_, err := Fit(plot, Extent{MinX: -1, MaxX: 10, MinY: 1, MaxY: 2}, 0, AspectAuto, Log, Linear)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("got %v, want a domain error", err)
	}
	var de *DomainError
	if !errors.As(err, &de) || de.Axis != AxisX {
		t.Errorf("error %v does not name the x axis", err)
	}
}

func TestFitInvalid(t *testing.T) {
	ext := Extent{MaxX: 1, MaxY: 1}
	tests := []struct {
		name   string
		plot   Rect
		margin float64
		aspect Aspect
	}{
		{"zero width", Rect{Height: 10}, 0, AspectAuto},
		{"negative height", Rect{Width: 10, Height: -1}, 0, AspectAuto},
		{"margin too large", Rect{Width: 10, Height: 10}, 0.5, AspectAuto},
		{"negative margin", Rect{Width: 10, Height: 10}, -0.1, AspectAuto},
		{"unknown aspect", Rect{Width: 10, Height: 10}, 0, Aspect(7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Fit(tc.plot, ext, tc.margin, tc.aspect, Linear, Linear)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestFitEqualAspect(t *testing.T) {
	plot := Rect{Left: 10, Bottom: 20, Width: 300, Height: 200}
	s, err := Fit(plot, Extent{MaxX: 1, MaxY: 1}, 0, AspectEqual, Linear, Linear)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{Left: 60, Bottom: 20, Width: 200, Height: 200}
	if got := s.PlotRect(); got != want {
		t.Errorf("plot rect %v, want %v", got, want)
	}
	if s.PixelScale(AxisX) != s.PixelScale(AxisY) {
		t.Errorf("pixel scales differ: %g, %g", s.PixelScale(AxisX), s.PixelScale(AxisY))
	}
}

func TestFitDegenerate(t *testing.T) {
	plot := Rect{Left: 10, Bottom: 40, Width: 100, Height: 100}
	s, err := Fit(plot, Extent{MinX: 3, MaxX: 3, MaxY: 1}, 0, AspectAuto, Linear, Linear)
	if err != nil {
		t.Fatal(err)
	}
	// scale 1 and offset origin/2
	if x := s.X(3); x != 8 {
		t.Errorf("X(3) = %d, want 8", x)
	}
}

func TestPixels(t *testing.T) {
	s, err := Fit(Rect{Width: 100, Height: 100}, Extent{MaxX: 10, MaxY: 10}, 0, AspectAuto, Linear, Linear)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Pixels(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{10, 20, 30, 40}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, n := range []int{0, 1, 3, 5} {
		if _, err := s.Pixels(make([]float64, n)...); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%d coordinates: got %v", n, err)
		}
	}
}

func TestRectSquare(t *testing.T) {
	tests := []struct {
		in, want Rect
	}{
		{Rect{0, 0, 100, 100}, Rect{0, 0, 100, 100}},
		{Rect{0, 0, 101, 50}, Rect{25, 0, 50, 50}},
		{Rect{5, 5, 20, 31}, Rect{5, 10, 20, 20}},
	}
	for _, tc := range tests {
		if got := tc.in.Square(); got != tc.want {
			t.Errorf("%v.Square() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExtentNormalize(t *testing.T) {
	tests := []struct {
		in, want Extent
	}{
		{Extent{0, 0, 0, 0}, Extent{0, 0, 1, 1}},
		{Extent{10, -10, 10, -10}, Extent{9.5, -10.5, 10.5, -9.5}},
		{Extent{1, 2, 3, 4}, Extent{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		if got := tc.in.Normalize(); got != tc.want {
			t.Errorf("%+v: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestExtentUnion(t *testing.T) {
	a := Extent{MinX: 0, MinY: 5, MaxX: 1, MaxY: 6}
	b := Extent{MinX: -2, MinY: 7, MaxX: 0.5, MaxY: 8}
	want := Extent{MinX: -2, MinY: 5, MaxX: 1, MaxY: 8}
	if got := a.Union(b); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("union is not symmetric: %+v", got)
	}
}
