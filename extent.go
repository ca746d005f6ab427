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

	"gonum.org/v1/gonum/floats"
)

// degenerateSpread is the fraction by which a zero-width data range is
// widened on each side.
const degenerateSpread = 0.05

// Extent is an axis-aligned bounding box in data space.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// extentOf returns the bounding box of the points (xs[i], ys[i]).
// Both slices must be non-empty.
func extentOf(xs, ys []float64) Extent {
	return Extent{
		MinX: floats.Min(xs),
		MinY: floats.Min(ys),
		MaxX: floats.Max(xs),
		MaxY: floats.Max(ys),
	}
}

// Union returns the smallest extent containing both e and other.
func (e Extent) Union(other Extent) Extent {
	return Extent{
		MinX: math.Min(e.MinX, other.MinX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// Normalize widens degenerate axes. An axis with min == max == v becomes
// [v-0.05v, v+0.05v], or [0, 1] if v is zero.
func (e Extent) Normalize() Extent {
	e.MinX, e.MaxX = widen(e.MinX, e.MaxX)
	e.MinY, e.MaxY = widen(e.MinY, e.MaxY)
	return e
}

func widen(lo, hi float64) (float64, float64) {
	if lo != hi {
		return lo, hi
	}
	if hi == 0 {
		return 0, 1
	}
	// for negative values hi-hi*0.05 is above hi+hi*0.05
	d := math.Abs(hi) * degenerateSpread
	return hi - d, hi + d
}

// Valid reports whether the bounds are ordered and finite.
func (e Extent) Valid() bool {
	for _, v := range []float64{e.MinX, e.MinY, e.MaxX, e.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return e.MinX <= e.MaxX && e.MinY <= e.MaxY
}
