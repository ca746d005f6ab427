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

// tickSnapDivisions is the number of subdivisions per decade used when
// aligning the first tick. 40 divisions resolve steps of 0.25.
const tickSnapDivisions = 40

// TickPlan describes evenly spaced ticks Start, Start+Step, ... up to End.
// For logarithmic axes the values are base-10 exponents.
type TickPlan struct {
	Start, End, Step float64
	Log              bool
}

// PlanTicks chooses a "nice" tick spacing for the data range [lo, hi].
//
// For logarithmic axes lo and hi are exponents, i.e. the caller has already
// taken the base-10 logarithm. pixelScale is the number of pixels per data
// unit and footprint the number of pixels needed to show a standard number
// of tick labels without overlap; if the range is shorter on screen than
// footprint, fewer ticks are chosen. margin is the data area margin used
// by the scaling.
func PlanTicks(lo, hi float64, typ ScaleType, pixelScale, footprint, margin float64) TickPlan {
	delta := hi - lo
	if !(delta > 0) || math.IsInf(delta, 0) {
		return TickPlan{Start: lo, End: hi, Step: 1, Log: typ == Log}
	}
	scale := math.Pow(10, math.Floor(math.Log10(delta)))
	ratio := delta / scale

	if span := delta * pixelScale; span > 0 && span < footprint {
		ratio = ratio * footprint / span
	}

	for math.Abs(ratio) < 1.0 {
		ratio *= 10
		scale /= 10
	}
	for math.Abs(ratio) > 10.0 {
		ratio /= 10
		scale *= 10
	}

	var mini float64
	if typ == Log {
		mini = logMultiplier(scale, ratio)
	} else {
		mini = linearMultiplier(ratio)
	}
	step := scale * mini

	// Snap lo down to a multiple of step, counting in 1/40 of the decade
	// so that rounding errors in lo/step cannot move the start.
	start := step * math.Floor(math.Floor(tickSnapDivisions*lo/scale)/math.Floor(tickSnapDivisions*mini))
	if lo-delta*margin/2 > start {
		start += step
	}
	end := hi + delta*margin/2

	return TickPlan{Start: start, End: end, Step: step, Log: typ == Log}
}

// linearMultiplier maps a normalized range in [1, 10] to a step multiplier.
func linearMultiplier(ratio float64) float64 {
	switch {
	case ratio <= 1.6:
		return 0.2
	case ratio <= 2.1:
		return 0.25
	case ratio <= 4.1:
		return 0.5
	case ratio <= 8.1:
		return 1.0
	default:
		return 2.0
	}
}

// logMultiplier is the multiplier table for logarithmic axes. Short ranges
// of exponents always get one tick per decade.
func logMultiplier(scale, ratio float64) float64 {
	switch {
	case math.Abs(scale) < 10 && ratio <= 6.1:
		return 1.0
	case ratio <= 1.6:
		return 0.2
	case ratio <= 2.1:
		return 0.2
	case ratio <= 4.1:
		return 0.5
	case ratio <= 8.1:
		return 1.0
	default:
		return 2.0
	}
}

// Values returns the tick positions Start + n*Step which do not exceed End.
// The values are computed by multiplication, so errors do not accumulate.
func (p TickPlan) Values() []float64 {
	if !(p.Step > 0) || p.End < p.Start {
		return nil
	}
	var res []float64
	for n := 0; ; n++ {
		v := p.Start + float64(n)*p.Step
		if v > p.End {
			break
		}
		res = append(res, v)
	}
	return res
}

// HasMinor reports whether minor ticks are drawn, which is the case for
// logarithmic axes with one major tick per decade.
func (p TickPlan) HasMinor() bool {
	return p.Log && p.Step == 1.0
}

// Minor returns the data values of the unlabelled ticks 2·10^e, ..., 9·10^e
// following the major tick at exponent e, clipped at 10^End.
func (p TickPlan) Minor(e float64) []float64 {
	if !p.HasMinor() {
		return nil
	}
	base := math.Pow(10, e)
	limit := math.Pow(10, p.End)
	var res []float64
	for i := 2; i < 10; i++ {
		v := base * float64(i)
		if v > limit {
			break
		}
		res = append(res, v)
	}
	return res
}

// Ticks plans the ticks for one axis of a fitted scaling. For logarithmic
// axes the plan is in exponent space.
func (s *Scaling) Ticks(axis Axis, footprint float64) (TickPlan, error) {
	var lo, hi float64
	var typ ScaleType
	switch axis {
	case AxisX:
		lo, hi, typ = s.extent.MinX, s.extent.MaxX, s.xType
	case AxisY:
		lo, hi, typ = s.extent.MinY, s.extent.MaxY, s.yType
	default:
		return TickPlan{}, invalidf("unknown axis %d", axis)
	}
	lo, hi, err := transformRange(axis, typ, lo, hi)
	if err != nil {
		return TickPlan{}, err
	}
	return PlanTicks(lo, hi, typ, s.PixelScale(axis), footprint, s.margin), nil
}
