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
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/aclements/go-gg/palette"
	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart/style"
)

// BarLayout selects how several bar series at the same positions are
// arranged.
type BarLayout int

const (
	// Stacked puts each series on top of the previous one.
	Stacked BarLayout = iota
	// SideBySide divides the bar width between the series.
	SideBySide
)

// ParseBarLayout converts "stacked" or "sideBySide" to a BarLayout.
func ParseBarLayout(s string) (BarLayout, error) {
	switch s {
	case "stacked", "":
		return Stacked, nil
	case "sideBySide":
		return SideBySide, nil
	}
	return 0, invalidf("bar layout %q must be \"stacked\" or \"sideBySide\"", s)
}

// BarOptions are the optional arguments of Axes.Bar and Axes.Barh.
type BarOptions struct {
	// Categories names the bar positions. If set, the positions are
	// 0, 1, ..., and the names are used as tick labels.
	Categories []string

	// Width is the bar thickness, either one value for all bars or one
	// per position. Zero length means the style's bar width.
	Width []float64

	// Base is where the bars start, either one value or one per
	// position. Zero length means 0.
	Base []float64

	Label  string
	Layout BarLayout
}

// PieOptions are the optional arguments of Axes.Pie.
type PieOptions struct {
	Labels     []string
	StartAngle float64 // degrees
	Explode    []float64

	// AutoPct is a fmt format applied to the percentage of each wedge,
	// for example "%.1f%%". Empty means no percentage text.
	AutoPct string
}

// ImageOptions are the optional arguments of Axes.Imshow.
type ImageOptions struct {
	Cmap   string // colour map name, default "viridis"
	Origin ImageOrigin

	// Raw disables normalization; values must then lie in [0, 1].
	Raw bool
}

// axesColors are the style colours used by one Axes.
type axesColors struct {
	frame, frameLabel    color.Color
	legendBorder         color.Color
	legendLabel          color.Color
	wedgeLabel, wedgePct color.Color
}

func parseAxesColors(st *style.Style) (axesColors, error) {
	var c axesColors
	for _, item := range []struct {
		dst *color.Color
		src string
	}{
		{&c.frame, st.Frame.Color},
		{&c.frameLabel, st.Frame.LabelColor},
		{&c.legendBorder, st.Legend.BorderColor},
		{&c.legendLabel, st.Legend.LabelColor},
		{&c.wedgeLabel, st.Wedge.LabelColor},
		{&c.wedgePct, st.Wedge.PctColor},
	} {
		col, err := ParseColor(item.src)
		if err != nil {
			return c, err
		}
		*item.dst = col
	}
	return c, nil
}

// Axes is one plot area together with the artists drawn into it.
//
// Artists are added first; Draw then lays out and draws everything in a
// single pass. Draw can be called again after more artists were added.
type Axes struct {
	plot   Rect
	st     *style.Style
	colors axesColors
	logger *slog.Logger

	artists []Artist
	legend  *Legend
	cycle   ColorCycle

	aspect         Aspect
	xScale, yScale ScaleType
	frame          bool
	margin         float64

	xTicks, yTicks        *manualTicks
	hideX, hideY          bool
	xTickPos, yTickPos    string
	xLabel, yLabel, title string
}

// NewAxes returns an empty Axes for the given plot area. A nil style
// means style.Default().
func NewAxes(plot Rect, st *style.Style) (*Axes, error) {
	if err := plot.check(); err != nil {
		return nil, err
	}
	if st == nil {
		st = style.Default()
	}
	colors, err := parseAxesColors(st)
	if err != nil {
		return nil, err
	}
	return &Axes{
		plot:     plot,
		st:       st,
		colors:   colors,
		logger:   slog.Default(),
		frame:    st.Axes.Frame,
		margin:   st.Axes.DataAreaMargin,
		xTickPos: st.Frame.XTickPosition,
		yTickPos: st.Frame.YTickPosition,
	}, nil
}

// PlotRect returns the plot area of the axes.
func (a *Axes) PlotRect() Rect { return a.plot }

// SetPlotRect moves the axes to a new plot area.
func (a *Axes) SetPlotRect(plot Rect) error {
	if err := plot.check(); err != nil {
		return err
	}
	a.plot = plot
	return nil
}

// Artists returns the artists added so far, in drawing order.
func (a *Axes) Artists() []Artist { return a.artists }

// Add appends an artist.
func (a *Axes) Add(artist Artist) {
	a.artists = append(a.artists, artist)
}

func arange(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i)
	}
	return res
}

// lineFromFormat creates a line with the marker, dash and colour given by
// a format string. Every series advances the colour cycle.
func (a *Axes) lineFromFormat(x, y []float64, format, label string) (*Line, error) {
	f := ParseFormat(format)
	c := a.cycle.Next()
	if f.Color != nil {
		c = f.Color
	}
	l, err := NewLine(x, y, a.st.Line.Width, c)
	if err != nil {
		return nil, err
	}
	l.Dash = f.Dash
	l.Marker = f.Marker
	l.MarkerSize = a.st.Line.MarkerSize
	l.LegendLabel = label
	return l, nil
}

// Plot adds a line through the points (x[i], y[i]). If x is nil, the
// points are spaced at 0, 1, 2, ...
func (a *Axes) Plot(x, y []float64, format, label string) (*Line, error) {
	if x == nil {
		x = arange(len(y))
	}
	l, err := a.lineFromFormat(x, y, format, label)
	if err != nil {
		return nil, err
	}
	a.Add(l)
	return l, nil
}

// PlotSeries adds several lines at once. Either xs and ys have the same
// number of series, or one of them has a single series which is shared
// by all lines.
func (a *Axes) PlotSeries(xs, ys [][]float64, format, label string) ([]*Line, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, invalidf("plot: no data series")
	}
	incX, incY := 0, 0
	if len(xs) > 1 {
		incX = 1
	}
	if len(ys) > 1 {
		incY = 1
	}
	if incX == 0 && incY == 0 {
		incX, incY = 1, 1
	}
	if incX == 1 && incY == 1 && len(xs) != len(ys) {
		return nil, invalidf("plot: %d x series for %d y series", len(xs), len(ys))
	}
	if incX <= 0 && incY <= 0 {
		return nil, fmt.Errorf("%w: plot increments %d, %d", ErrInternal, incX, incY)
	}

	count := max(len(xs), len(ys))
	var res []*Line
	for i, j := 0, 0; i < count && j < count; i, j = i+incY, j+incX {
		l, err := a.lineFromFormat(xs[j], ys[i], format, label)
		if err != nil {
			return nil, err
		}
		a.Add(l)
		res = append(res, l)
	}
	return res, nil
}

// Scatter adds a marker at every point (x[i], y[i]). sizes optionally
// gives the marker area of each point. A nil colour takes the next colour
// of the cycle.
func (a *Axes) Scatter(x, y, sizes []float64, c color.Color, format, label string) (*Marker, error) {
	shape := ParseFormat(format).Marker
	if shape == MarkerNone {
		var err error
		shape, err = ParseMarkerShape(a.st.Marker.Shape)
		if err != nil {
			return nil, err
		}
	}
	next := a.cycle.Next()
	if c == nil {
		c = next
	}
	m, err := NewMarker(x, y, sizes, shape, a.st.Marker.Size, c)
	if err != nil {
		return nil, err
	}
	m.LegendLabel = label
	a.Add(m)
	return m, nil
}

// broadcast expands a value list of length 0 or 1 to n values.
func broadcast(v []float64, n int, def float64, what string) ([]float64, error) {
	switch len(v) {
	case 0, 1:
		res := make([]float64, n)
		if len(v) == 1 {
			def = v[0]
		}
		floats.AddConst(def, res)
		return res, nil
	case n:
		return append([]float64(nil), v...), nil
	}
	return nil, invalidf("bar: %d %s values for %d positions", len(v), what, n)
}

// barSeries prepares the positions of a bar chart. pos are the bar
// centres along the category axis.
func (a *Axes) barSeries(pos []float64, values [][]float64, opt *BarOptions) (lo, thick, base []float64, err error) {
	if opt.Categories != nil {
		if pos != nil && len(pos) != len(opt.Categories) {
			return nil, nil, nil, invalidf("bar: %d positions for %d categories", len(pos), len(opt.Categories))
		}
		pos = arange(len(opt.Categories))
	}
	n := len(pos)
	if n == 0 || len(values) == 0 {
		return nil, nil, nil, invalidf("bar: no data")
	}
	for i, v := range values {
		if len(v) != n {
			return nil, nil, nil, invalidf("bar: series %d has %d values for %d positions", i, len(v), n)
		}
	}
	thick, err = broadcast(opt.Width, n, a.st.Axes.BarWidth, "width")
	if err != nil {
		return nil, nil, nil, err
	}
	base, err = broadcast(opt.Base, n, 0, "base")
	if err != nil {
		return nil, nil, nil, err
	}

	lo = make([]float64, n)
	floats.AddScaledTo(lo, pos, -0.5, thick)
	if len(values) > 1 && opt.Layout == SideBySide {
		floats.Scale(1/float64(len(values)), thick)
	}
	return lo, thick, base, nil
}

// Bar adds vertical bars. Each element of heights is one series with a
// value for every position in x.
func (a *Axes) Bar(x []float64, heights [][]float64, opt *BarOptions) ([]*Bar, error) {
	if opt == nil {
		opt = &BarOptions{}
	}
	left, width, bottom, err := a.barSeries(x, heights, opt)
	if err != nil {
		return nil, err
	}
	if opt.Categories != nil {
		if err := a.SetXTicks(arange(len(opt.Categories)), opt.Categories); err != nil {
			return nil, err
		}
	}

	res := make([]*Bar, 0, len(heights))
	for _, h := range heights {
		b, err := NewBar(clone(left), clone(bottom), clone(width), clone(h), a.cycle.Next())
		if err != nil {
			return nil, err
		}
		b.LegendWidth = a.st.Bar.LegendWidth
		b.LegendLabel = opt.Label
		a.Add(b)
		res = append(res, b)
		if opt.Layout == Stacked {
			floats.Add(bottom, h)
		} else {
			floats.Add(left, width)
		}
	}
	return res, nil
}

// Barh adds horizontal bars. Each element of widths is one series with a
// value for every position in y.
func (a *Axes) Barh(y []float64, widths [][]float64, opt *BarOptions) ([]*Bar, error) {
	if opt == nil {
		opt = &BarOptions{}
	}
	bottom, height, left, err := a.barSeries(y, widths, opt)
	if err != nil {
		return nil, err
	}
	if opt.Categories != nil {
		if err := a.SetYTicks(arange(len(opt.Categories)), opt.Categories); err != nil {
			return nil, err
		}
	}

	res := make([]*Bar, 0, len(widths))
	for _, w := range widths {
		b, err := NewBar(clone(left), clone(bottom), clone(w), clone(height), a.cycle.Next())
		if err != nil {
			return nil, err
		}
		b.LegendWidth = a.st.Bar.LegendWidth
		b.LegendLabel = opt.Label
		a.Add(b)
		res = append(res, b)
		if opt.Layout == Stacked {
			floats.Add(left, w)
		} else {
			floats.Add(bottom, height)
		}
	}
	return res, nil
}

func clone(v []float64) []float64 { return append([]float64(nil), v...) }

// Pie adds one wedge per value, proportional to the value's share of the
// total. The axes switch to equal aspect and lose their frame.
func (a *Axes) Pie(x []float64, opt *PieOptions) ([]*Wedge, error) {
	if opt == nil {
		opt = &PieOptions{}
	}
	if len(x) == 0 {
		return nil, invalidf("pie: no data")
	}
	sum := floats.Sum(x)
	if !(sum > 0) {
		return nil, invalidf("pie: values sum to %g", sum)
	}

	start := math.Mod(opt.StartAngle, 360)
	res := make([]*Wedge, 0, len(x))
	for i, v := range x {
		end := start + v/sum*360
		w := &Wedge{
			Radius:        1,
			Start:         start,
			End:           end,
			Color:         a.cycle.Next(),
			LabelDistance: a.st.Wedge.LabelDistance,
			PctDistance:   a.st.Wedge.PctDistance,
			Font:          Font{Size: a.st.Wedge.FontSize},
			LabelColor:    a.colors.wedgeLabel,
			PctColor:      a.colors.wedgePct,
			LegendWidth:   a.st.Wedge.LegendWidth,
		}
		if i < len(opt.Labels) {
			w.LegendLabel = opt.Labels[i]
		}
		if i < len(opt.Explode) {
			w.Explode = opt.Explode[i]
		}
		if opt.AutoPct != "" {
			w.PctText = fmt.Sprintf(opt.AutoPct, v/sum*100)
		}
		a.Add(w)
		res = append(res, w)

		start = end
		if start >= 360 {
			start -= 360
		}
	}
	a.frame = false
	a.aspect = AspectEqual
	return res, nil
}

// Imshow adds an image of a value matrix. The axes switch to equal
// aspect.
func (a *Axes) Imshow(values [][]float64, opt *ImageOptions) (*Image, error) {
	if opt == nil {
		opt = &ImageOptions{}
	}
	name := opt.Cmap
	if name == "" {
		name = "viridis"
	}
	cmap, err := Colormap(name)
	if err != nil {
		return nil, err
	}
	im, err := NewImage(values, cmap)
	if err != nil {
		return nil, err
	}
	im.Origin = opt.Origin
	im.Norm = !opt.Raw
	a.Add(im)
	a.aspect = AspectEqual
	return im, nil
}

// ColorStrip adds a colour strip showing cmap over [bottom, top].
func (a *Axes) ColorStrip(cmap palette.Continuous, bottom, top float64) *ColorStrip {
	c := &ColorStrip{Cmap: cmap, Bottom: bottom, Top: top}
	a.Add(c)
	return c
}

// Legend adds a legend to the axes. Without entries, every artist with a
// non-empty label is listed.
func (a *Axes) Legend(entries ...LegendEntry) *Legend {
	if len(entries) == 0 {
		for _, artist := range a.artists {
			if label := artist.Label(); label != "" {
				entries = append(entries, LegendEntry{Artist: artist, Label: label})
			}
		}
	}
	ls := a.st.Legend
	a.legend = &Legend{
		Entries:     entries,
		LineSpacing: ls.LineSpacing,
		SwatchWidth: ls.SwatchWidth,
		Margin:      ls.Margin,
		Font:        Font{Size: ls.FontSize},
		BorderColor: a.colors.legendBorder,
		LabelColor:  a.colors.legendLabel,
	}
	return a.legend
}

// SetAspect sets the aspect mode.
func (a *Axes) SetAspect(aspect Aspect) { a.aspect = aspect }

// SetXScale sets the scale type of the x axis.
func (a *Axes) SetXScale(t ScaleType) { a.xScale = t }

// SetYScale sets the scale type of the y axis.
func (a *Axes) SetYScale(t ScaleType) { a.yScale = t }

// SetXLabel sets the label below (or above) the x axis.
func (a *Axes) SetXLabel(s string) { a.xLabel = s }

// SetYLabel sets the label next to the y axis.
func (a *Axes) SetYLabel(s string) { a.yLabel = s }

// SetTitle sets the title of the axes. An empty string removes it.
func (a *Axes) SetTitle(s string) { a.title = s }

// SetXTicks replaces the automatic x ticks by ticks at the given data
// values. labels is nil or has one label per value. A nil values slice
// restores automatic ticks.
func (a *Axes) SetXTicks(values []float64, labels []string) error {
	t, err := newManualTicks(values, labels)
	if err != nil {
		return err
	}
	a.xTicks = t
	return nil
}

// SetYTicks is like SetXTicks for the y axis.
func (a *Axes) SetYTicks(values []float64, labels []string) error {
	t, err := newManualTicks(values, labels)
	if err != nil {
		return err
	}
	a.yTicks = t
	return nil
}

func newManualTicks(values []float64, labels []string) (*manualTicks, error) {
	if values == nil {
		return nil, nil
	}
	if labels != nil && len(labels) != len(values) {
		return nil, invalidf("%d tick labels for %d ticks", len(labels), len(values))
	}
	return &manualTicks{Values: values, Labels: labels}, nil
}

// HideXTicks suppresses the ticks and tick labels of the x axis. The
// frame is still drawn.
func (a *Axes) HideXTicks(hide bool) { a.hideX = hide }

// HideYTicks is like HideXTicks for the y axis.
func (a *Axes) HideYTicks(hide bool) { a.hideY = hide }

// SetXTickPosition places the x ticks "down" or "up".
func (a *Axes) SetXTickPosition(pos string) { a.xTickPos = pos }

// SetYTickPosition places the y ticks "left" or "right".
func (a *Axes) SetYTickPosition(pos string) { a.yTickPos = pos }

// SetFrame enables or disables the frame.
func (a *Axes) SetFrame(on bool) { a.frame = on }

// SetDataAreaMargin sets the blank border around the data, as a fraction
// of the plot size.
func (a *Axes) SetDataAreaMargin(m float64) { a.margin = m }

// DataExtent returns the union of all artist extents, with degenerate
// axes widened. Without artists the extent is the unit square.
func (a *Axes) DataExtent() Extent {
	if len(a.artists) == 0 {
		return Extent{}.Normalize()
	}
	ext := a.artists[0].DataExtent()
	for _, artist := range a.artists[1:] {
		ext = ext.Union(artist.DataExtent())
	}
	return ext.Normalize()
}

// LegendPlacement records where a legend was drawn.
type LegendPlacement struct {
	Region Region          `json:"region"`
	Box    rect.Rect       `json:"box"`
	Counts [numRegions]int `json:"counts"`
}

// DrawReport describes the layout chosen by one call to Axes.Draw.
type DrawReport struct {
	Plot   Rect             `json:"plot"` // after aspect correction
	Extent Extent           `json:"extent"`
	XTicks *TickPlan        `json:"xTicks,omitempty"`
	YTicks *TickPlan        `json:"yTicks,omitempty"`
	Legend *LegendPlacement `json:"legend,omitempty"`
}

// Draw lays out the axes and draws the frame, the labels, all artists
// and the legend, in this order.
func (a *Axes) Draw(r Renderer) (*DrawReport, error) {
	ext := a.DataExtent()
	s, err := Fit(a.plot, ext, a.margin, a.aspect, a.xScale, a.yScale)
	if err != nil {
		return nil, err
	}
	rep := &DrawReport{Plot: s.PlotRect(), Extent: ext}

	if a.frame {
		f := &frame{
			st:        a.st.Frame,
			plot:      s.PlotRect(),
			xPos:      a.xTickPos,
			yPos:      a.yTickPos,
			xTicks:    a.xTicks,
			yTicks:    a.yTicks,
			hideX:     a.hideX,
			hideY:     a.hideY,
			tickColor: a.colors.frame,
			textColor: a.colors.frameLabel,
		}
		rep.XTicks, rep.YTicks, err = f.draw(r, s)
		if err != nil {
			return nil, err
		}
	}

	labels := []axisLabel{
		{text: a.xLabel, st: a.st.XLabel},
		{text: a.yLabel, st: a.st.YLabel},
		{text: a.title, st: a.st.Title},
	}
	for _, l := range labels {
		if err := l.draw(r, a.plot); err != nil {
			return nil, err
		}
	}

	var regions *Regions
	if a.legend != nil && len(a.legend.Entries) > 0 {
		regions = a.legend.Regions(r, a.plot)
	}

	for _, artist := range a.artists {
		prims, err := artist.Geometry(s)
		if err != nil {
			return nil, err
		}
		var h Handle
		if regions != nil {
			h = regions.BeginShape()
		}
		for _, p := range prims {
			p.Paint(r)
			if regions != nil {
				h = regions.Probe(h, p.Hits)
			}
		}
		if regions != nil {
			regions.Commit(h)
		}
	}

	if regions != nil {
		region, box := regions.Best()
		a.legend.Draw(r, box)
		rep.Legend = &LegendPlacement{Region: region, Box: box, Counts: regions.Counts()}
	}

	attrs := []any{"plot", rep.Plot, "extent", ext, "artists", len(a.artists)}
	if rep.XTicks != nil {
		attrs = append(attrs, "xstep", rep.XTicks.Step)
	}
	if rep.YTicks != nil {
		attrs = append(attrs, "ystep", rep.YTicks.Step)
	}
	if rep.Legend != nil {
		attrs = append(attrs, "legend", rep.Legend.Region, "counts", rep.Legend.Counts)
	}
	a.logger.Debug("axes drawn", attrs...)
	return rep, nil
}
