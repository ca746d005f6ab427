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
	"log/slog"

	"github.com/aclements/go-gg/palette"

	"seehuhn.de/go/chart/style"
)

// Figure is a canvas holding a grid of subplots.
type Figure struct {
	// Logger receives a debug record per drawn subplot. If nil,
	// slog.Default() is used.
	Logger *slog.Logger

	st   *style.Style
	axes []*Axes
}

// NewFigure returns an empty figure. A nil style means style.Default().
func NewFigure(st *style.Style) (*Figure, error) {
	if st == nil {
		st = style.Default()
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return &Figure{st: st}, nil
}

// Style returns the style of the figure.
func (f *Figure) Style() *style.Style { return f.st }

// Size returns the canvas size in pixels.
func (f *Figure) Size() (width, height int) {
	return f.st.Figure.Width, f.st.Figure.Height
}

// Axes returns the subplots in the order they were added.
func (f *Figure) Axes() []*Axes { return f.axes }

func (f *Figure) margins() Margins {
	fs := f.st.Figure
	return Margins{Left: fs.LeftMargin, Bottom: fs.BottomMargin, Right: fs.RightMargin, Top: fs.TopMargin}
}

func (f *Figure) newAxes(plot Rect) (*Axes, error) {
	a, err := NewAxes(plot, f.st)
	if err != nil {
		return nil, err
	}
	f.axes = append(f.axes, a)
	return a, nil
}

// AddSubplot adds a subplot in the given grid cell.
func (f *Figure) AddSubplot(g GridCell) (*Axes, error) {
	fs := f.st.Figure
	plot, err := CellRect(fs.Width, fs.Height, f.margins(), g, fs.HSpacing, fs.VSpacing)
	if err != nil {
		return nil, err
	}
	return f.newAxes(plot)
}

// Subplots fills a rows x cols grid with subplots, row by row starting
// at the top.
func (f *Figure) Subplots(rows, cols int) ([]*Axes, error) {
	if rows < 1 || cols < 1 {
		return nil, invalidf("grid %dx%d has no cells", rows, cols)
	}
	res := make([]*Axes, 0, rows*cols)
	for i := range rows * cols {
		a, err := f.AddSubplot(GridCell{Rows: rows, Cols: cols, Index: i})
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

// Colorbar shrinks ax from the right and adds a colour bar showing cmap
// over [lo, hi] in the freed strip. The new axes are returned.
func (f *Figure) Colorbar(ax *Axes, cmap palette.Continuous, lo, hi float64) (*Axes, error) {
	cb := f.st.Colorbar
	p := ax.PlotRect()
	main, err := NewRect(p.Left, p.Bottom, p.Width-cb.Width-cb.Pad, p.Height)
	if err != nil {
		return nil, fmt.Errorf("colour bar: %w", err)
	}
	strip, err := NewRect(main.Right()+cb.Pad, p.Bottom, cb.Width, p.Height)
	if err != nil {
		return nil, fmt.Errorf("colour bar: %w", err)
	}
	if err := ax.SetPlotRect(main); err != nil {
		return nil, err
	}

	bar, err := f.newAxes(strip)
	if err != nil {
		return nil, err
	}
	bar.ColorStrip(cmap, lo, hi)
	bar.HideXTicks(true)
	bar.SetYTickPosition(TickRight)
	bar.SetDataAreaMargin(0)
	return bar, nil
}

func (f *Figure) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// Draw fills the background and draws all subplots. On error, the
// subplots drawn so far stay on the canvas.
func (f *Figure) Draw(r Renderer) ([]*DrawReport, error) {
	bg, err := ParseColor(f.st.Figure.Background)
	if err != nil {
		return nil, err
	}
	w, h := f.Size()
	r.FilledRectangle(0, 0, w-1, h-1, bg)

	log := f.logger()
	reports := make([]*DrawReport, 0, len(f.axes))
	for i, a := range f.axes {
		a.logger = log.With("subplot", i)
		rep, err := a.Draw(r)
		if err != nil {
			return reports, fmt.Errorf("subplot %d: %w", i, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
