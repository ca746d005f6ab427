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
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/chart/style"
)

func TestSubplots(t *testing.T) {
	f, err := NewFigure(nil)
	if err != nil {
		t.Fatal(err)
	}
	axes, err := f.Subplots(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range axes {
		if _, err := a.Plot(nil, []float64{0, float64(i + 1)}, "", ""); err != nil {
			t.Fatal(err)
		}
	}

	r := &recorder{}
	reports, err := f.Draw(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 4 {
		t.Fatalf("got %d reports, want 4", len(reports))
	}
	first := r.calls[0]
	if first.op != "fillrect" || first.args[2] != 639 || first.args[3] != 479 {
		t.Errorf("first call %s %v, want the background", first.op, first.args)
	}
	if reports[0].Plot.Bottom <= reports[2].Plot.Bottom {
		t.Error("subplot 0 should be above subplot 2")
	}

	if _, err := f.Subplots(0, 2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("empty grid: got %v", err)
	}
}

func TestColorbar(t *testing.T) {
	f, err := NewFigure(nil)
	if err != nil {
		t.Fatal(err)
	}
	ax, err := f.AddSubplot(GridCell{})
	if err != nil {
		t.Fatal(err)
	}
	before := ax.PlotRect()
	cmap, err := Colormap("viridis")
	if err != nil {
		t.Fatal(err)
	}
	bar, err := f.Colorbar(ax, cmap, 0, 10)
	if err != nil {
		t.Fatal(err)
	}

	cb := f.Style().Colorbar
	after := ax.PlotRect()
	if after.Width != before.Width-cb.Width-cb.Pad {
		t.Errorf("plot width %d, want %d", after.Width, before.Width-cb.Width-cb.Pad)
	}
	strip := bar.PlotRect()
	if strip.Left != after.Right()+cb.Pad || strip.Width != cb.Width || strip.Height != before.Height {
		t.Errorf("colour bar at %v, main plot %v", strip, after)
	}

	reports, err := f.Draw(&recorder{})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[1].XTicks != nil || reports[1].YTicks == nil {
		t.Error("colour bar should only have y ticks")
	}
	if ext := reports[1].Extent; ext.MinY != 0 || ext.MaxY != 10 {
		t.Errorf("colour bar extent %v", ext)
	}
}

func TestFigureInvalidStyle(t *testing.T) {
	st := style.Default()
	st.Figure.Width = 0
	if _, err := NewFigure(st); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("got %v", err)
	}
}

func TestFigureErrorNamesSubplot(t *testing.T) {
	f, err := NewFigure(nil)
	if err != nil {
		t.Fatal(err)
	}
	axes, err := f.Subplots(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := axes[1].Plot(nil, []float64{0, 1}, "", ""); err != nil {
		t.Fatal(err)
	}
	axes[1].SetYScale(Log)

	reports, err := f.Draw(&recorder{})
	if !errors.Is(err, ErrDomain) || !strings.Contains(err.Error(), "subplot 1") {
		t.Errorf("got %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("got %d reports before the failure, want 1", len(reports))
	}
}

func TestFigureLogger(t *testing.T) {
	var buf strings.Builder
	f, err := NewFigure(nil)
	if err != nil {
		t.Fatal(err)
	}
	f.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := f.AddSubplot(GridCell{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Draw(&recorder{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "axes drawn") || !strings.Contains(out, "subplot=0") {
		t.Errorf("unexpected log output %q", out)
	}
}
