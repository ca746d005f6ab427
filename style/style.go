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

// Package style holds the tunable parameters of chart drawing.
//
// A Style starts from Default and can be overlaid with values from a YAML
// document. Keys which are not present keep their default value, unknown
// keys are an error.
package style

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Style collects all drawing parameters.
type Style struct {
	Figure   Figure   `yaml:"figure"`
	Axes     Axes     `yaml:"axes"`
	Frame    Frame    `yaml:"frame"`
	Legend   Legend   `yaml:"legend"`
	Line     Line     `yaml:"line"`
	Marker   Marker   `yaml:"marker"`
	Bar      Bar      `yaml:"bar"`
	Wedge    Wedge    `yaml:"wedge"`
	XLabel   Label    `yaml:"xlabel"`
	YLabel   Label    `yaml:"ylabel"`
	Title    Label    `yaml:"title"`
	Colorbar Colorbar `yaml:"colorbar"`
}

// Figure describes the canvas and the subplot grid.
type Figure struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	LeftMargin   int `yaml:"leftMargin"`
	BottomMargin int `yaml:"bottomMargin"`
	RightMargin  int `yaml:"rightMargin"`
	TopMargin    int `yaml:"topMargin"`

	// gap between subplots, as a fraction of the cell size
	HSpacing float64 `yaml:"hSpacing"`
	VSpacing float64 `yaml:"vSpacing"`

	Background string `yaml:"background"`
}

// Axes holds the per-subplot defaults.
type Axes struct {
	Frame          bool    `yaml:"frame"`
	BarWidth       float64 `yaml:"barWidth"`
	DataAreaMargin float64 `yaml:"dataAreaMargin"`
}

// Frame describes the box around the plot area and its ticks.
type Frame struct {
	Color      string `yaml:"color"`
	LabelColor string `yaml:"labelColor"`

	XTickPosition string `yaml:"xTickPosition"` // "down" or "up"
	YTickPosition string `yaml:"yTickPosition"` // "left" or "right"
	XTickLength   int    `yaml:"xTickLength"`
	YTickLength   int    `yaml:"yTickLength"`

	XTickLabelMargin int `yaml:"xTickLabelMargin"`
	YTickLabelMargin int `yaml:"yTickLabelMargin"`
	XTickLabelAngle  int `yaml:"xTickLabelAngle"` // 0 or 90
	YTickLabelAngle  int `yaml:"yTickLabelAngle"` // 0 or 90

	// The space reserved for tick labels when choosing the tick spacing
	// is TickLabelStandardCount labels of TickLabelWidth (or
	// TickLabelHeight) characters.
	TickLabelStandardCount int `yaml:"tickLabelStandardCount"`
	TickLabelWidth         int `yaml:"tickLabelWidth"`
	TickLabelHeight        int `yaml:"tickLabelHeight"`

	Padding int `yaml:"padding"` // distance between frame and plot area

	XTickLabelFontSize int `yaml:"xTickLabelFontSize"`
	YTickLabelFontSize int `yaml:"yTickLabelFontSize"`
}

// Legend describes the legend box.
type Legend struct {
	LineSpacing int    `yaml:"lineSpacing"`
	SwatchWidth int    `yaml:"swatchWidth"`
	Margin      int    `yaml:"margin"`
	FontSize    int    `yaml:"fontSize"`
	BorderColor string `yaml:"borderColor"`
	LabelColor  string `yaml:"labelColor"`
}

// Line describes line plots.
type Line struct {
	Width      int `yaml:"width"`
	MarkerSize int `yaml:"markerSize"`
}

// Marker describes scatter plots.
type Marker struct {
	Size  int    `yaml:"size"`
	Shape string `yaml:"shape"`
}

// Bar describes bar charts.
type Bar struct {
	LegendWidth int `yaml:"legendWidth"`
}

// Wedge describes pie charts.
type Wedge struct {
	LabelDistance float64 `yaml:"labelDistance"`
	PctDistance   float64 `yaml:"pctDistance"`
	LabelColor    string  `yaml:"labelColor"`
	PctColor      string  `yaml:"pctColor"`
	FontSize      int     `yaml:"fontSize"`
	LegendWidth   int     `yaml:"legendWidth"`
}

// Label describes an axis label or a title.
type Label struct {
	Position string `yaml:"position"` // "up", "down", "left" or "right"
	Rotate   int    `yaml:"rotate"`   // 0 or 90
	FontSize int    `yaml:"fontSize"`
	Color    string `yaml:"color"`
	Margin   int    `yaml:"margin"`
}

// Colorbar describes the strip added next to a subplot by a colour bar.
type Colorbar struct {
	Width int `yaml:"width"`
	Pad   int `yaml:"pad"`
}

// Default returns the built-in style.
func Default() *Style {
	return &Style{
		Figure: Figure{
			Width:        640,
			Height:       480,
			LeftMargin:   80,
			BottomMargin: 55,
			RightMargin:  64,
			TopMargin:    60,
			HSpacing:     0.2,
			VSpacing:     0.2,
			Background:   "lightgray",
		},
		Axes: Axes{
			Frame:          true,
			BarWidth:       0.8,
			DataAreaMargin: 0.05,
		},
		Frame: Frame{
			Color:                  "black",
			LabelColor:             "black",
			XTickPosition:          "down",
			YTickPosition:          "left",
			XTickLength:            5,
			YTickLength:            5,
			XTickLabelMargin:       2,
			YTickLabelMargin:       2,
			TickLabelStandardCount: 6,
			TickLabelWidth:         6,
			TickLabelHeight:        4,
			Padding:                1,
			XTickLabelFontSize:     4,
			YTickLabelFontSize:     4,
		},
		Legend: Legend{
			LineSpacing: 3,
			SwatchWidth: 20,
			Margin:      6,
			FontSize:    4,
			BorderColor: "gray",
			LabelColor:  "black",
		},
		Line:   Line{Width: 2, MarkerSize: 8},
		Marker: Marker{Size: 8, Shape: "dot"},
		Bar:    Bar{LegendWidth: 8},
		Wedge: Wedge{
			LabelDistance: 1.1,
			PctDistance:   0.6,
			LabelColor:    "black",
			PctColor:      "black",
			FontSize:      4,
			LegendWidth:   8,
		},
		XLabel:   Label{Position: "down", FontSize: 4, Color: "black", Margin: 30},
		YLabel:   Label{Position: "left", Rotate: 90, FontSize: 4, Color: "black", Margin: 56},
		Title:    Label{Position: "up", FontSize: 5, Color: "black", Margin: 6},
		Colorbar: Colorbar{Width: 20, Pad: 20},
	}
}

// Load reads a YAML style file and overlays it on the default style.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse overlays a YAML document on the default style and validates the
// result. An empty document gives the default style.
func Parse(data []byte) (*Style, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("style: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that all values are in range.
func (s *Style) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("style: "+format, args...))
		}
	}
	colour := func(key, value string) {
		if _, err := ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("style: %s: %w", key, err))
		}
	}

	f := s.Figure
	check(f.Width > 0 && f.Height > 0, "figure size %dx%d is not positive", f.Width, f.Height)
	check(f.HSpacing >= 0 && f.VSpacing >= 0, "negative subplot spacing")
	colour("figure.background", f.Background)

	check(s.Axes.DataAreaMargin >= 0 && s.Axes.DataAreaMargin < 0.5,
		"axes.dataAreaMargin %g not in [0, 0.5)", s.Axes.DataAreaMargin)
	check(s.Axes.BarWidth > 0, "axes.barWidth must be positive")

	fr := s.Frame
	check(fr.XTickPosition == "down" || fr.XTickPosition == "up",
		"frame.xTickPosition %q must be \"down\" or \"up\"", fr.XTickPosition)
	check(fr.YTickPosition == "left" || fr.YTickPosition == "right",
		"frame.yTickPosition %q must be \"left\" or \"right\"", fr.YTickPosition)
	check(isRightAngle(fr.XTickLabelAngle) && isRightAngle(fr.YTickLabelAngle),
		"tick label angles must be 0 or 90")
	check(fr.TickLabelStandardCount > 0 && fr.TickLabelWidth > 0 && fr.TickLabelHeight > 0,
		"tick label footprint must be positive")
	colour("frame.color", fr.Color)
	colour("frame.labelColor", fr.LabelColor)

	check(s.Legend.SwatchWidth > 0, "legend.swatchWidth must be positive")
	colour("legend.borderColor", s.Legend.BorderColor)
	colour("legend.labelColor", s.Legend.LabelColor)

	check(s.Line.Width > 0, "line.width must be positive")
	colour("wedge.labelColor", s.Wedge.LabelColor)
	colour("wedge.pctColor", s.Wedge.PctColor)

	for name, l := range map[string]Label{"xlabel": s.XLabel, "ylabel": s.YLabel, "title": s.Title} {
		switch l.Position {
		case "up", "down", "left", "right":
		default:
			check(false, "%s.position %q is invalid", name, l.Position)
		}
		check(isRightAngle(l.Rotate), "%s.rotate must be 0 or 90", name)
		colour(name+".color", l.Color)
	}

	check(s.Colorbar.Width > 0 && s.Colorbar.Pad >= 0, "invalid colour bar geometry")

	return errors.Join(errs...)
}

func isRightAngle(a int) bool {
	return a == 0 || a == 90
}

// shortColors are one-letter colour codes.
var shortColors = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// IsShortColor reports whether s is a one-letter colour code.
func IsShortColor(s string) bool {
	_, ok := shortColors[s]
	return ok
}

// ParseColor converts an SVG colour name (case-insensitive), a one-letter
// colour code or a "#rrggbb" hex string to a colour.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	if name, ok := shortColors[s]; ok {
		s = name
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}
