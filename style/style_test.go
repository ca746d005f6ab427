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

package style

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Error("empty document does not give the default style")
	}
}

func TestParseOverlay(t *testing.T) {
	doc := `
figure:
  width: 800
line:
  width: 3
frame:
  yTickPosition: right
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Figure.Width != 800 || s.Line.Width != 3 || s.Frame.YTickPosition != "right" {
		t.Errorf("overlay not applied: %+v", s)
	}
	def := Default()
	if s.Figure.Height != def.Figure.Height || s.Line.MarkerSize != def.Line.MarkerSize {
		t.Error("keys missing from the document lost their default")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"unknown key", "figure:\n  depth: 3\n", "depth"},
		{"bad tick position", "frame:\n  xTickPosition: left\n", "xTickPosition"},
		{"bad colour", "figure:\n  background: nocolor\n", "figure.background"},
		{"bad angle", "title:\n  rotate: 45\n", "title.rotate"},
		{"bad margin", "axes:\n  dataAreaMargin: 0.5\n", "dataAreaMargin"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(name, []byte("legend:\n  fontSize: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if s.Legend.FontSize != 5 {
		t.Errorf("font size %d, want 5", s.Legend.FontSize)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded without error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"k", color.RGBA{0, 0, 0, 255}},
		{"m", color.RGBA{255, 0, 255, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gg0000", "rd"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}
