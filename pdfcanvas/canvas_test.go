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

package pdfcanvas

import (
	"bytes"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart/examples"
)

func TestPDFColor(t *testing.T) {
	tests := []struct {
		in   stdcolor.Color
		want color.DeviceRGB
	}{
		{stdcolor.RGBA{R: 255, A: 255}, color.DeviceRGB{1, 0, 0}},
		{stdcolor.RGBA{G: 255, B: 255, A: 255}, color.DeviceRGB{0, 1, 1}},
		{stdcolor.RGBA{R: 128, A: 128}, color.DeviceRGB{1, 0, 0}}, // premultiplied
		{stdcolor.RGBA{}, color.DeviceRGB{0, 0, 0}},
	}
	for _, tc := range tests {
		got, ok := pdfColor(tc.in).(color.DeviceRGB)
		if !ok {
			t.Errorf("%v: got %T, want color.DeviceRGB", tc.in, pdfColor(tc.in))
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWriteExamples(t *testing.T) {
	dir := t.TempDir()
	for group, cases := range examples.All {
		for _, ex := range cases {
			t.Run(group+"/"+ex.Name, func(t *testing.T) {
				fig, err := ex.Figure(nil)
				if err != nil {
					t.Fatal(err)
				}
				w, h := fig.Size()

				name := filepath.Join(dir, group+"-"+ex.Name+".pdf")
				c, err := Create(name, w, h)
				if err != nil {
					t.Fatal(err)
				}
				if gw, gh := c.Size(); gw != w || gh != h {
					t.Errorf("page size %dx%d, want %dx%d", gw, gh, w, h)
				}
				if _, err := fig.Draw(c); err != nil {
					t.Fatal(err)
				}
				if err := c.Close(); err != nil {
					t.Fatal(err)
				}

				data, err := os.ReadFile(name)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.HasPrefix(data, []byte("%PDF-")) {
					t.Error("output is not a PDF file")
				}
			})
		}
	}
}
