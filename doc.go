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

// Package chart lays out two-dimensional charts.
//
// A Figure holds a grid of Axes. Each Axes collects artists (lines, bars,
// markers, pie wedges, images and colour strips) and draws them in one
// pass: the data extent is fitted into the plot rectangle, tick marks are
// chosen for both axes, the artists are converted to pixel primitives and
// a legend is put into the region of the plot which the fewest shapes
// overlap.
//
// All drawing goes through the Renderer interface. The raster and
// pdfcanvas subpackages provide implementations.
package chart

//go:generate go run ./examples/export
