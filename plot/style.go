// seehuhn.de/go/bezier - Bézier curve evaluation and plotting
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

package plot

import "image/color"

// Style holds colours and sizes for drawing a scene.  Sizes are in device
// pixels.
type Style struct {
	Background color.RGBA
	Grid       color.RGBA
	Axis       color.RGBA
	Label      color.RGBA
	Point      color.RGBA

	GridWidth    float64
	AxisWidth    float64
	PolygonWidth float64 // control polygon
	CurveWidth   float64
	PointRadius  float64
	ArrowSize    float64
}

// DefaultStyle returns a white background with a light grey grid, black
// axes and red control points.
func DefaultStyle() Style {
	return Style{
		Background: mustParseColor("white"),
		Grid:       mustParseColor("#e0e0e0"),
		Axis:       mustParseColor("black"),
		Label:      mustParseColor("black"),
		Point:      mustParseColor("red"),

		GridWidth:    1,
		AxisWidth:    2,
		PolygonWidth: 1,
		CurveWidth:   2,
		PointRadius:  5,
		ArrowSize:    15,
	}
}
