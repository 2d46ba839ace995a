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

package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines a single curve used by the evaluator tests and the
// reference generators.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // control points, in order
	TMin   float64    // start of the parameter range
	TMax   float64    // end of the parameter range
	Count  int        // number of parameter steps; the polyline has Count+1 points
	Width  int        // canvas width in pixels, for rendering
	Height int        // canvas height in pixels, for rendering
}

// Degree returns the polynomial degree of the test curve.
func (tc TestCase) Degree() int {
	return len(tc.Points) - 1
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// pts builds a control point list from alternating x, y coordinates.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}
