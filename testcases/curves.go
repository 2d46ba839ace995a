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

var linearCases = []TestCase{
	{
		Name:   "horizontal",
		Points: pts(10, 32, 54, 32),
		TMax:   1,
		Count:  10,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal",
		Points: pts(8, 56, 56, 8),
		TMax:   1,
		Count:  16,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "unit",
		Points: pts(0, 0, 1, 1),
		TMax:   1,
		Count:  4,
		Width:  4,
		Height: 4,
	},
}

var quadraticCases = []TestCase{
	{
		Name:   "lab_example",
		Points: pts(0, 0, 1, 2, 3, 3),
		TMax:   1,
		Count:  10,
		Width:  8,
		Height: 8,
	},
	{
		Name:   "shallow",
		Points: pts(10, 32, 32, 28, 54, 32), // control point near chord
		TMax:   1,
		Count:  20,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "deep",
		Points: pts(10, 50, 32, 5, 54, 50), // control point far from chord
		TMax:   1,
		Count:  20,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "below",
		Points: pts(10, 20, 32, 55, 54, 20), // curves down
		TMax:   1,
		Count:  20,
		Width:  64,
		Height: 64,
	},
}

var cubicCases = []TestCase{
	{
		Name:   "arch",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		TMax:   1,
		Count:  32,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scurve",
		Points: pts(10, 50, 10, 10, 54, 54, 54, 14), // inflection point
		TMax:   1,
		Count:  32,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop",
		Points: pts(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting
		TMax:   1,
		Count:  64,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cusp",
		Points: pts(10, 50, 54, 10, 10, 10, 54, 50), // control points crossed
		TMax:   1,
		Count:  64,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "nearly_straight",
		Points: pts(10, 32, 24, 31, 40, 31, 54, 32),
		TMax:   1,
		Count:  8,
		Width:  64,
		Height: 64,
	},
}

var highCases = []TestCase{
	{
		Name:   "quartic",
		Points: pts(4, 60, 12, 4, 32, 60, 52, 4, 60, 60),
		TMax:   1,
		Count:  50,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "degree_7_zigzag",
		Points: pts(4, 32, 12, 4, 20, 60, 28, 4, 36, 60, 44, 4, 52, 60, 60, 32),
		TMax:   1,
		Count:  100,
		Width:  64,
		Height: 64,
	},
	{
		Name: "degree_10_spiral",
		Points: pts(
			32, 32, 40, 32, 40, 40, 24, 40, 24, 24,
			48, 24, 48, 48, 16, 48, 16, 16, 56, 16,
			56, 56,
		),
		TMax:   1,
		Count:  100,
		Width:  64,
		Height: 64,
	},
}

// extrapolateCases use parameter ranges reaching outside [0, 1].
var extrapolateCases = []TestCase{
	{
		Name:   "quadratic_wide",
		Points: pts(24, 40, 32, 24, 40, 40),
		TMin:   -0.5,
		TMax:   1.5,
		Count:  40,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_head",
		Points: pts(16, 48, 24, 16, 40, 16, 48, 48),
		TMin:   -0.25,
		TMax:   0.5,
		Count:  30,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "linear_tail",
		Points: pts(16, 16, 32, 32),
		TMin:   0.5,
		TMax:   2,
		Count:  6,
		Width:  64,
		Height: 64,
	},
}

var degenerateCases = []TestCase{
	{
		Name:   "single_point",
		Points: pts(32, 32),
		TMax:   1,
		Count:  4,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "coincident",
		Points: pts(20, 20, 20, 20, 20, 20, 20, 20),
		TMax:   1,
		Count:  4,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "collinear",
		Points: pts(10, 10, 20, 20, 30, 30, 40, 40, 50, 50),
		TMax:   1,
		Count:  10,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty_range",
		Points: pts(10, 32, 32, 10, 54, 32),
		TMin:   0.5,
		TMax:   0.5,
		Count:  0,
		Width:  64,
		Height: 64,
	},
}
