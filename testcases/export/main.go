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

// Command export writes all test cases, together with reference samples
// of the curves, to testdata/testcases.json.  The file allows other
// implementations of the evaluator to be checked against this one.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string      `json:"name"`
	Degree  int         `json:"degree"`
	Points  [][]float64 `json:"points"`
	TMin    float64     `json:"t_min"`
	TMax    float64     `json:"t_max"`
	Count   int         `json:"count"`
	Basis   [][]float64 `json:"basis"`
	Samples [][]float64 `json:"samples"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	samples := bezier.Sample(tc.Points, tc.Count, bezier.Parametric, tc.TMin, tc.TMax)
	return jsonTestCase{
		Name:    category + "_" + tc.Name,
		Degree:  tc.Degree(),
		Points:  pointsToJSON(tc.Points),
		TMin:    tc.TMin,
		TMax:    tc.TMax,
		Count:   tc.Count,
		Basis:   bezier.BasisFor(tc.Degree()).Rows(),
		Samples: pointsToJSON(samples),
	}
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
