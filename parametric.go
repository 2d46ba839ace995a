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

package bezier

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Binomial returns the binomial coefficient C(n, k).
// The result is 0 if k < 0 or k > n.
//
// The value is built up by the multiplicative formula, so it is exact as
// long as C(n, k) is below 2⁵³, well beyond the point where n! overflows.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}
	return math.Round(res)
}

// Bernstein returns the value of the Bernstein basis polynomial
// C(n,i) tⁱ (1-t)ⁿ⁻ⁱ.
func Bernstein(n, i int, t float64) float64 {
	return Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// EvalParametric evaluates the Bézier curve with control points ctrl at
// parameter t by summing the Bernstein-weighted control points.
// A single control point gives a constant curve.
func EvalParametric(ctrl []vec.Vec2, t float64) vec.Vec2 {
	n := checkDegree(ctrl)

	var res vec.Vec2
	for i, p := range ctrl {
		b := Bernstein(n, i, t)
		res.X += p.X * b
		res.Y += p.Y * b
	}
	return res
}
