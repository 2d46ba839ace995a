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

import "seehuhn.de/go/geom/vec"

// Sample evaluates the curve with control points ctrl at count+1 parameter
// values spaced evenly over [tMin, tMax], both ends included.
// If count is zero, the single point at tMin is returned.
func Sample(ctrl []vec.Vec2, count int, method Method, tMin, tMax float64) []vec.Vec2 {
	return AppendSample(make([]vec.Vec2, 0, count+1), ctrl, count, method, tMin, tMax)
}

// AppendSample is like [Sample] but appends the points to dst, so that
// callers can reuse a buffer between calls.
func AppendSample(dst, ctrl []vec.Vec2, count int, method Method, tMin, tMax float64) []vec.Vec2 {
	checkDegree(ctrl)
	if count < 0 {
		panic("bezier: negative sample count")
	}

	if count == 0 {
		return append(dst, method.Eval(ctrl, tMin))
	}

	for i := 0; i <= count; i++ {
		t := tMin + float64(i)/float64(count)*(tMax-tMin)
		if i == count {
			t = tMax // avoid rounding drift at the end point
		}
		dst = append(dst, method.Eval(ctrl, t))
	}
	return dst
}
