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

// Package bezier evaluates Bézier curves of arbitrary degree.
//
// A curve of degree n is given by n+1 control points P_0, ..., P_n.  Two
// evaluation methods are provided, and they compute the same point:
//
//   - [EvalParametric] sums the control points weighted by the Bernstein
//     polynomials C(n,i) tⁱ (1-t)ⁿ⁻ⁱ.
//   - [EvalMatrix] forms the row vector T = [tⁿ, ..., t, 1], multiplies it
//     by the basis matrix M of degree n (see [NewBasis]) and uses the
//     resulting coefficients as weights.
//
// [Sample] evaluates a curve at evenly spaced parameter values, for drawing
// the curve as a polyline.  [Curve] bundles control points with the sampling
// parameters used by the plotting and export packages.
//
// The evaluation functions treat an empty control point slice as a
// programming error and panic.  Parameter values outside [0, 1] are
// allowed and extrapolate the curve.
package bezier

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Method selects how a curve point is computed.
type Method int

const (
	// Parametric evaluates the Bernstein form directly.
	Parametric Method = iota

	// Matrix evaluates the basis-matrix form T×M×P.
	Matrix
)

func (m Method) String() string {
	switch m {
	case Parametric:
		return "parametric"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Eval evaluates the curve with control points ctrl at parameter t,
// using method m.
func (m Method) Eval(ctrl []vec.Vec2, t float64) vec.Vec2 {
	if m == Matrix {
		return EvalMatrix(ctrl, t)
	}
	return EvalParametric(ctrl, t)
}

// ParseMethod converts the textual name of a method to a Method.
// The empty string selects Parametric.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "parametric", "":
		return Parametric, nil
	case "matrix":
		return Matrix, nil
	}
	return Parametric, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	if m != Parametric && m != Matrix {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// checkDegree panics if ctrl cannot define a curve.
func checkDegree(ctrl []vec.Vec2) int {
	if len(ctrl) == 0 {
		panic("bezier: no control points")
	}
	return len(ctrl) - 1
}
