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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Default sampling parameters for new curves.
const (
	DefaultTMin  = 0.0
	DefaultTMax  = 1.0
	DefaultTStep = 0.01

	DefaultPolylineColor = "gray"
	DefaultCurveColor    = "blue"
)

// stepGuard absorbs representation error when dividing the parameter range
// by the step, so that e.g. a range of 0.3 with step 0.1 gives 3 steps.
const stepGuard = 1e-9

// MaxSamples is the largest number of parameter steps a valid curve may use.
const MaxSamples = 1 << 20

// Curve is a Bézier curve together with the parameters used to draw it.
// The sampled polyline is computed on demand and never cached, so a
// Curve may be changed freely between calls.
type Curve struct {
	// Points are the control points. Index 0 is the start of the curve,
	// the last point is its end.
	Points []vec.Vec2

	// TMin and TMax give the parameter range to draw.
	// Values outside [0, 1] extrapolate the curve.
	TMin, TMax float64

	// TStep is the parameter distance between samples, in (0, 1].
	TStep float64

	// Method selects the evaluation method.
	Method Method

	// PolylineColor and CurveColor name the colours of the control
	// polygon and of the curve, as understood by the plot package.
	PolylineColor string
	CurveColor    string
}

// NewCurve returns a curve through the given control points, with default
// drawing parameters.
func NewCurve(points ...vec.Vec2) *Curve {
	return &Curve{
		Points:        slices.Clone(points),
		TMin:          DefaultTMin,
		TMax:          DefaultTMax,
		TStep:         DefaultTStep,
		Method:        Parametric,
		PolylineColor: DefaultPolylineColor,
		CurveColor:    DefaultCurveColor,
	}
}

// Clone returns a deep copy of c.
func (c *Curve) Clone() *Curve {
	res := *c
	res.Points = slices.Clone(c.Points)
	return &res
}

// Validate checks that the curve can be sampled.
func (c *Curve) Validate() error {
	if len(c.Points) < 2 {
		return fmt.Errorf("%d control points: %w", len(c.Points), ErrTooFewPoints)
	}
	if math.IsNaN(c.TMin) || math.IsInf(c.TMin, 0) || math.IsNaN(c.TMax) || math.IsInf(c.TMax, 0) {
		return fmt.Errorf("range [%g, %g]: %w", c.TMin, c.TMax, ErrRange)
	}
	if c.TMax < c.TMin {
		return fmt.Errorf("range [%g, %g]: %w", c.TMin, c.TMax, ErrInvertedRange)
	}
	if !(c.TStep > 0 && c.TStep <= 1) {
		return fmt.Errorf("step %g: %w", c.TStep, ErrStep)
	}
	if n := (c.TMax - c.TMin) / c.TStep; !(n <= MaxSamples) {
		return fmt.Errorf("range [%g, %g] with step %g: %w",
			c.TMin, c.TMax, c.TStep, ErrTooManySamples)
	}
	if c.Method != Parametric && c.Method != Matrix {
		return fmt.Errorf("method %d: %w", int(c.Method), ErrUnknownMethod)
	}
	return nil
}

// Degree returns the polynomial degree of the curve, one less than the
// number of control points.
func (c *Curve) Degree() int {
	return len(c.Points) - 1
}

// NumSamples returns the number of parameter steps used to draw the curve.
// The polyline has one more point than this.  Curves which fail
// [Curve.Validate] because of their range or step give 0.
func (c *Curve) NumSamples() int {
	if c.TStep <= 0 || !(c.TMax > c.TMin) {
		return 0
	}
	n := math.Floor((c.TMax-c.TMin)/c.TStep + stepGuard)
	if !(n <= MaxSamples) {
		return 0
	}
	return int(n)
}

// Eval returns the curve point at parameter t, using the curve's method.
func (c *Curve) Eval(t float64) vec.Vec2 {
	return c.Method.Eval(c.Points, t)
}

// Samples returns the points of the curve polyline.
func (c *Curve) Samples() ([]vec.Vec2, error) {
	return c.AppendSamples(nil)
}

// AppendSamples appends the points of the curve polyline to dst.
func (c *Curve) AppendSamples(dst []vec.Vec2) ([]vec.Vec2, error) {
	if err := c.Validate(); err != nil {
		return dst, err
	}
	return AppendSample(dst, c.Points, c.NumSamples(), c.Method, c.TMin, c.TMax), nil
}

// Polyline returns the sampled curve as an open path of line segments.
func (c *Curve) Polyline() (*path.Data, error) {
	pts, err := c.Samples()
	if err != nil {
		return nil, err
	}
	return polyline(pts), nil
}

// ControlPolygon returns the open path connecting the control points
// in order.  The result is empty if there are no control points.
func (c *Curve) ControlPolygon() *path.Data {
	return polyline(c.Points)
}

func polyline(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}
