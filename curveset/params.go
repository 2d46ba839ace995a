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

package curveset

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/plot"
)

// Params are the drawing parameters of a curve.
type Params struct {
	TMin, TMax    float64
	TStep         float64
	Method        bezier.Method
	PolylineColor string
	CurveColor    string
}

// DefaultParams returns the parameters of a curve made by
// [bezier.NewCurve].
func DefaultParams() Params {
	return ParamsOf(bezier.NewCurve())
}

// ParamsOf returns the parameters of c.
func ParamsOf(c *bezier.Curve) Params {
	return Params{
		TMin:          c.TMin,
		TMax:          c.TMax,
		TStep:         c.TStep,
		Method:        c.Method,
		PolylineColor: c.PolylineColor,
		CurveColor:    c.CurveColor,
	}
}

// Validate checks the parameter range, the step, the method and both
// colours.
func (p Params) Validate() error {
	c := &bezier.Curve{Points: make([]vec.Vec2, 2)}
	p.apply(c)
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := plot.ParseColor(p.PolylineColor); err != nil {
		return fmt.Errorf("polyline: %w", err)
	}
	if _, err := plot.ParseColor(p.CurveColor); err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	return nil
}

func (p Params) apply(c *bezier.Curve) {
	c.TMin = p.TMin
	c.TMax = p.TMax
	c.TStep = p.TStep
	c.Method = p.Method
	c.PolylineColor = p.PolylineColor
	c.CurveColor = p.CurveColor
}
