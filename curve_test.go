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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestNewCurveDefaults(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 3}}
	c := NewCurve(pts...)
	pts[0].X = 100 // the curve owns its points

	if c.Points[0].X != 0 {
		t.Error("NewCurve did not copy the control points")
	}
	if c.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", c.Degree())
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.NumSamples() != 100 {
		t.Errorf("NumSamples() = %d, want 100", c.NumSamples())
	}

	samples, err := c.Samples()
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 101 {
		t.Fatalf("got %d samples, want 101", len(samples))
	}
	if samples[0] != c.Points[0] || samples[100] != c.Points[2] {
		t.Errorf("polyline runs from %v to %v", samples[0], samples[100])
	}
}

func TestCurveValidate(t *testing.T) {
	good := func() *Curve {
		return NewCurve(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1})
	}

	cases := []struct {
		name   string
		modify func(c *Curve)
		want   error
	}{
		{"ok", func(c *Curve) {}, nil},
		{"one_point", func(c *Curve) { c.Points = c.Points[:1] }, ErrTooFewPoints},
		{"inverted", func(c *Curve) { c.TMin, c.TMax = 1, 0 }, ErrInvertedRange},
		{"zero_step", func(c *Curve) { c.TStep = 0 }, ErrStep},
		{"big_step", func(c *Curve) { c.TStep = 1.5 }, ErrStep},
		{"method", func(c *Curve) { c.Method = 7 }, ErrUnknownMethod},
		{"empty_range", func(c *Curve) { c.TMin, c.TMax = 0.5, 0.5 }, nil},
		{"inf_max", func(c *Curve) { c.TMax = math.Inf(1) }, ErrRange},
		{"inf_min", func(c *Curve) { c.TMin = math.Inf(-1) }, ErrRange},
		{"nan_min", func(c *Curve) { c.TMin = math.NaN() }, ErrRange},
		{"nan_max", func(c *Curve) { c.TMax = math.NaN() }, ErrRange},
		{"nan_step", func(c *Curve) { c.TStep = math.NaN() }, ErrStep},
		{"wide_range", func(c *Curve) { c.TMin, c.TMax, c.TStep = -1e10, 1e10, 1e-9 }, ErrTooManySamples},
		{"huge_range", func(c *Curve) { c.TMax, c.TStep = 1e300, 0.5 }, ErrTooManySamples},
		{"overflow", func(c *Curve) { c.TMin, c.TMax = -1e308, 1e308 }, ErrTooManySamples},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := good()
			tc.modify(c)
			err := c.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if _, err := c.Samples(); !errors.Is(err, tc.want) {
				t.Errorf("Samples: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNumSamples(t *testing.T) {
	cases := []struct {
		tMin, tMax, step float64
		want             int
	}{
		{0, 1, 0.01, 100},
		{0, 1, 0.1, 10},
		{0, 0.3, 0.1, 3},
		{0, 1, 0.3, 3},
		{-0.5, 1.5, 0.25, 8},
		{0.5, 0.5, 0.1, 0},
		{0, MaxSamples / 1024, 1.0 / 1024, MaxSamples},
		{0, 1e300, 0.5, 0},
		{0, math.Inf(1), 0.01, 0},
		{math.NaN(), 1, 0.01, 0},
	}
	for _, c := range cases {
		curve := &Curve{TMin: c.tMin, TMax: c.tMax, TStep: c.step}
		if got := curve.NumSamples(); got != c.want {
			t.Errorf("[%g, %g] step %g: got %d, want %d", c.tMin, c.tMax, c.step, got, c.want)
		}
	}
}

func TestCurveMethodsAgree(t *testing.T) {
	c := NewCurve(
		vec.Vec2{X: 10, Y: 50}, vec.Vec2{X: 20, Y: 10},
		vec.Vec2{X: 44, Y: 10}, vec.Vec2{X: 54, Y: 50},
	)
	c.TStep = 0.05

	par, err := c.Samples()
	if err != nil {
		t.Fatal(err)
	}
	m := c.Clone()
	m.Method = Matrix
	mat, err := m.Samples()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, par, mat, approx)
}

func TestPolyline(t *testing.T) {
	c := NewCurve(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0})
	c.TStep = 0.25

	p, err := c.Polyline()
	if err != nil {
		t.Fatal(err)
	}
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo}
	diff(t, wantCmds, p.Cmds)
	diff(t, []vec.Vec2{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}, p.Coords, approx)

	poly := c.ControlPolygon()
	diff(t, []path.Command{path.CmdMoveTo, path.CmdLineTo}, poly.Cmds)

	c.Points = nil
	if _, err := c.Polyline(); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got %v, want %v", err, ErrTooFewPoints)
	}
}

func TestMethodText(t *testing.T) {
	for _, m := range []Method{Parametric, Matrix} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Method
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != m {
			t.Errorf("%s came back as %s", m, back)
		}
	}

	if _, err := ParseMethod("horner"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("got %v, want %v", err, ErrUnknownMethod)
	}
	if m, err := ParseMethod(""); err != nil || m != Parametric {
		t.Errorf("empty name: got %s, %v", m, err)
	}
	if _, err := Method(5).MarshalText(); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("got %v, want %v", err, ErrUnknownMethod)
	}
}
