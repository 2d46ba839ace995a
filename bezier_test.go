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
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier/testcases"
)

// TestMethodsAgree checks that both evaluation methods give the same
// polyline for every test curve.
func TestMethodsAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				par := Sample(tc.Points, tc.Count, Parametric, tc.TMin, tc.TMax)
				mat := Sample(tc.Points, tc.Count, Matrix, tc.TMin, tc.TMax)
				if len(par) != tc.Count+1 {
					t.Fatalf("got %d points, want %d", len(par), tc.Count+1)
				}
				diff(t, par, mat, cmpopts.EquateApprox(1e-9, 1e-8))
			})
		}
	}
}

func TestEndpointInterpolation(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			n := tc.Degree()
			for _, m := range []Method{Parametric, Matrix} {
				if got := m.Eval(tc.Points, 0); got != tc.Points[0] {
					t.Errorf("%s/%s, %s: B(0) = %v, want %v", category, tc.Name, m, got, tc.Points[0])
				}
				if got := m.Eval(tc.Points, 1); got != tc.Points[n] {
					t.Errorf("%s/%s, %s: B(1) = %v, want %v", category, tc.Name, m, got, tc.Points[n])
				}
			}
		}
	}
}

func TestLinearIsLerp(t *testing.T) {
	a := vec.Vec2{X: -3, Y: 2}
	b := vec.Vec2{X: 5, Y: -7}
	ctrl := []vec.Vec2{a, b}
	for _, tt := range []float64{-1, 0, 0.1, 0.25, 0.5, 0.9, 1, 2.5} {
		want := a.Add(b.Sub(a).Mul(tt))
		diff(t, want, EvalParametric(ctrl, tt), approx)
		diff(t, want, EvalMatrix(ctrl, tt), approx)
	}
}

func TestLabExample(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 3}}
	want := vec.Vec2{X: 1.25, Y: 1.75}

	if got := EvalParametric(ctrl, 0.5); got != want {
		t.Errorf("parametric: got %v, want %v", got, want)
	}
	if got := EvalMatrix(ctrl, 0.5); got != want {
		t.Errorf("matrix: got %v, want %v", got, want)
	}
}

func TestConstantCurve(t *testing.T) {
	p := vec.Vec2{X: 4, Y: -1}
	ctrl := []vec.Vec2{p}
	for _, tt := range []float64{-2, 0, 0.3, 1, 7} {
		if got := EvalParametric(ctrl, tt); got != p {
			t.Errorf("parametric at %g: got %v, want %v", tt, got, p)
		}
		if got := EvalMatrix(ctrl, tt); got != p {
			t.Errorf("matrix at %g: got %v, want %v", tt, got, p)
		}
	}
}

// TestPartitionOfUnity checks that the Bernstein weights sum to one,
// also outside the unit interval.
func TestPartitionOfUnity(t *testing.T) {
	for n := range 12 {
		for _, tt := range []float64{-0.5, 0, 0.2, 0.5, 0.77, 1, 1.5} {
			sum := 0.0
			for i := 0; i <= n; i++ {
				sum += Bernstein(n, i, tt)
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("n=%d, t=%g: weights sum to %g", n, tt, sum)
			}
		}
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
		{10, 3, 120},
		{20, 10, 184756},
		{50, 25, 126410606437752},
	}
	for _, c := range cases {
		if got := Binomial(c.n, c.k); got != c.want {
			t.Errorf("C(%d,%d) = %g, want %g", c.n, c.k, got, c.want)
		}
	}

	// Pascal's rule
	for n := 1; n < 30; n++ {
		for k := 1; k < n; k++ {
			if Binomial(n, k) != Binomial(n-1, k-1)+Binomial(n-1, k) {
				t.Fatalf("Pascal's rule fails for C(%d,%d)", n, k)
			}
		}
	}
}

func TestSample(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 3}}
	for _, m := range []Method{Parametric, Matrix} {
		got := Sample(ctrl, 10, m, 0, 1)
		if len(got) != 11 {
			t.Fatalf("%s: got %d points, want 11", m, len(got))
		}
		if got[0] != ctrl[0] {
			t.Errorf("%s: first point %v, want %v", m, got[0], ctrl[0])
		}
		if got[10] != ctrl[2] {
			t.Errorf("%s: last point %v, want %v", m, got[10], ctrl[2])
		}
	}

	// a single step at the start of the range
	got := Sample(ctrl, 0, Parametric, 0.5, 0.9)
	diff(t, []vec.Vec2{{X: 1.25, Y: 1.75}}, got)

	// AppendSample keeps what is already in the buffer
	buf := []vec.Vec2{{X: 99, Y: 99}}
	buf = AppendSample(buf, ctrl, 2, Parametric, 0, 1)
	diff(t, []vec.Vec2{{X: 99, Y: 99}, {X: 0, Y: 0}, {X: 1.25, Y: 1.75}, {X: 3, Y: 3}}, buf)
}

func TestSampleExtrapolates(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 4}}
	got := Sample(ctrl, 2, Parametric, -1, 2)
	want := []vec.Vec2{{X: -2, Y: -4}, {X: 1, Y: 2}, {X: 4, Y: 8}}
	diff(t, want, got, approx)
}

func TestPreconditions(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}
	cases := map[string]func(){
		"parametric_empty": func() { EvalParametric(nil, 0.5) },
		"matrix_empty":     func() { EvalMatrix(nil, 0.5) },
		"sample_empty":     func() { Sample(nil, 4, Parametric, 0, 1) },
		"sample_negative":  func() { Sample(ctrl, -1, Parametric, 0, 1) },
		"basis_negative":   func() { NewBasis(-1) },
	}
	for _, name := range slices.Sorted(maps.Keys(cases)) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			cases[name]()
		})
	}
}

func BenchmarkEval(b *testing.B) {
	for _, category := range []string{"cubic", "high"} {
		tc := testcases.All[category][0]
		for _, m := range []Method{Parametric, Matrix} {
			b.Run(category+"_"+tc.Name+"_"+m.String(), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					for i := range 101 {
						m.Eval(tc.Points, float64(i)/100)
					}
				}
			})
		}
	}
}
