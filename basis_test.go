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
	"sync"
	"testing"
)

func TestBasisKnownMatrices(t *testing.T) {
	cases := []struct {
		n    int
		want [][]float64
	}{
		{0, [][]float64{{1}}},
		{1, [][]float64{
			{-1, 1},
			{1, 0},
		}},
		{2, [][]float64{
			{1, -2, 1},
			{-2, 2, 0},
			{1, 0, 0},
		}},
		{3, [][]float64{
			{-1, 3, -3, 1},
			{3, -6, 3, 0},
			{-3, 3, 0, 0},
			{1, 0, 0, 0},
		}},
	}
	for _, c := range cases {
		b := NewBasis(c.n)
		if b.Degree() != c.n {
			t.Errorf("degree %d: Degree() = %d", c.n, b.Degree())
		}
		diff(t, c.want, b.Rows())
	}
}

// TestBasisStructure checks properties that hold for every degree: the
// matrix is symmetric, zero below the anti-diagonal, and its rows sum to
// zero except for the last one.
func TestBasisStructure(t *testing.T) {
	for n := range 15 {
		b := NewBasis(n)
		for row := 0; row <= n; row++ {
			sum := 0.0
			for col := 0; col <= n; col++ {
				v := b.At(row, col)
				sum += v
				if v != b.At(col, row) {
					t.Errorf("n=%d: M[%d][%d]=%g but M[%d][%d]=%g",
						n, row, col, v, col, row, b.At(col, row))
				}
				if row+col > n && v != 0 {
					t.Errorf("n=%d: M[%d][%d]=%g, want 0", n, row, col, v)
				}
			}
			want := 0.0
			if row == n {
				want = 1
			}
			if sum != want {
				t.Errorf("n=%d: row %d sums to %g, want %g", n, row, sum, want)
			}
		}
	}
}

func TestBasisCoefficientsAreBernstein(t *testing.T) {
	for n := range 8 {
		b := NewBasis(n)
		for _, tt := range []float64{0, 0.1, 0.5, 0.8, 1, 1.3} {
			coef := b.Coefficients(tt, nil)
			if len(coef) != n+1 {
				t.Fatalf("n=%d: got %d coefficients", n, len(coef))
			}
			want := make([]float64, n+1)
			for i := range want {
				want[i] = Bernstein(n, i, tt)
			}
			diff(t, want, coef, approx)
		}
	}
}

func TestParamVector(t *testing.T) {
	diff(t, []float64{8, 4, 2, 1}, ParamVector(3, 2, nil))
	diff(t, []float64{1}, ParamVector(0, 0.5, nil))
	diff(t, []float64{7, 0.125, 0.25, 0.5, 1}, ParamVector(3, 0.5, []float64{7}))
}

func TestBasisString(t *testing.T) {
	got := NewBasis(2).String()
	want := "1.00\t-2.00\t1.00\n-2.00\t2.00\t0.00\n1.00\t0.00\t0.00"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBasisForIsShared(t *testing.T) {
	const degrees = 6

	var wg sync.WaitGroup
	results := make([][]*Basis, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range degrees {
				results[g] = append(results[g], BasisFor(n))
			}
		}()
	}
	wg.Wait()

	for n := range degrees {
		first := results[0][n]
		for g := range results {
			if results[g][n] != first {
				t.Fatalf("degree %d: goroutine %d got a different matrix", n, g)
			}
		}
		diff(t, NewBasis(n).Rows(), first.Rows())
	}
}
