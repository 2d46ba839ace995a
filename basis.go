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
	"strconv"
	"strings"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Basis is the coefficient matrix of the power-basis form of a Bézier
// curve of a given degree n.  Row j, column n-i holds
//
//	(-1)^(i-j) C(n,i) C(i,j)   for 0 ≤ j ≤ i ≤ n,
//
// all other entries are zero.  Multiplying the row vector [tⁿ, ..., t, 1]
// by the matrix gives the Bernstein weights of the n+1 control points.
//
// A Basis is immutable and may be shared between goroutines.
type Basis struct {
	n int
	m []float64 // row-major, (n+1)×(n+1)
}

// NewBasis computes the basis matrix for curves of degree n.
// It panics if n is negative.
func NewBasis(n int) *Basis {
	if n < 0 {
		panic("bezier: negative degree")
	}
	size := n + 1
	b := &Basis{
		n: n,
		m: make([]float64, size*size),
	}
	for i := 0; i <= n; i++ {
		cni := Binomial(n, i)
		for j := 0; j <= i; j++ {
			c := cni * Binomial(i, j)
			if (i-j)%2 == 1 {
				c = -c
			}
			b.m[j*size+n-i] = c
		}
	}
	return b
}

var basisCache struct {
	sync.Mutex
	byDegree map[int]*Basis
}

// BasisFor returns the basis matrix for degree n.  Matrices are computed
// once per degree and then shared.
func BasisFor(n int) *Basis {
	basisCache.Lock()
	defer basisCache.Unlock()

	if b, ok := basisCache.byDegree[n]; ok {
		return b
	}
	b := NewBasis(n)
	if basisCache.byDegree == nil {
		basisCache.byDegree = make(map[int]*Basis)
	}
	basisCache.byDegree[n] = b
	return b
}

// Degree returns the curve degree n the matrix belongs to.
// The matrix has n+1 rows and columns.
func (b *Basis) Degree() int {
	return b.n
}

// At returns the matrix entry in the given row and column.
func (b *Basis) At(row, col int) float64 {
	return b.m[row*(b.n+1)+col]
}

// Rows returns a copy of the matrix as a slice of rows.
func (b *Basis) Rows() [][]float64 {
	size := b.n + 1
	rows := make([][]float64, size)
	for j := range rows {
		rows[j] = append([]float64(nil), b.m[j*size:(j+1)*size]...)
	}
	return rows
}

// Coefficients computes the product T×M for the parameter vector
// T = [tⁿ, ..., t, 1] and appends the n+1 resulting weights to dst.
func (b *Basis) Coefficients(t float64, dst []float64) []float64 {
	size := b.n + 1
	start := len(dst)
	for range size {
		dst = append(dst, 0)
	}
	res := dst[start:]

	// walk the rows from the bottom, where the power of t is zero
	pw := 1.0
	for i := b.n; i >= 0; i-- {
		row := b.m[i*size : (i+1)*size]
		for j, mij := range row {
			if mij != 0 {
				res[j] += pw * mij
			}
		}
		pw *= t
	}
	return dst
}

// String formats the matrix with one row per line, tab-separated entries
// and two decimal places.
func (b *Basis) String() string {
	size := b.n + 1
	var sb strings.Builder
	for j := range size {
		if j > 0 {
			sb.WriteByte('\n')
		}
		for i := range size {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(b.m[j*size+i], 'f', 2, 64))
		}
	}
	return sb.String()
}

// ParamVector appends the parameter vector [tⁿ, tⁿ⁻¹, ..., t, 1] to dst.
func ParamVector(n int, t float64, dst []float64) []float64 {
	start := len(dst)
	for range n + 1 {
		dst = append(dst, 0)
	}
	res := dst[start:]
	pw := 1.0
	for i := n; i >= 0; i-- {
		res[i] = pw
		pw *= t
	}
	return dst
}

// EvalMatrix evaluates the Bézier curve with control points ctrl at
// parameter t using the basis-matrix form.  The result agrees with
// [EvalParametric] up to rounding.
func EvalMatrix(ctrl []vec.Vec2, t float64) vec.Vec2 {
	n := checkDegree(ctrl)

	var buf [8]float64
	coef := BasisFor(n).Coefficients(t, buf[:0])

	var res vec.Vec2
	for i, p := range ctrl {
		res.X += coef[i] * p.X
		res.Y += coef[i] * p.Y
	}
	return res
}
