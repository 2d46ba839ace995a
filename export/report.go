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

// Package export writes curve collections to files: a plain text report
// with basis matrices and sample evaluations, and a PDF drawing.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/curveset"
)

// ErrNoCurves is returned when there is nothing to export.
var ErrNoCurves = errors.New("no curves to export")

// ReportT is the parameter value evaluated in the report for curves using
// the matrix method.
const ReportT = 0.5

const separator = "=========================="

// ReportName returns the file name for a report written at time t.
func ReportName(t time.Time) string {
	return t.Format("bezier_curves_2006-01-02_15-04.txt")
}

// WriteReport writes the text report for the given curves to w.  For
// every curve, the report lists the basis matrix, the control points and
// the drawing parameters.  Curves using the matrix method also show the
// intermediate values of an evaluation at [ReportT].  The report ends
// with all curves in JSON form.
func WriteReport(w io.Writer, curves []*bezier.Curve) error {
	if len(curves) == 0 {
		return ErrNoCurves
	}
	for i, c := range curves {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("curve %d: %w", i+1, err)
		}
	}

	sb := &strings.Builder{}
	sb.WriteString("BEZIER CURVES DATA EXPORT\n")
	sb.WriteString(separator + "\n\n")

	for i, c := range curves {
		idx := i + 1
		n := c.Degree()
		fmt.Fprintf(sb, "=== Bezier Coefficient Matrix (n=%d) for Curve #%d ===\n", n, idx)
		sb.WriteString(bezier.BasisFor(n).String())
		sb.WriteString("\n\n")

		fmt.Fprintf(sb, "Curve #%d Control Points:\n", idx)
		for j, p := range c.Points {
			fmt.Fprintf(sb, "Point %d: (%.2f, %.2f)\n", j+1, p.X, p.Y)
		}
		sb.WriteString("\n")

		if c.Method == bezier.Matrix {
			writeEvaluation(sb, c)
		}

		sb.WriteString("Parameters:\n")
		fmt.Fprintf(sb, "tMin: %v, tMax: %v, tStep: %v, method: %v\n", c.TMin, c.TMax, c.TStep, c.Method)
		fmt.Fprintf(sb, "Colors: Polyline=%s, Curve=%s\n", c.PolylineColor, c.CurveColor)
		sb.WriteString(separator + "\n\n")
	}

	sb.WriteString("JSON DATA:\n")
	if err := curveset.Encode(sb, curveset.JSON, curves); err != nil {
		return err
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeEvaluation shows the steps of the matrix evaluation at ReportT.
func writeEvaluation(sb *strings.Builder, c *bezier.Curve) {
	n := c.Degree()
	param := bezier.ParamVector(n, ReportT, nil)
	coef := bezier.BasisFor(n).Coefficients(ReportT, nil)
	p := bezier.EvalMatrix(c.Points, ReportT)

	fmt.Fprintf(sb, "Parameter Vector for t=%v:\n", ReportT)
	sb.WriteString(joinFixed(param, 4) + "\n\n")
	sb.WriteString("Resulting Coefficients:\n")
	sb.WriteString(joinFixed(coef, 4) + "\n\n")
	fmt.Fprintf(sb, "Resulting Point at t=%v:\n", ReportT)
	fmt.Fprintf(sb, "(%.4f, %.4f)\n\n", p.X, p.Y)
}

func joinFixed(values []float64, decimals int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.*f", decimals, v)
	}
	return strings.Join(parts, ", ")
}
