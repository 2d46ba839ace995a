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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/plot"
)

// Line widths in device units, for the PDF drawing.
const (
	pdfAxisWidth    = 0.5
	pdfPolygonWidth = 0.75
	pdfCurveWidth   = 1.5
)

// WritePDF draws the curves into a single page PDF file.  The page has
// the size of the viewport, one device pixel becoming one PDF point.
// The drawing shows the coordinate axes and, for every curve, the control
// polygon and the sampled curve.  Colours are converted to grey levels.
func WritePDF(fname string, vp plot.Viewport, curves []*bezier.Curve) error {
	type prepared struct {
		samples        []vec.Vec2
		polygon, curve float64 // grey levels
	}
	todo := make([]prepared, len(curves))
	for i, c := range curves {
		samples, err := c.Samples()
		if err != nil {
			return fmt.Errorf("curve %d: %w", i+1, err)
		}
		poly, err := grayLevel(c.PolylineColor)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i+1, err)
		}
		curve, err := grayLevel(c.CurveColor)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i+1, err)
		}
		todo[i] = prepared{samples, poly, curve}
	}

	w, h := float64(vp.Width), float64(vp.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the viewport assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(pdfAxisWidth)
	page.MoveTo(0, vp.OffsetY)
	page.LineTo(w, vp.OffsetY)
	page.MoveTo(vp.OffsetX, 0)
	page.LineTo(vp.OffsetX, h)
	page.Stroke()

	// from here on, draw in graph coordinates
	page.Transform(vp.Matrix())
	for i, c := range curves {
		page.SetStrokeColor(color.DeviceGray(todo[i].polygon))
		page.SetLineWidth(pdfPolygonWidth / vp.Scale)
		strokePolyline(page, c.Points)

		page.SetStrokeColor(color.DeviceGray(todo[i].curve))
		page.SetLineWidth(pdfCurveWidth / vp.Scale)
		strokePolyline(page, todo[i].samples)
	}

	return page.Close()
}

// pathStroker is the part of the PDF page API used for polylines.
type pathStroker interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

func strokePolyline(page pathStroker, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		page.LineTo(p.X, p.Y)
	}
	page.Stroke()
}

// grayLevel converts a colour name to a grey level in [0, 1], using the
// Rec. 601 luma weights.
func grayLevel(name string) (float64, error) {
	c, err := plot.ParseColor(name)
	if err != nil {
		return 0, err
	}
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return y / 255, nil
}
