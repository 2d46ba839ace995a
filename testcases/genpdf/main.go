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

// Command genpdf draws every test case twice, for visual inspection: as
// a PDF file, where curves up to degree 3 are given to the PDF viewer as
// exact Bézier segments, and as a PNG image made by the raster package
// from the sampled polyline.  If Ghostscript is installed, the PDF files
// are also converted to PNG, so that both renderings can be compared.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/kpango/glg"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/raster"
	"seehuhn.de/go/bezier/testcases"
)

const outDir = "testdata/visual"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		glg.Fatal(err)
	}

	_, gsErr := exec.LookPath("gs")
	if gsErr != nil {
		glg.Warn("gs not found, PDF files are not converted to PNG")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				glg.Fatalf("%s: %v", name, err)
			}
			if err := generatePNG(tc, filepath.Join(outDir, name+"_raster.png")); err != nil {
				glg.Fatalf("%s: %v", name, err)
			}
			if gsErr == nil {
				if err := renderPNG(pdfPath, filepath.Join(outDir, name+"_gs.png")); err != nil {
					glg.Fatalf("%s: %v", name, err)
				}
			}
			glg.Debugf("%s done", name)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// control polygon
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.5)
	page.MoveTo(tc.Points[0].X, tc.Points[0].Y)
	for _, p := range tc.Points[1:] {
		page.LineTo(p.X, p.Y)
	}
	page.Stroke()

	// the curve itself
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	ctrl, exact := asCubic(tc)
	if exact {
		page.MoveTo(ctrl[0].X, ctrl[0].Y)
		page.CurveTo(ctrl[1].X, ctrl[1].Y, ctrl[2].X, ctrl[2].Y, ctrl[3].X, ctrl[3].Y)
	} else {
		pts := bezier.Sample(tc.Points, tc.Count, bezier.Parametric, tc.TMin, tc.TMax)
		page.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			page.LineTo(p.X, p.Y)
		}
	}
	page.Stroke()

	return page.Close()
}

// asCubic returns cubic control points for the drawn part of the test
// case, if the curve has degree 1 to 3 and is drawn over [0, 1].
func asCubic(tc testcases.TestCase) ([4]vec.Vec2, bool) {
	var res [4]vec.Vec2
	if tc.TMin != 0 || tc.TMax != 1 {
		return res, false
	}
	p := tc.Points
	switch tc.Degree() {
	case 1:
		res = [4]vec.Vec2{p[0], lerp(p[0], p[1], 1.0/3), lerp(p[0], p[1], 2.0/3), p[1]}
	case 2:
		// degree elevation
		res = [4]vec.Vec2{p[0], lerp(p[0], p[1], 2.0/3), lerp(p[2], p[1], 2.0/3), p[2]}
	case 3:
		copy(res[:], p)
	default:
		return res, false
	}
	return res, true
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// generatePNG draws the sampled curve with the raster package, in black
// on white like the Ghostscript output.
func generatePNG(tc testcases.TestCase, pngPath string) (err error) {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	r := raster.NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	pts := bezier.Sample(tc.Points, tc.Count, bezier.Parametric, tc.TMin, tc.TMax)
	r.StrokePolyline(pts, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = 255 - byte(max(0, min(255, int(c*256))))
		}
	})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("gs failed with exit code %d", exitErr.ExitCode())
		}
		return err
	}
	return nil
}
