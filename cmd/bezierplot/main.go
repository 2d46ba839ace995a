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

// Command bezierplot draws Bézier curves from a curve file or an SVG
// drawing, and writes images, PDF files and text reports.
//
// Usage:
//
//	bezierplot -i curves.json -o curves.png -report .
//	bezierplot -svg drawing.svg -svg-scale 0.05 -pdf drawing.pdf
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/kpango/glg"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/curveset"
	"seehuhn.de/go/bezier/export"
	"seehuhn.de/go/bezier/plot"
)

type Flags struct {
	InputFilePath string
	SVGFilePath   string
	SVGScale      float64
	ImagePath     string
	PDFPath       string
	ReportPath    string
	SavePath      string
	Width         int
	Height        int
	Scale         float64
	Method        string
	Verbose       bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "curve file (.json or .toml)")
	flag.StringVar(&f.SVGFilePath, "svg", "", "SVG file to import curves from")
	flag.Float64Var(&f.SVGScale, "svg-scale", 0.05, "graph units per SVG unit")
	flag.StringVar(&f.ImagePath, "o", "", "output image (.png, .tiff or .bmp)")
	flag.StringVar(&f.PDFPath, "pdf", "", "output PDF file")
	flag.StringVar(&f.ReportPath, "report", "", "text report file, or a directory for an automatic name")
	flag.StringVar(&f.SavePath, "save", "", "write the curves to this file (.json or .toml)")
	flag.IntVar(&f.Width, "w", 800, "canvas width in pixels")
	flag.IntVar(&f.Height, "h", 600, "canvas height in pixels")
	flag.Float64Var(&f.Scale, "scale", plot.DefaultScale, "pixels per graph unit")
	flag.StringVar(&f.Method, "method", "", "override the evaluation method (parametric or matrix)")
	flag.BoolVar(&f.Verbose, "v", false, "verbose output")
	flag.Parse()

	if !f.Verbose {
		glg.Get().SetLevelMode(glg.DEBUG, glg.NONE)
	}

	curves := loadCurves(&f)
	if len(curves) == 0 {
		glg.Fatal("No curves, use -i or -svg")
	}
	glg.Infof("%d curves loaded", len(curves))

	if f.Method != "" {
		m, err := bezier.ParseMethod(f.Method)
		if err != nil {
			glg.Fatalf("Invalid -method: %v", err)
		}
		for _, c := range curves {
			c.Method = m
		}
	}

	for i, c := range curves {
		if c.Method == bezier.Matrix {
			n := c.Degree()
			glg.Debugf("curve %d, basis matrix (n=%d):\n%s", i+1, n, bezier.BasisFor(n))
		}
	}

	scene := plot.NewScene(f.Width, f.Height)
	scene.Viewport.Scale = min(max(f.Scale, plot.MinScale), plot.MaxScale)
	scene.Curves = curves

	if f.ImagePath != "" {
		img, err := scene.Render()
		if err != nil {
			glg.Fatalf("Cannot render: %v", err)
		}
		if err := plot.WriteImage(f.ImagePath, img); err != nil {
			glg.Fatalf("Cannot write image %s: %v", f.ImagePath, err)
		}
		glg.Infof("image written to %s", f.ImagePath)
	}

	if f.PDFPath != "" {
		if err := export.WritePDF(f.PDFPath, scene.Viewport, curves); err != nil {
			glg.Fatalf("Cannot write PDF %s: %v", f.PDFPath, err)
		}
		glg.Infof("PDF written to %s", f.PDFPath)
	}

	if f.ReportPath != "" {
		fname := f.ReportPath
		if fi, err := os.Stat(fname); err == nil && fi.IsDir() {
			fname = filepath.Join(fname, export.ReportName(time.Now()))
		}
		if err := writeReport(fname, curves); err != nil {
			glg.Fatalf("Cannot write report %s: %v", fname, err)
		}
		glg.Infof("report written to %s", fname)
	}

	if f.SavePath != "" {
		if err := curveset.SaveFile(f.SavePath, curves); err != nil {
			glg.Fatalf("Cannot save curves to %s: %v", f.SavePath, err)
		}
		glg.Infof("curves saved to %s", f.SavePath)
	}
}

func loadCurves(f *Flags) []*bezier.Curve {
	var curves []*bezier.Curve
	if f.InputFilePath != "" {
		loaded, err := curveset.LoadFile(f.InputFilePath)
		if err != nil {
			glg.Fatalf("Cannot load curves: %v", err)
		}
		curves = append(curves, loaded...)
	}
	if f.SVGFilePath != "" {
		data, err := os.ReadFile(f.SVGFilePath)
		if err != nil {
			glg.Fatalf("Cannot read file %s: %v", f.SVGFilePath, err)
		}
		imported, err := curveset.ImportSVG(data, f.SVGScale)
		if err != nil {
			glg.Fatalf("Cannot parse file %s: %v", f.SVGFilePath, err)
		}
		glg.Debugf("%d curves imported from %s", len(imported), f.SVGFilePath)
		curves = append(curves, imported...)
	}
	return curves
}

func writeReport(fname string, curves []*bezier.Curve) (err error) {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return export.WriteReport(out, curves)
}
