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

package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/bezier"
	"seehuhn.de/go/bezier/raster"
)

// Scene is everything drawn on one canvas.
type Scene struct {
	Viewport Viewport
	Style    Style

	// Curves are drawn in order, each with its control polygon, the
	// sampled curve and the control points.
	Curves []*bezier.Curve

	// Pending are control points not yet part of a curve.
	Pending []vec.Vec2
}

// NewScene returns an empty scene with the default style.
func NewScene(width, height int) *Scene {
	return &Scene{
		Viewport: NewViewport(width, height),
		Style:    DefaultStyle(),
	}
}

// Render draws the scene.  An error is returned if one of the curves is
// invalid or uses an unknown colour.
func (s *Scene) Render() (*image.RGBA, error) {
	vp := s.Viewport
	img := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.Style.Background), image.Point{}, draw.Src)

	c := &canvas{
		img: img,
		r:   raster.NewRasterizer(rect.Rect{URx: float64(vp.Width), URy: float64(vp.Height)}),
	}
	s.drawGrid(c)
	s.drawAxes(c)

	for i, curve := range s.Curves {
		if err := s.drawCurve(c, curve); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i+1, err)
		}
	}
	for _, p := range s.Pending {
		c.dot(vp.ToDevice(p), s.Style.PointRadius, s.Style.Point)
	}
	return img, nil
}

func (s *Scene) drawGrid(c *canvas) {
	vp := s.Viewport
	w, h := float64(vp.Width), float64(vp.Height)

	c.r.Width = s.Style.GridWidth
	c.r.Cap = graphics.LineCapButt
	for x := positiveMod(vp.OffsetX, vp.Scale); x < w; x += vp.Scale {
		c.line(crisp(x), 0, crisp(x), h, s.Style.Grid)
	}
	for y := positiveMod(vp.OffsetY, vp.Scale); y < h; y += vp.Scale {
		c.line(0, crisp(y), w, crisp(y), s.Style.Grid)
	}
}

func (s *Scene) drawAxes(c *canvas) {
	vp := s.Viewport
	st := s.Style
	w, h := float64(vp.Width), float64(vp.Height)

	c.r.Width = st.AxisWidth
	c.r.Cap = graphics.LineCapButt
	c.line(0, vp.OffsetY, w, vp.OffsetY, st.Axis)
	c.line(vp.OffsetX, 0, vp.OffsetX, h, st.Axis)

	// arrow heads at the positive ends
	a := st.ArrowSize
	c.triangle(
		vec.Vec2{X: w - 10, Y: vp.OffsetY},
		vec.Vec2{X: w - 10 - a, Y: vp.OffsetY - a/2},
		vec.Vec2{X: w - 10 - a, Y: vp.OffsetY + a/2},
		st.Axis)
	c.triangle(
		vec.Vec2{X: vp.OffsetX, Y: 10},
		vec.Vec2{X: vp.OffsetX - a/2, Y: 10 + a},
		vec.Vec2{X: vp.OffsetX + a/2, Y: 10 + a},
		st.Axis)

	decimals := DecimalPlaces(vp.Scale)
	for _, g := range labelPositions(vp.OffsetX, vp.Scale, vp.Width) {
		x := vp.OffsetX + g*vp.Scale
		c.text(formatLabel(g, decimals), x, vp.OffsetY+20, st.Label)
	}
	for _, g := range labelPositions(h-vp.OffsetY, vp.Scale, vp.Height) {
		y := vp.OffsetY - g*vp.Scale
		c.text(formatLabel(g, decimals), vp.OffsetX-20, y, st.Label)
	}
	c.text("0", vp.OffsetX-10, vp.OffsetY+20, st.Label)
	c.text("X", w-10, vp.OffsetY-20, st.Label)
	c.text("Y", vp.OffsetX+20, 12, st.Label)
}

func (s *Scene) drawCurve(c *canvas, curve *bezier.Curve) error {
	if err := curve.Validate(); err != nil {
		return err
	}
	polyColor, err := ParseColor(curve.PolylineColor)
	if err != nil {
		return err
	}
	curveColor, err := ParseColor(curve.CurveColor)
	if err != nil {
		return err
	}
	samples, err := curve.Samples()
	if err != nil {
		return err
	}

	vp := s.Viewport
	c.r.Cap = graphics.LineCapRound
	c.r.Join = graphics.LineJoinRound

	c.r.Width = s.Style.PolygonWidth
	c.polyline(toDevice(vp, curve.Points), polyColor)

	c.r.Width = s.Style.CurveWidth
	c.polyline(toDevice(vp, samples), curveColor)

	for _, p := range curve.Points {
		c.dot(vp.ToDevice(p), s.Style.PointRadius, s.Style.Point)
	}
	return nil
}

func toDevice(vp Viewport, pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vp.ToDevice(p)
	}
	return res
}

// formatLabel formats an axis label, without trailing zeros.
func formatLabel(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// positiveMod returns x mod m in [0, m).
func positiveMod(x, m float64) float64 {
	res := math.Mod(x, m)
	if res < 0 {
		res += m
	}
	return res
}

// crisp moves a coordinate to the nearest pixel centre, so that thin
// lines cover whole pixels.
func crisp(x float64) float64 {
	return math.Floor(x) + 0.5
}

// canvas composites rasterizer output onto an image.
type canvas struct {
	img *image.RGBA
	r   *raster.Rasterizer
	buf []vec.Vec2
}

// painter returns an emit function which blends col into the image with
// the given coverage.
func (c *canvas) painter(col color.RGBA) raster.EmitFunc {
	img := c.img
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, cov := range coverage {
			a := cov * float32(col.A) / 0xFF
			px := row[4*i : 4*i+4 : 4*i+4]
			px[0] = blend(px[0], col.R, a)
			px[1] = blend(px[1], col.G, a)
			px[2] = blend(px[2], col.B, a)
			px[3] = blend(px[3], 0xFF, a)
		}
	}
}

func blend(dst, src uint8, a float32) uint8 {
	v := float32(dst)*(1-a) + float32(src)*a
	return uint8(min(max(v+0.5, 0), 255))
}

func (c *canvas) line(x0, y0, x1, y1 float64, col color.RGBA) {
	c.buf = append(c.buf[:0], vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1})
	c.r.StrokePolyline(c.buf, c.painter(col))
}

func (c *canvas) polyline(pts []vec.Vec2, col color.RGBA) {
	c.r.StrokePolyline(pts, c.painter(col))
}

func (c *canvas) triangle(a, b, d vec.Vec2, col color.RGBA) {
	p := (&path.Data{}).MoveTo(a).LineTo(b).LineTo(d).Close()
	c.r.FillNonZero(p, c.painter(col))
}

func (c *canvas) dot(center vec.Vec2, radius float64, col color.RGBA) {
	c.r.FillCircle(center, radius, c.painter(col))
}

// text draws s with its baseline starting at (x, y).
func (c *canvas) text(s string, x, y float64, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}
