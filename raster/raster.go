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

// Package raster converts paths, polylines and dots to anti-aliased pixel
// coverage, for drawing Bézier curves into images.
//
// Coverage is computed exactly as the signed area of the shape inside each
// pixel, one scanline at a time.  Curved path segments are flattened with
// the evaluator from the parent package.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/bezier"
)

// EmitFunc receives the coverage of one scanline.  Coverage values lie in
// [0, 1], coverage[i] belongs to pixel (xMin+i, y).  The slice is only
// valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer turns shapes into coverage values.  Create one instance and
// reuse it; internal buffers grow as needed and are kept between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device space, with integer coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to draw it.
	Flatness float64

	// Width is the line width for strokes, in user space units.
	Width float64

	// Cap is the shape at the open ends of stroked lines.
	Cap graphics.LineCapStyle

	// Join is the shape at corners of stroked lines.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// line width.  Longer miters are drawn as bevels.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// device space bounding box of the edges
	bboxSet      bool
	bxMin, bxMax float64
	byMin, byMax float64

	samples      []vec.Vec2 // flattened curve points
	outline      []vec.Vec2 // stroke polygons, contiguous
	outlineStart []int      // start of each polygon in outline
	run          []vec.Vec2 // current polyline while stroking a path
	ctrl         [4]vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle with
// default parameters: identity CTM, line width 1, round caps and joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.samples = r.samples[:0]
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
	r.run = r.run[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectPathEdges(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.collectPathEdges(p)
	r.scan(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxSet = false
}

// collectPathEdges walks the path and builds the device space edge list.
func (r *Rasterizer) collectPathEdges(p *path.Data) {
	r.resetEdges()

	var current, start vec.Vec2
	closeSubpath := func() {
		if current != start {
			r.addEdge(current, start)
		}
		current = start
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.ctrl = [4]vec.Vec2{current, p.Coords[k], p.Coords[k+1]}
			r.flatten(r.ctrl[:3], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.ctrl = [4]vec.Vec2{current, p.Coords[k], p.Coords[k+1], p.Coords[k+2]}
			r.flatten(r.ctrl[:4], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// segmentCount returns the number of line segments needed to draw the
// Bézier curve with control points ctrl within the flatness tolerance.
//
// This is Wang's formula: for a curve of degree n with maximal second
// difference m of the control points (in device space), n(n-1)m/8 bounds
// the distance between the curve and its chords of parameter length 1/k²
// after dividing by k².
func (r *Rasterizer) segmentCount(ctrl []vec.Vec2) int {
	n := len(ctrl) - 1
	if n < 2 {
		return 1
	}
	m := 0.0
	for i := 2; i <= n; i++ {
		d := ctrl[i-2].Sub(ctrl[i-1].Mul(2)).Add(ctrl[i])
		m = max(m, r.transformLinear(d).Length())
	}
	if m == 0 {
		return 1
	}
	k := math.Ceil(math.Sqrt(float64(n*(n-1)) * m / (8 * r.Flatness)))
	return int(min(max(k, 1), maxCurveSegments))
}

// flatten approximates the Bézier curve by line segments and calls emit
// for each of them.
func (r *Rasterizer) flatten(ctrl []vec.Vec2, emit func(from, to vec.Vec2)) {
	k := r.segmentCount(ctrl)
	r.samples = bezier.AppendSample(r.samples[:0], ctrl, k, bezier.Parametric, 0, 1)
	for i := 1; i < len(r.samples); i++ {
		emit(r.samples[i-1], r.samples[i])
	}
}

// addEdge transforms a line segment to device space and adds it to the
// edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	x0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	y0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	x1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	y1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		// horizontal edges carry no cover
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.bboxSet {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxSet = true
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// scan integrates the collected edges scanline by scanline, using an
// active edge list.
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edges crossing the pixel, and area, the part of that cover
// lying to the right of the crossing.  Summing cover from the left edge of
// the row and adding area gives the signed area of the shape in the pixel.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, yTop, yBot, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between yTop and yBot to the cover and
// area buffers, which hold the pixels xMin, ..., xMax-1.
func (r *Rasterizer) accumulate(e *edge, yTop, yBot float64, xMin, xMax int) {
	yTop = max(yTop, e.yMin())
	yBot = min(yBot, e.yMax())
	if yBot <= yTop {
		return
	}
	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := min(xa, xb), max(xa, xb)
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixLeft == pixRight {
		r.deposit(pixLeft, (xLeft+xRight)/2, sign*(yBot-yTop), xMin, xMax)
		return
	}

	// split at the vertical pixel boundaries; the vertical extent in each
	// column is proportional to the horizontal one
	dyPerDx := (yBot - yTop) / (xRight - xLeft)
	for pix := pixLeft; pix <= pixRight; pix++ {
		lo := max(xLeft, float64(pix))
		hi := min(xRight, float64(pix+1))
		if hi <= lo {
			continue
		}
		r.deposit(pix, (lo+hi)/2, sign*(hi-lo)*dyPerDx, xMin, xMax)
	}
}

// deposit records cover c for an edge piece crossing pixel column pix at
// mean horizontal position xMid.
func (r *Rasterizer) deposit(pix int, xMid, c float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		// left of the buffer: the whole row to the right is covered
		r.cover[0] += float32(c)
		r.area[0] += float32(c)
	case pix >= xMax:
		// right of the buffer: no visible effect
	default:
		i := pix - xMin
		r.cover[i] += float32(c)
		r.area[i] += float32(c * (1 - (xMid - float64(pix))))
	}
}

// integrateNonZero turns accumulated cover and area into coverage, using
// the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns accumulated cover and area into coverage, using
// the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of that part.  If all values are zero,
// the result is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin| of the angle between two
	// segments for which no join is drawn.
	collinearityThreshold = 1e-6

	// maxCurveSegments bounds the number of line segments per curve.
	maxCurveSegments = 1 << 12
)
