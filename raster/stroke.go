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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokePolyline strokes the open polyline through pts, using Width, Cap,
// Join and MiterLimit.  The caller's slice is not modified.
func (r *Rasterizer) StrokePolyline(pts []vec.Vec2, emit EmitFunc) {
	r.beginOutline()
	r.run = append(r.run[:0], pts...)
	r.strokeRun(false)
	r.fillOutline(emit)
}

// Stroke strokes all subpaths of p.  Curved segments are flattened
// before stroking.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.beginOutline()
	r.run = r.run[:0]

	var start vec.Vec2
	drawn := false
	flush := func(closed bool) {
		if drawn {
			r.strokeRun(closed)
		}
		r.run = r.run[:0]
		drawn = false
	}
	appendRun := func(_, to vec.Vec2) {
		r.run = append(r.run, to)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			start = p.Coords[k]
			r.run = append(r.run, start)
			k++
		case path.CmdLineTo:
			r.run = append(r.run, p.Coords[k])
			drawn = true
			k++
		case path.CmdQuadTo:
			r.ctrl = [4]vec.Vec2{r.run[len(r.run)-1], p.Coords[k], p.Coords[k+1]}
			r.flatten(r.ctrl[:3], appendRun)
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.ctrl = [4]vec.Vec2{r.run[len(r.run)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2]}
			r.flatten(r.ctrl[:4], appendRun)
			drawn = true
			k += 3
		case path.CmdClose:
			flush(true)
			r.run = append(r.run, start)
		}
	}
	flush(false)

	r.fillOutline(emit)
}

func (r *Rasterizer) beginOutline() {
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
}

// fillOutline fills all collected stroke polygons together, so that
// overlapping pieces are painted once.
func (r *Rasterizer) fillOutline(emit EmitFunc) {
	r.resetEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(fillNonZero, emit)
}

// strokeRun adds the outline of the polyline in r.run.
func (r *Rasterizer) strokeRun(closed bool) {
	pts := dedupe(r.run)
	if closed && len(pts) > 1 && pts[0].Sub(pts[len(pts)-1]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return
	}
	d := r.Width / 2
	if len(pts) == 1 {
		r.addDot(pts[0], d)
		return
	}

	last := len(pts) - 1
	numSegs := last
	if closed {
		numSegs = len(pts)
	}
	for i := range numSegs {
		r.addSegment(pts[i], pts[(i+1)%len(pts)], d)
	}

	for i := 1; i < last; i++ {
		r.addJoin(pts[i], direction(pts[i-1], pts[i]), direction(pts[i], pts[i+1]), d)
	}
	if closed {
		r.addJoin(pts[last], direction(pts[last-1], pts[last]), direction(pts[last], pts[0]), d)
		r.addJoin(pts[0], direction(pts[last], pts[0]), direction(pts[0], pts[1]), d)
	} else {
		r.addCap(pts[0], direction(pts[1], pts[0]), d)
		r.addCap(pts[last], direction(pts[last-1], pts[last]), d)
	}
}

// dedupe removes consecutive points closer than zeroLengthThreshold,
// working in place.
func dedupe(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() >= zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

// direction returns the unit vector pointing from a to b.
func direction(a, b vec.Vec2) vec.Vec2 {
	v := b.Sub(a)
	return v.Mul(1 / v.Length())
}

// normal returns t rotated by 90° counter-clockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	n := normal(direction(a, b)).Mul(d)
	r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the corner piece at p, where the line turns from
// direction t1 to direction t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// the join fills the gap on the outer side of the turn
	n1, n2 := normal(t1), normal(t2)
	if cross > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	o1 := p.Add(n1.Mul(d))
	o2 := p.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		// sin of half the angle between the two segments
		sinHalf := math.Sqrt(max(0, (1+dot)/2))
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit {
			tip := p.Add(n1.Add(n2).Mul(d / (1 + dot)))
			r.addPolygon(p, o1, tip, o2)
			return
		}
	}
	r.addPolygon(p, o1, o2)
}

// addCap adds the line end at p; t points away from the line.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		n := normal(t).Mul(d)
		ext := t.Mul(d)
		r.addPolygon(p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
	}
}

// addDot draws a subpath of length zero.  Only round and square caps
// produce a mark.
func (r *Rasterizer) addDot(p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		r.addPolygon(
			vec.Vec2{X: p.X - d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y + d},
			vec.Vec2{X: p.X - d, Y: p.Y + d},
		)
	}
}

// FillCircle fills the disc with the given centre and radius, in user
// space.
func (r *Rasterizer) FillCircle(center vec.Vec2, radius float64, emit EmitFunc) {
	r.beginOutline()
	r.addCircle(center, radius)
	r.fillOutline(emit)
}

// addCircle adds a polygon approximating the circle, counter-clockwise.
func (r *Rasterizer) addCircle(center vec.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.outlineStart = append(r.outlineStart, len(r.outline))
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.outline = append(r.outline, vec.Vec2{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		})
	}
}

// addPolygon adds a closed polygon to the outline, reversing the vertex
// order where needed so that all pieces have the same orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}

	r.outlineStart = append(r.outlineStart, len(r.outline))
	if area >= 0 {
		r.outline = append(r.outline, pts...)
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		r.outline = append(r.outline, pts[i])
	}
}
