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

// Package plot draws Bézier curves onto a coordinate grid.
//
// Curves live in graph space, where y points upwards and one unit
// corresponds to [Viewport.Scale] pixels.  A [Scene] collects curves and
// pending control points and renders them, together with grid, axes and
// labels, into an RGBA image.
package plot

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Limits and default for [Viewport.Scale], in pixels per unit.
const (
	DefaultScale = 40.0
	MinScale     = 10.0
	MaxScale     = 200.0
)

// Viewport maps graph coordinates to device pixels.
// The graph origin is at (OffsetX, OffsetY) on the device.
type Viewport struct {
	Width, Height int

	Scale            float64
	OffsetX, OffsetY float64
}

// NewViewport returns a viewport of the given size with the default scale
// and the origin in the centre.
func NewViewport(width, height int) Viewport {
	v := Viewport{Width: width, Height: height}
	v.Reset()
	return v
}

// Reset restores the default scale and centres the origin.
func (v *Viewport) Reset() {
	v.Scale = DefaultScale
	v.OffsetX = float64(v.Width) / 2
	v.OffsetY = float64(v.Height) / 2
}

// ToDevice converts a point from graph space to device space.
func (v Viewport) ToDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: v.OffsetX + p.X*v.Scale,
		Y: v.OffsetY - p.Y*v.Scale,
	}
}

// ToGraph converts device coordinates to a point in graph space.
func (v Viewport) ToGraph(x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: (x - v.OffsetX) / v.Scale,
		Y: (v.OffsetY - y) / v.Scale,
	}
}

// Matrix returns the transformation from graph space to device space.
func (v Viewport) Matrix() matrix.Matrix {
	return matrix.Matrix{v.Scale, 0, 0, -v.Scale, v.OffsetX, v.OffsetY}
}

// Zoom multiplies the scale by factor, keeping the graph point under the
// device position (devX, devY) in place.  The scale is clamped to
// [MinScale, MaxScale].
func (v *Viewport) Zoom(devX, devY, factor float64) {
	before := v.ToGraph(devX, devY)
	v.Scale = min(max(v.Scale*factor, MinScale), MaxScale)
	v.OffsetX = devX - before.X*v.Scale
	v.OffsetY = devY + before.Y*v.Scale
}

// Pan moves the graph by (dx, dy) device pixels.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Visible reports whether the graph point p maps into the device area.
func (v Viewport) Visible(p vec.Vec2) bool {
	q := v.ToDevice(p)
	return q.X >= 0 && q.Y >= 0 && q.X < float64(v.Width) && q.Y < float64(v.Height)
}

// DecimalPlaces returns the number of decimals used for axis labels at
// the given scale.
func DecimalPlaces(scale float64) int {
	switch {
	case scale >= 100:
		return 0
	case scale >= 40:
		return 1
	case scale >= 20:
		return 2
	case scale >= 10:
		return 3
	default:
		return 4
	}
}

// LabelStep returns the distance, in graph units, between two axis labels
// at the given scale.
func LabelStep(scale float64) int {
	switch {
	case scale < 5:
		return 10
	case scale < 10:
		return 5
	case scale < 20:
		return 2
	default:
		return 1
	}
}

// labelPositions returns the graph coordinates of the labels along an
// axis whose origin is at device position offset, for a device extent of
// size pixels.  Zero is left out.
func labelPositions(offset, scale float64, size int) []float64 {
	step := float64(LabelStep(scale))
	first := math.Ceil(-offset/(scale*step)) * step
	var res []float64
	for g := first; offset+g*scale < float64(size); g += step {
		if math.Abs(g) < 1e-9 {
			continue
		}
		res = append(res, g)
	}
	return res
}
