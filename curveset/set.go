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

// Package curveset keeps a collection of Bézier curves being edited, and
// reads and writes curve collections from and to files.
//
// A [Set] holds the finished curves, the control points of the curve
// currently under construction and, while editing, the index of the curve
// which follows these points.
package curveset

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

// ErrPointIndex is returned when a pending point is addressed by an index
// out of range.
var ErrPointIndex = errors.New("no such point")

// Set is the editing state for a collection of curves.
// The zero value is not ready for use; call [New].
type Set struct {
	// Curves are the curves in drawing order.
	Curves []*bezier.Curve

	// Pending are the control points of the curve being edited.
	Pending []vec.Vec2

	// Active is the index in Curves of the curve built from Pending,
	// or -1 if Pending has not been turned into a curve yet.
	Active int

	// AutoUpdate makes every change to Pending propagate to the active
	// curve immediately.
	AutoUpdate bool

	// Params are used for new curves.
	Params Params
}

// New returns an empty set with automatic updates enabled.
func New() *Set {
	return &Set{
		Active:     -1,
		AutoUpdate: true,
		Params:     DefaultParams(),
	}
}

// AddPoint appends a control point to the pending curve.
func (s *Set) AddPoint(p vec.Vec2) {
	s.Pending = append(s.Pending, p)
	if s.AutoUpdate {
		s.UpdateActive()
	}
}

// MovePoint replaces the pending point with index i.
func (s *Set) MovePoint(i int, p vec.Vec2) error {
	if i < 0 || i >= len(s.Pending) {
		return fmt.Errorf("point %d: %w", i+1, ErrPointIndex)
	}
	s.Pending[i] = p
	if s.AutoUpdate && s.Active >= 0 {
		s.syncActive()
	}
	return nil
}

// DeletePoint removes the pending point with index i.  If fewer than two
// points remain, the active curve is removed from the set.
func (s *Set) DeletePoint(i int) error {
	if i < 0 || i >= len(s.Pending) {
		return fmt.Errorf("point %d: %w", i+1, ErrPointIndex)
	}
	s.Pending = slices.Delete(s.Pending, i, i+1)

	switch {
	case s.Active < 0:
		// nothing to update
	case len(s.Pending) < 2:
		s.Curves = slices.Delete(s.Curves, s.Active, s.Active+1)
		s.Active = -1
	case s.AutoUpdate:
		s.syncActive()
	}
	return nil
}

// UpdateActive creates the active curve from the pending points, or
// copies the pending points into the existing active curve.  Nothing
// happens while there are fewer than two pending points.
func (s *Set) UpdateActive() {
	if len(s.Pending) < 2 {
		return
	}
	if s.Active < 0 {
		c := bezier.NewCurve(s.Pending...)
		s.Params.apply(c)
		s.Curves = append(s.Curves, c)
		s.Active = len(s.Curves) - 1
		return
	}
	s.syncActive()
}

func (s *Set) syncActive() {
	c := s.Curves[s.Active]
	c.Points = append(c.Points[:0], s.Pending...)
}

// Finalize completes the pending curve with the given parameters and
// starts a new, empty one.  The parameters also become the defaults for
// later curves.
func (s *Set) Finalize(p Params) error {
	if len(s.Pending) < 2 {
		return fmt.Errorf("%d points: %w", len(s.Pending), bezier.ErrTooFewPoints)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	s.Params = p
	if s.Active < 0 {
		s.UpdateActive()
	} else {
		s.syncActive()
		p.apply(s.Curves[s.Active])
	}
	s.Pending = nil
	s.Active = -1
	return nil
}

// NewCurve abandons the pending points and starts a new curve.  An active
// curve keeps its current points.
func (s *Set) NewCurve() {
	if len(s.Pending) >= 2 && s.Active >= 0 {
		s.syncActive()
	}
	s.Pending = nil
	s.Active = -1
}

// Clear removes all curves and pending points.
func (s *Set) Clear() {
	s.Curves = nil
	s.Pending = nil
	s.Active = -1
}

// SetMethod sets the evaluation method for new curves and, with automatic
// updates enabled, for the active curve.
func (s *Set) SetMethod(m bezier.Method) {
	s.Params.Method = m
	if s.AutoUpdate && s.Active >= 0 && len(s.Pending) >= 2 {
		s.Curves[s.Active].Method = m
	}
}

// ActiveCurve returns the curve built from the pending points, or nil.
func (s *Set) ActiveCurve() *bezier.Curve {
	if s.Active < 0 {
		return nil
	}
	return s.Curves[s.Active]
}
