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

import "errors"

var (
	// ErrTooFewPoints is returned for curves with fewer than two control points.
	ErrTooFewPoints = errors.New("a curve needs at least two control points")

	// ErrInvertedRange is returned when tMax is smaller than tMin.
	ErrInvertedRange = errors.New("tMax must not be smaller than tMin")

	// ErrRange is returned when tMin or tMax is infinite or NaN.
	ErrRange = errors.New("parameter range must be finite")

	// ErrStep is returned when the parameter step is outside (0, 1].
	ErrStep = errors.New("step must be in (0, 1]")

	// ErrTooManySamples is returned when the parameter range divided by
	// the step exceeds MaxSamples.
	ErrTooManySamples = errors.New("too many samples")

	// ErrUnknownMethod is returned for evaluation methods other than
	// Parametric and Matrix.
	ErrUnknownMethod = errors.New("unknown evaluation method")
)
