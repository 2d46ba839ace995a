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

package curveset

import (
	"fmt"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

// ImportSVG converts the paths of an SVG document into curves.  Every
// cubic segment becomes a cubic Bézier curve and every straight segment,
// including the closing segment of a closed subpath, becomes a linear
// one.  SVG coordinates are multiplied by scale and the y axis is flipped,
// so that the picture appears upright in graph space.
func ImportSVG(data []byte, scale float64) ([]*bezier.Curve, error) {
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}

	toGraph := func(t *svg.Tuple) vec.Vec2 {
		return vec.Vec2{X: t[0] * scale, Y: -t[1] * scale}
	}

	var curves []*bezier.Curve
	var current, start vec.Vec2
	instructions, errs := doc.ParseDrawingInstructions()
	for {
		select {
		case ins := <-instructions:
			if ins == nil {
				return curves, nil
			}

			switch ins.Kind {
			case svg.MoveInstruction:
				current = toGraph(ins.M)
				start = current
			case svg.LineInstruction:
				p := toGraph(ins.M)
				curves = append(curves, bezier.NewCurve(current, p))
				current = p
			case svg.CurveInstruction:
				cp := ins.CurvePoints
				end := toGraph(cp.T)
				curves = append(curves, bezier.NewCurve(current, toGraph(cp.C1), toGraph(cp.C2), end))
				current = end
			case svg.CloseInstruction:
				if current != start {
					curves = append(curves, bezier.NewCurve(current, start))
				}
				current = start
			case svg.CircleInstruction:
				glg.Warn("svg: circle skipped, only paths are imported")
			case svg.PaintInstruction:
				// colours are not imported
			}
		case err := <-errs:
			if err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
		}
	}
}
