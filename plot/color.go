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
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by [ParseColor] for unrecognised colours.
var ErrUnknownColor = errors.New("unknown colour")

// ParseColor converts a colour name or hex code to an opaque RGBA colour.
// Accepted are SVG colour names (case insensitive) and hexadecimal
// colours in the forms "#rgb" and "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w %q", ErrUnknownColor, s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
	return c, nil
}

// mustParseColor is for colour constants in this package.
func mustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
