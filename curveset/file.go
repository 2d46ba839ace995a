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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

// Format is a file format for curve collections.
type Format int

// Supported formats.
const (
	JSON Format = iota
	TOML
)

// ErrFormat is returned for unknown file formats.
var ErrFormat = errors.New("unknown file format")

// FormatOf returns the format for the given file name, based on the
// extension.
func FormatOf(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", fname, ErrFormat)
	}
}

// fileCurve is the stored form of one curve.
type fileCurve struct {
	Points     []filePoint `json:"points" toml:"points"`
	Parameters fileParams  `json:"parameters" toml:"parameters"`
	Colors     fileColors  `json:"colors" toml:"colors"`
}

type filePoint struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// fileParams uses pointers so that a missing key can be told apart from
// an explicit zero.
type fileParams struct {
	TMin   *float64      `json:"tMin" toml:"tMin"`
	TMax   *float64      `json:"tMax" toml:"tMax"`
	TStep  *float64      `json:"tStep" toml:"tStep"`
	Method bezier.Method `json:"method" toml:"method"`
}

type fileColors struct {
	Polyline string `json:"polyline" toml:"polyline"`
	Curve    string `json:"curve" toml:"curve"`
}

// tomlFile wraps the curve list, since a TOML document must be a table.
type tomlFile struct {
	Curves []fileCurve `toml:"curve"`
}

func toFile(c *bezier.Curve) fileCurve {
	fc := fileCurve{
		Points: make([]filePoint, len(c.Points)),
		Parameters: fileParams{
			TMin:   &c.TMin,
			TMax:   &c.TMax,
			TStep:  &c.TStep,
			Method: c.Method,
		},
		Colors: fileColors{
			Polyline: c.PolylineColor,
			Curve:    c.CurveColor,
		},
	}
	for i, p := range c.Points {
		fc.Points[i] = filePoint{X: p.X, Y: p.Y}
	}
	return fc
}

// fromFile converts a stored curve.  Missing parameters take their
// default values, and so does a step of 0.
func fromFile(fc fileCurve) *bezier.Curve {
	c := bezier.NewCurve()
	c.Points = make([]vec.Vec2, len(fc.Points))
	for i, p := range fc.Points {
		c.Points[i] = vec.Vec2{X: p.X, Y: p.Y}
	}

	par := fc.Parameters
	if par.TMin != nil {
		c.TMin = *par.TMin
	}
	if par.TMax != nil {
		c.TMax = *par.TMax
	}
	if par.TStep != nil && *par.TStep != 0 {
		c.TStep = *par.TStep
	}
	c.Method = par.Method
	if fc.Colors.Polyline != "" {
		c.PolylineColor = fc.Colors.Polyline
	}
	if fc.Colors.Curve != "" {
		c.CurveColor = fc.Colors.Curve
	}
	return c
}

// Encode writes the curves to w.  JSON output is indented by two spaces.
func Encode(w io.Writer, format Format, curves []*bezier.Curve) error {
	stored := make([]fileCurve, len(curves))
	for i, c := range curves {
		stored[i] = toFile(c)
	}

	var data []byte
	var err error
	switch format {
	case JSON:
		data, err = json.MarshalIndent(stored, "", "  ")
	case TOML:
		data, err = toml.Marshal(tomlFile{Curves: stored})
	default:
		return ErrFormat
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads curves from r.  Every curve is validated.
func Decode(r io.Reader, format Format) ([]*bezier.Curve, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var stored []fileCurve
	switch format {
	case JSON:
		err = json.Unmarshal(data, &stored)
	case TOML:
		var f tomlFile
		err = toml.Unmarshal(data, &f)
		stored = f.Curves
	default:
		return nil, ErrFormat
	}
	if err != nil {
		return nil, err
	}

	curves := make([]*bezier.Curve, len(stored))
	for i, fc := range stored {
		c := fromFile(fc)
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i+1, err)
		}
		curves[i] = c
	}
	return curves, nil
}

// LoadFile reads a curve collection.  The format is chosen by the file
// name extension.
func LoadFile(fname string) ([]*bezier.Curve, error) {
	format, err := FormatOf(fname)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	curves, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return curves, nil
}

// SaveFile writes a curve collection.  The format is chosen by the file
// name extension.
func SaveFile(fname string, curves []*bezier.Curve) error {
	format, err := FormatOf(fname)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := Encode(buf, format, curves); err != nil {
		return err
	}
	return os.WriteFile(fname, buf.Bytes(), 0o644)
}
