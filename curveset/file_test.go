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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

func sampleCurves() []*bezier.Curve {
	a := bezier.NewCurve(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 3, Y: 3})
	b := bezier.NewCurve(vec.Vec2{X: -1, Y: 0.5}, vec.Vec2{X: 2, Y: -1})
	b.TMin, b.TMax, b.TStep = -0.5, 1.5, 0.1
	b.Method = bezier.Matrix
	b.PolylineColor, b.CurveColor = "#808080", "red"
	return []*bezier.Curve{a, b}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{JSON, TOML} {
		buf := &bytes.Buffer{}
		require.NoError(t, Encode(buf, format, sampleCurves()))

		got, err := Decode(buf, format)
		require.NoError(t, err)
		assert.Equal(t, sampleCurves(), got, "format %d", format)
	}
}

func TestDecodeExportShape(t *testing.T) {
	in := `[
  {
    "points": [{"x": 0, "y": 0}, {"x": 1, "y": 2}, {"x": 3, "y": 3}],
    "parameters": {"tMin": 0, "tMax": 1, "tStep": 0.01, "method": "matrix"},
    "colors": {"polyline": "gray", "curve": "blue"}
  }
]`
	curves, err := Decode(strings.NewReader(in), JSON)
	require.NoError(t, err)
	require.Len(t, curves, 1)
	c := curves[0]
	assert.Equal(t, bezier.Matrix, c.Method)
	assert.Equal(t, 100, c.NumSamples())
	assert.Equal(t, vec.Vec2{X: 1, Y: 2}, c.Points[1])
}

func TestEncodeJSONShape(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, JSON, sampleCurves()[1:]))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"points\": ["), out)
	assert.Contains(t, out, `"method": "matrix"`)
	assert.Contains(t, out, `"polyline": "#808080"`)
	assert.Contains(t, out, `"tStep": 0.1`)
}

func TestDecodeDefaults(t *testing.T) {
	in := `[{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}]}]`
	curves, err := Decode(strings.NewReader(in), JSON)
	require.NoError(t, err)
	want := bezier.NewCurve(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1})
	assert.Equal(t, want, curves[0])

	cases := []struct {
		name             string
		params           string
		tMin, tMax, step float64
	}{
		{"only_tmin", `{"tMin": 0.5}`, 0.5, 1, 0.01},
		{"only_tmax", `{"tMax": 2}`, 0, 2, 0.01},
		{"explicit_empty", `{"tMin": 0, "tMax": 0}`, 0, 0, 0.01},
		{"zero_step", `{"tMin": -1, "tMax": 1, "tStep": 0}`, -1, 1, 0.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := `[{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}], "parameters": ` + tc.params + `}]`
			curves, err := Decode(strings.NewReader(in), JSON)
			require.NoError(t, err)
			require.Len(t, curves, 1)
			assert.Equal(t, tc.tMin, curves[0].TMin)
			assert.Equal(t, tc.tMax, curves[0].TMax)
			assert.Equal(t, tc.step, curves[0].TStep)
		})
	}
}

func TestDecodeTOML(t *testing.T) {
	in := `
[[curve]]
points = [{x = 0, y = 0}, {x = 2, y = 0}, {x = 2, y = 2}]

[curve.parameters]
tStep = 0.25
method = "matrix"
`
	curves, err := Decode(strings.NewReader(in), TOML)
	require.NoError(t, err)
	require.Len(t, curves, 1)
	assert.Equal(t, 2, curves[0].Degree())
	assert.Equal(t, 4, curves[0].NumSamples())
	assert.Equal(t, bezier.Matrix, curves[0].Method)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"points": [{"x": 0, "y": 0}]}]`), JSON)
	assert.ErrorIs(t, err, bezier.ErrTooFewPoints)

	in := `[{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}], "parameters": {"tMin": 1, "tMax": 0.5}}]`
	_, err = Decode(strings.NewReader(in), JSON)
	assert.ErrorIs(t, err, bezier.ErrInvertedRange)

	in = `
[[curve]]
points = [{x = 0, y = 0}, {x = 1, y = 1}]

[curve.parameters]
tMax = inf
`
	_, err = Decode(strings.NewReader(in), TOML)
	assert.ErrorIs(t, err, bezier.ErrRange)

	in = `[{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}], "parameters": {"tMax": 1e300, "tStep": 0.5}}]`
	_, err = Decode(strings.NewReader(in), JSON)
	assert.ErrorIs(t, err, bezier.ErrTooManySamples)

	in = `[{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}], "parameters": {"method": "spline"}}]`
	_, err = Decode(strings.NewReader(in), JSON)
	assert.ErrorIs(t, err, bezier.ErrUnknownMethod)

	_, err = Decode(strings.NewReader(`{`), JSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`[]`), Format(9))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"curves.json", "curves.TOML"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, SaveFile(fname, sampleCurves()))
		got, err := LoadFile(fname)
		require.NoError(t, err)
		assert.Equal(t, sampleCurves(), got, name)
	}

	_, err := LoadFile(filepath.Join(dir, "curves.yaml"))
	assert.ErrorIs(t, err, ErrFormat)
	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestImportSVG(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g>
    <path d="M 10 20 C 20 0 40 0 50 20 L 60 20 Z"/>
  </g>
</svg>`
	curves, err := ImportSVG([]byte(in), 0.5)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(curves), 2)

	cubic := curves[0]
	want := []vec.Vec2{{X: 5, Y: -10}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 25, Y: -10}}
	require.Equal(t, 3, cubic.Degree())
	for i, p := range want {
		assert.InDelta(t, p.X, cubic.Points[i].X, 1e-9)
		assert.InDelta(t, p.Y, cubic.Points[i].Y, 1e-9)
	}

	line := curves[1]
	require.Equal(t, 1, line.Degree())
	assert.InDelta(t, 30, line.Points[1].X, 1e-9)

	for _, c := range curves {
		assert.NoError(t, c.Validate())
	}
}
