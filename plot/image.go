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
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrImageFormat is returned by [WriteImage] for unsupported file name
// extensions.
var ErrImageFormat = errors.New("unsupported image format")

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteImage writes img to the named file.  The format is chosen by the
// file name extension: ".png", ".tif", ".tiff" or ".bmp".
func WriteImage(fname string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		encode = WritePNG
	case ".tif", ".tiff":
		encode = func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("%s: %w", fname, ErrImageFormat)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
