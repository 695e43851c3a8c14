// seehuhn.de/go/logo - a procedural logo generator
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

package logo

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat indicates that no encoder is available for the
// requested output file type.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encoder writes an image in a specific file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// SupportedExtensions lists the file name extensions EncoderFor accepts.
func SupportedExtensions() []string {
	return slices.Sorted(maps.Keys(encoders))
}

// EncoderFor selects the encoder from the file name extension.
// Extensions are matched without regard to case.
func EncoderFor(fname string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	enc, ok := encoders[ext]
	if !ok {
		if ext == "" {
			return nil, fmt.Errorf("%w: %s has no file name extension", ErrUnsupportedFormat, fname)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// WriteFile encodes img into the named file, which is created or
// truncated. The encoder is chosen by EncoderFor. The directory
// containing the file must exist.
func WriteFile(fname string, img image.Image) (err error) {
	enc, err := EncoderFor(fname)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return enc(f, img)
}
