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

// Package logo renders the application logo: a diagonal gradient with a
// white checkmark and a white letter on top.
//
// The letter is taken from a system font. If the font cannot be used,
// an elliptical ring is drawn in its place, so that rendering never
// depends on resources outside the program.
//
// All overlay geometry is defined on a 512×512 design grid and scaled to
// the requested canvas size.
package logo

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/logo/shape"
)

// Defaults for the generated logo.
const (
	DefaultSize      = 512
	DefaultOutput    = "assets/images/logo.png"
	DefaultFontPath  = "/System/Library/Fonts/Helvetica.ttc"
	DefaultLetter    = 'S'
	DefaultFontSize  = 120.0
	FallbackWidth    = 8.0
	defaultFontIndex = 0
)

var (
	// GlyphAnchor is the centre of the letter, in design coordinates.
	GlyphAnchor = vec.Vec2{X: 256, Y: 340}

	// FallbackBox is the outer boundary of the ring drawn when the letter
	// is not available.
	FallbackBox = rect.Rect{LLx: 156, LLy: 340, URx: 356, URy: 440}
)

// Options control the rendering of the logo.
type Options struct {
	// Size is the width and height of the canvas in pixels.
	Size int

	// FontPath is the font file used for the letter. Collections (.ttc)
	// are supported, FontIndex selects the face.
	FontPath  string
	FontIndex int

	Letter   rune
	FontSize float64 // pixels per em, in design coordinates

	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns the options for the standard 512×512 logo.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		FontPath:  DefaultFontPath,
		FontIndex: defaultFontIndex,
		Letter:    DefaultLetter,
		FontSize:  DefaultFontSize,
	}
}

// Result is a rendered logo.
type Result struct {
	Image *image.RGBA

	// Mark is the layer drawn next to the checkmark.
	Mark Mark

	// FallbackReason explains why the fallback ring was used instead of
	// the glyph. It is nil if the glyph was drawn.
	FallbackReason error
}

// Render draws the logo.
//
// Problems with the font do not cause an error. They select the
// fallback ring, and the reason is reported in Result.FallbackReason.
func Render(opts Options) (*Result, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", opts.Size)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	FillGradient(img)
	log.Debug("gradient filled", zap.Int("size", opts.Size))

	var font *Font
	var fontErr error
	if opts.FontPath == "" {
		fontErr = errNoFontPath
	} else {
		font, fontErr = LoadFont(opts.FontPath, opts.FontIndex)
	}
	mark, reason := ChooseMark(font, fontErr, opts)
	if reason != nil {
		log.Debug("using fallback ring", zap.Error(reason))
	} else {
		log.Debug("using glyph", zap.String("font", opts.FontPath), zap.String("letter", string(opts.Letter)))
	}

	c := NewCanvas(img)
	for _, layer := range Layers(mark) {
		c.Paint(layer, white)
		log.Debug("layer painted", zap.String("layer", layer.Name))
	}

	log.Debug("logo rendered", zap.Duration("elapsed", time.Since(start)))
	return &Result{Image: img, Mark: mark, FallbackReason: reason}, nil
}

// Layers returns the overlay shapes of the logo in painting order.
func Layers(m Mark) []shape.Shape {
	return []shape.Shape{shape.Checkmark(), m.Shape()}
}

// DesignCTM returns the matrix mapping design coordinates to a canvas
// of the given size.
func DesignCTM(size int) matrix.Matrix {
	s := float64(size) / shape.DesignSize
	return matrix.Matrix{s, 0, 0, s, 0, 0}
}
