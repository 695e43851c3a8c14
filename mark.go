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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/logo/shape"
)

// Mark is the layer drawn together with the checkmark.
// It is either a Glyph or a FallbackRing.
type Mark interface {
	Shape() shape.Shape
	isMark()
}

// Glyph is a letter outline in design coordinates.
type Glyph struct {
	Rune    rune
	Outline *path.Data
}

func (g Glyph) Shape() shape.Shape {
	return shape.Glyph(g.Outline)
}

func (Glyph) isMark() {}

// FallbackRing is the elliptical outline used when no glyph is available.
type FallbackRing struct {
	Box   rect.Rect // outer boundary of the ring
	Width float64
}

func (f FallbackRing) Shape() shape.Shape {
	return shape.FallbackRing(f.Box, f.Width)
}

func (FallbackRing) isMark() {}

// DefaultFallback returns the standard fallback ring.
func DefaultFallback() FallbackRing {
	return FallbackRing{Box: FallbackBox, Width: FallbackWidth}
}

// ChooseMark decides whether the letter can be drawn.
//
// font and fontErr are the results of loading the font. If the font is
// usable, the glyph for opts.Letter is returned. Otherwise the result is
// the fallback ring, together with the reason why the glyph could not be
// used. The error is informational: the returned Mark is always valid.
func ChooseMark(font *Font, fontErr error, opts Options) (Mark, error) {
	if fontErr != nil {
		return DefaultFallback(), fmt.Errorf("loading font: %w", fontErr)
	}
	if font == nil {
		return DefaultFallback(), errNoFontPath
	}
	outline, err := font.Outline(opts.Letter, opts.FontSize, GlyphAnchor)
	if err != nil {
		return DefaultFallback(), fmt.Errorf("glyph %q: %w", opts.Letter, err)
	}
	return Glyph{Rune: opts.Letter, Outline: outline}, nil
}
