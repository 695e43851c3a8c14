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
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNoGlyph is returned by Font.Outline if the font has no glyph for
	// the requested character, or if the glyph has no outline.
	ErrNoGlyph = errors.New("no glyph outline")

	errNoFontPath = errors.New("no font file configured")
)

// Font is a single face from a TrueType or OpenType font file.
type Font struct {
	f   *sfnt.Font
	buf sfnt.Buffer
}

// LoadFont reads a font file. The file may be a font collection, in which
// case index selects the face. For single fonts, index must be 0.
func LoadFont(fname string, index int) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(data, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// ParseFont parses face index of a font or font collection.
// The data must not be modified while the font is in use.
func ParseFont(data []byte, index int) (*Font, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if n := c.NumFonts(); index < 0 || index >= n {
		return nil, fmt.Errorf("font index %d out of range [0, %d)", index, n)
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, err
	}
	return &Font{f: f}, nil
}

// Outline returns the outline of the glyph for r at ppem pixels per em,
// in a y-down coordinate system. The glyph is positioned so that the
// middle of its advance width and the middle between ascender and
// descender are at anchor.
func (f *Font) Outline(r rune, ppem float64, anchor vec.Vec2) (*path.Data, error) {
	size := fixed.Int26_6(math.Round(ppem * 64))
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", ppem)
	}

	gid, err := f.f.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, err
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}

	metrics, err := f.f.Metrics(&f.buf, size, font.HintingNone)
	if err != nil {
		return nil, err
	}
	advance, err := f.f.GlyphAdvance(&f.buf, gid, size, font.HintingNone)
	if err != nil {
		return nil, err
	}
	origin := vec.Vec2{
		X: anchor.X - fromFixed(advance)/2,
		Y: anchor.Y + fromFixed(metrics.Ascent-metrics.Descent)/2,
	}

	// The segments are only valid until the next use of f.buf.
	segs, err := f.f.LoadGlyph(&f.buf, gid, size, nil)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}

	p := &path.Data{}
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fromFixed(q.X), Y: origin.Y + fromFixed(q.Y)}
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		p.Close()
	}
	return p, nil
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
