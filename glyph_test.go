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
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/path"
)

func goFont(t *testing.T) *Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF, 0)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestOutlineCentred(t *testing.T) {
	f := goFont(t)
	p, err := f.Outline('S', DefaultFontSize, GlyphAnchor)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Cmds) == 0 || p.Cmds[0] != path.CmdMoveTo {
		t.Fatalf("outline does not start with MoveTo: %v", p.Cmds)
	}
	if p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Error("outline is not closed")
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, c := range p.Coords {
		xMin, xMax = min(xMin, c.X), max(xMax, c.X)
		yMin, yMax = min(yMin, c.Y), max(yMax, c.Y)
	}
	if cx := (xMin + xMax) / 2; math.Abs(cx-GlyphAnchor.X) > 10 {
		t.Errorf("horizontal centre %.1f, want about %.1f", cx, GlyphAnchor.X)
	}
	if cy := (yMin + yMax) / 2; math.Abs(cy-GlyphAnchor.Y) > 20 {
		t.Errorf("vertical centre %.1f, want about %.1f", cy, GlyphAnchor.Y)
	}
	if h := yMax - yMin; h < 60 || h > 120 {
		t.Errorf("glyph height %.1f at 120 pixels per em", h)
	}
}

func TestOutlineMissingGlyph(t *testing.T) {
	f := goFont(t)
	_, err := f.Outline('\U0001F600', DefaultFontSize, GlyphAnchor)
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("got %v, want ErrNoGlyph", err)
	}

	// the space has a glyph, but no outline
	_, err = f.Outline(' ', DefaultFontSize, GlyphAnchor)
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("space: got %v, want ErrNoGlyph", err)
	}
}

func TestParseFontErrors(t *testing.T) {
	if _, err := ParseFont([]byte("not a font"), 0); err == nil {
		t.Error("no error for garbage data")
	}
	if _, err := ParseFont(goregular.TTF, 1); err == nil {
		t.Error("no error for an out of range face index")
	}
}

func TestChooseMark(t *testing.T) {
	opts := DefaultOptions()

	m, err := ChooseMark(goFont(t), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(Glyph); !ok {
		t.Errorf("got %T, want Glyph", m)
	}

	loadErr := errors.New("unreadable")
	m, err = ChooseMark(nil, loadErr, opts)
	if !errors.Is(err, loadErr) {
		t.Errorf("reason %v does not wrap the load error", err)
	}
	if m != DefaultFallback() {
		t.Errorf("got %#v, want the default fallback", m)
	}

	opts.Letter = '\U0001F600'
	m, err = ChooseMark(goFont(t), nil, opts)
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("reason %v, want ErrNoGlyph", err)
	}
	if _, ok := m.(FallbackRing); !ok {
		t.Errorf("got %T, want FallbackRing", m)
	}
}
