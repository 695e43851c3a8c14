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

// Package shape describes the vector layers of the logo.
//
// All coordinates are in 512-space: a 512×512 square with the origin in
// the top-left corner and y pointing down.
package shape

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/logo/raster"
)

// DesignSize is the side length of the square all shapes are defined in.
const DesignSize = 512

// Shape is a single layer of the logo.
type Shape struct {
	Name string     // lowercase a-z and _ only
	Path *path.Data // the geometry, in 512-space
	Op   Operation  // fill or stroke
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64
}

func (Stroke) isOperation() {}

// Rasterise draws the shape with r, which must already carry the CTM and
// clip rectangle. The stroke parameters of r are overwritten.
func (s Shape) Rasterise(r *raster.Rasteriser, emit raster.EmitFunc) {
	switch op := s.Op.(type) {
	case Fill:
		if op.Rule == EvenOdd {
			r.FillEvenOdd(s.Path, emit)
		} else {
			r.FillNonZero(s.Path, emit)
		}
	case Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Stroke(s.Path, emit)
	}
}

// Checkmark stroke geometry.
var (
	CheckmarkPoints = []vec.Vec2{{X: 170, Y: 256}, {X: 220, Y: 306}, {X: 342, Y: 184}}
	CheckmarkWidth  = 40.0
)

// Checkmark returns the white tick across the upper half of the logo.
// Both arms form a single polyline, so the corner is joined instead of
// being covered twice.
//
// The arms end in round caps, which reach CheckmarkWidth/2 beyond the
// end points in CheckmarkPoints. This differs from plain butt-ended
// lines through the same points and makes the end points themselves
// fully white.
func Checkmark() Shape {
	return Shape{
		Name: "checkmark",
		Path: Polyline(CheckmarkPoints...),
		Op: Stroke{
			Width:      CheckmarkWidth,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	}
}

// FallbackRing returns an elliptical outline of the given line width,
// whose outer edge touches the sides of box.
func FallbackRing(box rect.Rect, width float64) Shape {
	d := width / 2
	inset := rect.Rect{LLx: box.LLx + d, LLy: box.LLy + d, URx: box.URx - d, URy: box.URy - d}
	return Shape{
		Name: "fallback_ring",
		Path: Ellipse(inset),
		Op: Stroke{
			Width:      width,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	}
}

// Glyph returns a filled layer for a glyph outline.
func Glyph(outline *path.Data) Shape {
	return Shape{
		Name: "glyph",
		Path: outline,
		Op:   Fill{Rule: NonZero},
	}
}

// Polyline returns an open path through the given points.
func Polyline(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// Ellipse returns a closed path around the ellipse inscribed in box,
// made of four cubic Bézier arcs. The path starts at the top and runs
// clockwise on screen.
func Ellipse(box rect.Rect) *path.Data {
	// control point distance for a quarter circle
	const k = 0.5522847498

	cx := (box.LLx + box.URx) / 2
	cy := (box.LLy + box.URy) / 2
	rx := (box.URx - box.LLx) / 2
	ry := (box.URy - box.LLy) / 2
	kx, ky := k*rx, k*ry

	return (&path.Data{}).
		MoveTo(pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		Close()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
