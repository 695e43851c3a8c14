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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/logo/raster"
	"seehuhn.de/go/logo/shape"
)

// Canvas paints shapes given in design coordinates onto an image.
type Canvas struct {
	Img *image.RGBA

	// CTM maps design coordinates to pixels of Img.
	CTM matrix.Matrix

	r    *raster.Rasteriser
	mask *image.Alpha
}

// NewCanvas returns a canvas for img. The image must be square, with the
// origin at (0, 0). Its width determines the scale of the design grid.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
	return &Canvas{
		Img:  img,
		CTM:  DesignCTM(b.Dx()),
		r:    raster.NewRasteriser(clip),
		mask: image.NewAlpha(b),
	}
}

// Paint composites s in color c over the current image contents.
// Pixels fully inside the shape are set to c exactly.
func (c *Canvas) Paint(s shape.Shape, col color.Color) {
	clear(c.mask.Pix)

	c.r.Reset(c.r.Clip)
	c.r.CTM = c.CTM
	s.Rasterise(c.r, func(y, xMin int, coverage []float32) {
		row := c.mask.Pix[c.mask.PixOffset(xMin, y):]
		for i, cov := range coverage {
			row[i] = uint8(math.Round(float64(min(cov, 1)) * 255))
		}
	})

	b := c.Img.Bounds()
	draw.DrawMask(c.Img, b, image.NewUniform(col), image.Point{}, c.mask, b.Min, draw.Over)
}
