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
)

// Stop is a fixed color at a position of the gradient.
type Stop struct {
	Offset float64 // in [0, 1]
	Color  color.RGBA
}

// Stops are the anchor colors of the background gradient, ordered by
// offset. Between two stops each channel is interpolated linearly and
// truncated to an integer.
var Stops = []Stop{
	{Offset: 0, Color: color.RGBA{R: 135, G: 206, B: 235, A: 255}}, // light blue
	{Offset: 0.5, Color: color.RGBA{R: 233, G: 30, B: 99, A: 255}}, // pink
	{Offset: 1, Color: color.RGBA{R: 156, G: 39, B: 176, A: 255}},  // purple
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// GradientAt returns the background color of pixel (x, y) on a canvas of
// the given size.
func GradientAt(x, y, size int) color.RGBA {
	return GradientColor(x+y, size)
}

// GradientColor returns the background color of all pixels with x+y = sum.
// The gradient position is sum/(2·size), so that the color only changes
// along the diagonal.
func GradientColor(sum, size int) color.RGBA {
	progress := float64(sum) / float64(2*size)

	last := len(Stops) - 1
	if progress < Stops[0].Offset {
		return Stops[0].Color
	}
	for i := range last {
		lo, hi := Stops[i], Stops[i+1]
		if progress < hi.Offset {
			t := (progress - lo.Offset) / (hi.Offset - lo.Offset)
			return color.RGBA{
				R: lerp(lo.Color.R, hi.Color.R, t),
				G: lerp(lo.Color.G, hi.Color.G, t),
				B: lerp(lo.Color.B, hi.Color.B, t),
				A: 255,
			}
		}
	}
	return Stops[last].Color
}

func lerp(low, high uint8, t float64) uint8 {
	return uint8(float64(low) + float64(int(high)-int(low))*t)
}

// FillGradient overwrites every pixel of img with the background
// gradient. The gradient is computed for a square canvas whose size is
// the width of img.
func FillGradient(img *image.RGBA) {
	b := img.Bounds()
	size := b.Dx()
	w, h := b.Dx(), b.Dy()

	// one color per diagonal
	colors := make([]color.RGBA, w+h-1)
	for sum := range colors {
		colors[sum] = GradientColor(sum, size)
	}

	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := range w {
			c := colors[x+y]
			row[4*x] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = 255
		}
	}
}
