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

// Command logopdf writes the logo as a one-page PDF file.
//
// The page is size×size points. The gradient is drawn as one band per
// pixel diagonal, with the same colors as the raster image, and the
// overlays are drawn as vector paths.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/config"
	"seehuhn.de/go/logo/shape"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("logopdf", flag.ContinueOnError)
	flags.SetOutput(stderr)
	output := flags.String("o", "logo.pdf", "output file")
	configFile := flags.String("config", "", "YAML file with settings")
	fontPath := flags.String("font", logo.DefaultFontPath, "font file for the letter")
	verbose := flags.Bool("v", false, "show debug messages")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := config.NewLogger(stderr, *verbose)
	defer log.Sync()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating logo: %v\n", err)
			return 1
		}
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "font" {
			cfg.FontPath = *fontPath
		}
	})

	opts := cfg.Options(log)
	font, err := logo.LoadFont(opts.FontPath, opts.FontIndex)
	mark, reason := logo.ChooseMark(font, err, opts)
	if reason != nil {
		log.Debug("using fallback ring", zap.Error(reason))
	}

	if err := writePDF(*output, cfg.Size, mark); err != nil {
		fmt.Fprintf(stderr, "Error creating logo: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Logo created successfully at %s\n", *output)
	return 0
}

func writePDF(fname string, size int, mark logo.Mark) error {
	n := float64(size)
	paper := &pdf.Rectangle{URx: n, URy: n}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Switch to image coordinates, with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, n})

	for sum := 0; sum <= 2*size-2; sum++ {
		lo, hi := float64(sum)+0.5, float64(sum)+1.5
		if sum == 0 {
			lo = 0
		}
		if sum == 2*size-2 {
			hi = 2 * n
		}
		band := diagonalBand(n, lo, hi)
		if len(band) < 3 {
			continue
		}
		page.SetFillColor(bandColor(sum, size))
		page.MoveTo(band[0].X, band[0].Y)
		for _, p := range band[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.Fill()
	}

	page.Transform(logo.DesignCTM(size))
	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	for _, layer := range logo.Layers(mark) {
		switch op := layer.Op.(type) {
		case shape.Stroke:
			page.SetLineWidth(op.Width)
			page.SetLineCap(op.Cap)
			page.SetLineJoin(op.Join)
			page.SetMiterLimit(op.MiterLimit)
		}

		for cmd, pts := range layer.Path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		switch op := layer.Op.(type) {
		case shape.Fill:
			if op.Rule == shape.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		case shape.Stroke:
			page.Stroke()
		}
	}

	return page.Close()
}

// bandColor returns the gradient color of the diagonal x+y = sum.
func bandColor(sum, size int) color.DeviceRGB {
	c := logo.GradientColor(sum, size)
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// diagonalBand returns the part of the square [0,n]×[0,n] where
// lo ≤ x+y ≤ hi, as a convex polygon.
func diagonalBand(n, lo, hi float64) []vec.Vec2 {
	poly := []vec.Vec2{{X: 0, Y: 0}, {X: n, Y: 0}, {X: n, Y: n}, {X: 0, Y: n}}
	poly = clipHalfPlane(poly, func(p vec.Vec2) float64 { return p.X + p.Y - lo })
	poly = clipHalfPlane(poly, func(p vec.Vec2) float64 { return hi - p.X - p.Y })
	return poly
}

// clipHalfPlane keeps the part of the convex polygon where f ≥ 0.
// The function f must be affine.
func clipHalfPlane(poly []vec.Vec2, f func(vec.Vec2) float64) []vec.Vec2 {
	var res []vec.Vec2
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		fa, fb := f(a), f(b)
		if fa >= 0 {
			res = append(res, a)
		}
		if (fa >= 0) != (fb >= 0) {
			t := fa / (fa - fb)
			res = append(res, a.Add(b.Sub(a).Mul(t)))
		}
	}
	return res
}
