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

// Command export writes the vector layers of the logo as JSON, for use
// by external renderers.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/config"
	"seehuhn.de/go/logo/shape"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	flags.SetOutput(stderr)
	output := flags.String("o", "-", "output file, or - for standard output")
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
			fmt.Fprintf(stderr, "export: %v\n", err)
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

	out := jsonLogo{Size: shape.DesignSize}
	for _, layer := range logo.Layers(mark) {
		out.Layers = append(out.Layers, toJSON(layer))
	}

	if *output == "-" {
		err = writeJSON(stdout, out)
	} else {
		err = writeJSONFile(*output, out)
	}
	if err != nil {
		fmt.Fprintf(stderr, "export: %v\n", err)
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, out jsonLogo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeJSONFile writes out to the named file. Errors from closing the
// file are reported.
func writeJSONFile(fname string, out jsonLogo) (err error) {
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
	return writeJSON(f, out)
}

type jsonLogo struct {
	Size   int         `json:"size"`
	Layers []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name       string        `json:"name"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(s shape.Shape) jsonLayer {
	l := jsonLayer{
		Name: s.Name,
		Path: pathToJSON(s.Path),
	}
	switch op := s.Op.(type) {
	case shape.Fill:
		l.Op = "fill"
		l.FillRule = op.Rule.String()
	case shape.Stroke:
		l.Op = "stroke"
		l.LineWidth = op.Width
		l.LineCap = op.Cap.String()
		l.LineJoin = op.Join.String()
		l.MiterLimit = op.MiterLimit
	}
	return l
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
