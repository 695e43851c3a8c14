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

// Logogen writes the application logo as an image file.
//
// Usage:
//
//	logogen [-o file] [-size n] [-font file] [-font-index i] [-config file] [-v]
//
// Without arguments, a 512×512 PNG is written to assets/images/logo.png.
// The output format is chosen by the file name extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("logogen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	output := flags.String("o", logo.DefaultOutput, "output file (.png, .bmp, .tif or .tiff)")
	size := flags.Int("size", logo.DefaultSize, "width and height of the image in pixels")
	fontPath := flags.String("font", logo.DefaultFontPath, "font file for the letter")
	fontIndex := flags.Int("font-index", 0, "face index within a font collection")
	configFile := flags.String("config", "", "YAML file with settings")
	verbose := flags.Bool("v", false, "show debug messages")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
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
		log.Debug("config loaded", zap.String("file", *configFile))
	}

	// explicit flags take precedence over the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "size":
			cfg.Size = *size
		case "font":
			cfg.FontPath = *fontPath
		case "font-index":
			cfg.FontIndex = *fontIndex
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error creating logo: %v\n", err)
		return 1
	}

	// Check that the output can be written before doing any work.
	if _, err := logo.EncoderFor(cfg.Output); err != nil {
		fmt.Fprintf(stderr, "%v\nPlease choose an output file ending in one of: %s\n",
			err, strings.Join(logo.SupportedExtensions(), ", "))
		return 1
	}

	res, err := logo.Render(cfg.Options(log))
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logo: %v\n", err)
		return 1
	}
	if res.FallbackReason != nil {
		log.Debug("letter replaced by ring", zap.Error(res.FallbackReason))
	}

	if err := logo.WriteFile(cfg.Output, res.Image); err != nil {
		fmt.Fprintf(stderr, "Error creating logo: %v\n", err)
		return 1
	}
	log.Debug("image written", zap.String("file", cfg.Output), zap.Int("size", cfg.Size))

	fmt.Fprintf(stdout, "Logo created successfully at %s\n", cfg.Output)
	return 0
}
