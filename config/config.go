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

// Package config holds the settings of the logo tools.
//
// Settings start from the built-in defaults, can be overridden by a YAML
// file, and finally by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/logo"
)

// Config is the complete set of settings.
type Config struct {
	// Size of the square output image, in pixels.
	Size int
	// Output is the file to write. The extension selects the format.
	Output string
	// Font file for the letter. If it cannot be used, a ring is drawn.
	FontPath  string `yaml:"font"`
	FontIndex int    `yaml:"fontIndex"`
	// Letter must be a single character.
	Letter   string
	FontSize float64 `yaml:"fontSize"`
}

// Default returns the settings for the standard logo.
func Default() *Config {
	opts := logo.DefaultOptions()
	return &Config{
		Size:      opts.Size,
		Output:    logo.DefaultOutput,
		FontPath:  opts.FontPath,
		FontIndex: opts.FontIndex,
		Letter:    string(opts.Letter),
		FontSize:  opts.FontSize,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the
// file keep their default values, unknown keys are an error. An empty
// file is allowed.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, errors.New("missing config file")
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	c := Default()
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Validate checks that the settings describe a logo which can be drawn.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("invalid size %d", c.Size)
	case c.Output == "":
		return errors.New("missing output file name")
	case utf8.RuneCountInString(c.Letter) != 1:
		return fmt.Errorf("letter %q must be a single character", c.Letter)
	case c.FontSize <= 0:
		return fmt.Errorf("invalid font size %g", c.FontSize)
	case c.FontIndex < 0:
		return fmt.Errorf("invalid font index %d", c.FontIndex)
	}
	return nil
}

// Options converts the settings into rendering options.
// The configuration must be valid.
func (c *Config) Options(log *zap.Logger) logo.Options {
	letter, _ := utf8.DecodeRuneInString(c.Letter)
	return logo.Options{
		Size:      c.Size,
		FontPath:  c.FontPath,
		FontIndex: c.FontIndex,
		Letter:    letter,
		FontSize:  c.FontSize,
		Logger:    log,
	}
}
