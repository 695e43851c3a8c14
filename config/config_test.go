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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"seehuhn.de/go/logo"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "logo.yaml")
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestDefault(t *testing.T) {
	want := &Config{
		Size:      512,
		Output:    "assets/images/logo.png",
		FontPath:  "/System/Library/Fonts/Helvetica.ttc",
		FontIndex: 0,
		Letter:    "S",
		FontSize:  120,
	}
	if d := cmp.Diff(want, Default()); d != "" {
		t.Errorf("defaults (-want +got):\n%s", d)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	fname := writeFile(t, `
size: 1024
output: out/logo.bmp
font: /usr/share/fonts/DejaVuSans.ttf
letter: Z
`)
	c, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Size = 1024
	want.Output = "out/logo.bmp"
	want.FontPath = "/usr/share/fonts/DejaVuSans.ttf"
	want.Letter = "Z"
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(writeFile(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), c); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errText string
	}{
		{"unknown_key", "colour: red\n", "colour"},
		{"bad_type", "size: big\n", "cannot unmarshal"},
		{"zero_size", "size: 0\n", "invalid size"},
		{"long_letter", "letter: SX\n", "single character"},
		{"bad_font_size", "fontSize: -3\n", "font size"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, c.content))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), c.errText) {
				t.Errorf("error %q does not mention %q", err, c.errText)
			}
		})
	}

	if _, err := Load(""); err == nil {
		t.Error("no error for an empty file name")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Letter = "Ä"
	c.Size = 64

	opts := c.Options(zap.NewNop())
	want := logo.DefaultOptions()
	want.Size = 64
	want.Letter = 'Ä'
	if opts.Logger == nil {
		t.Error("logger not passed on")
	}
	opts.Logger = nil
	if d := cmp.Diff(want, opts); d != "" {
		t.Errorf("options (-want +got):\n%s", d)
	}
}
