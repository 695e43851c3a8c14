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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExportFallback(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.ttc")
	if code := run([]string{"-font", missing}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}

	var got jsonLogo
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Size != 512 || len(got.Layers) != 2 {
		t.Fatalf("size %d, %d layers", got.Size, len(got.Layers))
	}

	check := got.Layers[0]
	wantPath := []jsonSegment{
		{Cmd: "M", Pts: [][]float64{{170, 256}}},
		{Cmd: "L", Pts: [][]float64{{220, 306}}},
		{Cmd: "L", Pts: [][]float64{{342, 184}}},
	}
	if d := cmp.Diff(wantPath, check.Path); d != "" {
		t.Errorf("checkmark path (-want +got):\n%s", d)
	}
	if check.Op != "stroke" || check.LineWidth != 40 {
		t.Errorf("checkmark op %q, width %g", check.Op, check.LineWidth)
	}

	ring := got.Layers[1]
	if ring.Name != "fallback_ring" || ring.Op != "stroke" || ring.LineWidth != 8 {
		t.Errorf("unexpected ring layer %+v", ring)
	}
	if n := len(ring.Path); n != 6 || ring.Path[n-1].Cmd != "Z" {
		t.Errorf("ring path has %d segments", n)
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "logo.yaml")
	content := "font: " + filepath.Join(dir, "missing.ttc") + "\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "layers.json")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfgFile, "-o", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout %q", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got jsonLogo
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Layers) != 2 || got.Layers[1].Name != "fallback_ring" {
		t.Errorf("unexpected layers %+v", got.Layers)
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(dir, "missing.ttc")

	args := []string{"-font", missing, "-o", filepath.Join(dir, "no-such-dir", "layers.json")}
	if code := run(args, &stdout, &stderr); code != 1 {
		t.Errorf("unwritable output: exit code %d, want 1", code)
	}

	args = []string{"-config", filepath.Join(dir, "missing.yaml")}
	if code := run(args, &stdout, &stderr); code != 1 {
		t.Errorf("missing config: exit code %d, want 1", code)
	}
}
