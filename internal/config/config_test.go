// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolate points the user config directory at an empty directory and clears
// the path variables.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"FRDICT_LEXICON", "FRDICT_CONTAINER", "FRDICT_OUTPUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := &Config{
		Output: DefaultOutput,
		Format: "gzip",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_yaml(t *testing.T) {
	isolate(t)

	path := writeYAML(t, t.TempDir(), strings.Join([]string{
		"lexicon: /data/lefff.mlex",
		"container: /data/Body.data",
		"output: out.data",
		"format: dictzip",
		"parallel: true",
		"checksum: true",
		"log:",
		"  level: debug",
		"  format: json",
		"",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := &Config{
		Lexicon:   "/data/lefff.mlex",
		Container: "/data/Body.data",
		Output:    "out.data",
		Format:    "dictzip",
		Parallel:  true,
		Checksum:  true,
		Log: LogConfig{
			Level:  "debug",
			Format: "json",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_envOverridesYAML(t *testing.T) {
	isolate(t)

	path := writeYAML(t, t.TempDir(), "lexicon: a.mlex\noutput: a.data\n")
	t.Setenv("FRDICT_LEXICON", "b.mlex")
	t.Setenv("FRDICT_CONTAINER", "Body.data")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Lexicon, "b.mlex"; got != want {
		t.Errorf("Lexicon: want %q, got %q", want, got)
	}
	if got, want := cfg.Container, "Body.data"; got != want {
		t.Errorf("Container: want %q, got %q", want, got)
	}
	if got, want := cfg.Output, "a.data"; got != want {
		t.Errorf("Output: want %q, got %q", want, got)
	}
}

func TestLoad_defaultPath(t *testing.T) {
	isolate(t)

	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatal(err)
	}
	writeYAML(t, filepath.Dir(p), "container: /from/default/Body.data\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Container, "/from/default/Body.data"; got != want {
		t.Errorf("Container: want %q, got %q", want, got)
	}
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad format",
			content: "format: zip\n",
		},
		{
			name:    "bad log level",
			content: "log:\n  level: loud\n",
		},
		{
			name:    "bad log format",
			content: "log:\n  format: xml\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			isolate(t)

			path := writeYAML(t, t.TempDir(), test.content)
			if _, err := Load(path); err == nil {
				t.Fatal("Load: expected error")
			}
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: expected error")
	}
}
