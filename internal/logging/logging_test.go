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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected slog.Level
		err      bool
	}{
		{name: "", expected: slog.LevelInfo},
		{name: "debug", expected: slog.LevelDebug},
		{name: "INFO", expected: slog.LevelInfo},
		{name: "warn", expected: slog.LevelWarn},
		{name: "error", expected: slog.LevelError},
		{name: "loud", err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(test.name)
			if (err != nil) != test.err {
				t.Fatalf("ParseLevel(%q): unexpected error state: %v", test.name, err)
			}
			if got != test.expected {
				t.Errorf("ParseLevel(%q): want %v, got %v", test.name, test.expected, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatText, FormatJSON} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q): want %v, got %v", f, f, got)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\"): expected error")
	}
}

func TestNew_json(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatJSON)
	logger.Info("dropped")
	logger.Warn("unrecognized record", "id", "x_1", "block", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d: %q", len(lines), buf.String())
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	ts, ok := got["time"].(string)
	if !ok {
		t.Fatalf("time: want string, got %T", got["time"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time: %v", err)
	}
	delete(got, "time")

	expected := map[string]any{
		"level": "WARN",
		"msg":   "unrecognized record",
		"id":    "x_1",
		"block": float64(3),
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("log record (-want, +got):\n%s", diff)
	}
}

func TestNew_text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, FormatText).Info("wrote dictionary", "entries", 2)

	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="wrote dictionary"`, "entries=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	OrDiscard(nil).Error("nothing")

	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo, FormatText)
	if OrDiscard(l) != l {
		t.Error("OrDiscard: want the given logger")
	}
}
