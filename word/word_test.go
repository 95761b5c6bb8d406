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

package word

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var samples = []string{
	"",
	"chat",
	"Chat",
	"CŒUR",
	"œuf",
	"Ægypte",
	"l'heure",
	"L'Heure",
	"aujourd'hui",
	"c.-à-d.",
	"Été",
	"pomme de terre",
	"'hello",
	"-",
	"123",
	"naïve",
	"straße",
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "œuf", expected: "oeuf"},
		{input: "cœur", expected: "coeur"},
		{input: "Œuvre", expected: "oeuvre"},
		{input: "CURRICULUM VITÆ", expected: "curriculum vitae"},
		{input: "Chat", expected: "chat"},
		{input: "Été", expected: "été"},
		{input: "l'Heure", expected: "l'heure"},
		{input: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Normalize(test.input)); diff != "" {
				t.Errorf("Normalize(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestNormalize_idempotent(t *testing.T) {
	t.Parallel()

	for _, w := range samples {
		once := Normalize(w)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", w, twice, once)
		}
	}
}

func TestIsAdmissible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "hello", expected: true},
		{input: "'hello", expected: false},
		{input: "-", expected: false},
		{input: "l'heure", expected: true},
		{input: "été", expected: true},
		{input: "naïve", expected: true},
		{input: "pomme de terre", expected: true},
		{input: "c.-à-d.", expected: true},
		{input: "a.", expected: true},
		{input: " chat", expected: false},
		{input: ".chat", expected: false},
		{input: "Chat", expected: false},
		{input: "chat2", expected: false},
		{input: "chat!", expected: false},
		{input: "straße", expected: false},
		{input: "œuf", expected: false},
		{input: "", expected: false},
		{input: "'-.", expected: false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			if got := IsAdmissible(test.input); got != test.expected {
				t.Errorf("IsAdmissible(%q) = %v, want %v", test.input, got, test.expected)
			}
		})
	}
}

func TestIsAdmissible_stable(t *testing.T) {
	t.Parallel()

	for _, w := range samples {
		if IsAdmissible(w) && !IsAdmissible(Normalize(w)) {
			t.Errorf("%q is admissible but Normalize(%q) = %q is not", w, w, Normalize(w))
		}
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "Été", expected: "ete"},
		{input: "cœur", expected: "coeur"},
		{input: "naïve", expected: "naive"},
		{input: "garçon", expected: "garcon"},
		{input: "chat", expected: "chat"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Fold(test.input)); diff != "" {
				t.Errorf("Fold(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}
