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

package frdict_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-frdict"
	"github.com/ianlewis/go-frdict/store"
)

func newTestDictionary() *frdict.Dictionary {
	s := store.New()
	add := func(w string, tags ...string) {
		e := s.GetOrCreate(w)
		for _, tag := range tags {
			e.Syntax = append(e.Syntax, store.SyntaxRecord{PartOfSpeech: "nc", Lemma: w, Tag: tag})
		}
	}
	add("chat", "ms")
	add("chaton", "ms")
	add("été", "ms")
	add("ete")
	add("oeuvre", "fs")
	add("pomme", "fs")
	add("pomme de terre", "fs")
	add("terre", "fs")
	add("aujourd'hui")
	add("grand-mère", "fs")
	add("maison des jeunes et de la culture", "fs")
	add("de")
	add("la")
	add("élève", "ms", "fs")
	add("chats", "mp")
	s.AddDefinition("chat", `<d:entry id="f_1"><span>cat</span></d:entry>`)
	return frdict.NewDictionary(s)
}

func words(entries []*frdict.Entry) []string {
	var w []string
	for _, e := range entries {
		w = append(w, e.Word())
	}
	return w
}

func TestDictionary_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		expected string
	}{
		{query: "chat", expected: "chat"},
		{query: "CHAT", expected: "chat"},
		{query: "  chat ", expected: "chat"},
		{query: "Œuvre", expected: "oeuvre"},
		{query: "pomme  de\tterre", expected: "pomme de terre"},
		{query: "été", expected: "été"},
		{query: "ete", expected: "ete"},
		{query: "chien", expected: ""},
	}

	d := newTestDictionary()
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			t.Parallel()

			e := d.Lookup(test.query)
			got := ""
			if e != nil {
				got = e.Word()
			}
			if got != test.expected {
				t.Errorf("Lookup(%q): want %q, got %q", test.query, test.expected, got)
			}
		})
	}
}

func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		expected []string
	}{
		{query: "ete", expected: []string{"été", "ete"}},
		{query: "ÉTÉ", expected: []string{"été", "ete"}},
		{query: "grand-mere", expected: []string{"grand-mère"}},
		{query: "eleve", expected: []string{"élève"}},
		{query: "chien", expected: nil},
	}

	d := newTestDictionary()
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, words(d.Search(test.query))); diff != "" {
				t.Errorf("Search(%q) (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

func TestDictionary_Complete(t *testing.T) {
	t.Parallel()

	d := newTestDictionary()
	if diff := cmp.Diff([]string{"chat", "chaton", "chats"}, words(d.Complete("Chat", 0))); diff != "" {
		t.Errorf("Complete (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pomme", "pomme de terre"}, words(d.Complete("pom", 2))); diff != "" {
		t.Errorf("Complete (-want, +got):\n%s", diff)
	}
	if got := d.Complete("zz", 0); got != nil {
		t.Errorf("Complete: want nil, got %v", words(got))
	}
}

type phrase struct {
	Text   string
	Source string
}

func TestDictionary_Segment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []phrase
	}{
		{
			name: "single words",
			text: "Le chat mange.",
			expected: []phrase{
				{Text: "chat", Source: "chat"},
			},
		},
		{
			name: "longest phrase",
			text: "Une pomme de terre, une pomme.",
			expected: []phrase{
				{Text: "pomme de terre", Source: "pomme de terre"},
				{Text: "pomme", Source: "pomme"},
			},
		},
		{
			name: "seven words",
			text: "La Maison des jeunes et de la culture ferme.",
			expected: []phrase{
				{Text: "la", Source: "La"},
				{Text: "maison des jeunes et de la culture", Source: "Maison des jeunes et de la culture"},
			},
		},
		{
			name: "apostrophe and hyphen",
			text: "«Aujourd'hui», dit grand-mère.",
			expected: []phrase{
				{Text: "aujourd'hui", Source: "Aujourd'hui"},
				{Text: "grand-mère", Source: "grand-mère"},
			},
		},
		{
			name: "ligature",
			text: "Quelle ŒUVRE !",
			expected: []phrase{
				{Text: "oeuvre", Source: "ŒUVRE"},
			},
		},
		{
			name:     "nothing",
			text:     "... !",
			expected: nil,
		},
	}

	d := newTestDictionary()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var got []phrase
			for _, p := range d.Segment(test.text) {
				if p.Entry == nil || p.Entry.Word() != p.Text {
					t.Errorf("phrase %q: entry does not match", p.Text)
				}
				got = append(got, phrase{
					Text:   p.Text,
					Source: test.text[p.Start:p.End],
				})
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Segment(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestEntry_Gender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected frdict.Gender
	}{
		{word: "chat", expected: frdict.GenderMasculine},
		{word: "chats", expected: frdict.GenderMasculine},
		{word: "pomme", expected: frdict.GenderFeminine},
		{word: "élève", expected: frdict.GenderUnknown},
		{word: "aujourd'hui", expected: frdict.GenderUnknown},
	}

	d := newTestDictionary()
	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			t.Parallel()

			e := d.Lookup(test.word)
			if e == nil {
				t.Fatalf("Lookup(%q): not found", test.word)
			}
			if got := e.Gender(); got != test.expected {
				t.Errorf("Gender: want %v, got %v", test.expected, got)
			}
		})
	}
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	e := newTestDictionary().Lookup("chat")
	if diff := cmp.Diff("chat\ncat\n", e.String()); diff != "" {
		t.Errorf("String (-want, +got):\n%s", diff)
	}

	if !strings.HasPrefix(newTestDictionary().Lookup("terre").String(), "terre\n") {
		t.Error("String: missing headword")
	}
}

func TestEntry_copies(t *testing.T) {
	t.Parallel()

	e := newTestDictionary().Lookup("chat")
	e.Syntax()[0].Tag = "fs"
	e.Definitions()[0] = ""

	if got := e.Syntax()[0].Tag; got != "ms" {
		t.Errorf("Syntax: modified through copy: %q", got)
	}
	if got := e.Definitions()[0]; got == "" {
		t.Error("Definitions: modified through copy")
	}
}
