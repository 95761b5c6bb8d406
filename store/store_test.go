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

package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func words(s *Store) []string {
	var w []string
	for _, e := range s.Entries() {
		w = append(w, e.Word)
	}
	return w
}

func TestStore_GetOrCreate(t *testing.T) {
	t.Parallel()

	s := New()
	a := s.GetOrCreate("chat")
	b := s.GetOrCreate("chien")
	if got := s.GetOrCreate("chat"); got != a {
		t.Fatalf("GetOrCreate returned a new entry for an existing word")
	}
	if b.Word != "chien" {
		t.Fatalf("Word: want %q, got %q", "chien", b.Word)
	}
	if want, got := 2, s.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	if diff := cmp.Diff([]string{"chat", "chien"}, words(s)); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}

	if _, ok := s.Get("oiseau"); ok {
		t.Fatalf("Get: unexpected entry for %q", "oiseau")
	}
	if e, ok := s.Get("chat"); !ok || e != a {
		t.Fatalf("Get: want existing entry for %q", "chat")
	}
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddSyntax("chat", SyntaxRecord{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"})
	s.AddDefinition("chatte", "<d/>")
	s.AddSyntax("chat", SyntaxRecord{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"})

	expected := []*Entry{
		{
			Word: "chat",
			Syntax: []SyntaxRecord{
				{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"},
				{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"},
			},
		},
		{
			Word:        "chatte",
			Definitions: []Definition{"<d/>"},
		},
	}
	if diff := cmp.Diff(expected, s.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
}

func TestStore_Merge(t *testing.T) {
	t.Parallel()

	lex := New()
	lex.AddSyntax("chat", SyntaxRecord{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"})
	lex.AddSyntax("chats", SyntaxRecord{PartOfSpeech: "nc", Lemma: "chat", Tag: "mp"})

	defs := New()
	defs.AddDefinition("chien", "<chien/>")
	defs.AddDefinition("chat", "<chat/>")

	s := New()
	s.Merge(lex)
	s.Merge(defs)
	s.Merge(s)

	expected := []*Entry{
		{
			Word:        "chat",
			Syntax:      []SyntaxRecord{{PartOfSpeech: "nc", Lemma: "chat", Tag: "ms"}},
			Definitions: []Definition{"<chat/>"},
		},
		{
			Word:   "chats",
			Syntax: []SyntaxRecord{{PartOfSpeech: "nc", Lemma: "chat", Tag: "mp"}},
		},
		{
			Word:        "chien",
			Definitions: []Definition{"<chien/>"},
		},
	}
	if diff := cmp.Diff(expected, s.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
}

func TestStore_concurrent(t *testing.T) {
	t.Parallel()

	s := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				w := fmt.Sprintf("w%d", j)
				if i%2 == 0 {
					s.AddSyntax(w, SyntaxRecord{Tag: fmt.Sprint(i)})
				} else {
					s.AddDefinition(w, Definition(fmt.Sprint(i)))
				}
			}
		}()
	}
	wg.Wait()

	if want, got := 100, s.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	for _, e := range s.Entries() {
		if want, got := 4, len(e.Syntax); want != got {
			t.Errorf("%s: syntax records: want %d, got %d", e.Word, want, got)
		}
		if want, got := 4, len(e.Definitions); want != got {
			t.Errorf("%s: definitions: want %d, got %d", e.Word, want, got)
		}
	}
}
