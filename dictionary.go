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

package frdict

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ianlewis/go-frdict/dictdata"
	"github.com/ianlewis/go-frdict/internal/folding"
	"github.com/ianlewis/go-frdict/internal/index"
	"github.com/ianlewis/go-frdict/store"
	"github.com/ianlewis/go-frdict/word"
)

type foldedEntry struct {
	folded string
	entry  *store.Entry
}

func (e *foldedEntry) String() string {
	return e.folded
}

// Dictionary is an in-memory dictionary.
type Dictionary struct {
	store *store.Store

	// index is sorted by the accent folded headword.
	index *index.Index[*foldedEntry]
}

// NewDictionary returns a dictionary over the entries of s. The store should
// not be modified afterwards.
func NewDictionary(s *store.Store) *Dictionary {
	entries := s.Entries()
	folded := make([]*foldedEntry, 0, len(entries))
	for _, e := range entries {
		folded = append(folded, &foldedEntry{
			folded: word.Fold(e.Word),
			entry:  e,
		})
	}

	return &Dictionary{
		store: s,
		index: index.NewIndex(folded, strings.Compare),
	}
}

// Open reads the artifact at path. Both gzip and dictzip artifacts are
// supported.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	s, err := dictdata.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return NewDictionary(s), nil
}

// Len returns the number of headwords.
func (d *Dictionary) Len() int {
	return d.store.Len()
}

// Entries returns all entries in artifact order.
func (d *Dictionary) Entries() []*Entry {
	var entries []*Entry
	for _, e := range d.store.Entries() {
		entries = append(entries, &Entry{e: e})
	}
	return entries
}

// queryKey turns a user query into a dictionary key. Runs of spaces are
// collapsed before normalization.
func queryKey(query string) string {
	t := transform.Chain(norm.NFC, &folding.SpaceFolder{})
	s, _, err := transform.String(t, query)
	if err != nil {
		s = query
	}
	return word.Normalize(s)
}

// Lookup returns the entry for w, or nil if there is none. The query is
// normalized the same way as the headwords so "Œuvre" finds "oeuvre".
func (d *Dictionary) Lookup(w string) *Entry {
	e, ok := d.store.Get(queryKey(w))
	if !ok {
		return nil
	}
	return &Entry{e: e}
}

// Search returns the entries whose headword equals query when diacritics are
// ignored. For example "ete" finds both "été" and "ete".
func (d *Dictionary) Search(query string) []*Entry {
	return wrap(d.index.Search(word.Fold(queryKey(query))))
}

// Complete returns up to limit entries whose accent folded headword starts
// with the folded prefix, in folded order. A limit of zero or less returns
// all of them.
func (d *Dictionary) Complete(prefix string, limit int) []*Entry {
	return wrap(d.index.Prefix(word.Fold(queryKey(prefix)), limit))
}

func wrap(folded []*foldedEntry) []*Entry {
	var entries []*Entry
	for _, f := range folded {
		entries = append(entries, &Entry{e: f.entry})
	}
	return entries
}
