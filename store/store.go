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

// Package store implements the in-memory merge structure that collects
// syntax records and definitions by normalized word form.
//
// A Store remembers the order in which words were first seen. That order is
// the order of the serialized dictionary, so readers of the dictionary data
// may address entries by position.
package store

import (
	"sync"
)

// SyntaxRecord is the morphological information for one reading of a word.
type SyntaxRecord struct {
	// PartOfSpeech is the part of speech code, e.g. "nc" or "v".
	PartOfSpeech string

	// Lemma is the normalized dictionary form of the word.
	Lemma string

	// Tag is the opaque morphosyntactic tag, e.g. "ms" or "P3s".
	Tag string
}

// Definition is the raw XML text of one dictionary article, kept verbatim.
type Definition string

// Entry aggregates everything known about one normalized word.
type Entry struct {
	// Word is the normalized headword. It is the key of the entry.
	Word string

	// Syntax holds the syntax records in lexicon order.
	Syntax []SyntaxRecord

	// Definitions holds the definitions in container order.
	Definitions []Definition
}

// Store maps normalized words to entries and preserves first-seen order. The
// zero value is not usable; use New.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	order   []*Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		entries: map[string]*Entry{},
	}
}

// GetOrCreate returns the entry for word, creating it at the end of the store
// order if it does not exist yet.
func (s *Store) GetOrCreate(word string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(word)
}

func (s *Store) getOrCreate(word string) *Entry {
	if e, ok := s.entries[word]; ok {
		return e
	}
	e := &Entry{Word: word}
	s.entries[word] = e
	s.order = append(s.order, e)
	return e
}

// Get returns the entry for word if present.
func (s *Store) Get(word string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[word]
	return e, ok
}

// AddSyntax appends rec to the entry for word, creating the entry if needed.
// It is safe to call concurrently with the other Add methods.
func (s *Store) AddSyntax(word string, rec SyntaxRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreate(word)
	e.Syntax = append(e.Syntax, rec)
}

// AddDefinition appends def to the entry for word, creating the entry if
// needed. It is safe to call concurrently with the other Add methods.
func (s *Store) AddDefinition(word string, def Definition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreate(word)
	e.Definitions = append(e.Definitions, def)
}

// Merge appends the contents of other to s. Entries of other are visited in
// other's order; words new to s are added at the end of s's order and records
// of existing words are appended after the records s already has.
func (s *Store) Merge(other *Store) {
	if other == s {
		return
	}
	for _, oe := range other.Entries() {
		s.mu.Lock()
		e := s.getOrCreate(oe.Word)
		e.Syntax = append(e.Syntax, oe.Syntax...)
		e.Definitions = append(e.Definitions, oe.Definitions...)
		s.mu.Unlock()
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Entries returns the entries in first-seen order. The returned slice is a
// copy but the entries are shared with the store.
func (s *Store) Entries() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]*Entry, len(s.order))
	copy(entries, s.order)
	return entries
}
