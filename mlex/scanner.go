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

package mlex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedLine indicates a line that does not have exactly four fields.
var ErrMalformedLine = errors.New("malformed lexicon line")

// numFields is the number of tab separated fields in a record.
const numFields = 4

// maxLineSize is the longest line the scanner accepts.
const maxLineSize = 1 << 20

// Record is one line of an .mlex file.
type Record struct {
	Word         string
	PartOfSpeech string
	Lemma        string
	Tag          string

	// Line is the 1-based line number of the record.
	Line int
}

// Scanner scans an .mlex file from start to end.
type Scanner struct {
	s    *bufio.Scanner
	rec  *Record
	line int
	err  error
}

// NewScanner returns a new lexicon scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{s: s}
}

// Scan advances the scanner to the next record. It returns false if the scan
// stops either by reaching the end of the file or an error. A line with the
// wrong number of fields stops the scan.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		return false
	}
	s.line++

	line := strings.TrimSuffix(s.s.Text(), "\r")
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		s.rec = nil
		s.err = fmt.Errorf("%w: line %d: got %d fields, want %d", ErrMalformedLine, s.line, len(fields), numFields)
		return false
	}

	s.rec = &Record{
		Word:         fields[0],
		PartOfSpeech: fields[1],
		Lemma:        fields[2],
		Tag:          fields[3],
		Line:         s.line,
	}
	return true
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("reading lexicon: %w", err)
	}
	return nil
}
