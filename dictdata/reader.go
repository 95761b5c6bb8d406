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

package dictdata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	"github.com/ianlewis/go-frdict/store"
)

var (
	// ErrTruncated indicates data that ends in the middle of an entry.
	ErrTruncated = errors.New("truncated dictionary data")

	// ErrTrailingData indicates bytes after the last entry.
	ErrTrailingData = errors.New("trailing dictionary data")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in dictionary data")
)

// decoder reads values from an uncompressed buffer.
type decoder struct {
	b   []byte
	off int
}

func (d *decoder) uint8() (int, error) {
	if len(d.b)-d.off < 1 {
		return 0, fmt.Errorf("%w: count at offset %d", ErrTruncated, d.off)
	}
	n := int(d.b[d.off])
	d.off++
	return n, nil
}

func (d *decoder) uint32() (uint32, error) {
	if len(d.b)-d.off < 4 {
		return 0, fmt.Errorf("%w: length at offset %d", ErrTruncated, d.off)
	}
	n := binary.LittleEndian.Uint32(d.b[d.off:])
	d.off += 4
	return n, nil
}

func (d *decoder) string() (string, error) {
	n, err := d.uint32()
	if err != nil {
		return "", err
	}
	if uint64(len(d.b)-d.off) < uint64(n) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d", ErrTruncated, n, d.off)
	}
	s := d.b[d.off : d.off+int(n)]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: offset %d", ErrInvalidUTF8, d.off)
	}
	d.off += int(n)
	return string(s), nil
}

func (d *decoder) entry() (*store.Entry, error) {
	w, err := d.string()
	if err != nil {
		return nil, err
	}
	e := &store.Entry{Word: w}

	n, err := d.uint8()
	if err != nil {
		return nil, err
	}
	for range n {
		var f [3]string
		for i := range f {
			if f[i], err = d.string(); err != nil {
				return nil, err
			}
		}
		lemma := f[1]
		if lemma == "" {
			lemma = w
		}
		e.Syntax = append(e.Syntax, store.SyntaxRecord{
			PartOfSpeech: f[0],
			Lemma:        lemma,
			Tag:          f[2],
		})
	}

	if n, err = d.uint8(); err != nil {
		return nil, err
	}
	for range n {
		def, err := d.string()
		if err != nil {
			return nil, err
		}
		e.Definitions = append(e.Definitions, store.Definition(def))
	}
	return e, nil
}

// Unmarshal decodes uncompressed dictionary data into a new store. Empty
// lemmas are resolved to the word of their entry.
func Unmarshal(b []byte) (*store.Store, error) {
	d := &decoder{b: b}
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}

	s := store.New()
	for i := range n {
		e, err := d.entry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		// A word that appears twice is merged into one entry.
		ne := s.GetOrCreate(e.Word)
		ne.Syntax = append(ne.Syntax, e.Syntax...)
		ne.Definitions = append(ne.Definitions, e.Definitions...)
	}
	if d.off != len(d.b) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(d.b)-d.off)
	}
	return s, nil
}

// Read decompresses and decodes dictionary data from r. Both gzip and dictzip
// files are accepted.
func Read(r io.Reader) (*store.Store, error) {
	z, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary data: %w", err)
	}
	defer z.Close()

	b, err := io.ReadAll(z)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary data: %w", err)
	}
	return Unmarshal(b)
}
