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
	"math"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"

	"github.com/ianlewis/go-frdict/store"
)

// ErrFormatLimit indicates a store that cannot be represented in the file
// format.
var ErrFormatLimit = errors.New("format limit exceeded")

// MaxRecords is the largest number of syntax records or definitions a single
// word may have.
const MaxRecords = math.MaxUint8

// Format is the compressed container the data is written in.
type Format int

const (
	// FormatGzip is a plain gzip stream at maximum compression with a zero
	// modification time. Output is byte for byte reproducible.
	FormatGzip Format = iota

	// FormatDictzip is the dictzip variant of gzip which adds a chunk table
	// for random access. It can be read by any gzip reader.
	FormatDictzip
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatDictzip:
		return "dictzip"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "gzip", "":
		return FormatGzip, nil
	case "dictzip":
		return FormatDictzip, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}

func appendString(b []byte, s string) ([]byte, error) {
	if uint64(len(s)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: string of %d bytes", ErrFormatLimit, len(s))
	}
	//nolint:gosec // bounds checked above.
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...), nil
}

func appendEntry(b []byte, e *store.Entry) ([]byte, error) {
	if len(e.Syntax) > MaxRecords {
		return nil, fmt.Errorf("%w: %q has %d syntax records, max %d", ErrFormatLimit, e.Word, len(e.Syntax), MaxRecords)
	}
	if len(e.Definitions) > MaxRecords {
		return nil, fmt.Errorf("%w: %q has %d definitions, max %d", ErrFormatLimit, e.Word, len(e.Definitions), MaxRecords)
	}

	b, err := appendString(b, e.Word)
	if err != nil {
		return nil, err
	}

	b = append(b, byte(len(e.Syntax)))
	for _, rec := range e.Syntax {
		lemma := rec.Lemma
		if lemma == e.Word {
			lemma = ""
		}
		for _, s := range []string{rec.PartOfSpeech, lemma, rec.Tag} {
			if b, err = appendString(b, s); err != nil {
				return nil, err
			}
		}
	}

	b = append(b, byte(len(e.Definitions)))
	for _, def := range e.Definitions {
		if b, err = appendString(b, string(def)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Marshal returns the uncompressed encoding of s.
func Marshal(s *store.Store) ([]byte, error) {
	entries := s.Entries()
	if uint64(len(entries)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d entries", ErrFormatLimit, len(entries))
	}

	//nolint:gosec // bounds checked above.
	b := binary.LittleEndian.AppendUint32(nil, uint32(len(entries)))
	for _, e := range entries {
		var err error
		if b, err = appendEntry(b, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Write writes s to w as a gzip stream. The stream is compressed at the best
// compression level with no name, comment or modification time so equal
// stores give equal bytes.
func Write(w io.Writer, s *store.Store) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}

	z, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("creating gzip writer: %w", err)
	}
	// z.Header is left zero. In particular ModTime is zero so no timestamp
	// is written.
	if _, err := z.Write(b); err != nil {
		return fmt.Errorf("writing dictionary data: %w", err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("writing dictionary data: %w", err)
	}
	return nil
}

// WriteDictzip writes s to w in the dictzip format.
func WriteDictzip(w io.WriteSeeker, s *store.Store) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}

	z, err := dictzip.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating dictzip writer: %w", err)
	}
	if _, err := z.Write(b); err != nil {
		return fmt.Errorf("writing dictionary data: %w", err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("writing dictionary data: %w", err)
	}
	return nil
}
