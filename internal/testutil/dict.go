// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/ianlewis/go-frdict/mlex"
)

// DictionaryServiceNS is the namespace of the title attribute of definition
// records.
const DictionaryServiceNS = "http://www.apple.com/DTDs/DictionaryService-1.0.rng"

// BodyHeaderSize is the size of the container header before the first block.
const BodyHeaderSize = 0x60

// MakeDefinition creates the XML of a definition record with the given id,
// title and inner XML.
func MakeDefinition(id, title, inner string) string {
	return fmt.Sprintf(`<d:entry xmlns:d="%s" id="%s" d:title="%s">%s</d:entry>`,
		DictionaryServiceNS, id, title, inner)
}

// MakeLexicon creates a test .mlex file.
func MakeLexicon(records []*mlex.Record) []byte {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(strings.Join([]string{r.Word, r.PartOfSpeech, r.Lemma, r.Tag}, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// appendUint32 appends a little endian length to b.
func appendUint32(t *testing.T, b []byte, n int) []byte {
	t.Helper()
	if n < 0 || uint64(n) > math.MaxUint32 {
		t.Fatalf("length too large: %d", n)
	}
	//nolint:gosec // bounds checked above.
	return binary.LittleEndian.AppendUint32(b, uint32(n))
}

// MakeRecords creates the decompressed payload of a block holding the given
// records.
func MakeRecords(t *testing.T, records ...string) []byte {
	t.Helper()

	var b []byte
	for _, r := range records {
		b = appendUint32(t, b, len(r))
		b = append(b, r...)
	}
	return b
}

// MakeRawBlock creates a container block around an already built payload. The
// payload is zlib compressed and prefixed with an 8 byte block header and the
// block length.
func MakeRawBlock(t *testing.T, payload []byte) []byte {
	t.Helper()

	var z bytes.Buffer
	w := zlib.NewWriter(&z)
	if _, err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// The block header is opaque and skipped by readers.
	header := []byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0}

	b := appendUint32(t, nil, len(header)+z.Len())
	b = append(b, header...)
	return append(b, z.Bytes()...)
}

// MakeBlock creates a container block holding the given XML records.
func MakeBlock(t *testing.T, records ...string) []byte {
	t.Helper()
	return MakeRawBlock(t, MakeRecords(t, records...))
}

// MakeBody creates a container from already built blocks. The length field at
// 0x40 is set so the data region ends with the last block.
func MakeBody(t *testing.T, blocks ...[]byte) []byte {
	t.Helper()

	b := make([]byte, BodyHeaderSize)
	copy(b, "test body header")
	for _, block := range blocks {
		b = append(b, block...)
	}
	copy(b[0x40:0x44], appendUint32(t, nil, len(b)-0x40))
	return b
}

// MakeContainer creates a container with one block per element of blocks.
func MakeContainer(t *testing.T, blocks ...[]string) []byte {
	t.Helper()

	var bs [][]byte
	for _, records := range blocks {
		bs = append(bs, MakeBlock(t, records...))
	}
	return MakeBody(t, bs...)
}

// MakeTempFile writes data to a new file in a temporary directory that is
// removed when the test ends and returns its path.
func MakeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
