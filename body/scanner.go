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

package body

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"
)

const (
	// lengthOffset is the offset of the data region length.
	lengthOffset = 0x40

	// dataOffset is the offset of the first block.
	dataOffset = 0x60

	// blockHeaderSize is the size of the ignored header at the start of each
	// block.
	blockHeaderSize = 8
)

var (
	// ErrTruncated indicates that the file ends before a header or block does.
	ErrTruncated = errors.New("truncated body")

	// ErrCorrupt indicates a length field that is inconsistent with the data
	// it describes.
	ErrCorrupt = errors.New("corrupt body")

	// ErrInvalidUTF8 indicates a record that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in record")
)

// Scanner scans the records of a Body.data file in block order and then in
// order within each block. Blocks are read and inflated one at a time as the
// scan reaches them.
type Scanner struct {
	r io.ReaderAt

	// end is the end of the data region.
	end int64

	// next is the offset of the next block.
	next int64

	// block is the index of the current block, starting at 0.
	block int

	// buf is the inflated current block and pos the offset of the next
	// record in it.
	buf []byte
	pos int

	rec []byte
	err error
}

// NewScanner returns a new Scanner reading from r. It reads the region length
// immediately and fails with ErrTruncated if r is too short to hold it.
func NewScanner(r io.ReaderAt) (*Scanner, error) {
	var b [4]byte
	if err := readFull(r, b[:], lengthOffset); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: reading region length: %w", ErrTruncated, err)
		}
		return nil, fmt.Errorf("reading region length: %w", err)
	}

	return &Scanner{
		r:     r,
		end:   lengthOffset + int64(binary.LittleEndian.Uint32(b[:])),
		next:  dataOffset,
		block: -1,
	}, nil
}

// Scan advances the scanner to the next record. It returns false if the scan
// stops either by reaching the end of the data region or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.pos >= len(s.buf) {
		if s.next >= s.end {
			s.rec = nil
			return false
		}
		if err := s.readBlock(); err != nil {
			s.rec = nil
			s.err = err
			return false
		}
	}

	rec, err := s.readRecord()
	if err != nil {
		s.rec = nil
		s.err = err
		return false
	}
	s.rec = rec
	return true
}

// Record returns the XML of the most recent record read by Scan. The returned
// slice is only valid until the next call to Scan.
func (s *Scanner) Record() []byte {
	return s.rec
}

// Block returns the 0-based index of the block holding the current record.
func (s *Scanner) Block() int {
	return s.block
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// readBlock reads and inflates the block at s.next.
func (s *Scanner) readBlock() error {
	s.block++

	var lb [4]byte
	if err := readFull(s.r, lb[:], s.next); err != nil {
		return s.readErr("reading length", err)
	}
	size := int64(binary.LittleEndian.Uint32(lb[:]))
	if size < blockHeaderSize {
		return fmt.Errorf("%w: block %d at %#x: length %d shorter than block header", ErrCorrupt, s.block, s.next, size)
	}

	// The length is not trusted for allocation. A short read means the
	// file was cut off.
	data, err := io.ReadAll(io.NewSectionReader(s.r, s.next+4, size))
	if err != nil {
		return s.readErr("reading data", err)
	}
	if int64(len(data)) < size {
		return s.readErr("reading data", io.ErrUnexpectedEOF)
	}

	z, err := zlib.NewReader(bytes.NewReader(data[blockHeaderSize:]))
	if err != nil {
		return fmt.Errorf("block %d at %#x: %w", s.block, s.next, err)
	}
	defer z.Close()

	buf, err := io.ReadAll(z)
	if err != nil {
		return fmt.Errorf("block %d at %#x: inflating: %w", s.block, s.next, err)
	}

	s.buf = buf
	s.pos = 0
	s.next += 4 + size
	return nil
}

func (s *Scanner) readErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: block %d at %#x: %s: %w", ErrTruncated, s.block, s.next, what, err)
	}
	return fmt.Errorf("block %d at %#x: %s: %w", s.block, s.next, what, err)
}

// readFull reads exactly len(p) bytes at off. A full read is a success even
// when r reports io.EOF along with it.
func readFull(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// readRecord reads the record at s.pos in the current block.
func (s *Scanner) readRecord() ([]byte, error) {
	rest := len(s.buf) - s.pos
	if rest < 4 {
		return nil, fmt.Errorf("%w: block %d offset %d: %d trailing bytes", ErrCorrupt, s.block, s.pos, rest)
	}
	size := int(binary.LittleEndian.Uint32(s.buf[s.pos:]))
	if size < 0 || size > rest-4 {
		return nil, fmt.Errorf("%w: block %d offset %d: record length %d exceeds %d remaining bytes",
			ErrCorrupt, s.block, s.pos, size, rest-4)
	}

	start := s.pos + 4
	rec := s.buf[start : start+size]
	if !utf8.Valid(rec) {
		return nil, fmt.Errorf("%w: block %d offset %d", ErrInvalidUTF8, s.block, s.pos)
	}
	s.pos = start + size
	return rec, nil
}
