// Copyright 2025 Ian Lewis
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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// SpaceFolder trims leading and trailing spaces and replaces every internal
// run of spaces with a single ASCII space. It is applied to lookup queries and
// subtitle text before segmentation, never to dictionary keys.
type SpaceFolder struct {
	// seenText is set once the first non-space rune was emitted.
	seenText bool

	// pending is set while inside a run of spaces that follows text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *SpaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		// unicode.IsSpace includes the no-break spaces French typography puts
		// before ':', ';', '!' and '?'.
		if unicode.IsSpace(c) {
			nSrc += size
			if w.seenText {
				w.pending = true
			}
			continue
		}

		if w.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		w.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *SpaceFolder) Reset() {
	*w = SpaceFolder{}
}
