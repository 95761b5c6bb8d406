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

package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ligatures maps the ligature runes used in French spelling to their
// two-letter expansions. Only lower case forms are listed; input is expected
// to be lower cased first.
var ligatures = map[rune]string{
	'œ': "oe",
	'æ': "ae",
}

// LigatureFolder expands the œ and æ ligatures into "oe" and "ae" so that both
// spellings of a word share one key.
type LigatureFolder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (LigatureFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if exp, ok := ligatures[c]; ok {
			if nDst+len(exp) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], exp)
			nSrc += size
			continue
		}

		// Invalid bytes are copied through untouched.
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	return nDst, nSrc, nil
}
