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

// Package word implements normalization of French word forms into dictionary
// keys and the admissibility filter that decides which forms are kept.
package word

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ianlewis/go-frdict/internal/folding"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x036f, Stride: 1},
	},
})

// Normalize lower cases raw and expands the œ and æ ligatures. It never fails.
func Normalize(raw string) string {
	// Transformers are stateful so a fresh chain is built for every call.
	t := transform.Chain(cases.Lower(language.Und), folding.LigatureFolder{})
	s, _, err := transform.String(t, raw)
	if err != nil {
		// Only reachable for input that cases cannot process at all, which
		// is not possible for a Go string.
		return raw
	}
	return s
}

// stripMarks decomposes s and removes all combining diacritical marks.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}

// isPunct reports whether c is punctuation allowed after the first character
// of an admissible word.
func isPunct(c rune) bool {
	switch c {
	case ' ', '\'', '-', '.':
		return true
	}
	return false
}

// IsAdmissible reports whether the normalized word form may be included in
// the dictionary. Once diacritics are removed every rune must be a lower case
// latin letter, or one of space, apostrophe, hyphen or period anywhere but the
// first position. A word made only of punctuation is rejected.
func IsAdmissible(normalized string) bool {
	hasLetter := false
	i := 0
	for _, c := range stripMarks(normalized) {
		switch {
		case 'a' <= c && c <= 'z':
			hasLetter = true
		case i > 0 && isPunct(c):
		default:
			return false
		}
		i++
	}
	return hasLetter
}

// Fold returns the accent-insensitive form of raw used for approximate
// lookups: the normalized word without diacritics, recomposed to NFC.
// Folded forms are never used as dictionary keys.
func Fold(raw string) string {
	return norm.NFC.String(stripMarks(Normalize(raw)))
}
