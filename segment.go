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
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/ianlewis/go-frdict/word"
)

// MaxPhraseWords is the maximum number of words in a phrase matched by
// [Dictionary.Segment].
const MaxPhraseWords = 7

// Phrase is a run of text that matches a dictionary entry.
type Phrase struct {
	// Start and End are the byte offsets of the phrase in the segmented text.
	Start, End int

	// Text is the normalized headword that matched.
	Text string

	Entry *Entry
}

type token struct {
	start, end int

	// sep is the separator before the token, or zero at the start of the
	// text.
	sep rune

	text string
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == '-' || c == '\''
}

// tokenize splits text at spaces, hyphens and apostrophes. An apostrophe stays
// at the end of the token before it. Leading and trailing punctuation is
// dropped and tokens left empty are skipped.
func tokenize(text string) []token {
	var tokens []token
	add := func(start, end int, sep rune, elided bool) {
		raw := text[start:end]
		trimmed := strings.TrimLeftFunc(raw, unicode.IsPunct)
		start += len(raw) - len(trimmed)
		if !elided {
			trimmed = strings.TrimRightFunc(trimmed, unicode.IsPunct)
			end = start + len(trimmed)
		}
		if trimmed == "" {
			return
		}
		tokens = append(tokens, token{
			start: start,
			end:   end,
			sep:   sep,
			text:  norm.NFC.String(word.Normalize(trimmed)),
		})
	}

	start := 0
	var sep rune
	for i, c := range text {
		if !isSeparator(c) {
			continue
		}
		if c == '\'' {
			add(start, i+1, sep, true)
		} else {
			add(start, i, sep, false)
		}
		start = i + utf8.RuneLen(c)
		sep = c
	}
	add(start, len(text), sep, false)
	return tokens
}

// join rebuilds the headword spelled by tokens.
func join(tokens []token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			switch {
			case strings.HasSuffix(tokens[i-1].text, "'"):
			case t.sep == '-':
				b.WriteByte('-')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// Segment splits running text into words and returns the phrases found in
// the dictionary, left to right. At each word the longest phrase of up to
// [MaxPhraseWords] words is taken. Words not starting any known phrase are
// skipped.
func (d *Dictionary) Segment(text string) []Phrase {
	tokens := tokenize(text)

	var phrases []Phrase
	for i := 0; i < len(tokens); {
		found := false
		for n := min(len(tokens)-i, MaxPhraseWords); n >= 1; n-- {
			key := join(tokens[i : i+n])
			e, ok := d.store.Get(key)
			if !ok {
				continue
			}
			phrases = append(phrases, Phrase{
				Start: tokens[i].start,
				End:   tokens[i+n-1].end,
				Text:  key,
				Entry: &Entry{e: e},
			})
			i += n
			found = true
			break
		}
		if !found {
			i++
		}
	}
	return phrases
}
