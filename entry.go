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
	"fmt"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-frdict/store"
)

// Gender is the grammatical gender of an entry as far as its tags tell.
type Gender int

const (
	// GenderUnknown is used when the tags do not agree on a gender or the
	// entry has no syntax records.
	GenderUnknown Gender = iota

	// GenderMasculine is used when every tag is masculine.
	GenderMasculine

	// GenderFeminine is used when every tag is feminine.
	GenderFeminine
)

// String implements [fmt.Stringer].
func (g Gender) String() string {
	switch g {
	case GenderUnknown:
		return "unknown"
	case GenderMasculine:
		return "masculine"
	case GenderFeminine:
		return "feminine"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// Entry is a dictionary entry.
type Entry struct {
	e *store.Entry
}

// Word returns the entry's headword.
func (e *Entry) Word() string {
	return e.e.Word
}

// Syntax returns the entry's syntax records in lexicon order.
func (e *Entry) Syntax() []store.SyntaxRecord {
	return append([]store.SyntaxRecord(nil), e.e.Syntax...)
}

// Definitions returns the entry's definitions in container order. Each is
// the XML of one record.
func (e *Entry) Definitions() []store.Definition {
	return append([]store.Definition(nil), e.e.Definitions...)
}

// Gender returns the gender of the entry. A tag is masculine if it contains
// 'm' and feminine if it contains 'f'.
func (e *Entry) Gender() Gender {
	if len(e.e.Syntax) == 0 {
		return GenderUnknown
	}

	masculine, feminine := true, true
	for _, rec := range e.e.Syntax {
		if !strings.ContainsRune(rec.Tag, 'm') {
			masculine = false
		}
		if !strings.ContainsRune(rec.Tag, 'f') {
			feminine = false
		}
	}

	switch {
	case masculine && !feminine:
		return GenderMasculine
	case feminine && !masculine:
		return GenderFeminine
	default:
		return GenderUnknown
	}
}

// String returns the headword followed by the definitions as plain text.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.e.Word)
	b.WriteByte('\n')
	for _, def := range e.e.Definitions {
		b.WriteString(strings.TrimSpace(html2text.HTML2Text(string(def))))
		b.WriteByte('\n')
	}
	return b.String()
}
