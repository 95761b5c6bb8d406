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
	"context"
	"io"

	"github.com/ianlewis/go-frdict/store"
	"github.com/ianlewis/go-frdict/word"
)

// Stats are counts collected while loading a lexicon.
type Stats struct {
	// Lines is the number of lines read.
	Lines int

	// Records is the number of syntax records added to the store.
	Records int

	// Discarded is the number of lines dropped because the word form was not
	// admissible.
	Discarded int
}

// Load reads the lexicon from r and adds a syntax record to s for every line
// whose normalized word form is admissible. Lines with an inadmissible word
// are dropped whole. The lemma is normalized but not filtered.
//
// A malformed line aborts the load. Records added before the error remain in
// s, so callers should discard s on error.
func Load(ctx context.Context, r io.Reader, s *store.Store) (*Stats, error) {
	var stats Stats
	sc := NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return &stats, err
		}
		stats.Lines++

		rec := sc.Record()
		w := word.Normalize(rec.Word)
		if !word.IsAdmissible(w) {
			stats.Discarded++
			continue
		}

		s.AddSyntax(w, store.SyntaxRecord{
			PartOfSpeech: rec.PartOfSpeech,
			Lemma:        word.Normalize(rec.Lemma),
			Tag:          rec.Tag,
		})
		stats.Records++
	}
	if err := sc.Err(); err != nil {
		return &stats, err
	}
	return &stats, nil
}
