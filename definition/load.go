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

package definition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ianlewis/go-frdict/body"
	"github.com/ianlewis/go-frdict/internal/logging"
	"github.com/ianlewis/go-frdict/store"
)

// Stats are counts collected while loading definitions.
type Stats struct {
	// Records is the number of records read from the body.
	Records int

	// French is the number of definitions added to the store.
	French int

	// English is the number of English headword records skipped.
	English int

	// Unknown is the number of records with an unrecognized id.
	Unknown int

	// Inadmissible is the number of French records dropped because of their
	// title.
	Inadmissible int
}

// Load reads every record from s and adds the French definitions to st.
// Records that are skipped are logged at warning level, except English ones
// which are expected. A nil logger discards the warnings.
//
// Any error from the scanner or from Extract aborts the load. Definitions
// added before the error remain in st, so callers should discard st on error.
func Load(ctx context.Context, s *body.Scanner, st *store.Store, logger *slog.Logger) (*Stats, error) {
	logger = logging.OrDiscard(logger)

	var stats Stats
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return &stats, err
		}
		stats.Records++

		r, err := Extract(s.Record())
		if err != nil {
			return &stats, fmt.Errorf("block %d: %w", s.Block(), err)
		}

		switch r.Kind {
		case KindFrench:
			st.AddDefinition(r.Word, store.Definition(r.XML))
			stats.French++
		case KindInadmissible:
			logger.Warn("dropping definition with inadmissible title",
				"id", r.ID, "title", r.Title, "block", s.Block())
			stats.Inadmissible++
		case KindEnglish:
			stats.English++
		case KindUnknown:
			logger.Warn("dropping definition with unknown id prefix",
				"id", r.ID, "block", s.Block())
			stats.Unknown++
		}
	}
	if err := s.Err(); err != nil {
		return &stats, fmt.Errorf("scanning body: %w", err)
	}
	return &stats, nil
}
