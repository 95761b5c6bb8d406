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
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-frdict/body"
	"github.com/ianlewis/go-frdict/definition"
	"github.com/ianlewis/go-frdict/dictdata"
	"github.com/ianlewis/go-frdict/internal/logging"
	"github.com/ianlewis/go-frdict/mlex"
	"github.com/ianlewis/go-frdict/store"
)

// ErrMissingPath indicates that a required input or output path was not
// given.
var ErrMissingPath = errors.New("missing path")

// IngestOptions are options for [Ingest].
type IngestOptions struct {
	// Parallel reads the lexicon and the container concurrently. The
	// resulting store is identical to a sequential read.
	Parallel bool

	// Logger receives warnings about dropped records. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

// Stats are the counts collected while ingesting both inputs.
type Stats struct {
	Lexicon     mlex.Stats
	Definitions definition.Stats
}

// Ingest reads the lexicon and then the container into a new store. On error
// the partially filled store is discarded.
func Ingest(ctx context.Context, lexicon io.Reader, container io.ReaderAt, opts *IngestOptions) (*store.Store, *Stats, error) {
	if opts == nil {
		opts = &IngestOptions{}
	}
	logger := logging.OrDiscard(opts.Logger)

	if !opts.Parallel {
		st := store.New()
		var stats Stats
		if err := loadLexicon(ctx, lexicon, st, &stats); err != nil {
			return nil, nil, err
		}
		if err := loadDefinitions(ctx, container, st, logger, &stats); err != nil {
			return nil, nil, err
		}
		return st, &stats, nil
	}

	// Each pass fills its own store. Merging the definitions into the lexicon
	// store afterwards gives the same order as the sequential path.
	lex, defs := store.New(), store.New()
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadLexicon(gctx, lexicon, lex, &stats)
	})
	g.Go(func() error {
		return loadDefinitions(gctx, container, defs, logger, &stats)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	lex.Merge(defs)
	return lex, &stats, nil
}

func loadLexicon(ctx context.Context, r io.Reader, st *store.Store, stats *Stats) error {
	s, err := mlex.Load(ctx, r, st)
	if err != nil {
		return fmt.Errorf("reading lexicon: %w", err)
	}
	stats.Lexicon = *s
	return nil
}

func loadDefinitions(ctx context.Context, r io.ReaderAt, st *store.Store, logger *slog.Logger, stats *Stats) error {
	sc, err := body.NewScanner(r)
	if err != nil {
		return fmt.Errorf("reading container: %w", err)
	}
	s, err := definition.Load(ctx, sc, st, logger)
	if err != nil {
		return fmt.Errorf("reading container: %w", err)
	}
	stats.Definitions = *s
	return nil
}

// BuildOptions are options for [Build].
type BuildOptions struct {
	// LexiconPath is the path to the .mlex lexicon. Paths ending in .gz or
	// .xz are decompressed.
	LexiconPath string

	// ContainerPath is the path to the Body.data container.
	ContainerPath string

	// OutputPath is the path of the artifact to write.
	OutputPath string

	// Format is the compression format of the artifact.
	Format dictdata.Format

	// Parallel reads the two inputs concurrently.
	Parallel bool

	// Checksum writes the BLAKE3 digest of the artifact to OutputPath+".b3".
	Checksum bool

	// Logger receives progress and warnings. If nil, nothing is logged.
	Logger *slog.Logger
}

// Summary describes a finished build.
type Summary struct {
	Stats

	// Entries is the number of headwords written.
	Entries int

	// SyntaxRecords is the number of syntax records written.
	SyntaxRecords int

	// DefinitionRecords is the number of definitions written.
	DefinitionRecords int

	// Size is the artifact size in bytes.
	Size int64

	// Digest is the hex encoded BLAKE3-256 digest of the artifact.
	Digest string
}

// Build reads both inputs and writes the artifact to opts.OutputPath. The
// artifact and its checksum file are written to temporary files in the same
// directory and renamed into place only once both are complete, so no new
// output exists after an error.
func Build(ctx context.Context, opts *BuildOptions) (*Summary, error) {
	switch {
	case opts.LexiconPath == "":
		return nil, fmt.Errorf("%w: lexicon", ErrMissingPath)
	case opts.ContainerPath == "":
		return nil, fmt.Errorf("%w: container", ErrMissingPath)
	case opts.OutputPath == "":
		return nil, fmt.Errorf("%w: output", ErrMissingPath)
	}
	logger := logging.OrDiscard(opts.Logger)

	lexicon, err := openLexicon(opts.LexiconPath)
	if err != nil {
		return nil, err
	}
	defer lexicon.Close()

	container, err := os.Open(opts.ContainerPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", opts.ContainerPath, err)
	}
	defer container.Close()

	logger.Info("reading inputs",
		"lexicon", opts.LexiconPath,
		"container", opts.ContainerPath,
		"parallel", opts.Parallel,
	)
	st, stats, err := Ingest(ctx, lexicon, container, &IngestOptions{
		Parallel: opts.Parallel,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("read inputs",
		"lexicon_records", stats.Lexicon.Records,
		"lexicon_discarded", stats.Lexicon.Discarded,
		"definitions", stats.Definitions.French,
		"english", stats.Definitions.English,
		"unknown", stats.Definitions.Unknown,
		"inadmissible", stats.Definitions.Inadmissible,
	)

	sum := &Summary{Stats: *stats}
	for _, e := range st.Entries() {
		sum.Entries++
		sum.SyntaxRecords += len(e.Syntax)
		sum.DefinitionRecords += len(e.Definitions)
	}

	tmpPath, size, digest, err := writeArtifact(opts.OutputPath, opts.Format, st)
	if err != nil {
		return nil, err
	}
	sum.Size, sum.Digest = size, digest

	var b3Tmp string
	if opts.Checksum {
		line := fmt.Sprintf("%s  %s\n", digest, filepath.Base(opts.OutputPath))
		if b3Tmp, err = writeTemp(opts.OutputPath+".b3", []byte(line)); err != nil {
			os.Remove(tmpPath)
			return nil, fmt.Errorf("writing checksum: %w", err)
		}
	}

	if err := os.Rename(tmpPath, opts.OutputPath); err != nil {
		os.Remove(tmpPath)
		if b3Tmp != "" {
			os.Remove(b3Tmp)
		}
		return nil, fmt.Errorf("writing output: %w", err)
	}
	logger.Info("wrote dictionary",
		"path", opts.OutputPath,
		"format", opts.Format.String(),
		"entries", sum.Entries,
		"size", sum.Size,
		"blake3", sum.Digest,
	)

	if b3Tmp != "" {
		b3Path := opts.OutputPath + ".b3"
		if err := os.Rename(b3Tmp, b3Path); err != nil {
			// The artifact must not be left without its checksum.
			os.Remove(b3Tmp)
			os.Remove(opts.OutputPath)
			return nil, fmt.Errorf("writing checksum: %w", err)
		}
		logger.Info("wrote checksum", "path", b3Path)
	}

	return sum, nil
}

// tempFile creates a hidden temporary file next to path.
func tempFile(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return os.CreateTemp(dir, "."+base+".*.tmp")
}

// writeTemp writes data to a world readable temporary file next to path and
// returns its name.
func writeTemp(path string, data []byte) (name string, err error) {
	tmp, err := tempFile(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gosec // checksums are world readable.
		return "", err
	}
	return tmp.Name(), nil
}

// writeArtifact serializes st to a temporary file next to path and returns
// the temporary file's name with the artifact size and digest. The caller
// renames or removes the file.
func writeArtifact(path string, format dictdata.Format, st *store.Store) (name string, size int64, digest string, err error) {
	tmp, err := tempFile(path)
	if err != nil {
		return "", 0, "", fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	switch format {
	case dictdata.FormatGzip:
		err = dictdata.Write(tmp, st)
	case dictdata.FormatDictzip:
		err = dictdata.WriteDictzip(tmp, st)
	default:
		err = fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return "", 0, "", err
	}

	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		return "", 0, "", fmt.Errorf("hashing output: %w", err)
	}
	h := blake3.New()
	if size, err = io.Copy(h, tmp); err != nil {
		return "", 0, "", fmt.Errorf("hashing output: %w", err)
	}
	digest = hex.EncodeToString(h.Sum(nil))

	if err = tmp.Close(); err != nil {
		return "", 0, "", fmt.Errorf("writing output: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gosec // artifacts are world readable.
		return "", 0, "", fmt.Errorf("writing output: %w", err)
	}
	return tmp.Name(), size, digest, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	return errors.Join(errs...)
}

// openLexicon opens the lexicon at path, decompressing it according to its
// extension.
func openLexicon(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f, z}}, nil
	case ".xz":
		z, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}
