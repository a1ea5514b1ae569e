// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ktong/hconf/format"
	"github.com/ktong/hconf/internal"
	"github.com/ktong/hconf/internal/maps"
	"github.com/ktong/hconf/provider/file"
)

// Store holds configuration merged from files and maps.
//
// To create a new Store, call [New].
type Store struct {
	nocopy internal.NoCopy[Store]

	// Options.
	logger    *slog.Logger
	fs        fs.FS
	formats   *format.Registry
	separator string
	flags     Flag

	// Loaded configuration.
	values  map[string]any
	sources []source
}

type source struct {
	name   string
	values map[string]any
}

// New creates a new Store with the given Option(s)
// and loads the files provided by WithSource.
func New(opts ...Option) (*Store, error) {
	option := &options{
		Store: &Store{
			formats:   format.NewRegistry(),
			separator: ".",
		},
	}
	for _, opt := range opts {
		opt(option)
	}

	store := option.Store
	if store.logger == nil {
		store.logger = slog.Default()
	}
	store.logger = store.logger.WithGroup("hconf")
	store.values = make(map[string]any)

	if _, err := store.Load(option.sources...); err != nil {
		return nil, err
	}

	return store, nil
}

// Get returns the value under the given path, or fallback if the path does not exist.
//
// The returned maps and slices are copies, modifying them does not change the Store.
// An empty path returns the whole configuration.
func (s *Store) Get(path string, fallback any, opts ...PathOption) any {
	s.nocopy.Check()

	value, ok := maps.Lookup(s.values, s.split(path, opts))
	if !ok {
		return fallback
	}

	return maps.Copy(value)
}

// Has reports whether any value, including zero values and nil, exists under the given path.
func (s *Store) Has(path string, opts ...PathOption) bool {
	s.nocopy.Check()

	_, ok := maps.Lookup(s.values, s.split(path, opts))

	return ok
}

// Add merges the given values into the Store and returns the Store.
//
// Nested maps are merged recursively. Any other value, including slices,
// replaces the existing value under the same key, or is discarded if IgnoreDuplicates is set.
//
// This method can be called multiple times but it is not concurrency-safe.
func (s *Store) Add(values map[string]any) *Store {
	s.nocopy.Check()

	if len(values) == 0 {
		return s
	}

	values = maps.CopyMap(values)
	maps.Merge(s.values, values, s.HasFlag(IgnoreDuplicates))
	s.sources = append(s.sources, source{name: "map", values: values})
	s.logger.Debug("Config values have been merged.", "keys", len(values))

	return s
}

// Load loads configuration from the files with given paths in order, and returns the Store.
// Each file is merged with the same rules as Add, so each file takes precedence
// over the files before it unless IgnoreDuplicates is set.
//
// A path that is not an existing regular file is skipped,
// or fails with FileNotFoundError if ThrowOnFileNotFound is set.
// A file whose content does not resolve into a map fails with InvalidFormatError.
// Load stops at the first error and leaves the Store unchanged.
//
// This method can be called multiple times but it is not concurrency-safe.
func (s *Store) Load(paths ...string) (*Store, error) {
	s.nocopy.Check()

	if len(paths) == 0 {
		return s, nil
	}

	staged := maps.CopyMap(s.values)
	loaded := make([]source, 0, len(paths))
	for _, path := range paths {
		values, found, err := s.read(path)
		if err != nil {
			return s, err
		}
		if !found {
			continue
		}

		maps.Merge(staged, values, s.HasFlag(IgnoreDuplicates))
		loaded = append(loaded, source{name: "file:" + path, values: values})
	}

	s.values = staged
	s.sources = append(s.sources, loaded...)
	s.logger.Debug("Config files have been loaded.", "files", len(loaded), "skipped", len(paths)-len(loaded))

	return s, nil
}

func (s *Store) read(path string) (map[string]any, bool, error) {
	opts := []file.Option{file.WithFS(s.fs), file.WithLogger(s.logger)}
	if path == "" || !file.New(path, opts...).Exists() {
		if s.HasFlag(ThrowOnFileNotFound) {
			return nil, false, &FileNotFoundError{Path: path}
		}
		s.logger.Warn("Config file does not exist, skip it.", "file", path)

		return nil, false, nil
	}

	unmarshal, ok := s.formats.Lookup(path)
	if !ok {
		return nil, false, &InvalidFormatError{Path: path, Err: errUnknownFormat}
	}

	values, err := file.New(path, append(opts, file.WithUnmarshal(unmarshal))...).Load()
	if err != nil {
		if errors.Is(err, file.ErrInvalidContent) {
			return nil, false, &InvalidFormatError{Path: path, Err: err}
		}

		return nil, false, fmt.Errorf("load %s: %w", path, err)
	}

	return values, true, nil
}

// HasFlag reports whether all the given flags are set.
func (s *Store) HasFlag(flag Flag) bool {
	return s.flags&flag == flag
}

// Sources returns the names of the sources that have been merged into the Store, in merge order.
func (s *Store) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for _, source := range s.sources {
		names = append(names, source.name)
	}

	return names
}

func (s *Store) split(path string, opts []PathOption) []string {
	separator := s.pathSeparator(opts)
	keys := strings.Split(strings.Trim(path, separator), separator)
	segments := keys[:0]
	for _, key := range keys {
		if key != "" {
			segments = append(segments, key)
		}
	}

	return segments
}

func (s *Store) pathSeparator(opts []PathOption) string {
	option := pathOptions{}
	for _, opt := range opts {
		opt(&option)
	}
	if option.separator == "" {
		return s.separator
	}

	return option.separator
}
