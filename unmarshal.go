// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/ktong/hconf/internal/maps"
)

// Unmarshal reads configuration under the given path from the Store
// and decodes it into the given object pointed to by target.
// It supports [mapstructure] conversions and the `hconf` struct tag.
//
// The target is left untouched if the path does not exist.
func (s *Store) Unmarshal(path string, target any, opts ...PathOption) error {
	s.nocopy.Check()

	value, ok := maps.Lookup(s.values, s.split(path, opts))
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       defaultDecodeHook,
			TagName:          "hconf",
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(maps.Copy(value)); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Value returns the value under the given path if it exists and has type T,
// otherwise it returns fallback.
//
// No conversion is applied, e.g. numbers loaded from JSON are float64.
// Use Store.Unmarshal for converting values.
func Value[T any](store *Store, path string, fallback T, opts ...PathOption) T {
	value, ok := store.Get(path, fallback, opts...).(T)
	if !ok {
		return fallback
	}

	return value
}

var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
