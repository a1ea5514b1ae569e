// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import "strings"

// Flag is a set of independent switches that change how a Store loads and merges configuration.
// Flags are combined with `|`, e.g. `ThrowOnFileNotFound | IgnoreDuplicates`.
type Flag uint8

const (
	// ThrowOnFileNotFound makes Load fail with a FileNotFoundError
	// instead of skipping a source that is not an existing regular file.
	ThrowOnFileNotFound Flag = 1 << iota
	// IgnoreDuplicates keeps the existing value when a key is merged again,
	// so the first loaded value wins.
	IgnoreDuplicates
)

func (f Flag) String() string {
	names := make([]string, 0, 2) //nolint:mnd
	if f&ThrowOnFileNotFound != 0 {
		names = append(names, "ThrowOnFileNotFound")
	}
	if f&IgnoreDuplicates != 0 {
		names = append(names, "IgnoreDuplicates")
	}
	if len(names) == 0 {
		return "None"
	}

	return strings.Join(names, "|")
}
