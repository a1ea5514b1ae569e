// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "strconv"

// Lookup walks values along path and returns the value at the end of it.
// It reports false if any key along the path is missing.
//
// A []any node is walked by its decimal index, e.g. `servers.0.host`.
func Lookup(values map[string]any, path []string) (any, bool) {
	var current any = values
	for _, key := range path {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[key]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, ok := sliceIndex(key, len(node))
			if !ok {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}

	return current, true
}

func sliceIndex(key string, length int) (int, bool) {
	index, err := strconv.Atoi(key)
	if err != nil || index < 0 || index >= length || strconv.Itoa(index) != key {
		return 0, false
	}

	return index, true
}

// IsSequence reports whether the map is keyed by the dense range "0".."n-1",
// which makes it a list in disguise. Empty maps are not sequences.
func IsSequence(values map[string]any) bool {
	if len(values) == 0 {
		return false
	}
	for i := range len(values) {
		if _, ok := values[strconv.Itoa(i)]; !ok {
			return false
		}
	}

	return true
}
