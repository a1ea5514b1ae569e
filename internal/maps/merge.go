// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Merge recursively merges the src map into the dst map.
//
// Key conflicts are resolved by preferring src, or dst if keepDst is true,
// or recursively descending if both values are maps that are not sequences.
// Values taken from src are deep copied so dst never shares containers with src.
func Merge(dst, src map[string]any, keepDst bool) {
	for key, srcVal := range src {
		dstVal, ok := dst[key]
		if !ok {
			dst[key] = Copy(srcVal)

			continue
		}

		// Merge if the srcVal and dstVal are both mappings.
		srcMap, srcOk := mapping(srcVal)
		dstMap, dstOk := mapping(dstVal)
		if srcOk && dstOk {
			Merge(dstMap, srcMap, keepDst)

			continue
		}

		// Sequences and scalars are replaced as a whole.
		if !keepDst {
			dst[key] = Copy(srcVal)
		}
	}
}

func mapping(value any) (map[string]any, bool) {
	mp, ok := value.(map[string]any)
	if !ok || IsSequence(mp) {
		return nil, false
	}

	return mp, true
}
