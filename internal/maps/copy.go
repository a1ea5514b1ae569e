// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import (
	"fmt"
	"reflect"
)

// Copy returns a deep copy of the value with containers normalized.
//
// Any map (e.g. map[any]any from YAML or map[string]string) is converted to
// map[string]any, with non-string keys formatted by fmt.Sprint.
// Any slice or array except []byte (e.g. []map[string]any from TOML or []string)
// is converted to []any. []byte is cloned as is.
// Other values are returned as is.
func Copy(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		return CopyMap(v)
	case []any:
		values := make([]any, len(v))
		for i, val := range v {
			values[i] = Copy(val)
		}

		return values
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Map:
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			values[mapKey(iter.Key())] = Copy(iter.Value().Interface())
		}

		return values
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			bytes := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
			reflect.Copy(bytes, rv)

			return bytes.Interface()
		}

		return copySlice(rv)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}

		return copySlice(rv)
	default:
		return value
	}
}

func copySlice(rv reflect.Value) []any {
	values := make([]any, rv.Len())
	for i := range rv.Len() {
		values[i] = Copy(rv.Index(i).Interface())
	}

	return values
}

func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}

	return fmt.Sprint(key.Interface())
}

// CopyMap returns a deep copy of the map. It never returns nil.
func CopyMap(values map[string]any) map[string]any {
	copied := make(map[string]any, len(values))
	for key, val := range values {
		copied[key] = Copy(val)
	}

	return copied
}
