// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import (
	"reflect"
	"slices"
	"strings"

	"github.com/ktong/hconf/internal/credential"
	"github.com/ktong/hconf/internal/maps"
)

// Explain provides information about how Store resolves each value
// under the given path from its sources. It blurs sensitive information.
func (s *Store) Explain(path string, opts ...PathOption) string {
	s.nocopy.Check()

	keys := s.split(path, opts)
	explanation := &strings.Builder{}
	value, ok := maps.Lookup(s.values, keys)
	if !ok {
		explanation.WriteString(path)
		explanation.WriteString(" has no configuration.\n\n")

		return explanation.String()
	}
	s.explain(explanation, keys, value, s.pathSeparator(opts))

	return explanation.String()
}

func (s *Store) explain(explanation *strings.Builder, keys []string, value any, separator string) {
	if values, ok := value.(map[string]any); ok && len(values) > 0 && !maps.IsSequence(values) {
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			s.explain(explanation, append(slices.Clip(keys), name), values[name], separator)
		}

		return
	}

	// Sources in precedence order: the last one wins unless IgnoreDuplicates is set.
	sources := slices.Clone(s.sources)
	if !s.HasFlag(IgnoreDuplicates) {
		slices.Reverse(sources)
	}

	type sourceValue struct {
		name  string
		value any
	}
	var (
		effective *sourceValue
		others    []sourceValue
	)
	for _, source := range sources {
		v, ok := maps.Lookup(source.values, keys)
		if !ok {
			continue
		}
		if effective == nil && reflect.DeepEqual(v, value) {
			effective = &sourceValue{source.name, v}

			continue
		}
		others = append(others, sourceValue{source.name, v})
	}

	var key string
	if len(keys) > 0 {
		key = keys[len(keys)-1]
	}
	explanation.WriteString(strings.Join(keys, separator))
	explanation.WriteString(" has value[")
	explanation.WriteString(credential.Blur(key, value))
	explanation.WriteString("]")
	if effective != nil {
		explanation.WriteString(" that is loaded by source[")
		explanation.WriteString(effective.name)
		explanation.WriteString("]")
	}
	explanation.WriteString(".\n")
	if len(others) > 0 {
		explanation.WriteString("Here are other value(source)s:\n")
		for _, other := range others {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(key, other.value))
			explanation.WriteString("(")
			explanation.WriteString(other.name)
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")
}
