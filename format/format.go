// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package format resolves the unmarshal function for a configuration file by its extension.
//
// A Registry starts with the built-in formats:
//   - json: encoding/json
//   - yaml, yml: gopkg.in/yaml.v3
//   - toml: github.com/BurntSushi/toml
//
// Extensions are case-insensitive. Other formats, including configuration
// written as code, are opt-in and must be registered with [Registry.Register].
package format

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Unmarshal parses the content of a configuration file into the value pointed to by v.
// It must be able to unmarshal into a *any.
type Unmarshal func(data []byte, v any) error

// Registry maps file extensions to Unmarshal functions.
//
// To create a new Registry, call [NewRegistry].
type Registry struct {
	unmarshals map[string]Unmarshal
}

// NewRegistry creates a Registry with the built-in formats.
func NewRegistry() *Registry {
	registry := &Registry{unmarshals: make(map[string]Unmarshal)}
	registry.Register("json", json.Unmarshal)
	registry.Register("yaml", yaml.Unmarshal)
	registry.Register("yml", yaml.Unmarshal)
	registry.Register("toml", toml.Unmarshal)

	return registry
}

// Register registers the unmarshal function for the given extension,
// replacing the previous one if any. The leading dot of the extension is optional.
//
// It panics if the extension is empty or the unmarshal function is nil.
func (r *Registry) Register(ext string, unmarshal Unmarshal) {
	ext = normalize(ext)
	if ext == "" {
		panic("cannot register format with empty extension")
	}
	if unmarshal == nil {
		panic("cannot register format with nil unmarshal")
	}

	r.unmarshals[ext] = unmarshal
}

// Lookup returns the unmarshal function for the extension of the given path.
func (r *Registry) Lookup(path string) (Unmarshal, bool) {
	unmarshal, ok := r.unmarshals[normalize(filepath.Ext(path))]

	return unmarshal, ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	extensions := make([]string, 0, len(r.unmarshals))
	for ext := range r.unmarshals {
		extensions = append(extensions, ext)
	}
	slices.Sort(extensions)

	return extensions
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
