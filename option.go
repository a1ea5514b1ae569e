// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import (
	"io/fs"
	"log/slog"

	"github.com/ktong/hconf/format"
)

// WithSource provides the paths of files that configuration is loaded from while creating the Store.
//
// Each file takes precedence over the files before it,
// unless IgnoreDuplicates is set in which case the first file wins.
func WithSource(paths ...string) Option {
	return func(options *options) {
		options.sources = append(options.sources, paths...)
	}
}

// WithSeparator provides the separator when specifying config path.
//
// The default separator is `.`, which makes config path like `parent.child.key`.
// An empty separator keeps the default.
func WithSeparator(separator string) Option {
	return func(options *options) {
		if separator != "" {
			options.separator = separator
		}
	}
}

// WithFlags enables the given flags.
func WithFlags(flags ...Flag) Option {
	return func(options *options) {
		for _, flag := range flags {
			options.flags |= flag
		}
	}
}

// WithLogger provides the slog.Logger for Store.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithFS provides the fs.FS that source files are read from.
//
// By default, files are read from the OS file system.
func WithFS(fs fs.FS) Option {
	return func(options *options) {
		options.fs = fs
	}
}

// WithFormat registers the unmarshal function for files with the given extension,
// replacing the built-in one if any. See package format for the built-in formats.
//
// It is also the extension point for configuration written as code:
// the unmarshal function receives the file content and must produce a map.
func WithFormat(ext string, unmarshal format.Unmarshal) Option {
	return func(options *options) {
		options.formats.Register(ext, unmarshal)
	}
}

// Option configures a Store with specific options.
type Option func(*options)

type options struct {
	*Store

	sources []string
}

// PathOption configures a single Get, Has, Unmarshal or Explain call.
type PathOption func(*pathOptions)

// Separator overrides the separator of the Store for a single call.
func Separator(separator string) PathOption {
	return func(options *pathOptions) {
		options.separator = separator
	}
}

type pathOptions struct {
	separator string
}
