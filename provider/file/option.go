// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"io/fs"
	"log/slog"
)

// WithUnmarshal provides the function used to parse the configuration file.
// The unmarshal function must be able to unmarshal the file content into a *any.
//
// The default function is json.Unmarshal.
func WithUnmarshal(unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshal = unmarshal
	}
}

// WithFS provides the fs.FS that the file is read from.
//
// The path is cleaned before it is opened from the fs.FS,
// so it must otherwise be a valid io/fs path (slash-separated, unrooted).
//
// By default, it reads from the OS file system.
func WithFS(fs fs.FS) Option {
	return func(options *options) {
		options.fs = fs
	}
}

// WithLogger provides the slog.Logger for File loader.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a File with specific options.
	Option  func(options *options)
	options File
)
