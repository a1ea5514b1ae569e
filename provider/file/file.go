// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads configuration from a file.
//
// File reads a file with the given path from the OS file system, or from an fs.FS
// if WithFS is given, and returns the nested map[string]any parsed by the given
// unmarshal function. The default unmarshal function is json.Unmarshal.
//
// The content must resolve into a map. Any other result, including a decoding
// failure, is reported as ErrInvalidContent.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/ktong/hconf/internal/maps"
)

// ErrInvalidContent is returned by File.Load if the file content does not resolve into a map.
var ErrInvalidContent = errors.New("content does not resolve into a map")

// File loads configuration from a single file.
//
// To create a new File, call [New].
type File struct {
	logger    *slog.Logger
	fs        fs.FS
	path      string
	unmarshal func([]byte, any) error
}

// New creates a File with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) File {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("file")
	if option.unmarshal == nil {
		option.unmarshal = json.Unmarshal
	}

	return File(*option)
}

// Exists reports whether the path refers to an existing regular file.
func (f File) Exists() bool {
	var (
		info os.FileInfo
		err  error
	)
	if f.fs == nil {
		info, err = os.Stat(f.path)
	} else {
		info, err = fs.Stat(f.fs, f.fsPath())
	}

	return err == nil && info.Mode().IsRegular()
}

// Load reads the whole file and unmarshals it into a map[string]any.
// Maps with non-string keys are converted to map[string]any.
func (f File) Load() (map[string]any, error) {
	var (
		bytes []byte
		err   error
	)
	if f.fs == nil {
		bytes, err = os.ReadFile(f.path)
	} else {
		bytes, err = fs.ReadFile(f.fs, f.fsPath())
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var out any
	if err := f.unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrInvalidContent, err)
	}

	values, ok := maps.Copy(out).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidContent, out)
	}
	f.logger.Debug("Config file has been read.", "file", f.path, "bytes", len(bytes))

	return values, nil
}

// fsPath cleans the path for fs.FS, e.g. `./conf/app.json` becomes `conf/app.json`.
func (f File) fsPath() string {
	return path.Clean(f.path)
}

func (f File) String() string {
	return "file:" + f.path
}
