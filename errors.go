// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf

import "errors"

var (
	// ErrFileNotFound is matched by the error Load returns for a missing source
	// while ThrowOnFileNotFound is set.
	ErrFileNotFound = errors.New("config file not found")
	// ErrInvalidFormat is matched by the error Load returns for a source
	// whose content does not resolve into a map.
	ErrInvalidFormat = errors.New("invalid config format")

	errUnknownFormat = errors.New("unknown file extension")
)

// FileNotFoundError reports a source path that is not an existing regular file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "the file " + e.Path + " was not found"
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// InvalidFormatError reports a source whose content does not resolve into a map.
type InvalidFormatError struct {
	Path string
	Err  error
}

func (e *InvalidFormatError) Error() string {
	if e.Err == nil {
		return "the contents of " + e.Path + " must resolve into a map"
	}

	return "the contents of " + e.Path + " must resolve into a map: " + e.Err.Error()
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
