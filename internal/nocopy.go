// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects the struct that embeds it being copied by value after first use.
type NoCopy[T any] struct {
	self atomic.Pointer[NoCopy[T]]
}

// Check records the address on first call and panics if it has changed since.
func (n *NoCopy[T]) Check() {
	if n.self.CompareAndSwap(nil, n) || n.self.Load() == n {
		return
	}

	panic("hconf: " + reflect.TypeFor[T]().Name() + " must not be copied after first use")
}
