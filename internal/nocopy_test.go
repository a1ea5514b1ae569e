// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktong/hconf/internal"
)

func TestNoCopy(t *testing.T) {
	t.Parallel()

	var s1 holder
	s1.check()
	s1.check()

	s2 := s1 //nolint:govet
	require.PanicsWithValue(t, "hconf: holder must not be copied after first use", s2.check)
}

type holder struct {
	nocopy internal.NoCopy[holder]
}

func (h *holder) check() {
	h.nocopy.Check()
}
