// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ktong/hconf"
)

func TestStore_concurrentReads(t *testing.T) {
	t.Parallel()

	store, err := hconf.New(hconf.WithSource("testdata/base.json", "testdata/override.json"))
	require.NoError(t, err)

	var group errgroup.Group
	for i := 0; i < 16; i++ {
		group.Go(func() error {
			for j := 0; j < 100; j++ {
				if name := store.Get("app.name", nil); name != "override" {
					return fmt.Errorf("unexpected app.name: %v", name)
				}
				if !store.Has("server.port") {
					return fmt.Errorf("server.port is missing")
				}
				var hosts []string
				if err := store.Unmarshal("hosts", &hosts); err != nil {
					return err
				}
			}

			return nil
		})
	}
	require.NoError(t, group.Wait())
}
