// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hconf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ktong/hconf"
)

func TestStore_Unmarshal(t *testing.T) {
	t.Parallel()

	store, err := hconf.New(hconf.WithSource("testdata/base.json", "testdata/override.json"))
	require.NoError(t, err)

	testcases := []struct {
		description string
		assert      func(*hconf.Store)
	}{
		{
			description: "struct",
			assert: func(store *hconf.Store) {
				var app struct {
					Name    string
					Debug   bool
					Timeout time.Duration
					Workers int
				}
				require.NoError(t, store.Unmarshal("app", &app))
				require.Equal(t, "override", app.Name)
				require.False(t, app.Debug)
				require.Equal(t, 5*time.Second, app.Timeout)
				require.Equal(t, 0, app.Workers)
			},
		},
		{
			description: "struct tag",
			assert: func(store *hconf.Store) {
				var server struct {
					Address string `hconf:"host"`
					Port    int
				}
				require.NoError(t, store.Unmarshal("server", &server))
				require.Equal(t, "localhost", server.Address)
				require.Equal(t, 8080, server.Port)
			},
		},
		{
			description: "primary type",
			assert: func(store *hconf.Store) {
				var port string
				require.NoError(t, store.Unmarshal("server.port", &port))
				require.Equal(t, "8080", port)
			},
		},
		{
			description: "slice",
			assert: func(store *hconf.Store) {
				var hosts []string
				require.NoError(t, store.Unmarshal("hosts", &hosts))
				require.Equal(t, []string{"c.example.com"}, hosts)
			},
		},
		{
			description: "missing path",
			assert: func(store *hconf.Store) {
				value := "default"
				require.NoError(t, store.Unmarshal("missing", &value))
				require.Equal(t, "default", value)
			},
		},
		{
			description: "separator override",
			assert: func(store *hconf.Store) {
				var name string
				require.NoError(t, store.Unmarshal("app/name", &name, hconf.Separator("/")))
				require.Equal(t, "override", name)
			},
		},
		{
			description: "decode error",
			assert: func(store *hconf.Store) {
				var port int
				require.ErrorContains(t, store.Unmarshal("app.name", &port), "decode: ")
			},
		},
		{
			description: "non-pointer target",
			assert: func(store *hconf.Store) {
				require.EqualError(t, store.Unmarshal("app", struct{}{}), "new decoder: result must be a pointer")
			},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			testcase.assert(store)
		})
	}
}

func TestValue(t *testing.T) {
	t.Parallel()

	store, err := hconf.New(hconf.WithSource("testdata/base.json"))
	require.NoError(t, err)

	require.Equal(t, "base", hconf.Value(store, "app.name", ""))
	require.Equal(t, float64(8080), hconf.Value(store, "server.port", float64(0)))
	require.Equal(t, 1, hconf.Value(store, "server.port", 1))
	require.Equal(t, "fallback", hconf.Value(store, "app.missing", "fallback"))
	require.Equal(t, "localhost", hconf.Value(store, "server/host", "", hconf.Separator("/")))
}
