// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package hconf provides an in-memory hierarchical configuration store.

A [Store] loads configuration from JSON, YAML and TOML files, merges them into
a single nested map[string]any, and resolves values by separator-delimited
paths such as `server.http.port`.

Sources are merged in order. Nested maps are merged recursively, while any other
value, including lists, replaces the value under the same key. [IgnoreDuplicates]
flips the precedence so the first loaded value wins. Files that do not exist are
skipped unless [ThrowOnFileNotFound] is set.

Lookups never fail: [Store.Get] returns the given fallback and [Store.Has] returns
false if the path does not exist.

A Store is not concurrency-safe for writes. Calls to [Store.Add] and [Store.Load]
must not run concurrently with any other call on the same Store.
*/
package hconf
