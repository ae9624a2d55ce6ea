// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// EntityCache is an identity map which keeps at most one in-memory
// instance per key, so all holders of an entity observe its updates.
// Implementations may evict entries (e.g., based on size or age) and
// must be safe for concurrent use. They do not synchronize the access
// to the cached entities themselves.
type EntityCache[K comparable, E any] interface {
	Get(key K) (E, bool)
	Set(key K, e E)
	Remove(key K)
	Len() int
}
