// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lru implements the repo.EntityCache interface with a size
// bounded least-recently-used cache. Entries may also expire, so
// rarely updated entities are reloaded from the database eventually.
package lru

import (
	"errors"
	"time"

	"github.com/bluele/gcache"
)

// Cache is an identity map which keeps at most size entities.
type Cache[K comparable, E any] struct {
	c gcache.Cache
}

// New creates an LRU cache with the given size. A positive expiration
// makes the entries expire after being set for that duration, while
// zero keeps them until they are evicted.
func New[K comparable, E any](size int, expiration time.Duration) (*Cache[K, E], error) {
	if size <= 0 {
		return nil, errors.New("cache size must be positive")
	}
	if expiration < 0 {
		return nil, errors.New("cache expiration must not be negative")
	}
	b := gcache.New(size).LRU()
	if expiration > 0 {
		b = b.Expiration(expiration)
	}
	return &Cache[K, E]{c: b.Build()}, nil
}

// Get returns the key entity, if it is cached and not expired.
func (c *Cache[K, E]) Get(key K) (e E, ok bool) {
	v, err := c.c.Get(key)
	if err != nil {
		return e, false
	}
	return v.(E), true
}

// Set caches e, possibly evicting the least recently used entity.
func (c *Cache[K, E]) Set(key K, e E) {
	// only a nil key or a failed loader may fail a Set
	_ = c.c.Set(key, e)
}

// Remove evicts the key entity.
func (c *Cache[K, E]) Remove(key K) {
	c.c.Remove(key)
}

// Len returns the number of cached entities which are not expired.
func (c *Cache[K, E]) Len() int {
	return c.c.Len(true)
}
