// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package entity provides the keyed entity contract which is shared by
// all persisted models of the core layer. An entity is bound to one
// immutable key at construction time, starts as an unfilled placeholder,
// and receives its contents through exactly two paths:
//  1. FillFromRecord, which reads a persisted row via a Record accessor,
//  2. FillFromOther, which copies another in-memory instance of the
//     same concrete variant (e.g., a freshly inserted row).
//
// Both paths (and the write path of repositories) are driven by one
// declarative Schema, so they populate the same set of fields.
// Every mutation raises a change notification which may be observed by
// a dirty-tracking owner, such as an identity map use case.
//
// Entities are plain mutable values. They are not safe for concurrent
// use and their owners must provide the required synchronization.
package entity

// Keyed is implemented by every entity variant. The unexported method
// can only be obtained by embedding Base, so all variants share the
// same key, filled flag, and change notification semantics.
type Keyed[K comparable] interface {
	// Key returns the immutable identity of the entity.
	Key() K

	// Filled reports if the entity has ever received a complete
	// snapshot of its fields, from either population path.
	Filled() bool

	base() *Base[K]
}

// Base is embedded by concrete entity variants. It keeps the key, the
// filled flag, and the change hook. The zero value has a zero key and
// is unfilled, but variants should be created using NewBase.
type Base[K comparable] struct {
	key      K
	filled   bool
	onChange func()
}

// NewBase creates an unfilled Base which is bound to the given key.
func NewBase[K comparable](key K) Base[K] {
	return Base[K]{key: key}
}

// Key returns the key which was given at construction time.
func (b *Base[K]) Key() K {
	return b.key
}

// Filled reports if a fill operation has completed for this entity.
// Once true, it never becomes false again for the same instance.
func (b *Base[K]) Filled() bool {
	return b.filled
}

// OnChange installs fn as the change hook, replacing any previous one.
// A nil fn removes the hook. The hook is invoked synchronously by every
// setter of the concrete variant and once per fill operation. It only
// signals that something changed, without describing the change.
func (b *Base[K]) OnChange(fn func()) {
	b.onChange = fn
}

// Changed raises the change notification. Concrete variants call it
// right after assigning a field, whether or not the value differed.
func (b *Base[K]) Changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

func (b *Base[K]) base() *Base[K] {
	return b
}
