// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package entity

import (
	"reflect"
	"time"
)

// Kind describes how a field of type T is read from a Record (Get),
// how it is passed back to a database driver as a query argument (Put),
// and how it is copied between entities (Clone). A nil Clone copies
// the value as is, which suits the types without shared storage.
type Kind[T any] struct {
	Get   func(r Record, column string) (T, error)
	Put   func(v T) any
	Clone func(v T) T
}

// Kinds of the nullable primitive fields. A nil pointer is written as
// a SQL NULL and a missing or NULL column is read as a nil pointer.
var (
	String  = Kind[*string]{Get: StringOrNull, Put: deref[string], Clone: clonePtr[string]}
	Time    = Kind[*time.Time]{Get: TimeOrNull, Put: deref[time.Time], Clone: clonePtr[time.Time]}
	Float64 = Kind[*float64]{Get: Float64OrNull, Put: deref[float64], Clone: clonePtr[float64]}
	Int64   = Kind[*int64]{Get: Int64OrNull, Put: deref[int64], Clone: clonePtr[int64]}
)

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Field is one persisted field of the E entity variant. It is created
// by Bind and collected by a Schema.
type Field[E any] struct {
	column string
	load   func(r Record) (func(E), error)
	copy   func(dst, src E)
	value  func(e E) any
}

// Bind declares that the column is stored in the field which is
// referenced by ref and has the given kind. The ref function must
// return the address of the same field for every E instance.
// Reading, copying, and writing of the field are all derived from
// this single declaration.
func Bind[E, T any](column string, kind Kind[T], ref func(E) *T) Field[E] {
	return Field[E]{
		column: column,
		load: func(r Record) (func(E), error) {
			v, err := kind.Get(r, column)
			if err != nil {
				return nil, err
			}
			return func(e E) { *ref(e) = v }, nil
		},
		copy: func(dst, src E) {
			v := *ref(src)
			if kind.Clone != nil {
				v = kind.Clone(v)
			}
			*ref(dst) = v
		},
		value: func(e E) any {
			return kind.Put(*ref(e))
		},
	}
}

// Schema is the field table of the E entity variant with K keys.
// It backs both population paths and the repositories write path.
type Schema[K comparable, E Keyed[K]] struct {
	fields []Field[E]
}

// NewSchema creates a Schema with the given fields, in order.
func NewSchema[K comparable, E Keyed[K]](fields ...Field[E]) *Schema[K, E] {
	return &Schema[K, E]{fields: fields}
}

// Columns returns the column names of the fields, excluding the key.
func (s *Schema[K, E]) Columns() []string {
	cols := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		cols = append(cols, f.column)
	}
	return cols
}

// Values returns the query arguments of e fields, matching Columns.
func (s *Schema[K, E]) Values(e E) []any {
	vals := make([]any, 0, len(s.fields))
	for _, f := range s.fields {
		vals = append(vals, f.value(e))
	}
	return vals
}

// FillFromRecord overwrites every field of e from the r accessor, marks
// e as filled, and raises one change notification for the whole fill.
// Missing or NULL columns give the nullable default of their fields.
// If the accessor faults for any column, the error is returned and e is
// left untouched, since all fields are read before any one is assigned.
func (s *Schema[K, E]) FillFromRecord(e E, r Record) error {
	assigns := make([]func(E), 0, len(s.fields))
	for _, f := range s.fields {
		assign, err := f.load(r)
		if err != nil {
			return err
		}
		assigns = append(assigns, assign)
	}
	for _, assign := range assigns {
		assign(e)
	}
	b := e.base()
	b.filled = true
	b.Changed()
	return nil
}

// Fill copies every field of src into dst, excluding the key, and
// raises one change notification on dst. Values are cloned by their
// kinds, so dst shares no storage with src afterwards.
// The filled flag of src is copied too, but a filled dst never turns
// back to unfilled. So, dst.Filled() equals src.Filled() after Fill
// unless dst was filled and src was not, in which case it stays true.
func (s *Schema[K, E]) Fill(dst, src E) {
	for _, f := range s.fields {
		f.copy(dst, src)
	}
	b := dst.base()
	b.filled = b.filled || src.base().filled
	b.Changed()
}

// FillFromOther fills dst from other if other has the same concrete
// variant as dst, returning true. Otherwise, dst is not changed at all
// and false is returned. A variant mismatch is not an error, and a nil
// other (even a typed nil) counts as a mismatch.
func (s *Schema[K, E]) FillFromOther(dst E, other Keyed[K]) bool {
	src, ok := other.(E)
	if !ok || isNil(src) {
		return false
	}
	s.Fill(dst, src)
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
