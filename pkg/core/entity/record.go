// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package entity

import (
	"fmt"
	"strconv"
	"time"
)

// Record is an accessor for the columns of one persisted row.
// Value returns the raw column value as produced by the database driver
// and reports whether the column exists at all. An existing column with
// a SQL NULL value is reported as a nil value and true.
type Record interface {
	Value(column string) (v any, ok bool)
}

// Map is a Record which is backed by a column name to value map.
type Map map[string]any

// Value implements the Record interface.
func (m Map) Value(column string) (any, bool) {
	v, ok := m[column]
	return v, ok
}

// KindError indicates that a column holds a value which cannot be
// converted to the requested kind. It is an accessor fault, in
// contrast to a missing or NULL column which is not an error.
type KindError struct {
	Column string // name of the faulty column
	Want   string // requested kind, e.g., "string"
	Value  any    // actual value of the column
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf(
		"column %q holds %T, want %s", e.Column, e.Value, e.Want,
	)
}

// present returns the value of column and true if it exists and it is
// not NULL.
func present(r Record, column string) (any, bool) {
	v, ok := r.Value(column)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// StringOrNull reads a text column. Missing and NULL columns give nil.
func StringOrNull(r Record, column string) (*string, error) {
	v, ok := present(r, column)
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case string:
		return &v, nil
	case []byte:
		s := string(v)
		return &s, nil
	default:
		return nil, &KindError{Column: column, Want: "string", Value: v}
	}
}

// timeLayouts lists the textual timestamp formats which are accepted
// for drivers that report timestamps as text (e.g., SQLite).
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// TimeOrNull reads a timestamp column. Missing and NULL columns give
// nil. Textual values are parsed using the common SQL layouts.
func TimeOrNull(r Record, column string) (*time.Time, error) {
	v, ok := present(r, column)
	if !ok {
		return nil, nil
	}
	var s string
	switch v := v.(type) {
	case time.Time:
		return &v, nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return nil, &KindError{Column: column, Want: "timestamp", Value: v}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("column %q: unknown timestamp format %q", column, s)
}

// Float64OrNull reads a numeric column as float64. Missing and NULL
// columns give nil.
func Float64OrNull(r Record, column string) (*float64, error) {
	v, ok := present(r, column)
	if !ok {
		return nil, nil
	}
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case int:
		f = float64(v)
	case string, []byte:
		var err error
		f, err = strconv.ParseFloat(fmt.Sprintf("%s", v), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
	default:
		return nil, &KindError{Column: column, Want: "float64", Value: v}
	}
	return &f, nil
}

// Int64OrNull reads an integer column as int64. Missing and NULL
// columns give nil.
func Int64OrNull(r Record, column string) (*int64, error) {
	v, ok := present(r, column)
	if !ok {
		return nil, nil
	}
	var i int64
	switch v := v.(type) {
	case int64:
		i = v
	case int32:
		i = int64(v)
	case int16:
		i = int64(v)
	case int:
		i = int64(v)
	case string, []byte:
		var err error
		i, err = strconv.ParseInt(fmt.Sprintf("%s", v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
	default:
		return nil, &KindError{Column: column, Want: "int64", Value: v}
	}
	return &i, nil
}
