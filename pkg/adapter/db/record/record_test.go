// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package record_test

import (
	"errors"
	"testing"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceRows is an in-memory repo.Rows.
type sliceRows struct {
	cols   []string
	rows   [][]any
	i      int
	err    error
	closed bool
}

func (s *sliceRows) Close()                     { s.closed = true }
func (s *sliceRows) Err() error                 { return s.err }
func (s *sliceRows) Scan(...any) error          { return errors.New("unused") }
func (s *sliceRows) Columns() ([]string, error) { return s.cols, nil }

func (s *sliceRows) Next() bool {
	if s.i >= len(s.rows) {
		return false
	}
	s.i++
	return true
}

func (s *sliceRows) Values() ([]any, error) {
	return s.rows[s.i-1], nil
}

func TestFirst(t *testing.T) {
	rows := &sliceRows{
		cols: []string{"id", "name", "type"},
		rows: [][]any{{int64(521), []byte("Savaria"), nil}, {int64(1), "x", nil}},
	}
	r, err := record.First(rows)
	require.NoError(t, err)
	assert.True(t, rows.closed)
	v, ok := r.Value("name")
	assert.True(t, ok)
	assert.Equal(t, []byte("Savaria"), v)
	v, ok = r.Value("type")
	assert.True(t, ok, "NULL columns exist")
	assert.Nil(t, v)
	_, ok = r.Value("polyline")
	assert.False(t, ok)
}

func TestFirstEmpty(t *testing.T) {
	rows := &sliceRows{cols: []string{"id"}}
	r, err := record.First(rows)
	assert.NoError(t, err)
	assert.Nil(t, r)

	rows = &sliceRows{cols: []string{"id"}, err: errors.New("broken")}
	_, err = record.First(rows)
	assert.Error(t, err)
}

func TestScanMismatch(t *testing.T) {
	rows := &sliceRows{cols: []string{"id", "name"}, rows: [][]any{{int64(1)}}}
	require.True(t, rows.Next())
	_, err := record.Scan(rows)
	assert.Error(t, err)
}

func TestAdaptNil(t *testing.T) {
	assert.Nil(t, record.Adapt(nil))
}
