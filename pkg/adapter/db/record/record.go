// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package record bridges the result sets of the database adapters and
// the entity.Record accessor which is used for filling the entities.
// It is shared by the PostgreSQL and SQLite adapters, so the entity
// filling logic does not depend on the database driver in use.
package record

import (
	"database/sql"
	"fmt"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// Scan reads the current row of rows as an entity.Record, keyed by the
// column names of the result set. The rows.Next() must have returned
// true before calling Scan.
func Scan(rows repo.Rows) (entity.Record, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	if len(vals) != len(names) {
		return nil, fmt.Errorf(
			"got %d values for %d columns", len(vals), len(names),
		)
	}
	m := make(entity.Map, len(names))
	for i, name := range names {
		m[name] = vals[i]
	}
	return m, nil
}

// First returns the first row of rows as an entity.Record and closes
// rows. If there are no rows, a nil Record and nil error are returned.
func First(rows repo.Rows) (entity.Record, error) {
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := Scan(rows)
	if err != nil {
		return nil, err
	}
	return r, rows.Err()
}

// Rows adapts *sql.Rows to the repo.Rows interface.
type Rows struct {
	*sql.Rows
}

// Adapt wraps rows unless it is nil. A nil *sql.Rows gives a nil
// repo.Rows, so callers may return the adapted rows alongside errors.
func Adapt(rows *sql.Rows) repo.Rows {
	if rows == nil {
		return nil
	}
	return Rows{Rows: rows}
}

// Close closes the result set. Its possible error may be checked by
// calling the Err() method.
func (ra Rows) Close() {
	_ = ra.Rows.Close()
}

// Values scans the current row, keeping the values as they are
// reported by the database driver.
func (ra Rows) Values() ([]any, error) {
	names, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals := make([]any, len(names))
	valPtrs := make([]any, 0, len(names))
	for i := range vals {
		ptr := &vals[i]
		valPtrs = append(valPtrs, ptr)
	}
	err = ra.Scan(valPtrs...)
	return vals, err
}
