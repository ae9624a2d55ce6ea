// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Queryer runs SQL statements on a connection or transaction.
// Statements use the ? placeholder for their positional arguments,
// which is understood by all supported database adapters.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is the result set of a Query. Columns and Values make it
// possible to access the current row by column names.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Values() ([]any, error)
}
