// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package trainsrp

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/record"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/cerr"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// Statements are derived from the train field table, so adding a
// field to model.Train only needs a new column in the schema.
var (
	selectSQL string
	upsertSQL string
)

func init() {
	cols := model.TrainSchema().Columns()
	selectSQL = fmt.Sprintf(
		"SELECT id, %s FROM trains WHERE id = ?",
		strings.Join(cols, ", "),
	)
	sets := make([]string, 0, len(cols))
	for _, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	upsertSQL = fmt.Sprintf(
		"INSERT INTO trains (id, %s) VALUES (?%s) "+
			"ON CONFLICT (id) DO UPDATE SET %s",
		strings.Join(cols, ", "),
		strings.Repeat(", ?", len(cols)),
		strings.Join(sets, ", "),
	)
}

// Fill reads the t.Key() row using q and fills t from it.
func Fill(ctx context.Context, q repo.Queryer, t *model.Train) error {
	rows, err := q.Query(ctx, selectSQL, t.Key())
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	r, err := record.First(rows)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	if r == nil {
		return cerr.NotFound(fmt.Errorf("train %d does not exist", t.Key()))
	}
	if err = t.FillFromRecord(r); err != nil {
		return fmt.Errorf("filling train %d: %w", t.Key(), err)
	}
	return nil
}

// Save inserts or updates the t.Key() row using q.
func Save(ctx context.Context, q repo.Queryer, t *model.Train) error {
	args := append([]any{t.Key()}, model.TrainSchema().Values(t)...)
	if _, err := q.Exec(ctx, upsertSQL, args...); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Delete removes the id row using q.
func Delete(ctx context.Context, q repo.Queryer, id int) error {
	n, err := q.Exec(ctx, "DELETE FROM trains WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if n == 0 {
		return cerr.NotFound(fmt.Errorf("train %d does not exist", id))
	}
	return nil
}
