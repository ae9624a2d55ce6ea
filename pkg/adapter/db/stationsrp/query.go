// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package stationsrp

import (
	"context"
	"fmt"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/record"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/cerr"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

const upsertSQL = `INSERT INTO stations (name, lat, lon) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET lat = excluded.lat, lon = excluded.lon
RETURNING id, name, lat, lon`

const selectSQL = `SELECT id, name, lat, lon FROM stations WHERE id = ?`

// station creates a filled station from r, taking its key from the
// id column.
func station(r entity.Record) (*model.Station, error) {
	id, err := entity.Int64OrNull(r, "id")
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, fmt.Errorf("station row has no id")
	}
	s := model.NewStation(int(*id))
	if err = s.FillFromRecord(r); err != nil {
		return nil, fmt.Errorf("filling station %d: %w", *id, err)
	}
	return s, nil
}

// Upsert records p as a station using q and returns it.
func Upsert(ctx context.Context, q repo.Queryer, p model.Place) (*model.Station, error) {
	rows, err := q.Query(
		ctx, upsertSQL, p.Name, p.Coordinate.Lat, p.Coordinate.Lon,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	r, err := record.First(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("upsert of %q returned no rows", p.Name)
	}
	return station(r)
}

// Get reads the id station using q.
func Get(ctx context.Context, q repo.Queryer, id int) (*model.Station, error) {
	rows, err := q.Query(ctx, selectSQL, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	r, err := record.First(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}
	if r == nil {
		return nil, cerr.NotFound(fmt.Errorf("station %d does not exist", id))
	}
	return station(r)
}
