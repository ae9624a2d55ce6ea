// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
)

type TrainsConnQueryer interface {
	TrainsQueryer
}

type TrainsTxQueryer interface {
	TrainsQueryer
}

// TrainsQueryer reads and writes trains using one connection or
// transaction.
type TrainsQueryer interface {
	// Fill reads the row of t.Key() and fills t from it. A missing row
	// is reported as a cerr.NotFound error, leaving t unfilled.
	Fill(ctx context.Context, t *model.Train) error

	// Save inserts or updates the row of t.Key() using t fields.
	Save(ctx context.Context, t *model.Train) error

	// Delete removes the id row, returning a cerr.NotFound error if it
	// did not exist.
	Delete(ctx context.Context, id int) error
}

type Trains interface {
	Conn(Conn) TrainsConnQueryer
	Tx(Tx) TrainsTxQueryer
}
