// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package trainsrp implements the repo.Trains interface with plain SQL
// statements which run on the PostgreSQL and SQLite adapters alike.
package trainsrp

import (
	"context"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type queryer struct {
	q repo.Queryer
}

func (trains *Repo) Conn(c repo.Conn) repo.TrainsConnQueryer {
	return queryer{q: c}
}

func (trains *Repo) Tx(tx repo.Tx) repo.TrainsTxQueryer {
	return queryer{q: tx}
}

func (tq queryer) Fill(ctx context.Context, t *model.Train) error {
	return Fill(ctx, tq.q, t)
}

func (tq queryer) Save(ctx context.Context, t *model.Train) error {
	return Save(ctx, tq.q, t)
}

func (tq queryer) Delete(ctx context.Context, id int) error {
	return Delete(ctx, tq.q, id)
}
