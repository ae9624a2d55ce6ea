// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stationsrp implements the repo.Stations interface.
package stationsrp

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

func (stations *Repo) Conn(c repo.Conn) repo.StationsConnQueryer {
	return queryer{q: c}
}

func (stations *Repo) Tx(tx repo.Tx) repo.StationsTxQueryer {
	return queryer{q: tx}
}

func (sq queryer) Upsert(ctx context.Context, p model.Place) (*model.Station, error) {
	return Upsert(ctx, sq.q, p)
}

func (sq queryer) Get(ctx context.Context, id int) (*model.Station, error) {
	return Get(ctx, sq.q, id)
}
