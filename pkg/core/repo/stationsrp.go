// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
)

type StationsConnQueryer interface {
	StationsQueryer
}

type StationsTxQueryer interface {
	StationsQueryer
}

type StationsQueryer interface {
	// Upsert records the p place as a station with its name, updating
	// the coordinate of an existing station with the same name.
	// The persisted station is returned as a filled entity.
	Upsert(ctx context.Context, p model.Place) (*model.Station, error)

	// Get returns the filled id station or a cerr.NotFound error.
	Get(ctx context.Context, id int) (*model.Station, error)
}

type Stations interface {
	Conn(Conn) StationsConnQueryer
	Tx(Tx) StationsTxQueryer
}
