// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stationsuc contains the stations UseCase which discovers the
// train stations near a coordinate using the places lookup service and
// records them in the database.
package stationsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/cerr"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// ErrNotConfigured is reported (wrapped in a cerr.Unavailable error)
// when the places lookup cannot be performed because its collaborator
// was not configured, e.g., it has no credential.
var ErrNotConfigured = errors.New("places lookup is not configured")

// Misconfigured may be implemented by the places lookup errors which
// indicate a configuration fault, instead of a service failure.
type Misconfigured interface {
	Misconfigured() bool
}

// UseCase represents a stations use case.
type UseCase struct {
	pool       repo.Pool
	stationsrp repo.Stations
	places     repo.Places
}

// New instantiates a stations use case.
func New(p repo.Pool, r repo.Stations, places repo.Places) *UseCase {
	return &UseCase{
		pool:       p,
		stationsrp: r,
		places:     places,
	}
}

// Nearby looks up the train stations near the c coordinate, upserts
// them by name in one transaction, and returns the persisted stations
// in the order of the lookup results. An invalid coordinate gives a
// cerr.BadRequest error and a failed lookup gives a cerr.BadGateway
// error, so nothing is written in those cases.
func (uc *UseCase) Nearby(ctx context.Context, c model.Coordinate) ([]*model.Station, error) {
	if err := c.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if uc.places == nil {
		return nil, cerr.Unavailable(ErrNotConfigured)
	}
	places, err := uc.places.Lookup(ctx, c)
	if err != nil {
		var m Misconfigured
		if errors.As(err, &m) && m.Misconfigured() {
			return nil, cerr.Unavailable(fmt.Errorf("%w: %w", ErrNotConfigured, err))
		}
		return nil, cerr.BadGateway(fmt.Errorf("looking up places: %w", err))
	}
	stations := make([]*model.Station, 0, len(places))
	if len(places) == 0 {
		return stations, nil
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := uc.stationsrp.Tx(tx)
			for _, p := range places {
				s, err := q.Upsert(ctx, p)
				if err != nil {
					return fmt.Errorf("upserting station %q: %w", p.Name, err)
				}
				stations = append(stations, s)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "nearby stations are recorded",
		log.Coord("near", c), slog.Int("count", len(stations)),
	)
	return stations, nil
}

// Get returns the id station from the database.
func (uc *UseCase) Get(ctx context.Context, id int) (s *model.Station, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		s, err = uc.stationsrp.Conn(conn).Get(ctx, id)
		return err
	})
	return s, err
}
