// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placescache decorates a repo.Places with an expiring cache.
// Lookups are idempotent reads, so repeated lookups of a coordinate
// within the cache TTL may be served without asking the service again.
package placescache

import (
	"context"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/patrickmn/go-cache"
)

// Places caches the successful lookups of the next repo.Places.
// Failed lookups are not cached.
type Places struct {
	next  repo.Places
	cache *cache.Cache
}

// New creates a caching repo.Places which keeps the lookup results
// for the ttl duration.
func New(next repo.Places, ttl time.Duration) *Places {
	return &Places{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Lookup returns the cached places near c, or asks the next
// repo.Places for them. Coordinates are matched after rounding them
// to five decimals (about one meter).
func (p *Places) Lookup(ctx context.Context, c model.Coordinate) ([]model.Place, error) {
	k := key(c)
	if v, ok := p.cache.Get(k); ok {
		log.Debug(ctx, "places cache hit", log.Coord("near", c))
		return slices.Clone(v.([]model.Place)), nil
	}
	places, err := p.next.Lookup(ctx, c)
	if err != nil {
		return nil, err
	}
	p.cache.SetDefault(k, slices.Clone(places))
	return places, nil
}

// Len returns the number of cached lookups, including the expired
// ones which are not cleaned up yet.
func (p *Places) Len() int {
	return p.cache.ItemCount()
}

func key(c model.Coordinate) string {
	return round(c.Lat) + "," + round(c.Lon)
}

func round(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e5)/1e5, 'f', 5, 64)
}
