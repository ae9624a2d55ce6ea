// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package trainsuc contains the trains UseCase which keeps the trains
// in memory, synchronized with the database. It supports:
//  1. Fetching a train, loading it from the database on a cache miss,
//  2. Creating a train and refreshing its cached instance in place,
//  3. Updating the fields of a train and flushing the changes,
//  4. Flushing all changed trains in one transaction.
//
// The use case is the owner of the cached entities. It serializes all
// accesses to them and tracks their changes using their change hooks.
package trainsuc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// UseCase represents a trains use case. It holds a database connection
// pool, the trains repository instance (to be guided with the DB pool),
// the identity map of trains, and the set of changed trains.
type UseCase struct {
	pool     repo.Pool
	trainsrp repo.Trains
	cache    repo.EntityCache[int, *model.Train]

	now           func() time.Time
	reloadExpired bool

	// mutex guards the cached trains, their fields, and the dirty set.
	// Trains are plain mutable values without their own locking.
	mutex sync.Mutex

	// dirty keeps the changed trains by their keys. It holds the train
	// instances, so a train which is evicted from the cache while it
	// is dirty will still be persisted by the next Flush.
	dirty map[int]*model.Train
}

// New instantiates a trains use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	r repo.Trains,
	c repo.EntityCache[int, *model.Train],
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:     p,
		trainsrp: r,
		cache:    c,
		dirty:    make(map[int]*model.Train),
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// track makes t report its changes to the dirty set of uc.
// It must be called with the mutex being held.
func (trains *UseCase) track(t *model.Train) {
	t.OnChange(func() {
		trains.dirty[t.Key()] = t
	})
}

// Get returns the id train. A cached instance is returned if it exists.
// A dirty train which was evicted from the cache is cached and returned
// again, keeping its unflushed changes. Otherwise, an unfilled placeholder is cached and filled from the
// database. Trains which are filled from the database are not dirty.
// A missing row results in a cerr.NotFound error and nothing is cached.
// Returned train must not be accessed concurrently with other methods
// of this use case (e.g., use Update in order to change its fields).
func (trains *UseCase) Get(ctx context.Context, id int) (*model.Train, error) {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	t, ok := trains.cache.Get(id)
	if !ok {
		if t, ok = trains.dirty[id]; ok {
			// evicted before its changes were flushed
			trains.cache.Set(id, t)
			return t, nil
		}
		t = model.NewTrain(id)
		trains.track(t)
		trains.cache.Set(id, t)
	}
	if t.Filled() && !(trains.reloadExpired && t.Expired(trains.now())) {
		return t, nil
	}
	if _, changed := trains.dirty[id]; changed {
		// keep the unflushed changes instead of reloading them
		return t, nil
	}
	err := trains.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return trains.trainsrp.Conn(c).Fill(ctx, t)
	})
	if err != nil {
		if !t.Filled() {
			trains.cache.Remove(id)
		}
		return nil, fmt.Errorf("filling train %d: %w", id, err)
	}
	delete(trains.dirty, id)
	log.Debug(ctx, "train is loaded", log.Key("id", id))
	return t, nil
}

// Create persists the t train and adopts it. If an instance of the
// same train is already cached, it is refreshed in place using t, so
// references which are held by others observe the new contents.
// Otherwise, t itself is cached. The adopted instance is returned.
func (trains *UseCase) Create(ctx context.Context, t *model.Train) (*model.Train, error) {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	err := trains.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return trains.trainsrp.Conn(c).Save(ctx, t)
	})
	if err != nil {
		return nil, fmt.Errorf("saving train %d: %w", t.Key(), err)
	}
	id := t.Key()
	cached, ok := trains.cache.Get(id)
	if ok && cached != t {
		cached.FillFrom(t)
		t = cached
	} else {
		trains.track(t)
		trains.cache.Set(id, t)
	}
	delete(trains.dirty, id)
	return t, nil
}

// TrainPatch describes the fields of a train which should be updated.
// A nil field is left unchanged. An empty Name or Type clears that
// field and a zero Expiry removes the expiry date.
type TrainPatch struct {
	Name   *string
	Type   *string
	Expiry *time.Time
}

// Update loads the id train (if needed), applies the p patch using the
// train setters, and flushes all changed trains.
func (trains *UseCase) Update(ctx context.Context, id int, p TrainPatch) (*model.Train, error) {
	t, err := trains.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	trains.mutex.Lock()
	if p.Name != nil {
		t.SetName(emptyToNil(p.Name))
	}
	if p.Type != nil {
		t.SetType(emptyToNil(p.Type))
	}
	if p.Expiry != nil {
		if p.Expiry.IsZero() {
			t.SetExpiryDate(nil)
		} else {
			t.SetExpiryDate(p.Expiry)
		}
	}
	trains.mutex.Unlock()
	if _, err = trains.Flush(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func emptyToNil(s *string) *string {
	if *s == "" {
		return nil
	}
	return s
}

// Flush saves all changed trains in one transaction and returns their
// count. The dirty set is cleared only if the transaction commits.
func (trains *UseCase) Flush(ctx context.Context) (n int, err error) {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	if len(trains.dirty) == 0 {
		return 0, nil
	}
	err = trains.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := trains.trainsrp.Tx(tx)
			for _, t := range trains.dirty {
				if err := q.Save(ctx, t); err != nil {
					return fmt.Errorf("saving train %d: %w", t.Key(), err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("flushing trains: %w", err)
	}
	n = len(trains.dirty)
	clear(trains.dirty)
	log.Info(ctx, "trains are flushed", slog.Int("count", n))
	return n, nil
}

// Dirty returns the number of trains with unflushed changes.
func (trains *UseCase) Dirty() int {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	return len(trains.dirty)
}

// Evict removes the id train from the cache. If it has unflushed
// changes, they are still persisted by the next Flush.
func (trains *UseCase) Evict(id int) {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	trains.cache.Remove(id)
}

// Delete removes the id train from the database and the cache,
// dropping its unflushed changes.
func (trains *UseCase) Delete(ctx context.Context, id int) error {
	trains.mutex.Lock()
	defer trains.mutex.Unlock()
	err := trains.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return trains.trainsrp.Conn(c).Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting train %d: %w", id, err)
	}
	trains.cache.Remove(id)
	delete(trains.dirty, id)
	return nil
}
