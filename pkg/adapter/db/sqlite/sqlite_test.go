// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/record"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/sqlite"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPool(t *testing.T) *sqlite.Pool {
	t.Helper()
	ctx := context.Background()
	p, err := sqlite.NewPool(ctx, filepath.Join(t.TempDir(), "mavapp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return sqlite.InitSchema(ctx, c)
	}))
	return p
}

func countTrains(t *testing.T, p *sqlite.Pool) (n *int64) {
	t.Helper()
	require.NoError(t, p.Conn(context.Background(), func(ctx context.Context, c repo.Conn) error {
		rows, err := c.Query(ctx, "SELECT COUNT(*) AS n FROM trains")
		if err != nil {
			return err
		}
		r, err := record.First(rows)
		if err != nil {
			return err
		}
		n, err = entity.Int64OrNull(r, "n")
		return err
	}))
	return n
}

func TestTxCommitAndRollback(t *testing.T) {
	p := newPool(t)
	ctx := context.Background()
	errBoom := errors.New("boom")
	err := p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := tx.Exec(ctx, "INSERT INTO trains (id) VALUES (?)", 1)
			require.NoError(t, err)
			return errBoom
		})
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, int64(0), *countTrains(t, p))

	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			n, err := tx.Exec(ctx, "INSERT INTO trains (id) VALUES (?), (?)", 1, 2)
			assert.Equal(t, int64(2), n)
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), *countTrains(t, p))
}

func TestTxPanicRollsBack(t *testing.T) {
	p := newPool(t)
	ctx := context.Background()
	err := p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			_, _ = tx.Exec(ctx, "INSERT INTO trains (id) VALUES (?)", 1)
			panic("unexpected")
		})
	})
	assert.ErrorContains(t, err, "panicked: unexpected")
	assert.Equal(t, int64(0), *countTrains(t, p))
}

func TestNewPoolRequiresPath(t *testing.T) {
	_, err := sqlite.NewPool(context.Background(), " ")
	assert.Error(t, err)
}
