// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages.
// This packages facilitates creation of a temporary postgres:16
// podman container and connecting to it, using a *postgres.Pool
// connection pool whose trains and stations tables are created.
// It may be used in all integration-level test suites which require
// a real PostgreSQL DBMS server. Other tests may use the SQLite
// adapter with a temporary file instead.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/postgres"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// New creates and starts up a postgres podman container, connects to
// it, and creates the tables. The test is skipped if the DOCKER_HOST
// environment variable is not set, so the podman.service needs to be
// started and the variable needs to be initialized beforehand like
// DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
// The ctx is used during the container start up and shutdown, while
// the timeout is considered only during the start up phase.
// The container and pool are released by t.Cleanup.
func New(ctx context.Context, timeout time.Duration, t *testing.T) *postgres.Pool {
	t.Helper()
	if os.Getenv("DOCKER_HOST") == "" {
		t.Skip("DOCKER_HOST is not set, skipping PostgreSQL tests")
	}
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pg, err := sqltestutil.StartPostgresContainer(ctx2, "16")
	require.NoError(t, err, "failed to set up a test database")
	t.Cleanup(func() {
		if err := pg.Shutdown(ctx); err != nil {
			t.Errorf("failed to shutdown test database: %v", err)
		}
	})
	pool, err := connect(ctx2, pg.ConnectionString())
	require.NoError(t, err, "cannot connect to test database")
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("failed to close the connections pool: %v", err)
		}
	})
	err = pool.Conn(ctx2, func(ctx context.Context, c repo.Conn) error {
		return postgres.InitSchema(ctx, c)
	})
	require.NoError(t, err, "failed to create the tables")
	return pool
}

// connect retries until the server accepts connections or ctx expires.
func connect(ctx context.Context, u string) (*postgres.Pool, error) {
	for {
		pool, err := postgres.NewPool(ctx, u)
		if err == nil {
			return pool, nil
		}
		var pgErr *pgconn.PgError
		var netErr net.Error
		switch {
		case ctx.Err() != nil:
			return nil, err
		case errors.As(err, &pgErr) && pgErr.SQLState() == "57P03":
			// the database system is starting up
		case errors.As(err, &netErr):
		default:
			return nil, err
		}
		time.Sleep(100 * time.Millisecond)
	}
}
