// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite is the embedded SQLite database adapter. It implements
// the repo.Pool, repo.Conn, and repo.Tx interfaces over database/sql
// with the pure Go modernc.org/sqlite driver, so the web server may run
// without a PostgreSQL server (e.g., during development and tests).
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/ddl"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/record"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Pool wraps a SQLite database handle. It keeps a single open
// connection because SQLite serializes the writers anyway and an
// in-memory database is private to its connection.
type Pool struct {
	db *sql.DB
}

// NewPool opens the path SQLite database file, creating it if it does
// not exist. The ":memory:" path opens a private in-memory database.
func NewPool(ctx context.Context, path string) (*Pool, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
	}
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Pool{db: db}, nil
}

// Conn acquires the connection of p and passes it to f, releasing it
// after f returns.
func (p *Pool) Conn(ctx context.Context, f repo.ConnHandler) error {
	c, err := p.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer c.Close()
	return f(ctx, &Conn{c: c})
}

// Close closes the database.
func (p *Pool) Close() error {
	return p.db.Close()
}

// InitSchema creates the trains and stations tables if they do not
// exist.
func InitSchema(ctx context.Context, q repo.Queryer) error {
	return ddl.Run(ctx, q, schema)
}

// Conn is a connection which is acquired from a Pool.
type Conn struct {
	c *sql.Conn
}

// Tx begins a transaction and passes it to f. The transaction is
// committed if f returns nil and is rolled back if f returns an error
// or panics.
func (c *Conn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	tx, err := c.c.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			if err = tx.Rollback(); err != nil {
				err = fmt.Errorf("panicked: %v, rollback: %w", r, err)
				return
			}
			err = fmt.Errorf("panicked: %v", r)
			return
		}
		if err != nil {
			if err2 := tx.Rollback(); err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{tx: tx})
}

// Exec runs sql with args and returns the number of affected rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	res, err := c.c.ExecContext(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Query runs sql with args and returns its result set.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := c.c.QueryContext(ctx, sql, args...)
	return record.Adapt(rows), err
}

func (c *Conn) IsConn() {
}

// Tx represents a SQLite transaction. It is unsafe to be used
// concurrently. SQLite transactions are serializable.
type Tx struct {
	tx *sql.Tx
}

// Exec runs sql with args and returns the number of affected rows.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	res, err := tx.tx.ExecContext(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Query runs sql with args and returns its result set.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := tx.tx.QueryContext(ctx, sql, args...)
	return record.Adapt(rows), err
}

func (tx *Tx) IsTx() {
}

var (
	_ repo.Pool = (*Pool)(nil)
	_ repo.Conn = (*Conn)(nil)
	_ repo.Tx   = (*Tx)(nil)
)
