// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres is the PostgreSQL database adapter. It implements
// the repo.Pool, repo.Conn, and repo.Tx interfaces using the GORM
// framework and its pgx based driver. Repositories which only need
// the repo.Queryer methods work with this adapter and the SQLite one.
package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/ddl"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed schema.sql
var schema string

// Pool is a connection pool of a PostgreSQL database.
type Pool struct {
	*gorm.DB
}

// gormWriter passes the GORM logs to the structured logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	log.Warn(context.Background(), fmt.Sprintf(format, args...))
}

// NewPool connects to the url PostgreSQL database and tests the
// connection before returning the pool.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	gdb = gdb.Session(&gorm.Session{
		Logger: logger.New(gormWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			// Set to false in order to log with replaced vars
			ParameterizedQueries: true,
		}),
	})
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

// NoOpConnHandler does nothing. It is useful for testing the pool.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a connection from p and passes it to f, releasing it
// after f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// Close closes all connections of the pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// InitSchema creates the trains and stations tables if they do not
// exist. It needs a role which may create tables.
func InitSchema(ctx context.Context, q repo.Queryer) error {
	return ddl.Run(ctx, q, schema)
}
