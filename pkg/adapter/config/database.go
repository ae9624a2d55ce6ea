// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/postgres"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/sqlite"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// Supported database drivers.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Pool is a repo.Pool which should be closed after use.
type Pool interface {
	repo.Pool
	Close() error
}

// Database contains the database related configuration settings.
// The Host, Port, Name, and PassDir fields are used by the postgres
// driver, while the Path field is used by the sqlite driver.
type Database struct {
	Driver  string // postgres (the default) or sqlite
	Host    string // domain name or IP address of the DBMS server
	Port    int    // port number of the DBMS server
	Name    string // database name, like mavapp
	PassDir string `yaml:"pass-dir"` // path of the passwords dir
	Path    string // path of the SQLite database file
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
// For the postgres driver, the .pgpass file in the d.PassDir folder is
// checked which should conform with the pgpass format with lines like:
//
//	host:port:dbname:role:password
//
// If a database connection cannot be established, the .pgpass.new file
// in the same folder is checked too, and if it works, it is moved over
// the .pgpass file. The `r` role is ignored by the sqlite driver.
func (d Database) ConnectionPool(
	ctx context.Context, r repo.Role,
) (Pool, error) {
	if d.Driver == SQLite {
		p, err := sqlite.NewPool(ctx, d.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	u, err := d.ConnectionURL(r, path)
	if err != nil {
		return nil, fmt.Errorf("using %q pass-file: %w", path, err)
	}
	p, err := postgres.NewPool(ctx, u)
	if err == nil {
		return p, nil
	}
	log.Warn(ctx, "failed to connect", log.Err("error", err))
	newPath := filepath.Join(d.PassDir, ".pgpass.new")
	u, err = d.ConnectionURL(r, newPath)
	if err != nil {
		return nil, fmt.Errorf("using %q pass-file: %w", newPath, err)
	}
	p, err = postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("can use neither pass-file: %w", err)
	}
	if err = os.Rename(newPath, path); err != nil {
		p.Close()
		return nil, fmt.Errorf("os.Rename: %w", err)
	}
	return p, nil
}

// ConnectionURL returns the PostgreSQL connection URL embedding the
// host, port, role name, database name, and password value. The
// password of the `r` role is read from the given `path` file which
// may contain empty or `#`-commented lines too.
func (d Database) ConnectionURL(
	r repo.Role, path string,
) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, r)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", errors.New("no matching password line")
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(string(r), pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// InitSchema creates the tables of the configured driver using q.
func (d Database) InitSchema(ctx context.Context, q repo.Queryer) error {
	if d.Driver == SQLite {
		return sqlite.InitSchema(ctx, q)
	}
	return postgres.InitSchema(ctx, q)
}

// ValidateAndNormalize validates the database settings and fills the
// missing ones with their defaults. So, it takes a pointer receiver
// instead of a non-reference receiver (in contrast to other methods).
func (d *Database) ValidateAndNormalize() error {
	switch d.Driver {
	case "":
		d.Driver = Postgres
		fallthrough
	case Postgres:
		if d.Host == "" {
			return errors.New("database host is required")
		}
		if d.Name == "" {
			return errors.New("database name is required")
		}
		if d.Port == 0 {
			d.Port = 5432
		}
		if d.Port < 0 || d.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", d.Port)
		}
		if d.PassDir == "" {
			d.PassDir = "."
		}
	case SQLite:
		if strings.TrimSpace(d.Path) == "" {
			return errors.New("database path is required by sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
	return nil
}
