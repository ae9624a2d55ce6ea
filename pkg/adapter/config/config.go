// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the mavapp to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so they
// may be validated again by the relevant end-component.
// Secrets are not kept in the configuration file. They are read from
// the environment variables instead (see the Secrets struct).
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/cache/lru"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config/settings"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/places/google"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/places/placescache"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/stationsuc"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/trainsuc"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults of the optional settings.
const (
	DefaultTrainsCacheSize = 1024
	MaxTrainsCacheSize     = 1 << 20
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration file format can be kept intact while
// other layers can change freely.
type Config struct {
	Database Database // database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Places   Places   // places lookup client settings
	Usecases Usecases // supported use cases configuration settings

	Secrets Secrets `yaml:"-"`
}

// Secrets contains the settings which are read from the environment.
type Secrets struct {
	// PlacesAPIKey is the credential of the places lookup service.
	// It may be empty, then nearby stations cannot be looked up.
	PlacesAPIKey string `env:"PlacesAPIKey"`
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// The secrets are loaded from the environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice as a Config instance, reads the
// secrets from the environment, and validates the settings. Extra items
// in the data will be ignored and missing items will take their default
// values.
func Parse(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if err := env.Parse(&c.Secrets); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	settings.Nil2Zero(&c.Gin.Logger)
	settings.Nil2Zero(&c.Gin.Recovery)
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	if err := c.Places.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating places settings: %w", err)
	}
	if err := c.Usecases.Trains.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating trains settings: %w", err)
	}
	return nil
}

// Marshal serializes the `c` settings as YAML, excluding the secrets.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(
	ctx context.Context, r repo.Role,
) (Pool, error) {
	p, err := c.Database.ConnectionPool(ctx, r)
	if err != nil {
		return nil, fmt.Errorf(
			"%s.ConnectionPool: %w", c.Database.Driver, err,
		)
	}
	return p, nil
}

// NewPlaces instantiates the places lookup client using the settings
// in the `c` struct and the PlacesAPIKey secret. A missing credential
// is reported as the google.ErrMissingAPIKey error.
func (c *Config) NewPlaces() (repo.Places, error) {
	return c.Places.NewPlaces(c.Secrets.PlacesAPIKey)
}

// NewTrainsUseCase instantiates a new trains use case based on the
// settings in the `c` struct.
func (c *Config) NewTrainsUseCase(
	p repo.Pool, r repo.Trains,
) (*trainsuc.UseCase, error) {
	return c.Usecases.Trains.NewUseCase(p, r)
}

// NewStationsUseCase instantiates a new stations use case. The places
// argument may be nil if the places lookup is not configured.
func (c *Config) NewStationsUseCase(
	p repo.Pool, r repo.Stations, places repo.Places,
) *stationsuc.UseCase {
	return stationsuc.New(p, r, places)
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool // Whether to register the request logger middleware
	Recovery *bool // Whether to register the recovery middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request id middleware is always registered.
// Logs are written to the slog.Default() logger.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	middlewares = append(middlewares, gin.RequestID())
	if g.Logger != nil && *g.Logger {
		middlewares = append(middlewares, gin.Logger(slog.Default()))
	}
	if g.Recovery != nil && *g.Recovery {
		middlewares = append(middlewares, gin.Recovery(slog.Default()))
	}
	return gin.New(middlewares...)
}

// Places contains the places lookup client settings.
type Places struct {
	// Endpoint overrides the nearby search endpoint URL.
	Endpoint string

	// Timeout bounds each lookup. A nil value selects the default
	// timeout of the client.
	Timeout *settings.Duration

	// CacheTTL is the duration of keeping the lookup results.
	// A nil or zero value disables the cache.
	CacheTTL *settings.Duration `yaml:"cache-ttl"`
}

// ValidateAndNormalize validates the places settings.
func (p *Places) ValidateAndNormalize() error {
	if p.Timeout != nil && *p.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if p.CacheTTL != nil && *p.CacheTTL < 0 {
		return errors.New("cache-ttl must not be negative")
	}
	return nil
}

// NewPlaces instantiates the places lookup client with the apiKey
// credential, wrapping it by a cache if CacheTTL is positive.
func (p Places) NewPlaces(apiKey string) (repo.Places, error) {
	opts := make([]google.Option, 0, 2)
	if p.Endpoint != "" {
		opts = append(opts, google.WithEndpoint(p.Endpoint))
	}
	if p.Timeout != nil {
		opts = append(opts, google.WithTimeout(time.Duration(*p.Timeout)))
	}
	c, err := google.New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	if p.CacheTTL == nil || *p.CacheTTL == 0 {
		return c, nil
	}
	return placescache.New(c, time.Duration(*p.CacheTTL)), nil
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Trains Trains // trains use case related settings
}

// Trains contains the configuration settings for the trains use case.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Trains struct {
	// CacheSize is the maximum number of cached trains.
	CacheSize *int `yaml:"cache-size"`

	// CacheExpiration makes the cached trains expire after being
	// cached for this duration. A nil or zero value keeps them until
	// they are evicted.
	CacheExpiration *settings.Duration `yaml:"cache-expiration"`

	// ReloadExpired asks for reloading the cached trains which have
	// passed their expiry dates.
	ReloadExpired *bool `yaml:"reload-expired"`
}

// ValidateAndNormalize validates the trains settings and fills the
// missing cache size with its default value.
func (t *Trains) ValidateAndNormalize() error {
	defaultSize := DefaultTrainsCacheSize
	settings.OverwriteNil(&t.CacheSize, &defaultSize)
	minSize, maxSize := 1, MaxTrainsCacheSize
	if err := settings.VerifyRange(&t.CacheSize, &minSize, &maxSize); err != nil {
		return fmt.Errorf("cache-size=%d: %w", *err.Value, err)
	}
	if t.CacheExpiration != nil && *t.CacheExpiration < 0 {
		return errors.New("cache-expiration must not be negative")
	}
	settings.Nil2Zero(&t.ReloadExpired)
	return nil
}

// NewUseCase instantiates a new trains use case based on the settings
// in the `t` struct.
func (t Trains) NewUseCase(
	p repo.Pool, r repo.Trains,
) (*trainsuc.UseCase, error) {
	size := DefaultTrainsCacheSize
	if t.CacheSize != nil {
		size = *t.CacheSize
	}
	var exp time.Duration
	if t.CacheExpiration != nil {
		exp = time.Duration(*t.CacheExpiration)
	}
	c, err := lru.New[int, *model.Train](size, exp)
	if err != nil {
		return nil, fmt.Errorf("creating trains cache: %w", err)
	}
	opts := make([]trainsuc.Option, 0, 1)
	if t.ReloadExpired != nil && *t.ReloadExpired {
		opts = append(opts, trainsuc.WithReloadExpired())
	}
	return trainsuc.New(p, r, c, opts...)
}
