// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/stationsrp"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/trainsrp"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/places/google"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/stationsrs"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/trainsrs"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/trainsuc"
	"github.com/gin-gonic/gin"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like trainsuc and each repository package is named like trainsrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like trainsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
//
// A missing places API key is logged and the nearby stations API will
// report it, while other APIs keep working. The trains use case is
// returned, so its unflushed changes may be flushed before exiting.
func Register(
	ctx context.Context, e *gin.Engine, p repo.Pool, c *config.Config,
) (*trainsuc.UseCase, error) {
	trainsUseCase, err := c.NewTrainsUseCase(p, trainsrp.New())
	if err != nil {
		return nil, fmt.Errorf("creating trains use case: %w", err)
	}
	places, err := c.NewPlaces()
	switch {
	case errors.Is(err, google.ErrMissingAPIKey):
		log.Error(ctx, "nearby stations are not available", log.Err("error", err))
		places = nil
	case err != nil:
		return nil, fmt.Errorf("creating places client: %w", err)
	}
	stationsUseCase := c.NewStationsUseCase(p, stationsrp.New(), places)

	r := e.Group("/api/mavapp/v1")
	trainsrs.Register(r, trainsUseCase)
	stationsrs.Register(r, stationsUseCase)
	return trainsUseCase, nil
}
