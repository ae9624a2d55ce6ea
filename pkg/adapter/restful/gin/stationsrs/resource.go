// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stationsrs realizes the stations resource.
package stationsrs

import (
	"net/http"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/serdser"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/stationsuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	stations *stationsuc.UseCase
}

// Register instantiates a resource adapting the stations use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/mavapp/v1/stations/nearby?lat=..&lon=..
//     in order to look up and record the nearby train stations,
//  2. GET request to /api/mavapp/v1/stations/:id
//     in order to fetch a recorded station.
func Register(r *gin.RouterGroup, stations *stationsuc.UseCase) {
	rs := &resource{stations: stations}
	r.GET("stations/nearby", rs.Nearby)
	r.GET("stations/:id", rs.GetStation)
}

func (rs *resource) Nearby(c *gin.Context) {
	coord, ok := dserNearbyReq(c)
	if !ok {
		return
	}
	stations, err := rs.stations.Nearby(c, coord)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	res := make([]Station, 0, len(stations))
	for _, s := range stations {
		res = append(res, serStation(s))
	}
	c.JSON(http.StatusOK, res)
}

func (rs *resource) GetStation(c *gin.Context) {
	uri := &stationURI{}
	if ok := serdser.BindURI(c, uri); !ok {
		return
	}
	s, err := rs.stations.Get(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serStation(s))
}
