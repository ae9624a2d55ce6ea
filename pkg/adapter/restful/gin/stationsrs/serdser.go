// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package stationsrs

import (
	"net/http"
	"strconv"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/serdser"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type stationURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// StrCoordinate is a coordinate which is passed as query params.
// Both components are validated before being parsed.
type StrCoordinate struct {
	Lat string `form:"lat" binding:"required,latitude"`
	Lon string `form:"lon" binding:"required,longitude"`
}

// ToModel parses the validated components of sc.
func (sc StrCoordinate) ToModel() (c model.Coordinate, err error) {
	c.Lat, err = strconv.ParseFloat(sc.Lat, 64)
	if err != nil {
		return
	}
	c.Lon, err = strconv.ParseFloat(sc.Lon, 64)
	return
}

// Station is the JSON representation of a station.
type Station struct {
	ID   int      `json:"id"`
	Name *string  `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

func serStation(s *model.Station) Station {
	ss := Station{ID: s.Key(), Name: s.Name()}
	if c, ok := s.Coordinate(); ok {
		ss.Lat, ss.Lon = &c.Lat, &c.Lon
	}
	return ss
}

func dserNearbyReq(c *gin.Context) (model.Coordinate, bool) {
	req := &StrCoordinate{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return model.Coordinate{}, false
	}
	coord, err := req.ToModel()
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "lat/lon", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return model.Coordinate{}, false
	}
	return coord, true
}
