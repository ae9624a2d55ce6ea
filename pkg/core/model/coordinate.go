// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"math"
	"strconv"
)

// Coordinate represents a geographical location with a latitude and
// longitude in degrees.
type Coordinate struct {
	Lat, Lon float64 // latitude and longitude of the geo-location
}

// CoordinateError indicates a latitude or longitude which is out of
// its valid range.
type CoordinateError Coordinate

// Error implements the error interface.
func (e CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s", Coordinate(e).String())
}

// Validate returns nil if the latitude is in [-90, 90] and the
// longitude is in [-180, 180]. Otherwise, a CoordinateError is
// returned.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return CoordinateError(c)
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return CoordinateError(c)
	}
	return nil
}

// String formats the coordinate as "lat,lon" which is the location
// format of the places lookup requests. The shortest representation
// which keeps the exact float64 value is used.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
