// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"

// Station models a persisted train station. Stations are recorded
// when they are found near a coordinate by the places lookup, so they
// are unique by name. The coordinate is nullable as a whole, but the
// database stores latitude and longitude in two columns.
type Station struct {
	entity.Base[int]

	name     *string
	lat, lon *float64
}

var stationSchema = entity.NewSchema[int, *Station](
	entity.Bind("name", entity.String, func(s *Station) **string {
		return &s.name
	}),
	entity.Bind("lat", entity.Float64, func(s *Station) **float64 {
		return &s.lat
	}),
	entity.Bind("lon", entity.Float64, func(s *Station) **float64 {
		return &s.lon
	}),
)

// StationSchema returns the field table of stations.
func StationSchema() *entity.Schema[int, *Station] {
	return stationSchema
}

// NewStation creates an unfilled station placeholder for the id key.
func NewStation(id int) *Station {
	return &Station{Base: entity.NewBase(id)}
}

// Name returns the station name, or nil if unknown.
func (s *Station) Name() *string {
	return s.name
}

// SetName updates the station name.
func (s *Station) SetName(name *string) {
	s.name = name
	s.Changed()
}

// Coordinate returns the station location and true, or false if any
// one of its latitude or longitude is unknown.
func (s *Station) Coordinate() (Coordinate, bool) {
	if s.lat == nil || s.lon == nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: *s.lat, Lon: *s.lon}, true
}

// SetCoordinate updates both latitude and longitude of the station,
// raising one change notification.
func (s *Station) SetCoordinate(c Coordinate) {
	s.lat, s.lon = &c.Lat, &c.Lon
	s.Changed()
}

// FillFromRecord overwrites all fields from the r persisted row and
// marks the station as filled.
func (s *Station) FillFromRecord(r entity.Record) error {
	return stationSchema.FillFromRecord(s, r)
}

// FillFrom copies all fields and the filled flag of other into s.
func (s *Station) FillFrom(other *Station) {
	stationSchema.Fill(s, other)
}

// FillFromOther is the dynamic counterpart of FillFrom. It returns
// false and leaves s unchanged if other is not a station.
func (s *Station) FillFromOther(other entity.Keyed[int]) bool {
	return stationSchema.FillFromOther(s, other)
}
