// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
)

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Coord returns a group Attr holding the lat and lon of c.
func Coord(key string, c model.Coordinate) slog.Attr {
	return slog.Group(key,
		slog.Float64("lat", c.Lat),
		slog.Float64("lon", c.Lon),
	)
}

// Key returns an Attr for an entity key.
func Key(key string, id int) slog.Attr {
	return slog.Int(key, id)
}
