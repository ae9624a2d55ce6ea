// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
	"github.com/twpayne/go-polyline"
)

// Polyline is the route geometry of a train as an ordered sequence of
// coordinates. A nil Polyline means that the geometry is unknown, while
// an empty non-nil Polyline is a known but empty geometry.
// It is persisted as an encoded polyline string with five decimals of
// precision, as produced by the Google polyline algorithm.
type Polyline []Coordinate

// ErrTrailingPolyline indicates that an encoded polyline has extra
// bytes after its last complete coordinate.
var ErrTrailingPolyline = errors.New("trailing bytes after polyline")

// Encode returns the encoded polyline string of p.
func (p Polyline) Encode() string {
	coords := make([][]float64, 0, len(p))
	for _, c := range p {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline parses an encoded polyline string. An empty string
// gives an empty non-nil Polyline.
func DecodePolyline(s string) (Polyline, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrTrailingPolyline
	}
	p := make(Polyline, 0, len(coords))
	for _, c := range coords {
		p = append(p, Coordinate{Lat: c[0], Lon: c[1]})
	}
	return p, nil
}

// PolylineOrNull reads an encoded polyline column. Missing and NULL
// columns give a nil Polyline. Undecodable text is an accessor fault.
func PolylineOrNull(r entity.Record, column string) (Polyline, error) {
	s, err := entity.StringOrNull(r, column)
	if err != nil || s == nil {
		return nil, err
	}
	p, err := DecodePolyline(*s)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", column, err)
	}
	return p, nil
}

// PolylineKind is the entity.Kind of Polyline fields.
var PolylineKind = entity.Kind[Polyline]{
	Get: PolylineOrNull,
	Put: func(p Polyline) any {
		if p == nil {
			return nil
		}
		return p.Encode()
	},
	Clone: func(p Polyline) Polyline {
		return slices.Clone(p)
	},
}
