// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
)

// Train models a persisted train, keyed by its train number.
// All fields are nullable: a nil name or type is unknown, a nil
// polyline means that the route geometry is unknown, and a nil expiry
// date means that the train record does not expire.
// Setters always raise a change notification, even if the new value
// equals the old one.
type Train struct {
	entity.Base[int]

	name       *string
	typ        *string
	polyline   Polyline
	expiryDate *time.Time
}

var trainSchema = entity.NewSchema[int, *Train](
	entity.Bind("name", entity.String, func(t *Train) **string {
		return &t.name
	}),
	entity.Bind("type", entity.String, func(t *Train) **string {
		return &t.typ
	}),
	entity.Bind("polyline", PolylineKind, func(t *Train) *Polyline {
		return &t.polyline
	}),
	entity.Bind("expiry_date", entity.Time, func(t *Train) **time.Time {
		return &t.expiryDate
	}),
)

// TrainSchema returns the field table of trains, so repositories can
// find out about the persisted columns and their query arguments.
func TrainSchema() *entity.Schema[int, *Train] {
	return trainSchema
}

// NewTrain creates an unfilled train placeholder for the id key.
func NewTrain(id int) *Train {
	return &Train{Base: entity.NewBase(id)}
}

// Name returns the display name of the train, or nil if unknown.
func (t *Train) Name() *string {
	return t.name
}

// SetName updates the display name of the train.
func (t *Train) SetName(name *string) {
	t.name = name
	t.Changed()
}

// Type returns the category tag of the train, or nil if unknown.
func (t *Train) Type() *string {
	return t.typ
}

// SetType updates the category tag of the train.
func (t *Train) SetType(typ *string) {
	t.typ = typ
	t.Changed()
}

// Polyline returns the route geometry, or nil if it is unknown.
func (t *Train) Polyline() Polyline {
	return t.polyline
}

// SetPolyline updates the route geometry.
func (t *Train) SetPolyline(p Polyline) {
	t.polyline = p
	t.Changed()
}

// ExpiryDate returns the expiry timestamp, or nil if the train does
// not expire.
func (t *Train) ExpiryDate() *time.Time {
	return t.expiryDate
}

// SetExpiryDate updates the expiry timestamp.
func (t *Train) SetExpiryDate(d *time.Time) {
	t.expiryDate = d
	t.Changed()
}

// Expired reports if the train has an expiry date which is not after
// the given now timestamp.
func (t *Train) Expired(now time.Time) bool {
	return t.expiryDate != nil && !t.expiryDate.After(now)
}

// FillFromRecord overwrites all fields from the r persisted row and
// marks the train as filled.
func (t *Train) FillFromRecord(r entity.Record) error {
	return trainSchema.FillFromRecord(t, r)
}

// FillFrom copies all fields and the filled flag of other into t,
// keeping the key of t. The other train must not be nil.
func (t *Train) FillFrom(other *Train) {
	trainSchema.Fill(t, other)
}

// FillFromOther is the dynamic counterpart of FillFrom. It returns
// false and leaves t unchanged if other is not a train.
func (t *Train) FillFromOther(other entity.Keyed[int]) bool {
	return trainSchema.FillFromOther(t, other)
}
