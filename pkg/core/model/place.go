// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Place is one item of a places lookup answer, a named location.
// It is a value type and is not persisted as it is. Stations may be
// created based on the places which are found near a coordinate.
type Place struct {
	Name       string     // non-empty name of the place
	Coordinate Coordinate // location of the place
}
