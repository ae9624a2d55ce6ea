// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
)

// Places looks up the train stations which are near a coordinate using
// an external places service. Lookups are read-only, so they may be
// retried or cached safely. Results keep the order of the service.
type Places interface {
	Lookup(ctx context.Context, c model.Coordinate) ([]model.Place, error)
}
