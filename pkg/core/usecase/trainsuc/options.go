// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package trainsuc

import (
	"errors"
	"time"
)

// Option is a functional option for the trains use case.
type Option func(uc *UseCase) error

// WithClock option configures the function which is used to find out
// about the current time while checking the expiry date of trains.
// It is mainly useful for tests. This option may be passed to New().
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}

// WithReloadExpired option asks the use case to reload a cached train
// from the database when its expiry date is passed, instead of serving
// the stale cached instance. The reload fills the same instance.
func WithReloadExpired() Option {
	return func(uc *UseCase) error {
		if uc.reloadExpired {
			return errors.New("reload of expired trains is already configured")
		}
		uc.reloadExpired = true
		return nil
	}
}
