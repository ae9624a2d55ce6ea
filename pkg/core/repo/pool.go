// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler is called with a connection which is released after the
// handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool is a database connections pool. Use cases ask it for a
// connection per operation and pass that connection to repositories.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
