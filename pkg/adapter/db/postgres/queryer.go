// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import "github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"

var (
	_ repo.Pool = (*Pool)(nil)
	_ repo.Conn = (*Conn)(nil)
	_ repo.Tx   = (*Tx)(nil)
)
