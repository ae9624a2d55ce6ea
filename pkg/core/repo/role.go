// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Role is a string specifying a database connection role. The password
// of each role is looked up in the passwords file of the configured
// database (see the pkg/adapter/config.Database struct).
type Role string

const (
	// AdminRole owns the schema and is used by the "db init" command
	// for creation of tables.
	AdminRole Role = "admin"

	// NormalRole is used by the web server for reading and writing
	// trains and stations.
	NormalRole Role = "mavapp"
)
