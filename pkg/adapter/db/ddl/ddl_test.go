// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ddl_test

import (
	"testing"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/ddl"
	"github.com/stretchr/testify/assert"
)

func TestStatements(t *testing.T) {
	script := `-- trains
CREATE TABLE a(id INTEGER);

  -- nothing here
;
CREATE TABLE b(
  id INTEGER -- key
);
`
	assert.Equal(t, []string{
		"CREATE TABLE a(id INTEGER)",
		"CREATE TABLE b(\n  id INTEGER -- key\n)",
	}, ddl.Statements(script))
	assert.Empty(t, ddl.Statements("  \n"))
}
