// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ddl runs the schema creation scripts of database adapters.
package ddl

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
)

// Run executes the semicolon separated statements of script one at a
// time using q. Empty statements and "--" comment lines are skipped.
// Scripts must not contain semicolons in string literals.
func Run(ctx context.Context, q repo.Queryer, script string) error {
	for i, stmt := range Statements(script) {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("statement #%d: %w", i+1, err)
		}
	}
	return nil
}

// Statements splits script into its non-empty statements.
func Statements(script string) []string {
	var stmts []string
	for _, s := range strings.Split(script, ";") {
		lines := strings.Split(s, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if !strings.HasPrefix(strings.TrimSpace(l), "--") {
				kept = append(kept, l)
			}
		}
		if s = strings.TrimSpace(strings.Join(kept, "\n")); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
