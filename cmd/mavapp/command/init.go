// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the trains and stations tables",
	Long: `Create the trains and stations tables in the database which is
specified in the configuration file. Existing tables are kept intact,
so running it again is harmless. For PostgreSQL, the admin role
password is read from the pass-file, since the normal role may not be
permitted to create tables.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		return cn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return c.Database.InitSchema(ctx, tx)
		})
	})
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	log.Info(ctx, "tables are created")
	return nil
}

func init() {
	dbCmd.AddCommand(initCmd)
}
