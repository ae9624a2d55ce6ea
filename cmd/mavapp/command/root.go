// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the mavapp
// backend. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db init"
// sub-command creates the tables, the "places" sub-command looks up the
// nearby stations of a coordinate, and the "config" sub-command prints
// the normalized configuration settings.
//
//	./mavapp [-c /path/of/config.yaml] [-v]      # start web server
//	./mavapp db init [-c /path/of/config.yaml]
//	./mavapp places <lat> <lon> [-c /path/of/config.yaml]
//	./mavapp config [-c /path/of/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/routes"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
	addr    string
)

// shutdownTimeout bounds the graceful shutdown of the web server,
// including the final flush of the changed trains.
const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "mavapp",
	Short: "Backend of the MAVApp train tracker",
	Long: `Backend of the MAVApp train tracker which serves the trains
and the nearby train stations through a REST API.
Trains are cached in memory and their changes are flushed to the
database in batches. Nearby stations are looked up using the Google
Places nearby search API, whose key is read from the PlacesAPIKey
environment variable, and are recorded in the database.
Both PostgreSQL and SQLite databases are supported.`,
	PersistentPreRun: setupLogger,
	RunE:             startWebServer,
	Args:             cobra.NoArgs,
}

func setupLogger(_ *cobra.Command, _ []string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log.Setup(os.Stderr, level)
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	e := c.Gin.NewEngine()
	trains, err := routes.Register(ctx, e, p, c)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := &http.Server{Addr: addr, Handler: e}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(ctx, "web server is started", slog.String("addr", addr))
	select {
	case err = <-errCh:
	case <-ctx.Done():
	}
	shCtx, cancel := context.WithTimeout(
		context.Background(), shutdownTimeout,
	)
	defer cancel()
	if err == nil {
		err = srv.Shutdown(shCtx)
	}
	n, ferr := trains.Flush(shCtx)
	if ferr != nil {
		log.Error(shCtx, "cannot flush trains", log.Err("error", ferr))
	} else {
		log.Info(shCtx, "web server is stopped", slog.Int("flushed", n))
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return ferr
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log debug messages",
	)
	rootCmd.Flags().StringVar(
		&addr, "addr", ":8080", "listening address of the web server",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}
