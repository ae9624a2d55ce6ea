// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"strconv"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/spf13/cobra"
)

var placesCmd = &cobra.Command{
	Use:   "places <lat> <lon>",
	Short: "Look up the train stations near a coordinate",
	Long: `Look up the train stations near a coordinate using the places
lookup service and print them, one per line, without recording them in
the database. The PlacesAPIKey environment variable must be set.`,
	RunE: lookupPlaces,
	Args: cobra.ExactArgs(2),
}

func lookupPlaces(cmd *cobra.Command, args []string) error {
	var loc model.Coordinate
	var err error
	if loc.Lat, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("parsing latitude: %w", err)
	}
	if loc.Lon, err = strconv.ParseFloat(args[1], 64); err != nil {
		return fmt.Errorf("parsing longitude: %w", err)
	}
	if err = loc.Validate(); err != nil {
		return err
	}
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	places, err := c.NewPlaces()
	if err != nil {
		return fmt.Errorf("creating places client: %w", err)
	}
	found, err := places.Lookup(cmd.Context(), loc)
	if err != nil {
		return fmt.Errorf("looking up %v: %w", loc, err)
	}
	out := cmd.OutOrStdout()
	for _, p := range found {
		fmt.Fprintf(out, "%s\t%v\n", p.Name, p.Coordinate)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(placesCmd)
}
