// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/log"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/goccy/go-json"
)

type response struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Results      []json.RawMessage `json:"results"`
}

type result struct {
	Name     string `json:"name"`
	Geometry struct {
		Location struct {
			Lat json.RawMessage `json:"lat"`
			Lng json.RawMessage `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// parse decodes the body of a nearby search response.
func parse(ctx context.Context, body []byte) ([]model.Place, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	switch resp.Status {
	case "", "OK":
		if resp.Results == nil {
			return nil, fmt.Errorf("%w: results are missing", ErrBadResponse)
		}
	case "ZERO_RESULTS":
		return []model.Place{}, nil
	default:
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf(
				"%w: %s: %s", ErrServiceStatus, resp.Status, resp.ErrorMessage,
			)
		}
		return nil, fmt.Errorf("%w: %s", ErrServiceStatus, resp.Status)
	}
	places := make([]model.Place, 0, len(resp.Results))
	for i, raw := range resp.Results {
		p, err := parseResult(raw)
		if err != nil {
			log.Warn(ctx, "skipping malformed place",
				slog.Int("index", i), log.Err("error", err),
			)
			continue
		}
		places = append(places, p)
	}
	return places, nil
}

func parseResult(raw json.RawMessage) (model.Place, error) {
	var r result
	if err := json.Unmarshal(raw, &r); err != nil {
		return model.Place{}, err
	}
	if strings.TrimSpace(r.Name) == "" {
		return model.Place{}, errors.New("place has no name")
	}
	lat, err := degrees(r.Geometry.Location.Lat)
	if err != nil {
		return model.Place{}, fmt.Errorf("lat of %q: %w", r.Name, err)
	}
	lng, err := degrees(r.Geometry.Location.Lng)
	if err != nil {
		return model.Place{}, fmt.Errorf("lng of %q: %w", r.Name, err)
	}
	c := model.Coordinate{Lat: lat, Lon: lng}
	if err = c.Validate(); err != nil {
		return model.Place{}, fmt.Errorf("place %q: %w", r.Name, err)
	}
	return model.Place{Name: r.Name, Coordinate: c}, nil
}

// degrees parses a JSON number or a string holding a number.
func degrees(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errors.New("missing value")
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("not a number: %s", raw)
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
