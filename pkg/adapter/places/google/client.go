// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package google implements the repo.Places interface using the nearby
// search endpoint of the Google Places web service. Each lookup is one
// GET request which asks for the train stations in a 2 km radius.
package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultEndpoint is the nearby search endpoint of Google Places.
	DefaultEndpoint = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

	// DefaultTimeout bounds each lookup, including the body reading.
	DefaultTimeout = 10 * time.Second

	// Radius is the search radius in meters.
	Radius = 2000

	// PlaceType restricts the results to train stations.
	PlaceType = "train_station"
)

// configError is an error which is caused by a missing or invalid
// configuration of the client, rather than a failure of the service.
type configError string

func (e configError) Error() string {
	return string(e)
}

// Misconfigured returns true, so use cases can tell configuration
// faults apart from the service failures.
func (e configError) Misconfigured() bool {
	return true
}

var (
	// ErrMissingAPIKey is returned when the client has no credential.
	// It is reported before any request is sent.
	ErrMissingAPIKey error = configError("places API key is missing")

	// ErrUnexpectedStatus wraps the non-200 HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrServiceStatus wraps the error statuses of the service, such
	// as REQUEST_DENIED or OVER_QUERY_LIMIT.
	ErrServiceStatus = errors.New("places service error")

	// ErrBadResponse wraps the bodies which cannot be parsed.
	ErrBadResponse = errors.New("bad places response")
)

var tracer = otel.Tracer("places-client")

// Client looks up the nearby train stations. It is safe for concurrent
// use. A zero Client has no credential, so it reports ErrMissingAPIKey.
type Client struct {
	apiKey   string
	endpoint string
	hc       *http.Client
	timeout  time.Duration
}

// New creates a places lookup client with the apiKey credential.
// An empty apiKey is rejected with ErrMissingAPIKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{apiKey: apiKey}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.hc == nil {
		c.hc = &http.Client{
			Transport: otelhttp.NewTransport(
				keyTransport{key: apiKey, next: http.DefaultTransport},
			),
		}
	} else {
		hc := *c.hc
		hc.Transport = keyTransport{key: apiKey, next: hc.Transport}
		c.hc = &hc
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	return c, nil
}

// Lookup asks for the train stations near the loc coordinate. Results
// keep the order of the response. Entries without a name or without a
// parsable location are skipped and logged, so one broken entry does
// not hide the others.
func (c *Client) Lookup(ctx context.Context, loc model.Coordinate) (places []model.Place, err error) {
	if c == nil || c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	ctx, span := tracer.Start(ctx, "places-lookup",
		trace.WithAttributes(attribute.String("location", loc.String())),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("results", len(places)))
		}
		span.End()
	}()

	timeout := c.timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := c.get(ctx, c.requestURL(loc))
	if err != nil {
		return nil, err
	}
	return parse(ctx, body)
}

func (c *Client) requestURL(loc model.Coordinate) string {
	endpoint := c.endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	q := url.Values{}
	q.Set("location", loc.String())
	q.Set("radius", strconv.Itoa(Radius))
	q.Set("type", PlaceType)
	return endpoint + "?" + q.Encode()
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	hc := c.hc
	if hc == nil {
		hc = &http.Client{Transport: keyTransport{key: c.apiKey}}
	}
	resp, err := hc.Do(req)
	if err != nil {
		// a redirect may report a URL which carries the credential
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return body, nil
}
