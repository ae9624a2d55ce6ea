// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package google

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Option is a functional option for the places lookup client.
type Option func(c *Client) error

// WithEndpoint option replaces the nearby search endpoint URL.
// It is mainly useful for tests which serve a fake endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) error {
		u, err := url.Parse(endpoint)
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("endpoint must be an http(s) URL")
		}
		if u.RawQuery != "" {
			return errors.New("endpoint must not have a query")
		}
		c.endpoint = endpoint
		return nil
	}
}

// WithHTTPClient option replaces the HTTP client which is otherwise
// an otelhttp instrumented client. The client is copied and the
// credential is added to the requests right above its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.hc = hc
		return nil
	}
}

// WithTimeout option bounds the duration of each lookup.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		c.timeout = d
		return nil
	}
}
