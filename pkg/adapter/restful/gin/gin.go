// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine instantiation and provides
// the common middlewares of the REST APIs. Requests are logged with
// the slog structured logger, so they are written in the same format
// as the other logs of the web server.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the header which carries the request id.
const RequestIDHeader = "X-Request-Id"

// New instantiates an engine which uses the given middlewares.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns a middleware which logs each request with l.
func Logger(l *slog.Logger) HandlerFunc {
	return logger.New(l)
}

// Recovery returns a middleware which recovers from panics, logs them
// with l, and responds with the 500 status code.
func Recovery(l *slog.Logger) HandlerFunc {
	return recovery.New(l)
}

// RequestID returns a middleware which keeps the X-Request-Id header
// of requests or generates a random one, and echoes it in responses.
// The id is kept in the gin context with the "request-id" key too.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request-id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
