// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"net/http"
)

// Logger is the logger used by the server to report
// its listening address and shutdown.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server has tried to listen, or the context
// is canceled.
func (s *Server) GetAddress(ctx context.Context) (address string, err error) {
	select {
	case <-s.addressSet:
		return s.address, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
