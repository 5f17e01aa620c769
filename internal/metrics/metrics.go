// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/radixtrie/internal/httpserver"
	"github.com/ChainSafe/radixtrie/internal/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var (
	errExitedUnexpectedly = errors.New("metrics server exited unexpectedly")
	errNotStarted         = errors.New("metrics server not started")
)

const writeTimeout = 10 * time.Second

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server, serving
// the metrics gathered from the gatherer given on /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)
	return &Server{
		server: httpserver.New("metrics", address, router, logger,
			httpserver.WriteTimeout(writeTimeout)),
	}
}

// Start will start a dedicated metrics server.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		close(s.done)
		cancel()
		s.cancel = nil
		if err != nil {
			return err
		}
		return errExitedUnexpectedly
	}
}

// Address returns the address the server listens on.
func (s *Server) Address(ctx context.Context) (address string, err error) {
	return s.server.GetAddress(ctx)
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	if s.cancel == nil {
		return errNotStarted
	}
	s.cancel()
	s.cancel = nil
	const stopTimeout = 30 * time.Second
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()
	select {
	case err := <-s.done:
		close(s.done)
		return err
	case <-timer.C:
		return fmt.Errorf("metrics server exit timeout after %s", stopTimeout)
	}
}
