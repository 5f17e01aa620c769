// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/ChainSafe/radixtrie/internal/httpserver"
)

var (
	errExitedUnexpectedly = errors.New("pprof server exited unexpectedly")
	errNotStarted         = errors.New("pprof server not started")
)

// Service is a pprof http server service.
type Service struct {
	settings Settings
	server   *httpserver.Server
	cancel   context.CancelFunc
	done     chan error
}

// New creates a pprof service. It listens on
// localhost:6060 if no listening address is set.
func New(settings Settings, logger httpserver.Logger) *Service {
	settings.setDefaults()

	return &Service{
		settings: settings,
		server: httpserver.New("pprof", settings.ListeningAddress,
			newHandler(), logger),
	}
}

// Start sets the block and mutex profile rates and
// starts the pprof server.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)

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
func (s *Service) Address(ctx context.Context) (address string, err error) {
	return s.server.GetAddress(ctx)
}

// Stop stops the pprof server.
func (s *Service) Stop() (err error) {
	if s.cancel == nil {
		return errNotStarted
	}
	s.cancel()
	s.cancel = nil
	const stopTimeout = 10 * time.Second
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()
	select {
	case err := <-s.done:
		close(s.done)
		return err
	case <-timer.C:
		return fmt.Errorf("pprof server exit timeout after %s", stopTimeout)
	}
}
