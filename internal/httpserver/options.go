// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"time"
)

const (
	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = time.Second
	defaultShutdownTimeout   = 3 * time.Second
)

// Option modifies the optional settings of the HTTP server.
type Option func(s *optionalSettings)

// optionalSettings holds the server timeouts. A zero write
// timeout means responses are never timed out.
type optionalSettings struct {
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	shutdownTimeout   time.Duration
}

func newOptionalSettings(options []Option) (settings optionalSettings) {
	for _, option := range options {
		option(&settings)
	}
	settings.setDefaults()
	return settings
}

func (s *optionalSettings) setDefaults() {
	defaults := [...]struct {
		field *time.Duration
		value time.Duration
	}{
		{field: &s.readTimeout, value: defaultReadTimeout},
		{field: &s.readHeaderTimeout, value: defaultReadHeaderTimeout},
		{field: &s.shutdownTimeout, value: defaultShutdownTimeout},
	}

	for _, d := range defaults {
		if *d.field == 0 {
			*d.field = d.value
		}
	}
}

// ReadTimeout bounds reading a whole request, 10s by default.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.readTimeout = timeout }
}

// ReadHeaderTimeout bounds reading request headers, 1s by default.
func ReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.readHeaderTimeout = timeout }
}

// WriteTimeout bounds writing a response. It is unset by default.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.writeTimeout = timeout }
}

// ShutdownTimeout bounds the graceful shutdown, 3s by default.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.shutdownTimeout = timeout }
}
