// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v2"
)

// Logger is the logger used by the store.
type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

// badgerLogger adapts a Logger to the badger.Logger interface.
type badgerLogger struct {
	logger Logger
}

var _ badger.Logger = (*badgerLogger)(nil)

func format(s string, args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(s, args...), "\n")
}

func (b *badgerLogger) Errorf(s string, args ...interface{}) {
	b.logger.Error(format(s, args))
}

func (b *badgerLogger) Warningf(s string, args ...interface{}) {
	b.logger.Warn(format(s, args))
}

func (b *badgerLogger) Infof(s string, args ...interface{}) {
	b.logger.Info(format(s, args))
}

func (b *badgerLogger) Debugf(s string, args ...interface{}) {
	b.logger.Debug(format(s, args))
}
