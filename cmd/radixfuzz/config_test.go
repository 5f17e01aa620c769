// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/radixtrie/internal/config"
	"github.com/ChainSafe/radixtrie/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFlags map[string]interface{}

func (m mapFlags) IsSet(name string) bool {
	_, ok := m[name]
	return ok
}

func (m mapFlags) String(name string) string {
	s, _ := m[name].(string)
	return s
}

func (m mapFlags) Uint(name string) uint {
	n, _ := m[name].(uint)
	return n
}

func (m mapFlags) Int64(name string) int64 {
	n, _ := m[name].(int64)
	return n
}

func (m mapFlags) Float64(name string) float64 {
	f, _ := m[name].(float64)
	return f
}

func Test_loadConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(configPath, []byte(`
[fuzz]
iterations = 10
seed = 7
`), os.ModePerm)
	require.NoError(t, err)

	testCases := map[string]struct {
		flags      mapFlags
		config     func() config.Config
		errWrapped error
		errMessage string
	}{
		"defaults": {
			flags:  mapFlags{},
			config: config.Default,
		},
		"flags override defaults": {
			flags: mapFlags{
				"iterations":      uint(5),
				"seed":            int64(3),
				"max-key":         uint(9),
				"insert-rate":     0.25,
				"miss-rate":       0.75,
				"bits-per-level":  uint(2),
				"log":             "debug",
				"metrics-address": "localhost:8000",
				"pprof-address":   "localhost:6061",
				"snapshot-dir":    "/tmp/snapshot",
			},
			config: func() config.Config {
				cfg := config.Default()
				cfg.Fuzz = config.FuzzConfig{
					Iterations: 5,
					Seed:       3,
					MaxKey:     9,
					InsertRate: 0.25,
					MissRate:   0.75,
				}
				cfg.Trie.BitsPerLevel = 2
				cfg.Log.Level = "debug"
				cfg.Metrics.Address = "localhost:8000"
				cfg.Pprof.Address = "localhost:6061"
				cfg.Snapshot.Dir = "/tmp/snapshot"
				return cfg
			},
		},
		"flags override config file": {
			flags: mapFlags{
				"config":     configPath,
				"iterations": uint(20),
			},
			config: func() config.Config {
				cfg := config.Default()
				cfg.Fuzz.Iterations = 20
				cfg.Fuzz.Seed = 7
				return cfg
			},
		},
		"bits per level overflowing a byte": {
			flags: mapFlags{
				"bits-per-level": uint(260),
			},
			errWrapped: errFlagValueTooLarge,
			errMessage: "flag value too large: --bits-per-level 260 exceeds 255",
		},
		"invalid flag value": {
			flags: mapFlags{
				"bits-per-level": uint(5),
			},
			errMessage: "validating configuration: Key: 'Config.Trie.BitsPerLevel' " +
				"Error:Field validation for 'BitsPerLevel' failed on the 'oneof' tag",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := loadConfig(testCase.flags)

			if testCase.errMessage != "" {
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.config(), cfg)
		})
	}
}

func Test_loggerOptions(t *testing.T) {
	t.Parallel()

	options, err := loggerOptions(config.LogConfig{Level: "warn", Format: "plain"})
	require.NoError(t, err)
	assert.Len(t, options, 3)

	_, err = loggerOptions(config.LogConfig{Level: "loud"})
	assert.ErrorIs(t, err, log.ErrLevelNotRecognised)
}
