// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/radixtrie/internal/fuzz"
	"github.com/ChainSafe/radixtrie/pkg/radix"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Config is the configuration of the fuzz command.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Trie     TrieConfig     `toml:"trie"`
	Fuzz     FuzzConfig     `toml:"fuzz"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Pprof    PprofConfig    `toml:"pprof"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error critical"`
	Format string `toml:"format" validate:"oneof=console plain"`
	Caller bool   `toml:"caller"`
}

// TrieConfig is the trie configuration.
type TrieConfig struct {
	BitsPerLevel uint8 `toml:"bits-per-level" validate:"oneof=1 2 4 8"`
}

// FuzzConfig is the fuzz driver configuration.
type FuzzConfig struct {
	Iterations uint    `toml:"iterations" validate:"gt=0"`
	Seed       int64   `toml:"seed"`
	MaxKey     uint    `toml:"max-key" validate:"gt=0"`
	InsertRate float64 `toml:"insert-rate" validate:"gte=0,lte=1"`
	MissRate   float64 `toml:"miss-rate" validate:"gte=0,lte=1"`
}

// MetricsConfig is the metrics server configuration.
// An empty address disables the server.
type MetricsConfig struct {
	Address string `toml:"address" validate:"omitempty,hostname_port"`
}

// SnapshotConfig is the snapshot configuration.
// An empty directory disables the snapshot.
type SnapshotConfig struct {
	Dir string `toml:"dir"`
}

// PprofConfig is the profiling server configuration.
// An empty address disables the server.
type PprofConfig struct {
	Address          string `toml:"address" validate:"omitempty,hostname_port"`
	BlockProfileRate int    `toml:"block-profile-rate" validate:"gte=0"`
	MutexProfileRate int    `toml:"mutex-profile-rate" validate:"gte=0"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Trie: TrieConfig{
			BitsPerLevel: radix.DefaultBitsPerLevel,
		},
		Fuzz: FuzzConfig{
			Iterations: 100000,
			Seed:       1,
			MaxKey:     fuzz.DefaultMaxKey,
			InsertRate: 0.5,
			MissRate:   0.1,
		},
	}
}

// Load reads the TOML file at path on top of the default
// configuration, and validates the result.
func Load(path string) (config Config, err error) {
	config = Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return config, fmt.Errorf("reading configuration file: %w", err)
	}

	err = toml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("decoding configuration file: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return config, err
	}

	return config, nil
}

// Validate validates the configuration.
func (c Config) Validate() (err error) {
	err = validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}
