// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChainSafe/radixtrie/internal/config"
	"github.com/ChainSafe/radixtrie/internal/log"
	"github.com/urfave/cli"
)

// flagsKVStore is the flags getter interface implemented by *cli.Context.
type flagsKVStore interface {
	IsSet(name string) bool
	String(name string) string
	Uint(name string) uint
	Int64(name string) int64
	Float64(name string) float64
}

var _ flagsKVStore = (*cli.Context)(nil)

// loadConfig loads the configuration file if one is given,
// and overrides its values with the flags set.
func loadConfig(flags flagsKVStore) (cfg config.Config, err error) {
	cfg = config.Default()
	if path := flags.String(ConfigFlag.Name); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	err = setFlagValues(flags, &cfg)
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

var errFlagValueTooLarge = errors.New("flag value too large")

func setFlagValues(flags flagsKVStore, cfg *config.Config) (err error) {
	if flags.IsSet(IterationsFlag.Name) {
		cfg.Fuzz.Iterations = flags.Uint(IterationsFlag.Name)
	}

	if flags.IsSet(SeedFlag.Name) {
		cfg.Fuzz.Seed = flags.Int64(SeedFlag.Name)
	}

	if flags.IsSet(MaxKeyFlag.Name) {
		cfg.Fuzz.MaxKey = flags.Uint(MaxKeyFlag.Name)
	}

	if flags.IsSet(InsertRateFlag.Name) {
		cfg.Fuzz.InsertRate = flags.Float64(InsertRateFlag.Name)
	}

	if flags.IsSet(MissRateFlag.Name) {
		cfg.Fuzz.MissRate = flags.Float64(MissRateFlag.Name)
	}

	if flags.IsSet(BitsPerLevelFlag.Name) {
		bits := flags.Uint(BitsPerLevelFlag.Name)
		if bits > math.MaxUint8 {
			return fmt.Errorf("%w: --%s %d exceeds %d",
				errFlagValueTooLarge, BitsPerLevelFlag.Name, bits, math.MaxUint8)
		}
		cfg.Trie.BitsPerLevel = uint8(bits)
	}

	if flags.IsSet(LogFlag.Name) {
		cfg.Log.Level = flags.String(LogFlag.Name)
	}

	if flags.IsSet(MetricsAddressFlag.Name) {
		cfg.Metrics.Address = flags.String(MetricsAddressFlag.Name)
	}

	if flags.IsSet(PprofAddressFlag.Name) {
		cfg.Pprof.Address = flags.String(PprofAddressFlag.Name)
	}

	if flags.IsSet(SnapshotDirFlag.Name) {
		cfg.Snapshot.Dir = flags.String(SnapshotDirFlag.Name)
	}

	return nil
}

func loggerOptions(cfg config.LogConfig) (options []log.Option, err error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	format := log.FormatConsole
	if cfg.Format == "plain" {
		format = log.FormatPlain
	}

	return []log.Option{
		log.SetLevel(level),
		log.SetFormat(format),
		log.SetCaller(cfg.Caller),
	}, nil
}
