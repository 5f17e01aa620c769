// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag is the TOML configuration file path.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file, overridden by the other flags",
	}
	// IterationsFlag is the number of random operations to run.
	IterationsFlag = cli.UintFlag{
		Name:  "iterations",
		Usage: "Number of random insert and delete operations",
	}
	// SeedFlag seeds the random operations.
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the random operations",
	}
	// MaxKeyFlag bounds the integers used as keys.
	MaxKeyFlag = cli.UintFlag{
		Name:  "max-key",
		Usage: "Keys are decimal integers below this bound",
	}
	// InsertRateFlag is the probability of an operation being an insertion.
	InsertRateFlag = cli.Float64Flag{
		Name:  "insert-rate",
		Usage: "Probability between 0 and 1 of an operation being an insertion",
	}
	// MissRateFlag is the probability of a deletion using a random key.
	MissRateFlag = cli.Float64Flag{
		Name:  "miss-rate",
		Usage: "Probability between 0 and 1 of a deletion using a random, possibly absent, key",
	}
	// BitsPerLevelFlag is the number of key bits consumed per trie level.
	BitsPerLevelFlag = cli.UintFlag{
		Name:  "bits-per-level",
		Usage: "Key bits consumed per trie level, one of 1, 2, 4 or 8",
	}
	// LogFlag is the log level.
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Log level. Supports levels trace, debug, info, warn, error and critical",
	}
	// MetricsAddressFlag is the listening address of the metrics server.
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the Prometheus metrics server, disabled if empty",
	}
	// PprofAddressFlag is the listening address of the pprof server.
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Listening address of the pprof server, disabled if empty",
	}
	// SnapshotDirFlag is the badger directory to save the final trie to.
	SnapshotDirFlag = cli.StringFlag{
		Name:  "snapshot-dir",
		Usage: "Directory to save the final trie to and reload it from, disabled if empty",
	}
	// DumpFlag prints the final trie structure.
	DumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "Print the final trie structure",
	}
)

var flags = []cli.Flag{
	ConfigFlag,
	IterationsFlag,
	SeedFlag,
	MaxKeyFlag,
	InsertRateFlag,
	MissRateFlag,
	BitsPerLevelFlag,
	LogFlag,
	MetricsAddressFlag,
	PprofAddressFlag,
	SnapshotDirFlag,
	DumpFlag,
}
