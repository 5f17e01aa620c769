// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ChainSafe/radixtrie/internal/config"
	"github.com/ChainSafe/radixtrie/internal/fuzz"
	"github.com/ChainSafe/radixtrie/internal/log"
	"github.com/ChainSafe/radixtrie/internal/metrics"
	radixprometheus "github.com/ChainSafe/radixtrie/internal/metrics/prometheus"
	"github.com/ChainSafe/radixtrie/internal/pprof"
	"github.com/ChainSafe/radixtrie/internal/store"
	"github.com/ChainSafe/radixtrie/pkg/radix"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

var errSnapshotDiffers = errors.New("reloaded snapshot differs")

func run(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	options, err := loggerOptions(cfg.Log)
	if err != nil {
		return err
	}
	log.Patch(options...)

	runID := uuid.New().String()
	options = append(options,
		log.SetWriter(ctx.App.Writer),
		log.AddContext("run", runID))
	logger := log.NewFromGlobal(options...)

	logger.Infof("starting run with %d iterations, seed %d and %d bits per level",
		cfg.Fuzz.Iterations, cfg.Fuzz.Seed, cfg.Trie.BitsPerLevel)

	registry := prometheus.NewRegistry()
	trieMetrics, err := radixprometheus.New(registry)
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	if cfg.Metrics.Address != "" {
		server := metrics.NewServer(cfg.Metrics.Address, registry)
		err = server.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := server.Stop()
			if stopErr != nil {
				logger.Errorf("stopping metrics server: %s", stopErr)
			}
		}()
	}

	if cfg.Pprof.Address != "" {
		pprofService := pprof.New(pprof.Settings{
			ListeningAddress: cfg.Pprof.Address,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}, logger.New(log.AddContext("pkg", "pprof")))
		err = pprofService.Start()
		if err != nil {
			return fmt.Errorf("starting pprof server: %w", err)
		}
		defer func() {
			stopErr := pprofService.Stop()
			if stopErr != nil {
				logger.Errorf("stopping pprof server: %s", stopErr)
			}
		}()
	}

	trie, err := radix.New[[]byte](
		radix.BitsPerLevel(cfg.Trie.BitsPerLevel),
		radix.WithMetrics(trieMetrics))
	if err != nil {
		return fmt.Errorf("creating trie: %w", err)
	}
	defer trie.Destroy()

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := fuzz.NewRunner(trie, fuzzSettings(cfg.Fuzz, logger))
	_, err = runner.Run(signalCtx)
	if err != nil {
		return fmt.Errorf("fuzzing: %w", err)
	}

	if cfg.Snapshot.Dir != "" {
		err = roundTrip(cfg, trie, logger)
		if err != nil {
			return err
		}
	}

	if ctx.Bool(DumpFlag.Name) {
		_, err = fmt.Fprintln(ctx.App.Writer, trie.String())
		if err != nil {
			return fmt.Errorf("printing trie: %w", err)
		}
	}

	return nil
}

func fuzzSettings(cfg config.FuzzConfig, logger fuzz.Logger) fuzz.Settings {
	return fuzz.Settings{
		Iterations: cfg.Iterations,
		Seed:       cfg.Seed,
		MaxKey:     cfg.MaxKey,
		InsertRate: cfg.InsertRate,
		MissRate:   cfg.MissRate,
		Logger:     logger,
	}
}

// roundTrip saves the trie to the snapshot directory, reloads it
// and checks the reloaded trie holds the same entries.
func roundTrip(cfg config.Config, trie *radix.Trie[[]byte], logger *log.Logger) (err error) {
	snapshotStore, err := store.Open(store.Settings{
		Path:   cfg.Snapshot.Dir,
		Logger: logger.New(log.AddContext("pkg", "badger")),
	})
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	defer func() {
		closeErr := snapshotStore.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	err = snapshotStore.Save(trie)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	loaded, err := snapshotStore.Load(radix.BitsPerLevel(cfg.Trie.BitsPerLevel))
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	defer loaded.Destroy()

	err = loaded.Validate()
	if err != nil {
		return fmt.Errorf("validating reloaded trie: %w", err)
	}

	diff := cmp.Diff(trie.Entries(), loaded.Entries())
	if diff != "" {
		return fmt.Errorf("%w: %s", errSnapshotDiffers, diff)
	}

	logger.Infof("snapshot of %d entries saved to %s and reloaded", loaded.Len(), cfg.Snapshot.Dir)
	return nil
}
