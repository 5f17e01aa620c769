// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package fuzz drives a radix trie with random operations and
// checks every result against a reference map.
package fuzz

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/ChainSafe/radixtrie/pkg/radix"
	"github.com/OneOfOne/xxhash"
)

// ErrMismatch is returned when the trie disagrees with the reference map.
var ErrMismatch = errors.New("trie and reference mismatch")

// Logger is the logger used by the runner.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Settings are the runner settings.
type Settings struct {
	Iterations uint
	Seed       int64
	// MaxKey is the exclusive upper bound of the integers
	// formatted as keys. It defaults to DefaultMaxKey if zero.
	MaxKey uint
	// InsertRate is the probability of an iteration being an insertion.
	InsertRate float64
	// MissRate is the probability of a deletion targeting a random
	// key which may be absent, instead of a stored key.
	MissRate float64
	Logger   Logger
}

// DefaultMaxKey is the key bound used when Settings.MaxKey is zero.
const DefaultMaxKey = 1000

// Stats are the counts of operations run.
type Stats struct {
	Inserts    uint
	Duplicates uint
	Deletes    uint
	Misses     uint
	Length     int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d inserts, %d duplicates, %d deletes, %d misses, %d entries",
		s.Inserts, s.Duplicates, s.Deletes, s.Misses, s.Length)
}

// Runner runs random operations on a trie.
type Runner struct {
	trie      *radix.Trie[[]byte]
	settings  Settings
	random    *rand.Rand
	reference map[string]uint64
	keys      []string
	positions map[string]int
	stats     Stats
}

// NewRunner creates a runner for the trie given.
// The trie is expected to be empty.
func NewRunner(trie *radix.Trie[[]byte], settings Settings) *Runner {
	if settings.Logger == nil {
		settings.Logger = noopLogger{}
	}

	if settings.MaxKey == 0 {
		settings.MaxKey = DefaultMaxKey
	}

	return &Runner{
		trie:      trie,
		settings:  settings,
		random:    rand.New(rand.NewSource(settings.Seed)), //nolint:gosec
		reference: make(map[string]uint64),
		positions: make(map[string]int),
	}
}

// Value returns the value the runner stores for the key given.
func Value(key string) (value []byte) {
	value = make([]byte, 8)
	binary.BigEndian.PutUint64(value, xxhash.Checksum64([]byte(key)))
	return value
}

// Run runs the iterations, validating the trie after each of them,
// then checks every reference entry is found in the trie.
// It stops at the first discrepancy or when the context is canceled.
func (r *Runner) Run(ctx context.Context) (stats Stats, err error) {
	progressStep := r.settings.Iterations / 10
	if progressStep == 0 {
		progressStep = 1
	}

	for i := uint(0); i < r.settings.Iterations; i++ {
		err = ctx.Err()
		if err != nil {
			return r.currentStats(), fmt.Errorf("after %d iterations: %w", i, err)
		}

		err = r.step()
		if err != nil {
			return r.currentStats(), fmt.Errorf("iteration %d: %w", i, err)
		}

		err = r.trie.Validate()
		if err != nil {
			return r.currentStats(), fmt.Errorf("iteration %d: %w", i, err)
		}

		if (i+1)%progressStep == 0 {
			r.settings.Logger.Debugf("%d/%d iterations done: %s",
				i+1, r.settings.Iterations, r.currentStats())
		}
	}

	err = r.check()
	if err != nil {
		return r.currentStats(), err
	}

	stats = r.currentStats()
	r.settings.Logger.Infof("fuzzing done: %s", stats)
	return stats, nil
}

func (r *Runner) currentStats() Stats {
	stats := r.stats
	stats.Length = r.trie.Len()
	return stats
}

func (r *Runner) step() (err error) {
	if len(r.keys) == 0 || r.random.Float64() < r.settings.InsertRate {
		return r.insert(r.randomKey())
	}

	if r.random.Float64() < r.settings.MissRate {
		return r.delete(r.randomKey())
	}

	return r.delete(r.keys[r.random.Intn(len(r.keys))])
}

func (r *Runner) randomKey() string {
	return strconv.Itoa(r.random.Intn(int(r.settings.MaxKey)))
}

func (r *Runner) insert(key string) (err error) {
	_, exists := r.reference[key]

	err = r.trie.Insert([]byte(key), Value(key))
	if exists {
		r.stats.Duplicates++
		return checkError("inserting", key, radix.ErrDuplicateKey, err)
	}

	err = checkError("inserting", key, nil, err)
	if err != nil {
		return err
	}

	r.stats.Inserts++
	r.reference[key] = xxhash.Checksum64([]byte(key))
	r.positions[key] = len(r.keys)
	r.keys = append(r.keys, key)
	return r.checkGet(key)
}

func (r *Runner) delete(key string) (err error) {
	_, exists := r.reference[key]

	err = r.trie.Delete([]byte(key))
	if !exists {
		r.stats.Misses++
		return checkError("deleting", key, radix.ErrKeyNotFound, err)
	}

	err = checkError("deleting", key, nil, err)
	if err != nil {
		return err
	}

	r.stats.Deletes++
	delete(r.reference, key)
	position := r.positions[key]
	lastKey := r.keys[len(r.keys)-1]
	r.keys[position] = lastKey
	r.positions[lastKey] = position
	r.keys = r.keys[:len(r.keys)-1]
	delete(r.positions, key)
	return r.checkGet(key)
}

func checkError(operation, key string, expected, actual error) error {
	if expected == nil && actual == nil {
		return nil
	} else if expected != nil && errors.Is(actual, expected) {
		return nil
	}
	return fmt.Errorf("%w: %s key %q: expected error %v but got %v",
		ErrMismatch, operation, key, expected, actual)
}

// checkGet checks the trie and the reference agree on the key given.
func (r *Runner) checkGet(key string) (err error) {
	expected, expectedFound := r.reference[key]
	value, found := r.trie.Get([]byte(key))
	if found != expectedFound {
		return fmt.Errorf("%w: key %q found %t but expected found %t",
			ErrMismatch, key, found, expectedFound)
	}

	if !found {
		return nil
	}

	if len(value) != 8 || binary.BigEndian.Uint64(value) != expected {
		return fmt.Errorf("%w: key %q has value 0x%x but expected 0x%x",
			ErrMismatch, key, value, expected)
	}

	return nil
}

func (r *Runner) check() (err error) {
	for key := range r.reference {
		err = r.checkGet(key)
		if err != nil {
			return err
		}
	}

	if r.trie.Len() != len(r.reference) {
		return fmt.Errorf("%w: trie has %d entries but reference has %d",
			ErrMismatch, r.trie.Len(), len(r.reference))
	}

	return nil
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

func (noopLogger) Infof(string, ...interface{}) {}
