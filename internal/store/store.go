// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package store persists snapshots of radix tries in a badger database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/radixtrie/pkg/radix"
	"github.com/dgraph-io/badger/v2"
)

var (
	// entryPrefix prefixes every trie key, so the empty trie key
	// maps to a non empty database key.
	entryPrefix = []byte("entry:")
	lengthKey   = []byte("meta:length")
)

var (
	// ErrSnapshotNotFound is returned by Load if no snapshot was saved.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrLengthMismatch is returned by Load if the number of entries
	// loaded differs from the number of entries saved.
	ErrLengthMismatch = errors.New("snapshot length mismatch")
)

// Settings are the settings for the store.
type Settings struct {
	// Path is the database directory. It is ignored
	// if InMemory is true.
	Path     string
	InMemory bool
	Logger   Logger
}

// Store is a snapshot store for tries of byte slices.
type Store struct {
	db *badger.DB
}

// Open opens the badger database using the settings given.
func Open(settings Settings) (store *Store, err error) {
	options := badger.DefaultOptions(settings.Path)
	if settings.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	}

	options = options.WithLogger(nil)
	if settings.Logger != nil {
		options = options.WithLogger(&badgerLogger{logger: settings.Logger})
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() (err error) {
	err = s.db.Close()
	if err != nil {
		return fmt.Errorf("closing badger database: %w", err)
	}
	return nil
}

// Save replaces the snapshot in the database with the
// entries of the trie given. Stale keys are deleted in the
// same write batch as the new entries are written.
func (s *Store) Save(trie *radix.Trie[[]byte]) (err error) {
	staleKeys, err := s.staleKeys(trie)
	if err != nil {
		return fmt.Errorf("listing previous snapshot keys: %w", err)
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()

	for _, key := range staleKeys {
		err = batch.Delete(key)
		if err != nil {
			return fmt.Errorf("deleting stale entry: %w", err)
		}
	}

	trie.Walk(func(key, value []byte) (keepGoing bool) {
		err = batch.Set(entryKey(key), value)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	length := make([]byte, 8)
	binary.BigEndian.PutUint64(length, uint64(trie.Len()))
	err = batch.Set(lengthKey, length)
	if err != nil {
		return fmt.Errorf("writing length: %w", err)
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing write batch: %w", err)
	}

	return nil
}

// staleKeys returns the database keys of the current snapshot
// entries which are not in the trie given.
func (s *Store) staleKeys(trie *radix.Trie[[]byte]) (keys [][]byte, err error) {
	entries := trie.Entries()
	err = s.db.View(func(txn *badger.Txn) error {
		iteratorOptions := badger.DefaultIteratorOptions
		iteratorOptions.PrefetchValues = false
		iteratorOptions.Prefix = entryPrefix
		iterator := txn.NewIterator(iteratorOptions)
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			databaseKey := iterator.Item().Key()
			_, found := entries[string(databaseKey[len(entryPrefix):])]
			if !found {
				keys = append(keys, iterator.Item().KeyCopy(nil))
			}
		}
		return nil
	})
	return keys, err
}

// Load builds a new trie from the snapshot in the database,
// using the trie options given.
func (s *Store) Load(options ...radix.Option) (trie *radix.Trie[[]byte], err error) {
	trie, err = radix.New[[]byte](options...)
	if err != nil {
		return nil, fmt.Errorf("creating trie: %w", err)
	}

	var expectedLength uint64
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(lengthKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrSnapshotNotFound
			}
			return fmt.Errorf("getting length: %w", err)
		}

		err = item.Value(func(value []byte) error {
			expectedLength = binary.BigEndian.Uint64(value)
			return nil
		})
		if err != nil {
			return fmt.Errorf("reading length: %w", err)
		}

		iteratorOptions := badger.DefaultIteratorOptions
		iteratorOptions.Prefix = entryPrefix
		iterator := txn.NewIterator(iteratorOptions)
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			item := iterator.Item()
			key := item.Key()[len(entryPrefix):]
			value, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("reading value: %w", err)
			}

			err = trie.Insert(key, value)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		trie.Destroy()
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	loadedLength := trie.Len()
	if uint64(loadedLength) != expectedLength {
		trie.Destroy()
		return nil, fmt.Errorf("%w: %d entries loaded but %d expected",
			ErrLengthMismatch, loadedLength, expectedLength)
	}

	return trie, nil
}

func entryKey(key []byte) (databaseKey []byte) {
	databaseKey = make([]byte, 0, len(entryPrefix)+len(key))
	databaseKey = append(databaseKey, entryPrefix...)
	return append(databaseKey, key...)
}
