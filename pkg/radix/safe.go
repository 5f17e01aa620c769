// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import "sync"

// SafeTrie is a trie safe for concurrent use. Searches can run
// in parallel whilst mutations are serialized.
type SafeTrie[V any] struct {
	trie  *Trie[V]
	mutex sync.RWMutex
}

// NewSafe creates an empty concurrency safe trie using the options given.
func NewSafe[V any](options ...Option) (safeTrie *SafeTrie[V], err error) {
	trie, err := New[V](options...)
	if err != nil {
		return nil, err
	}
	return &SafeTrie[V]{trie: trie}, nil
}

// Get returns the value stored at the key given, and false
// if the key is not in the trie.
func (s *SafeTrie[V]) Get(key []byte) (value V, found bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.trie.Get(key)
}

// Insert inserts the value at the key given.
func (s *SafeTrie[V]) Insert(key []byte, value V) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.trie.Insert(key, value)
}

// Delete removes the key given from the trie.
func (s *SafeTrie[V]) Delete(key []byte) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.trie.Delete(key)
}

// Destroy releases every node of the trie.
func (s *SafeTrie[V]) Destroy() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.trie.Destroy()
}

// Len returns the number of keys stored in the trie.
func (s *SafeTrie[V]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.trie.Len()
}

// Validate checks the trie invariants.
func (s *SafeTrie[V]) Validate() (err error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.trie.Validate()
}

// Walk calls fn for each entry in key order whilst holding the read
// lock, so fn must not call mutating methods of the trie.
func (s *SafeTrie[V]) Walk(fn func(key []byte, value V) (keepGoing bool)) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	s.trie.Walk(fn)
}

// Entries returns all the key values pairs of the trie.
func (s *SafeTrie[V]) Entries() (keyValues map[string]V) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.trie.Entries()
}

func (s *SafeTrie[V]) String() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.trie.String()
}
