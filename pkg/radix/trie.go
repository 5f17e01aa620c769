// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package radix implements a compact radix trie mapping byte string
// keys to values. Each level of the trie consumes a fixed number of
// key bits, subtries collapse into their last leaf on deletion and
// every failed mutation leaves the trie unchanged.
package radix

import (
	"bytes"
	"fmt"
)

// Trie is a compact radix trie. It is not safe for concurrent
// use, see SafeTrie for a locked variant.
type Trie[V any] struct {
	root     *node[V]
	settings settings
}

// New creates an empty trie using the options given.
func New[V any](options ...Option) (trie *Trie[V], err error) {
	s := newSettings(options)
	s.setDefaults()
	err = s.validate()
	if err != nil {
		return nil, err
	}

	return &Trie[V]{
		settings: s,
	}, nil
}

// Len returns the number of keys stored in the trie.
func (t *Trie[V]) Len() int {
	if t.root == nil {
		return 0
	}
	return int(t.root.leaves())
}

// BitsPerLevel returns the number of key bits consumed at each level.
func (t *Trie[V]) BitsPerLevel() uint8 {
	return t.settings.bitsPerLevel
}

// Get returns the value stored at the key given, and false
// if the key is not in the trie.
func (t *Trie[V]) Get(key []byte) (value V, found bool) {
	leaf := retrieve(t.root, newKeyWalker(key, t.settings.bitsPerLevel))
	found = leaf != nil && bytes.Equal(leaf.key, key)
	t.settings.metrics.OperationDone(OperationSearch, found)
	if !found {
		return value, false
	}
	return leaf.value, true
}

// retrieve returns the only leaf which can hold the walker key,
// or nil if the walk ends on an empty slot.
func retrieve[V any](parent *node[V], walker *keyWalker) (leaf *node[V]) {
	current := parent
	for current != nil && current.Kind() == Subtrie {
		index := walker.next()
		if index == exhausted {
			return current.exactMatch
		}
		current = current.children[index]
	}
	return current
}

// Destroy releases every node of the trie. The trie
// must not be used after this call.
func (t *Trie[V]) Destroy() {
	nodesRemoved := destroy(t.root)
	t.root = nil
	if nodesRemoved > 0 {
		t.settings.metrics.NodesSub(nodesRemoved)
	}
}

func destroy[V any](parent *node[V]) (nodesRemoved uint32) {
	if parent == nil {
		return 0
	}

	nodesRemoved = 1
	if parent.Kind() == Subtrie {
		nodesRemoved += destroy(parent.exactMatch)
		parent.exactMatch = nil
		for i, child := range parent.children {
			nodesRemoved += destroy(child)
			parent.children[i] = nil
		}
		parent.count = 0
	}

	var zero V
	parent.key = nil
	parent.value = zero
	return nodesRemoved
}

func keyToString(key []byte) string {
	return fmt.Sprintf("0x%x", key)
}
