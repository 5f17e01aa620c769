// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

// Walk calls fn for each entry of the trie in lexicographic key
// order, until fn returns false. The key given to fn is a copy.
// The trie must not be modified by fn.
func (t *Trie[V]) Walk(fn func(key []byte, value V) (keepGoing bool)) {
	walk(t.root, fn)
}

func walk[V any](parent *node[V], fn func(key []byte, value V) bool) (keepGoing bool) {
	if parent == nil {
		return true
	}

	if parent.Kind() == Leaf {
		key := make([]byte, len(parent.key))
		copy(key, parent.key)
		return fn(key, parent.value)
	}

	if !walk(parent.exactMatch, fn) {
		return false
	}

	for _, child := range parent.children {
		if !walk(child, fn) {
			return false
		}
	}

	return true
}

// Entries returns all the key values pairs of the trie.
func (t *Trie[V]) Entries() (keyValues map[string]V) {
	keyValues = make(map[string]V, t.Len())
	t.Walk(func(key []byte, value V) bool {
		keyValues[string(key)] = value
		return true
	})
	return keyValues
}
