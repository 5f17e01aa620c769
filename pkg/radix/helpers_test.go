// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testBranches = 16

func leaf(key []byte, value string) *node[string] {
	return &node[string]{key: key, value: value}
}

func subtrie(count uint32, exactMatch *node[string],
	indexToChild map[int]*node[string]) *node[string] {
	children := make([]*node[string], testBranches)
	for index, child := range indexToChild {
		children[index] = child
	}
	return &node[string]{
		exactMatch: exactMatch,
		children:   children,
		count:      count,
	}
}

func defaultSettings() settings {
	return settings{
		bitsPerLevel: DefaultBitsPerLevel,
		metrics:      noopMetrics{},
	}
}

// newTestTrie returns a trie using the default settings
// with the keys given inserted, each with its string as value.
func newTestTrie(t *testing.T, keys ...string) *Trie[string] {
	t.Helper()

	trie, err := New[string]()
	require.NoError(t, err)

	for _, key := range keys {
		err := trie.Insert([]byte(key), key)
		require.NoError(t, err)
		require.NoError(t, trie.Validate())
	}

	return trie
}

// oneTwelveThirteen returns the nodes of a trie holding the keys
// "1" (0x31), "12" (0x3132) and "13" (0x3133), each with its string as value.
func oneTwelveThirteen() *node[string] {
	return subtrie(3, nil, map[int]*node[string]{
		3: subtrie(3, nil, map[int]*node[string]{
			1: subtrie(3, leaf([]byte("1"), "1"), map[int]*node[string]{
				3: subtrie(2, nil, map[int]*node[string]{
					2: leaf([]byte("12"), "12"),
					3: leaf([]byte("13"), "13"),
				}),
			}),
		}),
	})
}

func deepCopy[V any](parent *node[V]) *node[V] {
	if parent == nil {
		return nil
	}

	nodeCopy := &node[V]{
		value:      parent.value,
		exactMatch: deepCopy(parent.exactMatch),
		count:      parent.count,
	}

	if parent.key != nil {
		nodeCopy.key = make([]byte, len(parent.key))
		copy(nodeCopy.key, parent.key)
	}

	if parent.children != nil {
		nodeCopy.children = make([]*node[V], len(parent.children))
		for i, child := range parent.children {
			nodeCopy.children[i] = deepCopy(child)
		}
	}

	return nodeCopy
}
