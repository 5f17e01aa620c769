// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import "fmt"

// Kind is the kind of a node.
type Kind byte

const (
	// Leaf kind for nodes holding exactly one entry.
	Leaf Kind = iota
	// Subtrie kind for branch nodes.
	Subtrie
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Subtrie:
		return "Subtrie"
	default:
		panic(fmt.Sprintf("invalid node kind: %d", k))
	}
}

// node is a node in the trie and can be a leaf or a subtrie.
// A subtrie always has a non nil children slice, and a leaf
// always has a nil children slice.
type node[V any] struct {
	// Leaf fields
	key   []byte
	value V

	// Subtrie fields
	// exactMatch is the leaf whose key ends at this subtrie depth.
	exactMatch *node[V]
	children   []*node[V]
	// count is the number of leaves in the subtrie,
	// exact match included.
	count uint32
}

func newLeaf[V any](key []byte, value V) *node[V] {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	return &node[V]{
		key:   keyCopy,
		value: value,
	}
}

func newSubtrie[V any](branches int) *node[V] {
	return &node[V]{
		children: make([]*node[V], branches),
	}
}

// Kind returns Subtrie if the node has children,
// and Leaf otherwise.
func (n *node[V]) Kind() Kind {
	if n.children != nil {
		return Subtrie
	}
	return Leaf
}

// leaves returns the number of leaves held by the node.
func (n *node[V]) leaves() uint32 {
	if n.Kind() == Leaf {
		return 1
	}
	return n.count
}
