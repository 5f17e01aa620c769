// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import (
	"bytes"
	"fmt"
)

// Insert inserts the value at the key given. The key is copied.
// It returns ErrDuplicateKey if the key already exists, in which
// case the trie is left unchanged.
func (t *Trie[V]) Insert(key []byte, value V) (err error) {
	newRoot, nodesCreated, err := t.insert(t.root, key, value, 0)
	t.settings.metrics.OperationDone(OperationInsert, err == nil)
	if err != nil {
		return fmt.Errorf("inserting key %s: %w", keyToString(key), err)
	}

	t.root = newRoot
	t.settings.metrics.NodesAdd(nodesCreated)
	return nil
}

// insert inserts the key and value in the parent node at the
// depth given, and returns the node to store in place of the parent.
// On error, the parent returned is the parent given, unmodified.
func (t *Trie[V]) insert(parent *node[V], key []byte, value V,
	depth uint) (newParent *node[V], nodesCreated uint32, err error) {
	if parent == nil {
		const nodesCreated = 1
		return newLeaf(key, value), nodesCreated, nil
	}

	if parent.Kind() == Leaf {
		return t.insertInLeaf(parent, key, value, depth)
	}
	return t.insertInSubtrie(parent, key, value, depth)
}

func (t *Trie[V]) insertInLeaf(parentLeaf *node[V], key []byte, value V,
	depth uint) (newParent *node[V], nodesCreated uint32, err error) {
	if bytes.Equal(parentLeaf.key, key) {
		return parentLeaf, 0, ErrDuplicateKey
	}

	// Demote the leaf into a new subtrie at this depth.
	subtrie := newSubtrie[V](t.settings.branches())
	t.attach(subtrie, parentLeaf, depth)

	newParent, nodesCreated, err = t.insertInSubtrie(subtrie, key, value, depth)
	if err != nil {
		// The subtrie is dropped and the leaf was not modified.
		return parentLeaf, 0, err
	}

	return newParent, nodesCreated + 1, nil
}

func (t *Trie[V]) insertInSubtrie(parentSubtrie *node[V], key []byte, value V,
	depth uint) (newParent *node[V], nodesCreated uint32, err error) {
	index := groupAt(key, depth, t.settings.bitsPerLevel)
	if index == exhausted {
		if parentSubtrie.exactMatch != nil {
			return parentSubtrie, 0, ErrDuplicateKey
		}
		parentSubtrie.exactMatch = newLeaf(key, value)
		parentSubtrie.count++
		const nodesCreated = 1
		return parentSubtrie, nodesCreated, nil
	}

	child, nodesCreated, err := t.insert(parentSubtrie.children[index], key, value, depth+1)
	if err != nil {
		return parentSubtrie, 0, err
	}

	parentSubtrie.children[index] = child
	parentSubtrie.count++
	return parentSubtrie, nodesCreated, nil
}

// attach places a leaf in the subtrie at the depth given, either as
// exact match or in the child slot of the leaf key bit group, and
// accounts for it in the subtrie count.
func (t *Trie[V]) attach(subtrie, leaf *node[V], depth uint) {
	index := groupAt(leaf.key, depth, t.settings.bitsPerLevel)
	if index == exhausted {
		subtrie.exactMatch = leaf
	} else {
		subtrie.children[index] = leaf
	}
	subtrie.count++
}
