// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import (
	"bytes"
	"fmt"
)

// Delete removes the key given from the trie.
// It returns ErrKeyNotFound if the key is not in the trie,
// in which case the trie is left unchanged.
func (t *Trie[V]) Delete(key []byte) (err error) {
	newRoot, nodesRemoved, err := t.delete(t.root, key, 0)
	t.settings.metrics.OperationDone(OperationDelete, err == nil)
	if err != nil {
		return fmt.Errorf("deleting key %s: %w", keyToString(key), err)
	}

	t.root = newRoot
	t.settings.metrics.NodesSub(nodesRemoved)
	return nil
}

// delete removes the key from the parent node at the depth given,
// and returns the node to store in place of the parent.
// On error, the parent returned is the parent given, unmodified.
func (t *Trie[V]) delete(parent *node[V], key []byte, depth uint) (
	newParent *node[V], nodesRemoved uint32, err error) {
	if parent == nil {
		return nil, 0, ErrKeyNotFound
	}

	if parent.Kind() == Leaf {
		if !bytes.Equal(parent.key, key) {
			return parent, 0, ErrKeyNotFound
		}
		const nodesRemoved = 1
		return nil, nodesRemoved, nil
	}

	index := groupAt(key, depth, t.settings.bitsPerLevel)
	if index == exhausted {
		exactMatch := parent.exactMatch
		if exactMatch == nil || !bytes.Equal(exactMatch.key, key) {
			return parent, 0, ErrKeyNotFound
		}
		parent.exactMatch = nil
		nodesRemoved = 1
	} else {
		var child *node[V]
		child, nodesRemoved, err = t.delete(parent.children[index], key, depth+1)
		if err != nil {
			return parent, 0, err
		}
		parent.children[index] = child
	}

	parent.count--
	if parent.count == 1 {
		return collapse(parent), nodesRemoved + 1, nil
	}
	return parent, nodesRemoved, nil
}

// collapse detaches and returns the single leaf left in a subtrie
// having a count of one.
func collapse[V any](subtrie *node[V]) (leaf *node[V]) {
	if subtrie.exactMatch != nil {
		leaf = subtrie.exactMatch
		subtrie.exactMatch = nil
	} else {
		for i, child := range subtrie.children {
			if child != nil {
				leaf = child
				subtrie.children[i] = nil
				break
			}
		}
	}

	if leaf == nil || leaf.Kind() != Leaf {
		panic(fmt.Sprintf("collapsing subtrie with count 1 found %v instead of a leaf", leaf))
	}

	subtrie.count = 0
	return leaf
}
