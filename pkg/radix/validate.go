// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import "fmt"

// Validate recomputes the leaf count of every subtrie and checks
// it matches the stored count, that every subtrie holds at least
// two leaves and that every leaf sits where its key leads to.
// A non nil error wraps ErrInvariantViolation.
func (t *Trie[V]) Validate() (err error) {
	if t.root == nil {
		return nil
	}

	_, err = t.validate(t.root, nil)
	return err
}

// validate checks the node found at the path of branch indexes
// given and returns the number of leaves it holds.
func (t *Trie[V]) validate(parent *node[V], path []int) (leaves uint32, err error) {
	if parent.Kind() == Leaf {
		return 1, t.validateLeaf(parent, path, false)
	}

	if len(parent.children) != t.settings.branches() {
		return 0, fmt.Errorf("%w: subtrie at path %v has %d children slots instead of %d",
			ErrInvariantViolation, path, len(parent.children), t.settings.branches())
	}

	if parent.exactMatch != nil {
		if parent.exactMatch.Kind() != Leaf {
			return 0, fmt.Errorf("%w: exact match at path %v is a %s",
				ErrInvariantViolation, path, parent.exactMatch.Kind())
		}
		err = t.validateLeaf(parent.exactMatch, path, true)
		if err != nil {
			return 0, err
		}
		leaves++
	}

	for i, child := range parent.children {
		if child == nil {
			continue
		}

		childPath := make([]int, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = i

		childLeaves, err := t.validate(child, childPath)
		if err != nil {
			return 0, err
		}
		leaves += childLeaves
	}

	if parent.count != leaves {
		return 0, fmt.Errorf("%w: subtrie at path %v has count %d but holds %d leaves",
			ErrInvariantViolation, path, parent.count, leaves)
	}

	if leaves < 2 {
		return 0, fmt.Errorf("%w: subtrie at path %v holds %d leaves",
			ErrInvariantViolation, path, leaves)
	}

	return leaves, nil
}

// validateLeaf checks the leaf key follows the path given, and
// that its key is exhausted at the path end if it is an exact match.
func (t *Trie[V]) validateLeaf(leaf *node[V], path []int, exactMatch bool) (err error) {
	bits := t.settings.bitsPerLevel
	for depth, expectedIndex := range path {
		index := groupAt(leaf.key, uint(depth), bits)
		if index != expectedIndex {
			return fmt.Errorf("%w: leaf with key %s found at path %v but leads to index %d at depth %d",
				ErrInvariantViolation, keyToString(leaf.key), path, index, depth)
		}
	}

	if exactMatch && groupAt(leaf.key, uint(len(path)), bits) != exhausted {
		return fmt.Errorf("%w: exact match leaf with key %s at path %v is not exhausted",
			ErrInvariantViolation, keyToString(leaf.key), path)
	}

	return nil
}
