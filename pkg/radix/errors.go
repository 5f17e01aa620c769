// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import "errors"

var (
	// ErrDuplicateKey is returned when inserting a key already present in the trie.
	ErrDuplicateKey = errors.New("key already exists")
	// ErrKeyNotFound is returned when deleting a key absent from the trie.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvariantViolation is returned by Validate when the trie
	// structure is inconsistent. It always indicates a bug.
	ErrInvariantViolation = errors.New("trie invariant violated")
	// ErrBitsPerLevelNotSupported is returned when the trie is
	// configured with a group size not dividing a byte.
	ErrBitsPerLevelNotSupported = errors.New("bits per level not supported")
)
