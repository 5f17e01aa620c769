// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Trie_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		root       *node[string]
		errWrapped error
		errMessage string
	}{
		"empty_trie": {},
		"leaf_root": {
			root: leaf([]byte{1}, "a"),
		},
		"valid_subtries": {
			root: oneTwelveThirteen(),
		},
		"count_mismatch": {
			root: subtrie(3, nil, map[int]*node[string]{
				1: leaf([]byte{0x10}, "a"),
				2: leaf([]byte{0x20}, "b"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: subtrie at path [] has count 3 but holds 2 leaves",
		},
		"nested_count_mismatch": {
			root: subtrie(3, nil, map[int]*node[string]{
				3: subtrie(5, nil, map[int]*node[string]{
					1: leaf([]byte{0x31}, "a"),
					2: leaf([]byte{0x32}, "b"),
				}),
				4: leaf([]byte{0x40}, "c"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: subtrie at path [3] has count 5 but holds 2 leaves",
		},
		"subtrie_with_single_leaf": {
			root: subtrie(1, nil, map[int]*node[string]{
				3: leaf([]byte{0x31}, "a"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: subtrie at path [] holds 1 leaves",
		},
		"misrouted_leaf": {
			root: subtrie(2, nil, map[int]*node[string]{
				2: leaf([]byte{0x31}, "a"),
				4: leaf([]byte{0x40}, "b"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: leaf with key 0x31 found at path [2] but leads to index 3 at depth 0",
		},
		"exact_match_not_exhausted": {
			root: subtrie(2, leaf([]byte{0x31}, "a"), map[int]*node[string]{
				4: leaf([]byte{0x40}, "b"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: exact match leaf with key 0x31 at path [] is not exhausted",
		},
		"exact_match_is_subtrie": {
			root: subtrie(4, oneTwelveThirteen(), map[int]*node[string]{
				4: leaf([]byte{0x40}, "b"),
			}),
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: exact match at path [] is a Subtrie",
		},
		"wrong_children_slots": {
			root: &node[string]{
				children: []*node[string]{
					leaf([]byte{0x00}, "a"),
					leaf([]byte{0x10}, "b"),
				},
				count: 2,
			},
			errWrapped: ErrInvariantViolation,
			errMessage: "trie invariant violated: subtrie at path [] has 2 children slots instead of 16",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			trie := &Trie[string]{
				root:     testCase.root,
				settings: defaultSettings(),
			}

			err := trie.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
