// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

// exhausted is the branch index returned once every bit
// of a key has been consumed.
const exhausted = -1

// keyWalker yields the successive fixed size bit groups of a key,
// most significant bits of each byte first.
type keyWalker struct {
	key   []byte
	bits  uint8
	depth uint
}

func newKeyWalker(key []byte, bits uint8) *keyWalker {
	return &keyWalker{
		key:  key,
		bits: bits,
	}
}

// next returns the next branch index, or exhausted once the key
// has no more bits. Calls after exhaustion keep returning exhausted.
func (w *keyWalker) next() (index int) {
	index = groupAt(w.key, w.depth, w.bits)
	if index != exhausted {
		w.depth++
	}
	return index
}

// groupAt returns the branch index of the key at the given depth,
// or exhausted if the key has no bits left at that depth.
// The bits argument must divide 8 so a group never spans two bytes.
func groupAt(key []byte, depth uint, bits uint8) (index int) {
	bitOffset := depth * uint(bits)
	byteIndex := bitOffset / 8
	if byteIndex >= uint(len(key)) {
		return exhausted
	}

	shift := 8 - uint(bits) - bitOffset%8
	mask := uint(1)<<bits - 1
	return int(uint(key[byteIndex]) >> shift & mask)
}
