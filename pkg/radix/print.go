// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import (
	"fmt"

	"github.com/qdm12/gotree"
)

// String returns the trie nodes structure stringified.
func (t *Trie[V]) String() string {
	if t.root == nil {
		return "empty"
	}
	return t.root.String()
}

func (n *node[V]) String() string {
	return n.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (n *node[V]) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New(n.Kind().String())

	if n.Kind() == Leaf {
		stringNode.Appendf("Key: %s", bytesToString(n.key))
		stringNode.Appendf("Value: %v", n.value)
		return stringNode
	}

	stringNode.Appendf("Count: %d", n.count)

	if n.exactMatch != nil {
		exactMatchNode := stringNode.Appendf("Exact match")
		exactMatchNode.AppendNode(n.exactMatch.StringNode())
	}

	for i, child := range n.children {
		if child == nil {
			continue
		}
		childNode := stringNode.Appendf("Child %d", i)
		childNode.AppendNode(child.StringNode())
	}

	return stringNode
}

func bytesToString(b []byte) (s string) {
	switch {
	case b == nil:
		return "nil"
	case len(b) <= 20:
		return fmt.Sprintf("0x%x", b)
	default:
		return fmt.Sprintf("0x%x...%x", b[:8], b[len(b)-8:])
	}
}
