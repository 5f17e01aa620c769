// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

//go:generate mockgen -destination=mock_metrics_test.go -package $GOPACKAGE . Metrics

// Metrics is the metrics interface to use for the trie.
// Implementations must be safe for concurrent use when used
// with a SafeTrie, since searches run under a read lock.
type Metrics interface {
	NodesAdd(n uint32)
	NodesSub(n uint32)
	OperationDone(operation Operation, success bool)
}

// Operation is a trie operation reported to the metrics.
type Operation string

const (
	// OperationSearch is a Get call.
	OperationSearch Operation = "search"
	// OperationInsert is an Insert call.
	OperationInsert Operation = "insert"
	// OperationDelete is a Delete call.
	OperationDelete Operation = "delete"
)

type noopMetrics struct{}

func (noopMetrics) NodesAdd(uint32) {}

func (noopMetrics) NodesSub(uint32) {}

func (noopMetrics) OperationDone(Operation, bool) {}
