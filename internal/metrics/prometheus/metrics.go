// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package prometheus

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/radixtrie/pkg/radix"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "radixtrie"

// Metrics implements the radix.Metrics interface
// using Prometheus collectors.
type Metrics struct {
	nodesGauge        prometheus.Gauge
	operationsCounter *prometheus.CounterVec
}

var _ radix.Metrics = (*Metrics)(nil)

// New creates the Prometheus collectors and registers them
// on the given registerer. Collectors already registered
// are reused.
func New(registerer prometheus.Registerer) (metrics *Metrics, err error) {
	metrics = &Metrics{
		nodesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_total",
			Help:      "total number of nodes in the tries in memory",
		}),
		operationsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "number of trie operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}

	metrics.nodesGauge, err = register(registerer, "nodes gauge", metrics.nodesGauge)
	if err != nil {
		return nil, err
	}

	metrics.operationsCounter, err = register(registerer, "operations counter", metrics.operationsCounter)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer,
	name string, collector C) (registered C, err error) {
	err = registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	alreadyRegisteredErr := new(prometheus.AlreadyRegisteredError)
	if errors.As(err, alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(C)
		if ok {
			return existing, nil
		}
	}

	return registered, fmt.Errorf("cannot register %s: %w", name, err)
}

// NodesAdd adds n to the nodes gauge.
func (m *Metrics) NodesAdd(n uint32) {
	m.nodesGauge.Add(float64(n))
}

// NodesSub subtracts n from the nodes gauge.
func (m *Metrics) NodesSub(n uint32) {
	m.nodesGauge.Sub(float64(n))
}

// OperationDone increments the operations counter for
// the operation and outcome given.
func (m *Metrics) OperationDone(operation radix.Operation, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.operationsCounter.WithLabelValues(string(operation), outcome).Inc()
}
