// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package radix

import "fmt"

// DefaultBitsPerLevel is the default number of key bits consumed
// at each level of the trie, giving a branching factor of 16.
const DefaultBitsPerLevel uint8 = 4

// Option is the type to specify settings modifier
// for the trie construction.
type Option func(s *settings)

// BitsPerLevel sets the number of key bits extracted at each
// level of the trie. It must be 1, 2, 4 or 8 and defaults to 4.
func BitsPerLevel(bits uint8) Option {
	return func(s *settings) {
		s.bitsPerLevel = bits
	}
}

// WithMetrics sets the metrics to report node and operation
// counts to. It defaults to a no-op implementation.
func WithMetrics(metrics Metrics) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}

type settings struct {
	bitsPerLevel uint8
	metrics      Metrics
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) setDefaults() {
	if s.bitsPerLevel == 0 {
		s.bitsPerLevel = DefaultBitsPerLevel
	}

	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
}

func (s settings) validate() (err error) {
	switch s.bitsPerLevel {
	case 1, 2, 4, 8:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrBitsPerLevelNotSupported, s.bitsPerLevel)
	}
}

// branches returns the number of child slots of each subtrie.
func (s settings) branches() int {
	return 1 << s.bitsPerLevel
}
