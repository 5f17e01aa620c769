// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  *bool
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values of the other settings in the
// settings if they are not already set.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	s.context = mergeContexts(other.context, s.context)
}

// mergeContexts returns the context key values of the parent
// followed by the ones of the child, merging values of common keys.
func mergeContexts(parent, child []contextKeyValues) (merged []contextKeyValues) {
	if len(parent) == 0 && len(child) == 0 {
		return nil
	}

	merged = make([]contextKeyValues, 0, len(parent)+len(child))
	for _, kv := range parent {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		merged = append(merged, contextKeyValues{key: kv.key, values: values})
	}

	for _, kv := range child {
		found := false
		for i := range merged {
			if merged[i].key == kv.key {
				merged[i].values = append(merged[i].values, kv.values...)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, kv)
		}
	}

	return merged
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.format == nil {
		format := FormatConsole
		s.format = &format
	}

	if s.caller == nil {
		caller := false
		s.caller = &caller
	}
}
