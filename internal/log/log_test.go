// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options  []Option
		level    Level
		s        string
		args     []interface{}
		outRegex string
	}{
		"below level": {
			options: []Option{SetLevel(Info)},
			level:   Debug,
			s:       "some words",
		},
		"plain line": {
			options:  []Option{SetLevel(Trace)},
			level:    Trace,
			s:        "some words",
			outRegex: timePrefixRegex + "TRACE    some words\n$",
		},
		"formatted line": {
			options:  []Option{SetLevel(Info)},
			level:    Warn,
			s:        "key %s has %d nodes",
			args:     []interface{}{"0x01", 3},
			outRegex: timePrefixRegex + "WARN     key 0x01 has 3 nodes\n$",
		},
		"with context": {
			options: []Option{SetLevel(Info),
				AddContext("key1", "a"), AddContext("key1", "b"),
				AddContext("key2", "c")},
			level:    Critical,
			s:        "some words",
			outRegex: timePrefixRegex + "CRITICAL some words\tkey1=a,b key2=c\n$",
		},
		"with caller": {
			options:  []Option{SetLevel(Info), SetCaller(true)},
			level:    Info,
			s:        "some words",
			outRegex: timePrefixRegex + "INFO     some words\t[a-z_]+\\.go:L[0-9]+\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			writer := bytes.NewBuffer(nil)
			options := append([]Option{SetWriter(writer), SetFormat(FormatPlain)},
				testCase.options...)
			logger := New(options...)

			logger.log(testCase.level, testCase.s, testCase.args...)

			if testCase.outRegex == "" {
				assert.Empty(t, writer.String())
				return
			}
			assert.Regexp(t, testCase.outRegex, writer.String())
		})
	}
}

func Test_Logger_Infof(t *testing.T) {
	t.Parallel()

	writer := bytes.NewBuffer(nil)
	logger := New(SetWriter(writer), SetFormat(FormatPlain))

	logger.Infof("inserted %d keys", 5)

	assert.Regexp(t, timePrefixRegex+"INFO     inserted 5 keys\n$", writer.String())
}
