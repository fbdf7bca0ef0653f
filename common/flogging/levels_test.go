/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"testing"

	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNameToLevel(t *testing.T) {
	tests := []struct {
		names []string
		level zapcore.Level
	}{
		{names: []string{"DEBUG", "debug"}, level: zapcore.DebugLevel},
		{names: []string{"INFO", "info", "NOTICE", "notice"}, level: zapcore.InfoLevel},
		{names: []string{"WARN", "warn", "WARNING", "warning"}, level: zapcore.WarnLevel},
		{names: []string{"ERROR", "error", "CRITICAL", "critical"}, level: zapcore.ErrorLevel},
		{names: []string{"DPANIC", "dpanic"}, level: zapcore.DPanicLevel},
		{names: []string{"PANIC", "panic"}, level: zapcore.PanicLevel},
		{names: []string{"FATAL", "fatal"}, level: zapcore.FatalLevel},
		{names: []string{"bogus", ""}, level: zapcore.InfoLevel},
	}
	for _, tc := range tests {
		for _, name := range tc.names {
			t.Run(name, func(t *testing.T) {
				require.Equal(t, tc.level, flogging.NameToLevel(name))
			})
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	require.True(t, flogging.IsValidLevel("warning"))
	require.False(t, flogging.IsValidLevel("loud"))
	require.False(t, flogging.IsValidLevel(""))
}

func TestActivateSpec(t *testing.T) {
	tests := []struct {
		spec         string
		defaultLevel zapcore.Level
		levels       map[string]zapcore.Level
	}{
		{
			spec:         "DEBUG",
			defaultLevel: zapcore.DebugLevel,
			levels:       map[string]zapcore.Level{"aes": zapcore.DebugLevel},
		},
		{
			spec:         "modes=debug:info",
			defaultLevel: zapcore.InfoLevel,
			levels: map[string]zapcore.Level{
				"modes":     zapcore.DebugLevel,
				"modes.ctr": zapcore.DebugLevel,
				"bccsp":     zapcore.InfoLevel,
			},
		},
		{
			spec:         "modes,bccsp.sw=warning:error",
			defaultLevel: zapcore.ErrorLevel,
			levels: map[string]zapcore.Level{
				"modes":          zapcore.WarnLevel,
				"bccsp.sw":       zapcore.WarnLevel,
				"bccsp.factory":  zapcore.ErrorLevel,
				"bccsp.sw.aes":   zapcore.WarnLevel,
				"modesextension": zapcore.ErrorLevel,
			},
		},
		{
			spec:         "modes.=debug:modes.cbc=error",
			defaultLevel: zapcore.InfoLevel,
			levels: map[string]zapcore.Level{
				"modes":         zapcore.DebugLevel,
				"modes.cbc":     zapcore.ErrorLevel,
				"modes.ctr":     zapcore.InfoLevel,
				"modes.cbc.dec": zapcore.ErrorLevel,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}

			err := ll.ActivateSpec(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.defaultLevel, ll.DefaultLevel())
			for name, lvl := range tc.levels {
				require.Equal(t, lvl, ll.Level(name), "logger %s", name)
			}
		})
	}
}

func TestActivateSpecFailures(t *testing.T) {
	tests := []struct {
		spec string
		err  string
	}{
		{spec: "=INFO", err: "invalid logging specification '=INFO': no logger specified in segment '=INFO'"},
		{spec: "modes=loud", err: "invalid logging specification 'modes=loud': bad segment 'modes=loud'"},
		{spec: "loud", err: "invalid logging specification 'loud': bad segment 'loud'"},
		{spec: "a=b=c", err: "invalid logging specification 'a=b=c': bad segment 'a=b=c'"},
		{spec: ".modes=info", err: "invalid logging specification '.modes=info': bad logger name '.modes'"},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}
			err := ll.ActivateSpec(tc.spec)
			require.EqualError(t, err, tc.err)
		})
	}
}

func TestSpec(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("modes.ctr=debug:bccsp=error:warn"))
	require.Equal(t, "bccsp=error:modes.ctr=debug:warn", ll.Spec())
}

func TestEnabledUsesMinimumLevel(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("modes=debug:error"))
	require.True(t, ll.Enabled(zapcore.DebugLevel))

	require.NoError(t, ll.ActivateSpec("error"))
	require.False(t, ll.Enabled(zapcore.WarnLevel))
	require.True(t, ll.Enabled(zapcore.ErrorLevel))
}
