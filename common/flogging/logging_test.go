/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/hyperledger/fabric-aes/common/flogging/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logging, err := flogging.New(flogging.Config{})
	assert.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, logging.DefaultLevel())

	_, err = flogging.New(flogging.Config{
		LogSpec: "::=borken=::",
	})
	assert.EqualError(t, err, "invalid logging specification '::=borken=::': bad segment '=borken='")
}

func TestNewWithEnvironment(t *testing.T) {
	oldSpec, set := os.LookupEnv(flogging.SpecEnv)
	if set {
		defer os.Setenv(flogging.SpecEnv, oldSpec)
	}

	os.Setenv(flogging.SpecEnv, "fatal")
	logging, err := flogging.New(flogging.Config{})
	assert.NoError(t, err)
	assert.Equal(t, zapcore.FatalLevel, logging.DefaultLevel())

	os.Unsetenv(flogging.SpecEnv)
	logging, err = flogging.New(flogging.Config{})
	assert.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, logging.DefaultLevel())
}

//go:generate counterfeiter -o mock/write_syncer.go -fake-name WriteSyncer . writeSyncer
type writeSyncer interface {
	zapcore.WriteSyncer
}

func TestLoggingSetWriter(t *testing.T) {
	ws := &mock.WriteSyncer{}

	logging, err := flogging.New(flogging.Config{})
	assert.NoError(t, err)

	logging.SetWriter(ws)
	logging.Write([]byte("cbc decrypt"))
	assert.Equal(t, 1, ws.WriteCallCount())
	assert.Equal(t, []byte("cbc decrypt"), ws.WriteArgsForCall(0))

	err = logging.Sync()
	assert.NoError(t, err)

	ws.SyncReturns(errors.New("welp"))
	err = logging.Sync()
	assert.EqualError(t, err, "welp")
}

func TestNamedLogger(t *testing.T) {
	defer flogging.Reset()
	buf := &bytes.Buffer{}
	flogging.Global.SetWriter(buf)

	t.Run("logger and named (child) logger with different levels", func(t *testing.T) {
		defer buf.Reset()
		logger := flogging.MustGetLogger("aes")
		logger2 := logger.Named("modes")
		flogging.ActivateSpec("aes=info:aes.modes=error")

		logger.Infow("from aes")
		logger2.Infow("from modes")
		assert.Contains(t, buf.String(), "from aes")
		assert.NotContains(t, buf.String(), "from modes")
	})

	t.Run("named logger where parent logger isn't enabled", func(t *testing.T) {
		logger := flogging.MustGetLogger("bccsp")
		logger2 := logger.Named("sw")
		flogging.ActivateSpec("bccsp=fatal:bccsp.sw=error")
		logger.Errorw("from bccsp")
		logger2.Errorw("from sw")
		assert.NotContains(t, buf.String(), "from bccsp")
		assert.Contains(t, buf.String(), "from sw")
	})
}

func TestInvalidLoggerName(t *testing.T) {
	names := []string{"test*", ".test", "test.", ".", ""}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			msg := fmt.Sprintf("invalid logger name: %s", name)
			assert.PanicsWithValue(t, msg, func() { flogging.MustGetLogger(name) })
		})
	}
}

func TestLoggerCoreCheck(t *testing.T) {
	logging, err := flogging.New(flogging.Config{})
	assert.NoError(t, err)

	logger := logging.ZapLogger("modes.ctr")

	err = logging.ActivateSpec("info")
	assert.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug should not be enabled at info level")

	err = logging.ActivateSpec("debug")
	assert.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "debug should now be enabled at debug level")
}

func TestEncodings(t *testing.T) {
	tests := []struct {
		format   string
		contains []string
	}{
		{format: "json", contains: []string{`"name":"modes.ecb"`, `"msg":"processed blocks"`, `"blocks":4`}},
		{format: "logfmt", contains: []string{"name=modes.ecb", `msg="processed blocks"`, "blocks=4"}},
		{format: "[%{module}] %{level} %{message}", contains: []string{"[modes.ecb] INFO processed blocks", `"blocks": 4`}},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logging, err := flogging.New(flogging.Config{Format: tc.format, LogSpec: "info", Writer: buf})
			assert.NoError(t, err)

			logging.Logger("modes.ecb").Infow("processed blocks", "blocks", 4)
			for _, c := range tc.contains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}

func TestBadFormat(t *testing.T) {
	_, err := flogging.New(flogging.Config{Format: "%{color:chartreuse}"})
	assert.EqualError(t, err, "invalid color option: chartreuse")
}

func TestLoggerWith(t *testing.T) {
	buf := &bytes.Buffer{}
	logging, err := flogging.New(flogging.Config{Format: "json", Writer: buf})
	assert.NoError(t, err)

	logger := logging.Logger("bccsp.sw").With("variant", "AES-256")
	logger.Infow("imported key", "bytes", 32)
	assert.Contains(t, buf.String(), `"variant":"AES-256"`)
	assert.Contains(t, buf.String(), `"msg":"imported key"`)
	assert.Contains(t, buf.String(), `"bytes":32`)
	assert.True(t, logger.IsEnabledFor(zapcore.InfoLevel))
	assert.False(t, logger.IsEnabledFor(zapcore.DebugLevel))
}

func TestWriteFailure(t *testing.T) {
	ws := &mock.WriteSyncer{}
	ws.WriteReturns(0, errors.New("disk full"))

	logging, err := flogging.New(flogging.Config{Writer: ws})
	assert.NoError(t, err)

	logging.Logger("modes").Errorw("unreachable sink")
	assert.Equal(t, 1, ws.WriteCallCount())
}
