package cmd_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/profile-client/pkg/cmd"
	"github.com/klwxsrx/profile-client/pkg/log"
)

func TestInitLogger_LevelFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		expectOutput bool
	}{
		{name: "debug_enabled", env: "debug", expectOutput: true},
		{name: "error_hides_info", env: "error", expectOutput: false},
		{name: "unknown_uses_default", env: "verbose", expectOutput: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(cmd.LogLevelEnv, tc.env)
			var buf bytes.Buffer

			logger := cmd.InitLogger(log.LevelInfo, log.WithWriter(&buf))
			logger.Info(context.Background(), "hello")

			assert.Equal(t, tc.expectOutput, bytes.Contains(buf.Bytes(), []byte("hello")))
		})
	}
}

func TestLogPanic_LogsRecoveredValue(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LevelError, log.WithWriter(&buf))

	var caught bool
	assert.NotPanics(t, func() {
		defer func() {
			caught = cmd.LogPanic(context.Background(), logger, recover())
		}()
		panic("boom")
	})
	assert.True(t, caught)
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "app failed with panic")

	buf.Reset()
	assert.False(t, cmd.LogPanic(context.Background(), logger, nil))
	assert.Empty(t, buf.String())
}

func TestInitLogger_TextFormatFromEnv(t *testing.T) {
	t.Setenv(cmd.LogLevelEnv, "info")
	t.Setenv(cmd.LogFormatEnv, "text")
	var buf bytes.Buffer

	logger := cmd.InitLogger(log.LevelWarn, log.WithWriter(&buf))
	logger.WithField("session", "default").Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "session=default")
}
