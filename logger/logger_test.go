package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestSetAndEnabled(t *testing.T) {
	defer Set(nil)

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	assert.False(t, Enabled(zapcore.DebugLevel))
	assert.True(t, Enabled(zapcore.InfoLevel))

	Debug("hidden")
	Info("shown", zap.Int("tick", 3))
	Warn("careful")
	Error("broken")

	require.Equal(t, 3, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, int64(3), entry.ContextMap()["tick"])

	Set(nil)
	assert.False(t, Enabled(zapcore.ErrorLevel), "nil installs a no-op logger")
}

func TestInitWritesFile(t *testing.T) {
	defer Set(nil)

	path := filepath.Join(t.TempDir(), "sim.log")
	require.NoError(t, InitWithFileConfig("debug", DefaultFileConfig(path), false))
	Info("to file")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
