package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	previous := Level()
	t.Cleanup(func() {
		SetLevel(previous)
		Init(&bytes.Buffer{})
	})

	SetLevel(zapcore.WarnLevel)
	Debug("hidden")
	Info("hidden too")
	assert.Zero(t, buf.Len())

	SetLevel(zapcore.DebugLevel)
	Debug("fetching weather", zap.String("city", "Paris"))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetching weather", entry["msg"])
	assert.Equal(t, "Paris", entry["city"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "@timestamp")
	assert.Contains(t, entry, "logName")
}
