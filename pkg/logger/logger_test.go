package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, isDevelopment bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(isDevelopment)
	SetOutput(&buf)
	t.Cleanup(func() { Configure(false) })
	return &buf
}

func TestProductionWritesJSON(t *testing.T) {
	buf := capture(t, false)

	Info("purged %d entries", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "purged 3 entries", line["msg"])
	assert.Contains(t, line["caller"], "logger_test.go")
}

func TestDebugOnlyInDevelopment(t *testing.T) {
	buf := capture(t, false)
	Debug("hidden")
	assert.Empty(t, buf.String())

	buf = capture(t, true)
	Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogOperationError(t *testing.T) {
	buf := capture(t, false)

	LogOperationError("GET /leaderboard", errors.New("deadline exceeded"))

	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, `"operation":"GET /leaderboard"`)
	assert.Contains(t, out, `"error":"deadline exceeded"`)
}
