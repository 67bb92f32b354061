package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a debug-level JSON logger writing into buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// decodeLines parses each JSON log line in buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := EnrichLogger(newTestLogger(&buf), "default", "config.Settings")
	logger.Info("hello")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "default", records[0]["registry"])
	assert.Equal(t, "config.Settings", records[0]["key"])
}

func TestEnrichLoggerNil(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "default", "key"))
}

func TestLogConstruction(t *testing.T) {
	var buf bytes.Buffer
	LogConstruction(newTestLogger(&buf), "config.Settings", 1.25)

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "instance constructed", records[0]["msg"])
	assert.Equal(t, "config.Settings", records[0]["key"])
	assert.Equal(t, 1.25, records[0]["duration_ms"])
}

func TestLogConstructionError(t *testing.T) {
	var buf bytes.Buffer
	LogConstructionError(newTestLogger(&buf), "config.Settings", errors.New("boom"))

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "construction failed", records[0]["msg"])
	assert.Equal(t, "boom", records[0]["error"])
}

func TestLogSlotHit(t *testing.T) {
	var buf bytes.Buffer
	LogSlotHit(newTestLogger(&buf), "config.Settings")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "existing instance returned", records[0]["msg"])
	assert.Equal(t, "DEBUG", records[0]["level"])
}

func TestLogHelpersNilLogger(t *testing.T) {
	// Must not panic
	LogConstruction(nil, "k", 1)
	LogConstructionError(nil, "k", errors.New("x"))
	LogSlotHit(nil, "k")
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, 0.0)
}
