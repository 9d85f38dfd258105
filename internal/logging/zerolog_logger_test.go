package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "resolver", true)

	logger.Verbose("cache miss for %s", "a.png")
	logger.Info("resolved %d files", 2)
	logger.Error("failed")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 3)

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "cache miss for a.png", entries[0]["message"])
	assert.Equal(t, "resolver", entries[0]["component"])
	assert.Contains(t, entries[0], "time")
	assert.Equal(t, "info", entries[1]["level"])
	assert.Equal(t, "error", entries[2]["level"])
}

func TestZerologLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "cli", false)

	logger.Verbose("dropped")
	logger.Info("kept")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}
