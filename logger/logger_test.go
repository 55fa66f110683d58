package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWithOptionsJSON(t *testing.T) { //nolint:paralleltest // mutates the default logger
	var buf bytes.Buffer

	logger := ConfigureWithOptions(Options{
		JSON:     true,
		MinLevel: slog.LevelInfo,
		Output:   &buf,
	})

	logger.Info("hello", slog.String("station", "harbor"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "harbor", entry["station"])
}

func TestConfigureWithOptionsText(t *testing.T) { //nolint:paralleltest // mutates the default logger
	var buf bytes.Buffer

	ConfigureWithOptions(Options{
		MinLevel: slog.LevelDebug,
		Output:   &buf,
	})

	slog.Debug("cleaning", slog.Int("rows", 42))

	assert.Contains(t, buf.String(), "cleaning")
	assert.Contains(t, buf.String(), "rows=42")
}

func TestConfigureRedirectsLegacyLog(t *testing.T) { //nolint:paralleltest // mutates the default logger
	var buf bytes.Buffer

	ConfigureWithOptions(Options{Output: &buf})

	log.Print("legacy message")

	assert.Contains(t, buf.String(), "legacy message")
}

func TestConfigureMinLevelFilters(t *testing.T) { //nolint:paralleltest // mutates the default logger
	var buf bytes.Buffer

	logger := ConfigureWithOptions(Options{
		MinLevel: slog.LevelWarn,
		Output:   &buf,
	})

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
