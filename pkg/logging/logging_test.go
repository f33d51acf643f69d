package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer

	logger, closer, err := New(Config{Level: "warn", Console: &console})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "path", "isa.json")

	output := console.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "msg=shown")
	assert.Contains(t, output, "path=isa.json")
}

func TestNew_FanOutToFile(t *testing.T) {
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "iscreate.log")

	logger, closer, err := New(Config{Level: "debug", File: logFile, Console: &console})
	require.NoError(t, err)

	logger.Debug("instruction set loaded", "instructions_added", 2)
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "instruction set loaded")

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "instruction set loaded", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 2, record["instructions_added"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Config{Level: "verbose"})
	assert.Error(t, err)
}
