package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FileCoreWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prepcoach.log")
	opts := DefaultOptions()
	opts.File = path

	log, sync, err := New(opts)
	require.NoError(t, err)
	log.Info("roadmap generated", zap.Int("sprints", 6))
	log.Debug("below level")
	sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "roadmap generated", entry["msg"])
	assert.EqualValues(t, 6, entry["sprints"])
}

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Level: "debug", Console: true, ConsoleLevel: "warn", ConsoleOut: &buf}

	log, sync, err := New(opts)
	require.NoError(t, err)
	log.Info("quiet")
	log.Warn("coach note unavailable")
	sync()

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "coach note unavailable")
}

func TestNew_NoSinks(t *testing.T) {
	log, sync, err := New(Options{})
	require.NoError(t, err)
	defer sync()
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
