package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "card", "c1")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "card=c1")

	buf.Reset()
	New(&buf, true).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logPath := filepath.Join(t.TempDir(), "nested", "termllo.log")
	closer, err := Init(Options{Path: logPath})
	require.NoError(t, err)

	slog.Info("move failed", "card", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "card=abc"))
}

func TestDefaultPathUsesStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/termllo/termllo.log", path)
}
