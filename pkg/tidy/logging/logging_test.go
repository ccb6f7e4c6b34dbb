package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2026-03-15T10:30:45Z")
	require.NoError(t, err)
	return func() time.Time { return ts }
}

func TestOpen_CreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := Open(dir)
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, filepath.Join(dir, FileName), logger.Path())

	_, err = os.Stat(logger.Path())
	require.NoError(t, err)
}

func TestLogger_LineFormat(t *testing.T) {
	dir := t.TempDir()

	logger, err := Open(dir, WithClock(fixedClock(t)))
	require.NoError(t, err)

	logger.Info("moved file", "name", "a.png", "category", "IMAGES")
	logger.Warn("file exists, renaming")
	logger.Error("move failed")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logger.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "2026-03-15 10:30:45 - INFO - moved file name=a.png category=IMAGES", lines[0])
	assert.Equal(t, "2026-03-15 10:30:45 - WARNING - file exists, renaming", lines[1])
	assert.Equal(t, "2026-03-15 10:30:45 - ERROR - move failed", lines[2])
}

func TestLogger_AppendsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	logger, err := Open(dir)
	require.NoError(t, err)
	logger.Info("first run")
	require.NoError(t, logger.Close())

	logger, err = Open(dir)
	require.NoError(t, err)
	logger.Info("second run")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestLogger_ConsoleMirror(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := Open(dir, WithConsoleWriter(&console, LevelWarn))
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("quiet on console")
	logger.Warn("loud on console")

	out := console.String()
	assert.NotContains(t, out, "quiet on console")
	assert.Contains(t, out, "loud on console")
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: LevelDebug},
		{in: "info", want: LevelInfo},
		{in: "warn", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "ERROR", want: LevelError},
		{in: "bogus", want: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_CloseTwice(t *testing.T) {
	logger, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}
