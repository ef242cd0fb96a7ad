package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Info("solved", "written", "話す")
	out := buf.String()
	assert.Contains(t, out, "[furigana] solved")
	assert.Contains(t, out, "written=話す")
}

func TestLogger_DefaultArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)
	ctx := WithDefaultArgs(context.Background(), "run", "abc")
	ctx = WithDefaultArgs(ctx, "worker", 2)

	l.WarnCtx(ctx, "ambiguous", "written", "大人")
	out := buf.String()
	assert.Contains(t, out, "run=abc")
	assert.Contains(t, out, "worker=2")
	assert.Contains(t, out, "written=大人")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestLogJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, LogJSON(dir, "result", map[string]string{"furigana": "[話|はな]す"}))

	b, err := os.ReadFile(filepath.Join(dir, "result.json"))
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "[話|はな]す", got["furigana"])

	_, err = os.Stat(filepath.Join(dir, "result.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitLogs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	require.NoError(t, InitLogs(dir))

	_, err := os.Stat(filepath.Join(dir, "old.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)
}
