package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Singleton(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	assert.Same(t, l, Get())
}

func TestFromCtx(t *testing.T) {
	t.Run("falls back to the global logger", func(t *testing.T) {
		assert.Same(t, Get(), FromCtx(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		placement := Get().With("download", "/downloads/Show.S01E01")
		ctx := WithCtx(context.Background(), placement)
		assert.Same(t, placement, FromCtx(ctx))
	})
}

func TestWithCtx_SameLogger(t *testing.T) {
	l := Get()
	ctx := WithCtx(context.Background(), l)
	assert.Same(t, ctx, WithCtx(ctx, l))
}

func TestFromCtx_With(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())

	l := FromCtx(ctx, "download", "/downloads/show")
	assert.NotSame(t, Get(), l)
}

func TestNew_Capture(t *testing.T) {
	capture := &Capture{}
	l := New(Options{Capture: capture})

	l.Debugw("debug line", "key", "value")
	l.Infow("info line")

	out := capture.String()
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "info line")

	path := filepath.Join(t.TempDir(), "sort.log")
	require.NoError(t, capture.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(b))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tvsort.log")
	l := New(Options{File: path, MaxSizeMB: 1, MaxBackups: 1})

	l.Infow("written to file", "episode", "Show s01e01")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"written to file"`)
	assert.Contains(t, string(b), `"episode":"Show s01e01"`)
}
