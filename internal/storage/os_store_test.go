package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSStore_WriteAndRead(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewOSStore(root)

	require.NoError(t, s.MkdirAll(ctx, "docs/operations"))
	require.NoError(t, s.MkdirAll(ctx, "docs/operations"), "existing directory is success")
	require.NoError(t, s.WriteFile(ctx, "docs/operations/maintenance.md", []byte("v1"), 0o644))
	require.NoError(t, s.WriteFile(ctx, "docs/operations/maintenance.md", []byte("v2"), 0o644))

	data, err := s.ReadFile(ctx, "docs/operations/maintenance.md")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	onDisk, err := os.ReadFile(filepath.Join(root, "docs", "operations", "maintenance.md"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(onDisk))
}

func TestOSStore_ModeAppliedOnOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewOSStore(t.TempDir())

	require.NoError(t, s.WriteFile(ctx, "gen.py", []byte("a"), 0o644))
	require.NoError(t, s.WriteFile(ctx, "gen.py", []byte("b"), 0o755))

	e, err := s.Stat(ctx, "gen.py")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o755), e.Mode)
	assert.False(t, e.IsDir)
	assert.Equal(t, int64(1), e.Size)
}

func TestOSStore_StatMissing(t *testing.T) {
	_, err := NewOSStore(t.TempDir()).Stat(context.Background(), "nope.md")
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSStore_RejectsEscape(t *testing.T) {
	s := NewOSStore(t.TempDir())
	err := s.WriteFile(context.Background(), "../escape.md", []byte("x"), 0o644)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestOSStore_FileBlocksDirectory(t *testing.T) {
	ctx := context.Background()
	s := NewOSStore(t.TempDir())
	require.NoError(t, s.WriteFile(ctx, "docs", []byte("not a dir"), 0o644))
	assert.Error(t, s.MkdirAll(ctx, "docs/architecture"))
}

func TestOSStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewOSStore(t.TempDir()).MkdirAll(ctx, "docs")
	assert.ErrorIs(t, err, context.Canceled)
}
