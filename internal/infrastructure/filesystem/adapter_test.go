package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Exists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	fs := New()

	ok, err := fs.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fs.Exists(ctx, filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_IsDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs := New()

	isDir, err := fs.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	_, err = fs.IsDirectory(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
