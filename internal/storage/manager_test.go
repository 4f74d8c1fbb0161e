// manager_test.go - Tests for storage layer
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unity-forge/backend/internal/models"
)

func TestLocalStore_WriteAndRead(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		store := NewLocalStore()
		path := filepath.Join(t.TempDir(), "Assets", "Scenes", "Main.unity")

		require.NoError(t, store.WriteText(path, "hello"))
		got, err := store.ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
		assert.True(t, store.IsDir(filepath.Dir(path)))
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		store := NewLocalStore()
		path := filepath.Join(t.TempDir(), "a.txt")

		require.NoError(t, store.WriteText(path, "first"))
		require.NoError(t, store.WriteBytes(path, []byte("second")))
		got, err := store.ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		store := NewLocalStore()
		_, err := store.ReadText(filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestLocalStore_AppendText(t *testing.T) {
	store := NewLocalStore()
	path := filepath.Join(t.TempDir(), "log", "scene.unity")

	require.NoError(t, store.AppendText(path, "a"))
	require.NoError(t, store.AppendText(path, "b"))

	got, err := store.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestLocalStore_ListFiles(t *testing.T) {
	store := NewLocalStore()
	root := t.TempDir()
	for _, rel := range []string{"b.unity", "a.unity", "sub/c.unity", "sub/c.unity.meta", "notes.txt"} {
		require.NoError(t, store.WriteText(filepath.Join(root, rel), "x"))
	}

	list, err := store.ListFiles(root, "*.unity")
	require.NoError(t, err)
	slashRoot := filepath.ToSlash(root)
	assert.Equal(t, []string{
		slashRoot + "/a.unity",
		slashRoot + "/b.unity",
		slashRoot + "/sub/c.unity",
	}, list)

	all, err := store.ListFiles(root, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = store.ListFiles(filepath.Join(root, "missing"), "*")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = store.ListFiles(root, "[")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestLocalStore_Delete(t *testing.T) {
	store := NewLocalStore()
	root := t.TempDir()
	path := filepath.Join(root, "x.mat")
	require.NoError(t, store.WriteText(path, "x"))

	require.NoError(t, store.Delete(path))
	assert.False(t, store.Exists(path))

	err := store.Delete(path)
	assert.ErrorIs(t, err, models.ErrNotFound)

	dir := filepath.Join(root, "Folder")
	nested := filepath.Join(dir, "Nested", "kept.txt")
	require.NoError(t, store.WriteText(nested, "x"))
	assert.Error(t, store.Delete(dir))
	assert.True(t, store.Exists(nested))

	empty := filepath.Join(root, "Empty")
	require.NoError(t, store.MakeDirectory(empty))
	require.NoError(t, store.Delete(empty))
	_, statErr := os.Stat(empty)
	assert.True(t, os.IsNotExist(statErr))
}
