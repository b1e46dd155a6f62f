package storage

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesUnderOwnerDir(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewLocalStorage(baseDir)
	require.NoError(t, err)
	owner := uuid.New()

	path, written, err := store.Save(strings.NewReader("contents"), owner, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("contents")), written)
	assert.Equal(t, filepath.Join(baseDir, owner.String()), filepath.Dir(path))
	assert.Equal(t, ".txt", filepath.Ext(path))

	reader, err := store.Open(path)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))
}

func TestSaveSameNameNeverCollides(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	owner := uuid.New()

	first, _, err := store.Save(strings.NewReader("a"), owner, "photo.jpg")
	require.NoError(t, err)
	second, _, err := store.Save(strings.NewReader("b"), owner, "photo.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

func TestRemoveMissingBlobFails(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = store.Remove(filepath.Join(store.BaseDir, "nope"))
	assert.Error(t, err)
}
