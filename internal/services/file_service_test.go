package services

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCreateAndListByFolder(t *testing.T) {
	db := newTestDB(t)
	store := newTestStorage(t)
	folders := NewFolderService(db, store, nil, nil)
	files := NewFileService(db, store, nil, nil)
	owner := uuid.New()

	reports, err := folders.Create(context.Background(), "Reports", owner, nil)
	require.NoError(t, err)

	file, err := files.Create(context.Background(), strings.NewReader("q1 numbers"), "q1.pdf", "application/pdf", owner, &reports.ID)
	require.NoError(t, err)
	assert.Equal(t, "q1.pdf", file.Name)
	assert.Equal(t, int64(len("q1 numbers")), file.Size)

	inFolder, err := files.List(context.Background(), owner, &reports.ID)
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, "q1.pdf", inFolder[0].Name)

	atRoot, err := files.List(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.Empty(t, atRoot)
}

func TestFileCreateFolderMustBelongToOwner(t *testing.T) {
	db := newTestDB(t)
	store := newTestStorage(t)
	folders := NewFolderService(db, store, nil, nil)
	files := NewFileService(db, store, nil, nil)

	folder, err := folders.Create(context.Background(), "private", uuid.New(), nil)
	require.NoError(t, err)

	_, err = files.Create(context.Background(), strings.NewReader("x"), "x.txt", "text/plain", uuid.New(), &folder.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	file, err := files.Create(context.Background(), strings.NewReader("secret"), "secret.txt", "text/plain", owner, nil)
	require.NoError(t, err)

	_, err = files.Get(context.Background(), file.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := files.Get(context.Background(), file.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, file.ID, got.ID)
}

func TestFileSameNameUploadsKeepDistinctBlobs(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	first, err := files.Create(context.Background(), strings.NewReader("first shot"), "photo.jpg", "image/jpeg", owner, nil)
	require.NoError(t, err)
	second, err := files.Create(context.Background(), strings.NewReader("second shot"), "photo.jpg", "image/jpeg", owner, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Path, second.Path)

	content, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "first shot", string(content))
	content, err = os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, "second shot", string(content))
}

func TestFileOpenStreamsBlob(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	created, err := files.Create(context.Background(), strings.NewReader("hello blob"), "hello.txt", "text/plain", owner, nil)
	require.NoError(t, err)

	file, reader, err := files.Open(context.Background(), created.ID, owner)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello blob", string(data))
	assert.Equal(t, "text/plain", file.MimeType)
}

func TestFileRenameKeepsPath(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	file, err := files.Create(context.Background(), strings.NewReader("data"), "old.txt", "text/plain", owner, nil)
	require.NoError(t, err)

	renamed, err := files.Rename(context.Background(), file.ID, owner, "new.txt")
	require.NoError(t, err)
	assert.Equal(t, "new.txt", renamed.Name)
	assert.Equal(t, file.Path, renamed.Path)
	assert.FileExists(t, renamed.Path)
}

func TestFileDeleteRemovesBlobAndRow(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	file, err := files.Create(context.Background(), strings.NewReader("bye"), "bye.txt", "text/plain", owner, nil)
	require.NoError(t, err)

	_, err = files.Delete(context.Background(), file.ID, owner)
	require.NoError(t, err)

	_, err = files.Get(context.Background(), file.ID, owner)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoFileExists(t, file.Path)
}

func TestFileDeleteToleratesMissingBlob(t *testing.T) {
	db := newTestDB(t)
	files := NewFileService(db, newTestStorage(t), nil, nil)
	owner := uuid.New()

	file, err := files.Create(context.Background(), strings.NewReader("gone"), "gone.txt", "text/plain", owner, nil)
	require.NoError(t, err)
	require.NoError(t, os.Remove(file.Path))

	_, err = files.Delete(context.Background(), file.ID, owner)
	require.NoError(t, err)

	_, err = files.Get(context.Background(), file.ID, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
