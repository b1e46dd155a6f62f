package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Provider writes, reads and removes blobs keyed by their on-disk path.
type Provider interface {
	Save(reader io.Reader, ownerID uuid.UUID, originalName string) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

// LocalStorage keeps one subdirectory per user under BaseDir. Blob names are
// generated ids so two uploads with the same original name never collide.
type LocalStorage struct {
	BaseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &LocalStorage{BaseDir: baseDir}, nil
}

func (s *LocalStorage) Save(reader io.Reader, ownerID uuid.UUID, originalName string) (string, int64, error) {
	userDir := filepath.Join(s.BaseDir, ownerID.String())
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return "", 0, err
	}

	path := filepath.Join(userDir, uuid.New().String()+filepath.Ext(originalName))

	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	written, err := io.Copy(out, reader)
	if err != nil {
		return "", 0, err
	}

	return path, written, nil
}

func (s *LocalStorage) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (s *LocalStorage) Remove(path string) error {
	return os.Remove(path)
}
