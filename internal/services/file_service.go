package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"drive_service/internal/events"
	"drive_service/internal/kafka"
	"drive_service/internal/models"
	"drive_service/internal/repositories"
	"drive_service/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService owns file metadata rows and their blobs.
type FileService struct {
	repo       repositories.FileRepository
	folderRepo repositories.FolderRepository
	storage    storage.Provider
	producer   *kafka.Producer
	cache      MetadataCache
}

func NewFileService(db *gorm.DB, store storage.Provider, producer *kafka.Producer, cache MetadataCache) *FileService {
	return &FileService{
		repo:       repositories.NewFileRepository(db),
		folderRepo: repositories.NewFolderRepository(db),
		storage:    store,
		producer:   producer,
		cache:      cache,
	}
}

// Create writes the blob and then inserts the metadata row. The blob lands
// under the owner's directory with a generated name, so same-named uploads
// never overwrite each other. The two writes are not atomic: a failed insert
// after a successful write leaves an orphaned blob.
func (s *FileService) Create(ctx context.Context, content io.Reader, originalName, mimeType string, ownerID uuid.UUID, folderID *uuid.UUID) (*models.File, error) {
	if originalName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalid)
	}

	if folderID != nil {
		if _, err := s.folderRepo.FindOwned(*folderID, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: folder", ErrNotFound)
			}
			return nil, err
		}
	}

	path, size, err := s.storage.Save(content, ownerID, originalName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	file := &models.File{
		Name:     originalName,
		Path:     path,
		MimeType: mimeType,
		Size:     size,
		OwnerID:  ownerID,
		FolderID: folderID,
	}

	if err := s.repo.Create(file); err != nil {
		return nil, err
	}

	s.publish(ctx, events.FileUploaded, file)
	s.cacheFile(ctx, file)

	return file, nil
}

// List returns the files directly inside folderID; a nil folder selects
// root-level files only.
func (s *FileService) List(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]models.File, error) {
	return s.repo.ListByFolder(ownerID, folderID)
}

// Get returns a single owned file row, consulting the metadata cache before
// the database and repopulating it on a miss.
func (s *FileService) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.File, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFileMetadata(ctx, id)
		if err != nil {
			log.Printf("Cache error when getting file metadata: %v", err)
		}
		if cached != nil {
			if cached.OwnerID != ownerID {
				return nil, fmt.Errorf("%w: file %s", ErrNotFound, id)
			}
			return cached, nil
		}
	}

	file, err := s.repo.FindOwned(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: file %s", ErrNotFound, id)
		}
		return nil, err
	}

	s.cacheFile(ctx, file)
	return file, nil
}

// Open returns the file row together with a reader over its blob. The caller
// closes the reader.
func (s *FileService) Open(ctx context.Context, id, ownerID uuid.UUID) (*models.File, io.ReadCloser, error) {
	file, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.storage.Open(file.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return file, content, nil
}

// Rename updates only the display name; the blob keeps its path.
func (s *FileService) Rename(ctx context.Context, id, ownerID uuid.UUID, newName string) (*models.File, error) {
	if newName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalid)
	}

	file, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	file.Name = newName
	if err := s.repo.Save(file); err != nil {
		return nil, err
	}

	s.publish(ctx, events.FileRenamed, file)
	s.cacheFile(ctx, file)

	return file, nil
}

// Delete removes the blob best-effort and then the row. A missing blob is
// logged and does not block the row deletion.
func (s *FileService) Delete(ctx context.Context, id, ownerID uuid.UUID) (*models.File, error) {
	file, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Remove(file.Path); err != nil {
		log.Printf("Failed to remove blob %s: %v", file.Path, err)
	}

	if err := s.repo.Delete(file); err != nil {
		return nil, err
	}

	s.publish(ctx, events.FileDeleted, file)
	if s.cache != nil {
		if err := s.cache.InvalidateFileMetadata(ctx, file.ID); err != nil {
			log.Printf("Failed to invalidate file cache: %v", err)
		}
	}

	return file, nil
}

func (s *FileService) publish(ctx context.Context, eventType string, file *models.File) {
	if s.producer == nil {
		return
	}
	event := events.NewAssetEvent(eventType, events.AssetTypeFile, file.ID, file.OwnerID)
	if err := s.producer.PublishAssetEvent(ctx, event); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

func (s *FileService) cacheFile(ctx context.Context, file *models.File) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetFileMetadata(ctx, file); err != nil {
		log.Printf("Failed to cache file metadata: %v", err)
	}
}
