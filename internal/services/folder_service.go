package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"drive_service/internal/events"
	"drive_service/internal/kafka"
	"drive_service/internal/models"
	"drive_service/internal/repositories"
	"drive_service/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderService owns the per-user folder tree.
type FolderService struct {
	repo     repositories.FolderRepository
	storage  storage.Provider
	producer *kafka.Producer
	cache    MetadataCache
}

func NewFolderService(db *gorm.DB, store storage.Provider, producer *kafka.Producer, cache MetadataCache) *FolderService {
	return &FolderService{
		repo:     repositories.NewFolderRepository(db),
		storage:  store,
		producer: producer,
		cache:    cache,
	}
}

// Create adds a folder under the given parent. A non-nil parent must be an
// existing folder of the same owner.
func (s *FolderService) Create(ctx context.Context, name string, ownerID uuid.UUID, parentID *uuid.UUID) (*models.Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrInvalid)
	}

	if parentID != nil {
		if _, err := s.repo.FindOwned(*parentID, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent folder", ErrNotFound)
			}
			return nil, err
		}
	}

	folder := &models.Folder{
		Name:     name,
		OwnerID:  ownerID,
		ParentID: parentID,
	}

	if err := s.repo.Create(folder); err != nil {
		return nil, err
	}

	s.publish(ctx, events.FolderCreated, folder)
	s.cacheFolder(ctx, folder)

	return folder, nil
}

// ListChildren returns the folders directly under parentID, with their own
// children and files loaded. A nil parent selects root-level folders only.
func (s *FolderService) ListChildren(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) ([]models.Folder, error) {
	return s.repo.ListByParent(ownerID, parentID)
}

// Get returns a single owned folder with its direct children and files. The
// metadata cache is consulted first; on a hit only the folder's contents are
// fetched from the database, on a miss the row is fetched and cached.
func (s *FolderService) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Folder, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFolderMetadata(ctx, id)
		if err != nil {
			log.Printf("Cache error when getting folder metadata: %v", err)
		}
		if cached != nil {
			// Ownership is immutable, so the cached row is authoritative
			// for the not-found collapse.
			if cached.OwnerID != ownerID {
				return nil, fmt.Errorf("%w: folder %s", ErrNotFound, id)
			}
			if err := s.repo.LoadContents(cached); err != nil {
				return nil, err
			}
			return cached, nil
		}
	}

	folder, err := s.repo.FindOwned(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: folder %s", ErrNotFound, id)
		}
		return nil, err
	}

	s.cacheFolder(ctx, folder)
	return folder, nil
}

// Rename updates a folder's name, enforcing ownership via Get.
func (s *FolderService) Rename(ctx context.Context, id, ownerID uuid.UUID, newName string) (*models.Folder, error) {
	if newName == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrInvalid)
	}

	folder, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	folder.Name = newName
	if err := s.repo.Save(folder); err != nil {
		return nil, err
	}

	s.publish(ctx, events.FolderRenamed, folder)
	s.cacheFolder(ctx, folder)

	return folder, nil
}

// Delete removes a folder and everything below it: descendant folders and
// contained file rows go in one transaction, blobs are cleaned up afterwards
// best-effort.
func (s *FolderService) Delete(ctx context.Context, id, ownerID uuid.UUID) (*models.Folder, error) {
	folder, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	removedFiles, err := s.repo.DeleteSubtree(folder)
	if err != nil {
		return nil, err
	}

	for _, file := range removedFiles {
		if err := s.storage.Remove(file.Path); err != nil {
			log.Printf("Failed to remove blob %s: %v", file.Path, err)
		}
	}

	s.publish(ctx, events.FolderDeleted, folder)
	if s.cache != nil {
		if err := s.cache.InvalidateFolderMetadata(ctx, folder.ID); err != nil {
			log.Printf("Failed to invalidate folder cache: %v", err)
		}
	}

	return folder, nil
}

func (s *FolderService) publish(ctx context.Context, eventType string, folder *models.Folder) {
	if s.producer == nil {
		return
	}
	event := events.NewAssetEvent(eventType, events.AssetTypeFolder, folder.ID, folder.OwnerID)
	if err := s.producer.PublishAssetEvent(ctx, event); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

func (s *FolderService) cacheFolder(ctx context.Context, folder *models.Folder) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetFolderMetadata(ctx, folder); err != nil {
		log.Printf("Failed to cache folder metadata: %v", err)
	}
}
