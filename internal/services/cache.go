package services

import (
	"context"

	"drive_service/internal/models"

	"github.com/google/uuid"
)

// MetadataCache is consulted before the database on lookups and kept in sync
// on writes. internal/redis.Service implements it.
type MetadataCache interface {
	SetFolderMetadata(ctx context.Context, folder *models.Folder) error
	GetFolderMetadata(ctx context.Context, folderID uuid.UUID) (*models.Folder, error)
	InvalidateFolderMetadata(ctx context.Context, folderID uuid.UUID) error

	SetFileMetadata(ctx context.Context, file *models.File) error
	GetFileMetadata(ctx context.Context, fileID uuid.UUID) (*models.File, error)
	InvalidateFileMetadata(ctx context.Context, fileID uuid.UUID) error
}
