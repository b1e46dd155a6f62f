package repositories

import (
	"drive_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository defines data access methods for File, owner-scoped like
// FolderRepository.
type FileRepository interface {
	Create(file *models.File) error
	FindOwned(id, ownerID uuid.UUID) (*models.File, error)
	ListByFolder(ownerID uuid.UUID, folderID *uuid.UUID) ([]models.File, error)
	Save(file *models.File) error
	Delete(file *models.File) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

func (r *fileRepository) FindOwned(id, ownerID uuid.UUID) (*models.File, error) {
	var file models.File
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) ListByFolder(ownerID uuid.UUID, folderID *uuid.UUID) ([]models.File, error) {
	query := r.db.Where("owner_id = ?", ownerID)
	if folderID == nil {
		query = query.Where("folder_id IS NULL")
	} else {
		query = query.Where("folder_id = ?", *folderID)
	}

	var files []models.File
	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) Save(file *models.File) error {
	return r.db.Save(file).Error
}

func (r *fileRepository) Delete(file *models.File) error {
	return r.db.Delete(file).Error
}
