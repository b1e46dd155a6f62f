package repositories

import (
	"drive_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderRepository defines data access methods for Folder. Every lookup is
// filtered by owner, so a folder belonging to another user is
// indistinguishable from a missing one.
type FolderRepository interface {
	Create(folder *models.Folder) error
	FindOwned(id, ownerID uuid.UUID) (*models.Folder, error)
	ListByParent(ownerID uuid.UUID, parentID *uuid.UUID) ([]models.Folder, error)
	LoadContents(folder *models.Folder) error
	Save(folder *models.Folder) error
	DeleteSubtree(folder *models.Folder) ([]models.File, error)
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(folder *models.Folder) error {
	return r.db.Create(folder).Error
}

func (r *folderRepository) FindOwned(id, ownerID uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.Preload("Children").Preload("Files").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&folder).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *folderRepository) ListByParent(ownerID uuid.UUID, parentID *uuid.UUID) ([]models.Folder, error) {
	query := r.db.Preload("Children").Preload("Files").Where("owner_id = ?", ownerID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var folders []models.Folder
	if err := query.Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// LoadContents fills in a folder's direct children and files, for folders
// that were fetched without preloads (e.g. from the metadata cache).
func (r *folderRepository) LoadContents(folder *models.Folder) error {
	if err := r.db.Where("parent_id = ?", folder.ID).Find(&folder.Children).Error; err != nil {
		return err
	}
	return r.db.Where("folder_id = ?", folder.ID).Find(&folder.Files).Error
}

func (r *folderRepository) Save(folder *models.Folder) error {
	return r.db.Save(folder).Error
}

// DeleteSubtree removes a folder together with every descendant folder and
// contained file row in a single transaction. The removed file rows are
// returned so the caller can clean up their blobs.
func (r *folderRepository) DeleteSubtree(folder *models.Folder) ([]models.File, error) {
	var removed []models.File

	err := r.db.Transaction(func(tx *gorm.DB) error {
		folderIDs := []uuid.UUID{folder.ID}
		frontier := []uuid.UUID{folder.ID}

		for len(frontier) > 0 {
			var children []models.Folder
			if err := tx.Where("parent_id IN ?", frontier).Find(&children).Error; err != nil {
				return err
			}
			frontier = nil
			for _, child := range children {
				folderIDs = append(folderIDs, child.ID)
				frontier = append(frontier, child.ID)
			}
		}

		if err := tx.Where("folder_id IN ?", folderIDs).Find(&removed).Error; err != nil {
			return err
		}
		if len(removed) > 0 {
			if err := tx.Where("folder_id IN ?", folderIDs).Delete(&models.File{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id IN ?", folderIDs).Delete(&models.Folder{}).Error
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}
