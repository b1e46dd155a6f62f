package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is the metadata row for one uploaded blob. Path points at the blob
// on disk and is never exposed; FolderID is nil for root-level files.
type File struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Path      string     `gorm:"size:1024;not null" json:"-"`
	MimeType  string     `gorm:"size:255" json:"mimetype"`
	Size      int64      `json:"size"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	FolderID  *uuid.UUID `gorm:"type:uuid;index" json:"folderId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (file *File) BeforeCreate(tx *gorm.DB) (err error) {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	return
}
