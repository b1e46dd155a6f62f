package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder is one node of a user's folder tree. ParentID is nil for
// root-level folders.
type Folder struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Children []Folder `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Files    []File   `gorm:"foreignKey:FolderID" json:"files,omitempty"`
}

func (folder *Folder) BeforeCreate(tx *gorm.DB) (err error) {
	if folder.ID == uuid.Nil {
		folder.ID = uuid.New()
	}
	return
}
