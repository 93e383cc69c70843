package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is the metadata row for an uploaded blob. Path is the reference
// returned by the blob store; the bytes themselves live outside the database.
type File struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string    `json:"projectId" gorm:"type:uuid;not null;index"`
	StageID      *string   `json:"stageId" gorm:"type:uuid;default:null;index"`
	UploaderType ActorType `json:"uploaderType" gorm:"type:varchar(10);not null"`
	UploaderID   string    `json:"uploaderId" gorm:"default:null"`
	Name         string    `json:"name" gorm:"not null"`
	Path         string    `json:"path" gorm:"not null"`
	ContentType  string    `json:"contentType" gorm:"default:null"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
