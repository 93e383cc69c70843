package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActorType identifies which side of the project performed an action.
type ActorType string

const (
	ActorProvider ActorType = "provider"
	ActorClient   ActorType = "client"
	ActorSystem   ActorType = "system"
)

// Comment is a message attached to a project, optionally scoped to a stage.
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID  string    `json:"projectId" gorm:"type:uuid;not null;index"`
	StageID    *string   `json:"stageId" gorm:"type:uuid;default:null;index"`
	AuthorType ActorType `json:"authorType" gorm:"type:varchar(10);not null"`
	AuthorID   string    `json:"authorId" gorm:"default:null"`
	AuthorName string    `json:"authorName" gorm:"default:null"`
	Body       string    `json:"body" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
