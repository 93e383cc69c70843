package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only record of one action taken against a
// project. Writes to this table must never block the primary operation.
type ActivityLog struct {
	ID        string                 `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string                 `json:"projectId" gorm:"type:uuid;not null;index"`
	ActorType ActorType              `json:"actorType" gorm:"type:varchar(10);not null"`
	ActorID   string                 `json:"actorId" gorm:"default:null"`
	Action    string                 `json:"action" gorm:"not null"`
	Details   map[string]interface{} `json:"details" gorm:"serializer:json"`
	CreatedAt time.Time              `json:"createdAt" gorm:"index"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
