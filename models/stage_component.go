package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentType enumerates the kinds of work items a stage can contain.
type ComponentType string

const (
	ComponentUploadRequest ComponentType = "upload_request"
	ComponentChecklist     ComponentType = "checklist"
	ComponentApproval      ComponentType = "approval"
	ComponentTextBlock     ComponentType = "text_block"
	ComponentForm          ComponentType = "form"
	ComponentLink          ComponentType = "link"
	ComponentMilestone     ComponentType = "milestone"
	ComponentTasklist      ComponentType = "tasklist"
	ComponentPrototype     ComponentType = "prototype"
)

// ValidComponentType reports whether t is a known component type.
func ValidComponentType(t ComponentType) bool {
	switch t {
	case ComponentUploadRequest, ComponentChecklist, ComponentApproval,
		ComponentTextBlock, ComponentForm, ComponentLink,
		ComponentMilestone, ComponentTasklist, ComponentPrototype:
		return true
	}
	return false
}

// StageComponent is a discrete unit of work inside a stage. Config and
// Metadata are open documents whose shape depends on the component type.
type StageComponent struct {
	ID            string                 `json:"id" gorm:"primaryKey;type:uuid"`
	StageID       string                 `json:"stageId" gorm:"type:uuid;not null;index"`
	ComponentType ComponentType          `json:"componentType" gorm:"type:varchar(20);not null"`
	Title         string                 `json:"title" gorm:"not null"`
	Config        map[string]interface{} `json:"config" gorm:"serializer:json"`
	Status        StageStatus            `json:"status" gorm:"type:varchar(20);default:'todo'"`
	Metadata      map[string]interface{} `json:"metadata" gorm:"serializer:json"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func (c *StageComponent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
