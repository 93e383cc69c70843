package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectTemplate is a named stage blueprint. Creating a project from a
// template instantiates one Stage per TemplateStage in sort order.
type ProjectTemplate struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Stages []TemplateStage `json:"stages,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

func (t *ProjectTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TemplateStage is one blueprint entry within a template.
type TemplateStage struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	TemplateID  string     `json:"templateId" gorm:"type:uuid;not null;index;uniqueIndex:idx_template_stage_order"`
	SortOrder   int        `json:"sortOrder" gorm:"not null;uniqueIndex:idx_template_stage_order"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"default:null"`
	Type        string     `json:"type" gorm:"default:null"`
	Owner       StageOwner `json:"owner" gorm:"type:varchar(10);default:'provider'"`
}

func (s *TemplateStage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
