package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project. Transitions
// between statuses are free-form; only membership in the enum is enforced.
type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusDone       ProjectStatus = "done"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusOnHold,
		ProjectStatusDone, ProjectStatusArchived:
		return true
	}
	return false
}

// Project represents a unit of work delivered to one client. Projects are
// never hard-deleted; archival happens through the status field.
type Project struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"default:null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);default:'planned';index"`
	StartDate   *time.Time    `json:"startDate" gorm:"default:null"`
	EndDate     *time.Time    `json:"endDate" gorm:"default:null"`
	Deadline    *time.Time    `json:"deadline" gorm:"default:null"`
	ClientID    string        `json:"clientId" gorm:"type:uuid;not null;index"`
	CreatedBy   string        `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relations
	Client  Client          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Stages  []Stage         `json:"stages,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Members []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
