package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageStatus represents the state of a single stage.
type StageStatus string

const (
	StageStatusTodo          StageStatus = "todo"
	StageStatusWaitingClient StageStatus = "waiting_client"
	StageStatusInReview      StageStatus = "in_review"
	StageStatusApproved      StageStatus = "approved"
	StageStatusBlocked       StageStatus = "blocked"
	StageStatusDone          StageStatus = "done"
)

// ValidStageStatus reports whether s is a known stage status.
func ValidStageStatus(s StageStatus) bool {
	switch s {
	case StageStatusTodo, StageStatusWaitingClient, StageStatusInReview,
		StageStatusApproved, StageStatusBlocked, StageStatusDone:
		return true
	}
	return false
}

// StageOwner identifies which party is responsible for moving a stage forward.
type StageOwner string

const (
	StageOwnerProvider StageOwner = "provider"
	StageOwnerClient   StageOwner = "client"
)

// Stage represents one ordered step within a project. SortOrder is unique
// per project and defines the sequence; the "current stage" is the first
// stage by SortOrder whose status is not done.
type Stage struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID      string      `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:idx_stage_project_order"`
	Title          string      `json:"title" gorm:"not null"`
	Description    string      `json:"description" gorm:"default:null"`
	SortOrder      int         `json:"sortOrder" gorm:"not null;uniqueIndex:idx_stage_project_order"`
	Type           string      `json:"type" gorm:"default:null"`
	Status         StageStatus `json:"status" gorm:"type:varchar(20);default:'todo';index"`
	Owner          StageOwner  `json:"owner" gorm:"type:varchar(10);default:'provider'"`
	PlannedStart   *time.Time  `json:"plannedStart" gorm:"default:null"`
	PlannedEnd     *time.Time  `json:"plannedEnd" gorm:"default:null"`
	Deadline       *time.Time  `json:"deadline" gorm:"default:null"`
	CompletionNote string      `json:"completionNote" gorm:"default:null"`
	CompletedAt    *time.Time  `json:"completedAt" gorm:"default:null"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`

	// Relations
	Components []StageComponent `json:"components,omitempty" gorm:"foreignKey:StageID;constraint:OnDelete:CASCADE"`
	Approvals  []Approval       `json:"approvals,omitempty" gorm:"foreignKey:StageID;constraint:OnDelete:CASCADE"`
}

func (s *Stage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
