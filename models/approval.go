package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalStatus represents the state of a client sign-off request.
type ApprovalStatus string

const (
	ApprovalStatusRequested        ApprovalStatus = "requested"
	ApprovalStatusApproved         ApprovalStatus = "approved"
	ApprovalStatusChangesRequested ApprovalStatus = "changes_requested"
)

// Approval is a request for client sign-off on a stage (optionally tied to
// one of its components). ApprovedAt is set only when the status becomes
// approved.
type Approval struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	StageID     string         `json:"stageId" gorm:"type:uuid;not null;index"`
	ComponentID *string        `json:"componentId" gorm:"type:uuid;default:null"`
	Status      ApprovalStatus `json:"status" gorm:"type:varchar(20);default:'requested'"`
	RequestedBy string         `json:"requestedBy" gorm:"type:uuid;not null"`
	RequestedAt time.Time      `json:"requestedAt"`
	ApprovedBy  *string        `json:"approvedBy" gorm:"default:null"`
	ApprovedAt  *time.Time     `json:"approvedAt" gorm:"default:null"`
	Note        string         `json:"note" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (a *Approval) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RequestedAt.IsZero() {
		a.RequestedAt = time.Now()
	}
	return nil
}
