package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRole represents the access level of a client member on a project.
type MemberRole string

const (
	MemberRoleViewer MemberRole = "client_viewer"
	MemberRoleEditor MemberRole = "client_editor"
)

// ValidMemberRole reports whether r is a known member role.
func ValidMemberRole(r MemberRole) bool {
	return r == MemberRoleViewer || r == MemberRoleEditor
}

// ProjectMember maps a client email to a role on one project. Emails are
// stored lowercase; the composite unique index is what rejects duplicates.
type ProjectMember struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string     `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:idx_member_project_email"`
	Email     string     `json:"email" gorm:"not null;uniqueIndex:idx_member_project_email"`
	Name      string     `json:"name" gorm:"default:null"`
	Role      MemberRole `json:"role" gorm:"type:varchar(20);default:'client_viewer'"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
