package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMinute holds the notes for one project meeting. MeetingDate is a
// date-only string (YYYY-MM-DD); one minute per meeting date per project,
// enforced by the composite unique index.
type ProjectMinute struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID   string    `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:idx_minute_project_date"`
	MeetingDate string    `json:"meetingDate" gorm:"type:date;not null;uniqueIndex:idx_minute_project_date"`
	Notes       string    `json:"notes" gorm:"not null"`
	CreatedBy   string    `json:"createdBy" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *ProjectMinute) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ParseMeetingDate validates a date-only string.
func ParseMeetingDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
