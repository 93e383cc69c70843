package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// ActivityRepository handles database operations for the activity log
type ActivityRepository struct{}

// NewActivityRepository creates a new activity repository instance
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Create appends one activity record
func (r *ActivityRepository) Create(entry models.ActivityLog) (models.ActivityLog, error) {
	result := database.DB.Create(&entry)
	return entry, result.Error
}

// FindRecentByProjectID retrieves the newest records for a project
func (r *ActivityRepository) FindRecentByProjectID(projectID string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []models.ActivityLog
	result := database.DB.Where("project_id = ?", projectID).
		Order("created_at desc").
		Limit(limit).
		Find(&entries)
	return entries, result.Error
}
