package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// MinuteRepository handles database operations for project minutes
type MinuteRepository struct{}

// NewMinuteRepository creates a new minute repository instance
func NewMinuteRepository() *MinuteRepository {
	return &MinuteRepository{}
}

// FindByID retrieves a minute by its ID
func (r *MinuteRepository) FindByID(id string) (models.ProjectMinute, error) {
	var minute models.ProjectMinute
	result := database.DB.First(&minute, "id = ?", id)
	return minute, result.Error
}

// FindByProjectID retrieves all minutes of a project, newest meeting first
func (r *MinuteRepository) FindByProjectID(projectID string) ([]models.ProjectMinute, error) {
	var minutes []models.ProjectMinute
	result := database.DB.Where("project_id = ?", projectID).Order("meeting_date desc").Find(&minutes)
	return minutes, result.Error
}

// Create inserts a new minute. A duplicate (project, meeting_date) pair
// surfaces as gorm.ErrDuplicatedKey from the composite unique index.
func (r *MinuteRepository) Create(minute models.ProjectMinute) (models.ProjectMinute, error) {
	result := database.DB.Create(&minute)
	return minute, result.Error
}

// Update modifies an existing minute; the unique index still applies
func (r *MinuteRepository) Update(minute models.ProjectMinute) error {
	result := database.DB.Save(&minute)
	return result.Error
}

// Delete removes a minute, scoped by project
func (r *MinuteRepository) Delete(projectID, minuteID string) error {
	result := database.DB.Where("project_id = ?", projectID).Delete(&models.ProjectMinute{}, "id = ?", minuteID)
	return result.Error
}
