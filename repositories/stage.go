package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
	"gorm.io/gorm"
)

// StageRepository handles database operations for stages
type StageRepository struct{}

// NewStageRepository creates a new stage repository instance
func NewStageRepository() *StageRepository {
	return &StageRepository{}
}

// FindByID retrieves a stage by its ID
func (r *StageRepository) FindByID(id string) (models.Stage, error) {
	var stage models.Stage
	result := database.DB.First(&stage, "id = ?", id)
	return stage, result.Error
}

// FindByProjectID retrieves all stages of a project ordered by sort order
func (r *StageRepository) FindByProjectID(projectID string) ([]models.Stage, error) {
	var stages []models.Stage
	result := database.DB.Where("project_id = ?", projectID).Order("sort_order asc").Find(&stages)
	return stages, result.Error
}

// WithComponents loads a stage with its components and approvals
func (r *StageRepository) WithComponents(id string) (models.Stage, error) {
	var stage models.Stage
	result := database.DB.
		Preload("Components").
		Preload("Approvals").
		First(&stage, "id = ?", id)
	return stage, result.Error
}

// Create inserts a new stage into the database
func (r *StageRepository) Create(stage models.Stage) (models.Stage, error) {
	result := database.DB.Create(&stage)
	return stage, result.Error
}

// Update modifies an existing stage
func (r *StageRepository) Update(stage models.Stage) error {
	result := database.DB.Save(&stage)
	return result.Error
}

// UpdateFields applies a partial update to a stage
func (r *StageRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := database.DB.Model(&models.Stage{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// Delete removes a stage; components and approvals cascade by constraint
func (r *StageRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Stage{}, "id = ?", id)
	return result.Error
}

// MaxSortOrder returns the highest sort order currently used in a project,
// 0 when the project has no stages.
func (r *StageRepository) MaxSortOrder(projectID string) (int, error) {
	var max *int
	err := database.DB.Model(&models.Stage{}).
		Where("project_id = ?", projectID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

// DB returns the database instance
func (r *StageRepository) DB() *gorm.DB {
	return database.DB
}
