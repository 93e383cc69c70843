package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// ComponentRepository handles database operations for stage components
type ComponentRepository struct{}

// NewComponentRepository creates a new component repository instance
func NewComponentRepository() *ComponentRepository {
	return &ComponentRepository{}
}

// FindByID retrieves a component by its ID
func (r *ComponentRepository) FindByID(id string) (models.StageComponent, error) {
	var component models.StageComponent
	result := database.DB.First(&component, "id = ?", id)
	return component, result.Error
}

// FindByStageID retrieves all components of a stage
func (r *ComponentRepository) FindByStageID(stageID string) ([]models.StageComponent, error) {
	var components []models.StageComponent
	result := database.DB.Where("stage_id = ?", stageID).Order("created_at asc").Find(&components)
	return components, result.Error
}

// Create inserts a new component into the database
func (r *ComponentRepository) Create(component models.StageComponent) (models.StageComponent, error) {
	result := database.DB.Create(&component)
	return component, result.Error
}

// Update modifies an existing component
func (r *ComponentRepository) Update(component models.StageComponent) error {
	result := database.DB.Save(&component)
	return result.Error
}

// Delete removes a component
func (r *ComponentRepository) Delete(id string) error {
	result := database.DB.Delete(&models.StageComponent{}, "id = ?", id)
	return result.Error
}
