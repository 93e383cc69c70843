package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
	"gorm.io/gorm"
)

// TemplateRepository handles database operations for project templates
type TemplateRepository struct{}

// NewTemplateRepository creates a new template repository instance
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

// FindByKey retrieves a template with its stages in order
func (r *TemplateRepository) FindByKey(key string) (models.ProjectTemplate, error) {
	var template models.ProjectTemplate
	result := database.DB.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		First(&template, "key = ?", key)
	return template, result.Error
}

// FindAll retrieves all templates with their stages
func (r *TemplateRepository) FindAll() ([]models.ProjectTemplate, error) {
	var templates []models.ProjectTemplate
	result := database.DB.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Order("name asc").
		Find(&templates)
	return templates, result.Error
}
