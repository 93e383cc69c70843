package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// LinkRepository handles database operations for project links
type LinkRepository struct{}

// NewLinkRepository creates a new link repository instance
func NewLinkRepository() *LinkRepository {
	return &LinkRepository{}
}

// FindByID retrieves a link by its ID
func (r *LinkRepository) FindByID(id string) (models.ProjectLink, error) {
	var link models.ProjectLink
	result := database.DB.First(&link, "id = ?", id)
	return link, result.Error
}

// FindByProjectID retrieves all links of a project
func (r *LinkRepository) FindByProjectID(projectID string) ([]models.ProjectLink, error) {
	var links []models.ProjectLink
	result := database.DB.Where("project_id = ?", projectID).Order("created_at asc").Find(&links)
	return links, result.Error
}

// Create inserts a new link into the database
func (r *LinkRepository) Create(link models.ProjectLink) (models.ProjectLink, error) {
	result := database.DB.Create(&link)
	return link, result.Error
}

// Update modifies an existing link
func (r *LinkRepository) Update(link models.ProjectLink) error {
	result := database.DB.Save(&link)
	return result.Error
}

// Delete removes a link, scoped by project
func (r *LinkRepository) Delete(projectID, linkID string) error {
	result := database.DB.Where("project_id = ?", projectID).Delete(&models.ProjectLink{}, "id = ?", linkID)
	return result.Error
}
