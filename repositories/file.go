package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// FileRepository handles database operations for file metadata rows
type FileRepository struct{}

// NewFileRepository creates a new file repository instance
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// FindByID retrieves a file row by its ID
func (r *FileRepository) FindByID(id string) (models.File, error) {
	var file models.File
	result := database.DB.First(&file, "id = ?", id)
	return file, result.Error
}

// FindByProjectID retrieves all file rows of a project, newest first
func (r *FileRepository) FindByProjectID(projectID string) ([]models.File, error) {
	var files []models.File
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&files)
	return files, result.Error
}

// Create inserts a new file row into the database
func (r *FileRepository) Create(file models.File) (models.File, error) {
	result := database.DB.Create(&file)
	return file, result.Error
}

// Delete removes a file row, scoped by project
func (r *FileRepository) Delete(projectID, fileID string) error {
	result := database.DB.Where("project_id = ?", projectID).Delete(&models.File{}, "id = ?", fileID)
	return result.Error
}
