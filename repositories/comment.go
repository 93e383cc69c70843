package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindByProjectID retrieves all comments of a project, oldest first
func (r *CommentRepository) FindByProjectID(projectID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Where("project_id = ?", projectID).Order("created_at asc").Find(&comments)
	return comments, result.Error
}

// FindByStageID retrieves the comments scoped to one stage
func (r *CommentRepository) FindByStageID(stageID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Where("stage_id = ?", stageID).Order("created_at asc").Find(&comments)
	return comments, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	result := database.DB.Create(&comment)
	return comment, result.Error
}
