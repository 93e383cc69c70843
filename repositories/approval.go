package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// ApprovalRepository handles database operations for approvals
type ApprovalRepository struct{}

// NewApprovalRepository creates a new approval repository instance
func NewApprovalRepository() *ApprovalRepository {
	return &ApprovalRepository{}
}

// FindByID retrieves an approval by its ID
func (r *ApprovalRepository) FindByID(id string) (models.Approval, error) {
	var approval models.Approval
	result := database.DB.First(&approval, "id = ?", id)
	return approval, result.Error
}

// FindByStageID retrieves all approvals of a stage, newest first
func (r *ApprovalRepository) FindByStageID(stageID string) ([]models.Approval, error) {
	var approvals []models.Approval
	result := database.DB.Where("stage_id = ?", stageID).Order("requested_at desc").Find(&approvals)
	return approvals, result.Error
}

// FindPendingByStageID retrieves the open approval for a stage, if any
func (r *ApprovalRepository) FindPendingByStageID(stageID string) (models.Approval, error) {
	var approval models.Approval
	result := database.DB.Where("stage_id = ? AND status = ?", stageID, models.ApprovalStatusRequested).
		Order("requested_at desc").
		First(&approval)
	return approval, result.Error
}

// Create inserts a new approval into the database
func (r *ApprovalRepository) Create(approval models.Approval) (models.Approval, error) {
	result := database.DB.Create(&approval)
	return approval, result.Error
}

// Update modifies an existing approval
func (r *ApprovalRepository) Update(approval models.Approval) error {
	result := database.DB.Save(&approval)
	return result.Error
}
