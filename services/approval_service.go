package services

import (
	"fmt"
	"time"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// ApprovalService handles the client sign-off cycle on stages.
type ApprovalService struct {
	approvalRepo *repositories.ApprovalRepository
	stageRepo    *repositories.StageRepository
	activity     *ActivityService
}

// NewApprovalService creates a new approval service instance
func NewApprovalService() *ApprovalService {
	return &ApprovalService{
		approvalRepo: repositories.NewApprovalRepository(),
		stageRepo:    repositories.NewStageRepository(),
		activity:     NewActivityService(),
	}
}

// RequestApproval opens a sign-off request on a stage and moves the stage
// into review.
func (s *ApprovalService) RequestApproval(projectID, stageID string, req dto.RequestApprovalRequest, actor Actor) (models.Approval, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.Approval{}, err
	}
	if stage.ProjectID != projectID {
		return models.Approval{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	approval := models.Approval{
		StageID:     stageID,
		ComponentID: req.ComponentID,
		Status:      models.ApprovalStatusRequested,
		RequestedBy: actor.ID,
		Note:        req.Note,
	}
	created, err := s.approvalRepo.Create(approval)
	if err != nil {
		return models.Approval{}, err
	}

	if err := s.stageRepo.UpdateFields(stageID, map[string]interface{}{
		"status": models.StageStatusInReview,
	}); err != nil {
		return models.Approval{}, err
	}

	s.activity.Record(projectID, actor, "approval.requested", map[string]interface{}{
		"stageId":    stageID,
		"approvalId": created.ID,
	})
	return created, nil
}

// Respond records the client's decision on the open approval for a stage.
// Approving sets approved_by/approved_at and moves the stage to approved;
// requesting changes reopens the stage as todo.
func (s *ApprovalService) Respond(projectID, stageID string, req dto.RespondApprovalRequest, actor Actor) (models.Approval, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.Approval{}, err
	}
	if stage.ProjectID != projectID {
		return models.Approval{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	approval, err := s.approvalRepo.FindPendingByStageID(stageID)
	if err != nil {
		return models.Approval{}, fmt.Errorf("%w: no open approval for stage %s", ErrNotFound, stageID)
	}

	var stageStatus models.StageStatus
	switch req.Decision {
	case string(models.ApprovalStatusApproved):
		now := time.Now()
		approval.Status = models.ApprovalStatusApproved
		approval.ApprovedBy = &actor.ID
		approval.ApprovedAt = &now
		stageStatus = models.StageStatusApproved
	case string(models.ApprovalStatusChangesRequested):
		approval.Status = models.ApprovalStatusChangesRequested
		stageStatus = models.StageStatusTodo
	default:
		return models.Approval{}, fmt.Errorf("invalid approval decision: %q", req.Decision)
	}
	if req.Note != "" {
		approval.Note = req.Note
	}

	if err := s.approvalRepo.Update(approval); err != nil {
		return models.Approval{}, err
	}
	if err := s.stageRepo.UpdateFields(stageID, map[string]interface{}{
		"status": stageStatus,
	}); err != nil {
		return models.Approval{}, err
	}

	s.activity.Record(projectID, actor, "approval.responded", map[string]interface{}{
		"stageId":    stageID,
		"approvalId": approval.ID,
		"decision":   req.Decision,
	})
	return approval, nil
}
