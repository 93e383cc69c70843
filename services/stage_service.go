package services

import (
	"fmt"
	"time"

	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
	"gorm.io/gorm"
)

// StageService handles business logic for stages: the transition rule that
// moves the current-stage pointer, plus the stage-level commands.
type StageService struct {
	stageRepo     *repositories.StageRepository
	projectRepo   *repositories.ProjectRepository
	componentRepo *repositories.ComponentRepository
	activity      *ActivityService
}

// NewStageService creates a new stage service instance
func NewStageService() *StageService {
	return &StageService{
		stageRepo:     repositories.NewStageRepository(),
		projectRepo:   repositories.NewProjectRepository(),
		componentRepo: repositories.NewComponentRepository(),
		activity:      NewActivityService(),
	}
}

// StageChange records one stage's status move computed by the transition rule.
type StageChange struct {
	StageID string
	From    models.StageStatus
	To      models.StageStatus
}

// ComputeTransition applies the current-stage transition rule to an ordered
// stage list and returns only the stages whose status must change.
//
// With a target: every stage ordered before the target becomes done, the
// target becomes todo, and stages after the target that were done reset to
// todo; other statuses are left alone. With an empty target every stage
// resets to todo. Applying the same transition twice yields no changes.
func ComputeTransition(stages []models.Stage, targetID string) ([]StageChange, error) {
	if targetID == "" {
		var changes []StageChange
		for i := range stages {
			if stages[i].Status != models.StageStatusTodo {
				changes = append(changes, StageChange{stages[i].ID, stages[i].Status, models.StageStatusTodo})
			}
		}
		return changes, nil
	}

	targetOrder := -1
	for i := range stages {
		if stages[i].ID == targetID {
			targetOrder = stages[i].SortOrder
			break
		}
	}
	if targetOrder < 0 {
		return nil, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, targetID)
	}

	var changes []StageChange
	for i := range stages {
		stage := &stages[i]
		var want models.StageStatus
		switch {
		case stage.SortOrder < targetOrder:
			want = models.StageStatusDone
		case stage.ID == targetID:
			want = models.StageStatusTodo
		case stage.Status == models.StageStatusDone:
			// later stage already marked done resets
			want = models.StageStatusTodo
		default:
			continue
		}
		if stage.Status != want {
			changes = append(changes, StageChange{stage.ID, stage.Status, want})
		}
	}
	return changes, nil
}

// SetCurrentStage moves a project's current-stage pointer to the target
// stage (or fully resets the project when targetStageID is empty) and
// returns the refreshed stage list. All status updates are applied as
// set-based statements inside one transaction.
func (s *StageService) SetCurrentStage(projectID, targetStageID string, actor Actor) ([]models.Stage, error) {
	stages, err := s.stageRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: project %s has no stages", ErrNotFound, projectID)
	}

	changes, err := ComputeTransition(stages, targetStageID)
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		err = s.stageRepo.DB().Transaction(func(tx *gorm.DB) error {
			if targetStageID == "" {
				return tx.Model(&models.Stage{}).
					Where("project_id = ? AND status <> ?", projectID, models.StageStatusTodo).
					Update("status", models.StageStatusTodo).Error
			}

			var targetOrder int
			for i := range stages {
				if stages[i].ID == targetStageID {
					targetOrder = stages[i].SortOrder
				}
			}

			if err := tx.Model(&models.Stage{}).
				Where("project_id = ? AND sort_order < ? AND status <> ?", projectID, targetOrder, models.StageStatusDone).
				Update("status", models.StageStatusDone).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Stage{}).
				Where("id = ? AND status <> ?", targetStageID, models.StageStatusTodo).
				Update("status", models.StageStatusTodo).Error; err != nil {
				return err
			}
			return tx.Model(&models.Stage{}).
				Where("project_id = ? AND sort_order > ? AND status = ?", projectID, targetOrder, models.StageStatusDone).
				Update("status", models.StageStatusTodo).Error
		})
		if err != nil {
			return nil, err
		}
	}

	details := map[string]interface{}{"changed": len(changes)}
	if targetStageID != "" {
		details["currentStageId"] = targetStageID
	} else {
		details["currentStageId"] = nil
	}
	s.activity.Record(projectID, actor, "stage.transition", details)

	return s.stageRepo.FindByProjectID(projectID)
}

// AddStage appends a new stage at the end of a project's sequence.
func (s *StageService) AddStage(projectID string, stage models.Stage, actor Actor) (models.Stage, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.Stage{}, err
	}

	maxOrder, err := s.stageRepo.MaxSortOrder(projectID)
	if err != nil {
		return models.Stage{}, err
	}

	stage.ProjectID = projectID
	stage.SortOrder = maxOrder + 1
	if stage.Status == "" {
		stage.Status = models.StageStatusTodo
	}

	created, err := s.stageRepo.Create(stage)
	if err != nil {
		return models.Stage{}, err
	}

	s.activity.Record(projectID, actor, "stage.added", map[string]interface{}{
		"stageId": created.ID,
		"title":   created.Title,
	})
	return created, nil
}

// UpdateStage applies a partial update to a stage's descriptive fields or
// status. Status values are validated; ordering is not editable here.
func (s *StageService) UpdateStage(projectID, stageID string, fields map[string]interface{}, actor Actor) (models.Stage, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.Stage{}, err
	}
	if stage.ProjectID != projectID {
		return models.Stage{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	if raw, ok := fields["status"]; ok {
		status, _ := raw.(string)
		if !models.ValidStageStatus(models.StageStatus(status)) {
			return models.Stage{}, fmt.Errorf("invalid stage status: %q", status)
		}
	}

	if err := s.stageRepo.UpdateFields(stageID, fields); err != nil {
		return models.Stage{}, err
	}

	s.activity.Record(projectID, actor, "stage.updated", map[string]interface{}{
		"stageId": stageID,
	})
	return s.stageRepo.FindByID(stageID)
}

// CompleteStage marks a stage done with a completion note and timestamp.
func (s *StageService) CompleteStage(projectID, stageID, note string, actor Actor) (models.Stage, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.Stage{}, err
	}
	if stage.ProjectID != projectID {
		return models.Stage{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	now := time.Now()
	err = s.stageRepo.UpdateFields(stageID, map[string]interface{}{
		"status":          models.StageStatusDone,
		"completion_note": note,
		"completed_at":    &now,
	})
	if err != nil {
		return models.Stage{}, err
	}

	s.activity.Record(projectID, actor, "stage.completed", map[string]interface{}{
		"stageId": stageID,
		"title":   stage.Title,
	})
	return s.stageRepo.FindByID(stageID)
}

// RequestMaterials flags a stage as waiting on the client and attaches an
// upload-request component describing what is needed.
func (s *StageService) RequestMaterials(projectID, stageID, title, message string, actor Actor) (models.StageComponent, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.StageComponent{}, err
	}
	if stage.ProjectID != projectID {
		return models.StageComponent{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	component := models.StageComponent{
		StageID:       stageID,
		ComponentType: models.ComponentUploadRequest,
		Title:         title,
		Status:        models.StageStatusWaitingClient,
		Config:        map[string]interface{}{"message": message},
	}
	created, err := s.componentRepo.Create(component)
	if err != nil {
		return models.StageComponent{}, err
	}

	if err := s.stageRepo.UpdateFields(stageID, map[string]interface{}{
		"status": models.StageStatusWaitingClient,
	}); err != nil {
		return models.StageComponent{}, err
	}

	s.activity.Record(projectID, actor, "stage.materials_requested", map[string]interface{}{
		"stageId":     stageID,
		"componentId": created.ID,
		"title":       title,
	})
	return created, nil
}

// DeleteStage removes a stage; its components and approvals cascade.
func (s *StageService) DeleteStage(projectID, stageID string, actor Actor) error {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return err
	}
	if stage.ProjectID != projectID {
		return fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	if err := s.stageRepo.Delete(stageID); err != nil {
		return err
	}

	s.activity.Record(projectID, actor, "stage.deleted", map[string]interface{}{
		"stageId": stageID,
		"title":   stage.Title,
	})
	return nil
}
