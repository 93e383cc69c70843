package services

import (
	"fmt"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// ComponentService handles the work items inside stages.
type ComponentService struct {
	componentRepo *repositories.ComponentRepository
	stageRepo     *repositories.StageRepository
	activity      *ActivityService
}

// NewComponentService creates a new component service instance
func NewComponentService() *ComponentService {
	return &ComponentService{
		componentRepo: repositories.NewComponentRepository(),
		stageRepo:     repositories.NewStageRepository(),
		activity:      NewActivityService(),
	}
}

// AddComponent attaches a typed work item to a stage.
func (s *ComponentService) AddComponent(projectID, stageID string, req dto.CreateComponentRequest, actor Actor) (models.StageComponent, error) {
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil {
		return models.StageComponent{}, err
	}
	if stage.ProjectID != projectID {
		return models.StageComponent{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	componentType := models.ComponentType(req.ComponentType)
	if !models.ValidComponentType(componentType) {
		return models.StageComponent{}, fmt.Errorf("invalid component type: %q", req.ComponentType)
	}

	component := models.StageComponent{
		StageID:       stageID,
		ComponentType: componentType,
		Title:         req.Title,
		Config:        req.Config,
		Status:        models.StageStatusTodo,
	}
	created, err := s.componentRepo.Create(component)
	if err != nil {
		return models.StageComponent{}, err
	}

	s.activity.Record(projectID, actor, "component.added", map[string]interface{}{
		"stageId":     stageID,
		"componentId": created.ID,
		"type":        req.ComponentType,
	})
	return created, nil
}

// UpdateComponent changes a component's title, status or config.
func (s *ComponentService) UpdateComponent(projectID, stageID, componentID string, req dto.UpdateComponentRequest, actor Actor) (models.StageComponent, error) {
	component, err := s.componentRepo.FindByID(componentID)
	if err != nil {
		return models.StageComponent{}, err
	}
	if component.StageID != stageID {
		return models.StageComponent{}, fmt.Errorf("%w: component %s is not part of the stage", ErrNotFound, componentID)
	}
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil || stage.ProjectID != projectID {
		return models.StageComponent{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	if req.Title != nil {
		component.Title = *req.Title
	}
	if req.Status != nil {
		status := models.StageStatus(*req.Status)
		if !models.ValidStageStatus(status) {
			return models.StageComponent{}, fmt.Errorf("invalid component status: %q", *req.Status)
		}
		component.Status = status
	}
	if req.Config != nil {
		component.Config = req.Config
	}

	if err := s.componentRepo.Update(component); err != nil {
		return models.StageComponent{}, err
	}

	s.activity.Record(projectID, actor, "component.updated", map[string]interface{}{
		"stageId":     stageID,
		"componentId": componentID,
	})
	return component, nil
}

// DeleteComponent removes a component from a stage.
func (s *ComponentService) DeleteComponent(projectID, stageID, componentID string, actor Actor) error {
	component, err := s.componentRepo.FindByID(componentID)
	if err != nil {
		return err
	}
	if component.StageID != stageID {
		return fmt.Errorf("%w: component %s is not part of the stage", ErrNotFound, componentID)
	}
	stage, err := s.stageRepo.FindByID(stageID)
	if err != nil || stage.ProjectID != projectID {
		return fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, stageID)
	}

	if err := s.componentRepo.Delete(componentID); err != nil {
		return err
	}

	s.activity.Record(projectID, actor, "component.removed", map[string]interface{}{
		"stageId":     stageID,
		"componentId": componentID,
	})
	return nil
}
