package services

import (
	"errors"
	"fmt"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
	"gorm.io/gorm"
)

// MinuteService handles project meeting minutes. One minute per meeting
// date per project; the store constraint is the uniqueness authority.
type MinuteService struct {
	minuteRepo  *repositories.MinuteRepository
	projectRepo *repositories.ProjectRepository
	activity    *ActivityService
}

// NewMinuteService creates a new minute service instance
func NewMinuteService() *MinuteService {
	return &MinuteService{
		minuteRepo:  repositories.NewMinuteRepository(),
		projectRepo: repositories.NewProjectRepository(),
		activity:    NewActivityService(),
	}
}

// AddMinute records meeting notes for one date. A second minute for the
// same date is rejected by the unique index without mutating the store.
func (s *MinuteService) AddMinute(projectID string, req dto.AddMinuteRequest, actor Actor) (models.ProjectMinute, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.ProjectMinute{}, err
	}

	minute := models.ProjectMinute{
		ProjectID:   projectID,
		MeetingDate: req.MeetingDate,
		Notes:       req.Notes,
		CreatedBy:   actor.ID,
	}
	created, err := s.minuteRepo.Create(minute)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ProjectMinute{}, fmt.Errorf("%w: a minute for %s already exists", ErrDuplicate, req.MeetingDate)
		}
		return models.ProjectMinute{}, err
	}

	s.activity.Record(projectID, actor, "minute.added", map[string]interface{}{
		"meetingDate": created.MeetingDate,
	})
	return created, nil
}

// UpdateMinute changes a minute's date or notes. Moving it to a date used
// by a different minute in the same project is rejected; keeping its own
// date succeeds.
func (s *MinuteService) UpdateMinute(projectID, minuteID string, req dto.UpdateMinuteRequest, actor Actor) (models.ProjectMinute, error) {
	minute, err := s.minuteRepo.FindByID(minuteID)
	if err != nil {
		return models.ProjectMinute{}, err
	}
	if minute.ProjectID != projectID {
		return models.ProjectMinute{}, fmt.Errorf("%w: minute %s is not part of the project", ErrNotFound, minuteID)
	}

	if req.MeetingDate != nil {
		minute.MeetingDate = *req.MeetingDate
	}
	if req.Notes != nil {
		minute.Notes = *req.Notes
	}

	if err := s.minuteRepo.Update(minute); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ProjectMinute{}, fmt.Errorf("%w: a minute for %s already exists", ErrDuplicate, minute.MeetingDate)
		}
		return models.ProjectMinute{}, err
	}

	s.activity.Record(projectID, actor, "minute.updated", map[string]interface{}{
		"meetingDate": minute.MeetingDate,
	})
	return minute, nil
}

// DeleteMinute removes a minute, scoped by project.
func (s *MinuteService) DeleteMinute(projectID, minuteID string, actor Actor) error {
	minute, err := s.minuteRepo.FindByID(minuteID)
	if err != nil {
		return err
	}
	if minute.ProjectID != projectID {
		return fmt.Errorf("%w: minute %s is not part of the project", ErrNotFound, minuteID)
	}

	if err := s.minuteRepo.Delete(projectID, minuteID); err != nil {
		return err
	}

	s.activity.Record(projectID, actor, "minute.deleted", map[string]interface{}{
		"meetingDate": minute.MeetingDate,
	})
	return nil
}

// ListMinutes returns the minutes of a project.
func (s *MinuteService) ListMinutes(projectID string) ([]models.ProjectMinute, error) {
	return s.minuteRepo.FindByProjectID(projectID)
}
