package services

import (
	"log"

	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// Actor identifies who performed an action, for audit records.
type Actor struct {
	Type models.ActorType
	ID   string
	Name string
}

// SystemActor is used for records not attributable to a logged-in party.
var SystemActor = Actor{Type: models.ActorSystem}

// ActivityService appends and reads the per-project audit trail.
type ActivityService struct {
	activityRepo *repositories.ActivityRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService() *ActivityService {
	return &ActivityService{
		activityRepo: repositories.NewActivityRepository(),
	}
}

// Record appends one audit record. Failures are logged and swallowed:
// the audit trail must never block the primary operation.
func (s *ActivityService) Record(projectID string, actor Actor, action string, details map[string]interface{}) {
	entry := models.ActivityLog{
		ProjectID: projectID,
		ActorType: actor.Type,
		ActorID:   actor.ID,
		Action:    action,
		Details:   details,
	}
	if _, err := s.activityRepo.Create(entry); err != nil {
		log.Printf("Warning: failed to record activity %q for project %s: %v", action, projectID, err)
	}
}

// Recent returns the newest audit records for a project.
func (s *ActivityService) Recent(projectID string, limit int) ([]models.ActivityLog, error) {
	return s.activityRepo.FindRecentByProjectID(projectID, limit)
}
