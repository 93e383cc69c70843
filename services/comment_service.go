package services

import (
	"fmt"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// CommentService handles project and stage comments.
type CommentService struct {
	commentRepo *repositories.CommentRepository
	projectRepo *repositories.ProjectRepository
	stageRepo   *repositories.StageRepository
	activity    *ActivityService
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
		projectRepo: repositories.NewProjectRepository(),
		stageRepo:   repositories.NewStageRepository(),
		activity:    NewActivityService(),
	}
}

// AddComment posts a comment on a project, optionally scoped to a stage.
func (s *CommentService) AddComment(projectID string, req dto.AddCommentRequest, actor Actor) (models.Comment, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.Comment{}, err
	}

	if req.StageID != nil {
		stage, err := s.stageRepo.FindByID(*req.StageID)
		if err != nil || stage.ProjectID != projectID {
			return models.Comment{}, fmt.Errorf("%w: stage %s is not part of the project", ErrNotFound, *req.StageID)
		}
	}

	comment := models.Comment{
		ProjectID:  projectID,
		StageID:    req.StageID,
		AuthorType: actor.Type,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Body:       req.Body,
	}
	created, err := s.commentRepo.Create(comment)
	if err != nil {
		return models.Comment{}, err
	}

	s.activity.Record(projectID, actor, "comment.added", map[string]interface{}{
		"commentId": created.ID,
	})
	return created, nil
}

// ListComments returns the comments on a project.
func (s *CommentService) ListComments(projectID string) ([]models.Comment, error) {
	return s.commentRepo.FindByProjectID(projectID)
}
