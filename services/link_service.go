package services

import (
	"fmt"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// LinkService handles shared external links on projects.
type LinkService struct {
	linkRepo    *repositories.LinkRepository
	projectRepo *repositories.ProjectRepository
	activity    *ActivityService
}

// NewLinkService creates a new link service instance
func NewLinkService() *LinkService {
	return &LinkService{
		linkRepo:    repositories.NewLinkRepository(),
		projectRepo: repositories.NewProjectRepository(),
		activity:    NewActivityService(),
	}
}

// AddLink attaches an external URL to a project.
func (s *LinkService) AddLink(projectID string, req dto.AddLinkRequest, actor Actor) (models.ProjectLink, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.ProjectLink{}, err
	}

	link := models.ProjectLink{
		ProjectID: projectID,
		Title:     req.Title,
		URL:       req.URL,
		AddedBy:   actor.Type,
	}
	created, err := s.linkRepo.Create(link)
	if err != nil {
		return models.ProjectLink{}, err
	}

	s.activity.Record(projectID, actor, "link.added", map[string]interface{}{
		"linkId": created.ID,
		"title":  created.Title,
	})
	return created, nil
}

// UpdateLink changes a link's title or URL.
func (s *LinkService) UpdateLink(projectID, linkID string, req dto.UpdateLinkRequest, actor Actor) (models.ProjectLink, error) {
	link, err := s.linkRepo.FindByID(linkID)
	if err != nil {
		return models.ProjectLink{}, err
	}
	if link.ProjectID != projectID {
		return models.ProjectLink{}, fmt.Errorf("%w: link %s is not part of the project", ErrNotFound, linkID)
	}

	if req.Title != nil {
		link.Title = *req.Title
	}
	if req.URL != nil {
		link.URL = *req.URL
	}

	if err := s.linkRepo.Update(link); err != nil {
		return models.ProjectLink{}, err
	}

	s.activity.Record(projectID, actor, "link.updated", map[string]interface{}{
		"linkId": link.ID,
		"title":  link.Title,
	})
	return link, nil
}

// DeleteLink removes a link, scoped by project.
func (s *LinkService) DeleteLink(projectID, linkID string, actor Actor) error {
	link, err := s.linkRepo.FindByID(linkID)
	if err != nil {
		return err
	}
	if link.ProjectID != projectID {
		return fmt.Errorf("%w: link %s is not part of the project", ErrNotFound, linkID)
	}

	if err := s.linkRepo.Delete(projectID, linkID); err != nil {
		return err
	}

	s.activity.Record(projectID, actor, "link.removed", map[string]interface{}{
		"linkId": linkID,
		"title":  link.Title,
	})
	return nil
}

// ListLinks returns the links of a project.
func (s *LinkService) ListLinks(projectID string) ([]models.ProjectLink, error) {
	return s.linkRepo.FindByProjectID(projectID)
}
