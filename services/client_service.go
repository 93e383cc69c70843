package services

import (
	"fmt"
	"strings"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
	"github.com/limayamil/flowsync/utils"
)

// ClientService handles client organizations and their URL namespaces.
type ClientService struct {
	clientRepo  *repositories.ClientRepository
	memberRepo  *repositories.MemberRepository
	projectRepo *repositories.ProjectRepository
}

// NewClientService creates a new client service instance
func NewClientService() *ClientService {
	return &ClientService{
		clientRepo:  repositories.NewClientRepository(),
		memberRepo:  repositories.NewMemberRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateClient registers a client organization and mints its slug. The
// slug is seeded from the name for readability and uniquified on
// collision; it is stored once and never re-derived from email text.
func (s *ClientService) CreateClient(req dto.CreateClientRequest) (models.Client, error) {
	slug := utils.Slugify(req.Name)
	taken, err := s.clientRepo.SlugExists(slug)
	if err != nil {
		return models.Client{}, err
	}
	if taken {
		slug = slug + "-" + utils.RandomSuffix(4)
	}

	client := models.Client{
		Name:         req.Name,
		Slug:         slug,
		ContactEmail: strings.ToLower(req.ContactEmail),
	}
	return s.clientRepo.Create(client)
}

// ListClients returns every client organization.
func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.clientRepo.FindAll()
}

// ResolveSlugForEmail finds the namespace slug for a client email by
// walking its oldest project membership to the owning client. Returns
// ErrNotFound when the email has no memberships.
func (s *ClientService) ResolveSlugForEmail(email string) (string, error) {
	memberships, err := s.memberRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return "", err
	}
	if len(memberships) == 0 {
		return "", fmt.Errorf("%w: no client projects for %s", ErrNotFound, email)
	}

	project, err := s.projectRepo.FindByID(memberships[0].ProjectID)
	if err != nil {
		return "", err
	}

	client, err := s.clientRepo.FindByID(project.ClientID)
	if err != nil {
		return "", err
	}
	return client.Slug, nil
}
