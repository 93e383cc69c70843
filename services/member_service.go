package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
	"gorm.io/gorm"
)

// MemberService handles client memberships on projects.
type MemberService struct {
	memberRepo  *repositories.MemberRepository
	projectRepo *repositories.ProjectRepository
	activity    *ActivityService
}

// NewMemberService creates a new member service instance
func NewMemberService() *MemberService {
	return &MemberService{
		memberRepo:  repositories.NewMemberRepository(),
		projectRepo: repositories.NewProjectRepository(),
		activity:    NewActivityService(),
	}
}

// AddMember invites a client email to a project. The (project, email) pair
// is unique; a duplicate is rejected by the store constraint without any
// mutation. Emails compare case-insensitively because they are stored
// lowercase.
func (s *MemberService) AddMember(projectID string, req dto.AddMemberRequest, actor Actor) (models.ProjectMember, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.ProjectMember{}, err
	}

	role := models.MemberRole(req.Role)
	if req.Role == "" {
		role = models.MemberRoleViewer
	}

	member := models.ProjectMember{
		ProjectID: projectID,
		Email:     strings.ToLower(req.Email),
		Name:      req.Name,
		Role:      role,
	}
	created, err := s.memberRepo.Create(member)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ProjectMember{}, fmt.Errorf("%w: %s is already a member of this project", ErrDuplicate, member.Email)
		}
		return models.ProjectMember{}, err
	}

	s.activity.Record(projectID, actor, "member.added", map[string]interface{}{
		"email": created.Email,
		"role":  string(created.Role),
	})
	return created, nil
}

// UpdateMember changes a member's name or role.
func (s *MemberService) UpdateMember(projectID, memberID string, req dto.UpdateMemberRequest, actor Actor) (models.ProjectMember, error) {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return models.ProjectMember{}, err
	}
	if member.ProjectID != projectID {
		return models.ProjectMember{}, fmt.Errorf("%w: member %s is not part of the project", ErrNotFound, memberID)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		role := models.MemberRole(*req.Role)
		if !models.ValidMemberRole(role) {
			return models.ProjectMember{}, fmt.Errorf("invalid member role: %q", *req.Role)
		}
		member.Role = role
	}

	if err := s.memberRepo.Update(member); err != nil {
		return models.ProjectMember{}, err
	}

	s.activity.Record(projectID, actor, "member.updated", map[string]interface{}{
		"email": member.Email,
		"role":  string(member.Role),
	})
	return member, nil
}

// RemoveMember deletes a membership, scoped by project.
func (s *MemberService) RemoveMember(projectID, memberID string, actor Actor) error {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return err
	}
	if member.ProjectID != projectID {
		return fmt.Errorf("%w: member %s is not part of the project", ErrNotFound, memberID)
	}

	if err := s.memberRepo.Delete(projectID, memberID); err != nil {
		return err
	}

	s.activity.Record(projectID, actor, "member.removed", map[string]interface{}{
		"email": member.Email,
	})
	return nil
}

// ListMembers returns the members of a project.
func (s *MemberService) ListMembers(projectID string) ([]models.ProjectMember, error) {
	return s.memberRepo.FindByProjectID(projectID)
}
