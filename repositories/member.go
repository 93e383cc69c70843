package repositories

import (
	"strings"

	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
)

// MemberRepository handles database operations for project members
type MemberRepository struct{}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByID retrieves a member by its ID
func (r *MemberRepository) FindByID(id string) (models.ProjectMember, error) {
	var member models.ProjectMember
	result := database.DB.First(&member, "id = ?", id)
	return member, result.Error
}

// FindByProjectID retrieves all members of a project
func (r *MemberRepository) FindByProjectID(projectID string) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	result := database.DB.Where("project_id = ?", projectID).Order("created_at asc").Find(&members)
	return members, result.Error
}

// FindByEmail retrieves every membership for one email across projects,
// oldest first so callers picking one get a stable answer
func (r *MemberRepository) FindByEmail(email string) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	result := database.DB.Where("email = ?", strings.ToLower(email)).Order("created_at asc, id asc").Find(&members)
	return members, result.Error
}

// Create inserts a new member. A duplicate (project, email) pair surfaces
// as gorm.ErrDuplicatedKey from the composite unique index.
func (r *MemberRepository) Create(member models.ProjectMember) (models.ProjectMember, error) {
	member.Email = strings.ToLower(member.Email)
	result := database.DB.Create(&member)
	return member, result.Error
}

// Update modifies an existing member
func (r *MemberRepository) Update(member models.ProjectMember) error {
	member.Email = strings.ToLower(member.Email)
	result := database.DB.Save(&member)
	return result.Error
}

// Delete removes a member from a project, scoped by both keys
func (r *MemberRepository) Delete(projectID, memberID string) error {
	result := database.DB.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}, "id = ?", memberID)
	return result.Error
}

// CountByProjectID counts members on a project
func (r *MemberRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ProjectMember{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}
