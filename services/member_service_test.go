package services

import (
	"testing"

	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMember(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewMemberService()
	member, err := svc.AddMember(project.ID, dto.AddMemberRequest{
		Email: "Jane@Acme.com",
		Name:  "Jane",
		Role:  "client_editor",
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", member.Email)
	assert.Equal(t, models.MemberRoleEditor, member.Role)
}

func TestAddMemberDefaultsToViewer(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewMemberService()
	member, err := svc.AddMember(project.ID, dto.AddMemberRequest{Email: "jane@acme.com"}, testActor)
	require.NoError(t, err)
	assert.Equal(t, models.MemberRoleViewer, member.Role)
}

func TestAddMemberDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewMemberService()
	_, err := svc.AddMember(project.ID, dto.AddMemberRequest{Email: "jane@acme.com", Name: "Jane"}, testActor)
	require.NoError(t, err)

	// same email in different casing hits the unique constraint
	_, err = svc.AddMember(project.ID, dto.AddMemberRequest{Email: "JANE@acme.com", Name: "J"}, testActor)
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, database.DB.Model(&models.ProjectMember{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddMemberSameEmailDifferentProjects(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	first := seedProject(t, client.ID, "Website")
	second := seedProject(t, client.ID, "App")

	svc := NewMemberService()
	_, err := svc.AddMember(first.ID, dto.AddMemberRequest{Email: "jane@acme.com"}, testActor)
	require.NoError(t, err)
	_, err = svc.AddMember(second.ID, dto.AddMemberRequest{Email: "jane@acme.com"}, testActor)
	assert.NoError(t, err)
}

func TestUpdateMember(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewMemberService()
	member, err := svc.AddMember(project.ID, dto.AddMemberRequest{Email: "jane@acme.com", Name: "Jane"}, testActor)
	require.NoError(t, err)

	name := "Jane Doe"
	role := "client_editor"
	updated, err := svc.UpdateMember(project.ID, member.ID, dto.UpdateMemberRequest{Name: &name, Role: &role}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, models.MemberRoleEditor, updated.Role)

	bad := "owner"
	_, err = svc.UpdateMember(project.ID, member.ID, dto.UpdateMemberRequest{Role: &bad}, testActor)
	assert.Error(t, err)
}

func TestRemoveMember(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	other := seedProject(t, client.ID, "App")

	svc := NewMemberService()
	member, err := svc.AddMember(project.ID, dto.AddMemberRequest{Email: "jane@acme.com"}, testActor)
	require.NoError(t, err)

	// wrong project scope
	assert.ErrorIs(t, svc.RemoveMember(other.ID, member.ID, testActor), ErrNotFound)

	require.NoError(t, svc.RemoveMember(project.ID, member.ID, testActor))
	members, err := svc.ListMembers(project.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}
