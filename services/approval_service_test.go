package services

import (
	"testing"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientActor = Actor{Type: models.ActorClient, ID: "jane@acme.com", Name: "jane@acme.com"}

func TestRequestApproval(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Design", 1, models.StageStatusTodo)

	svc := NewApprovalService()
	approval, err := svc.RequestApproval(project.ID, stage.ID, dto.RequestApprovalRequest{Note: "please review"}, testActor)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusRequested, approval.Status)
	assert.Equal(t, testActor.ID, approval.RequestedBy)
	assert.False(t, approval.RequestedAt.IsZero())
	assert.Nil(t, approval.ApprovedBy)

	refreshed, err := svc.stageRepo.FindByID(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusInReview, refreshed.Status)
}

func TestRespondApproved(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Design", 1, models.StageStatusTodo)

	svc := NewApprovalService()
	_, err := svc.RequestApproval(project.ID, stage.ID, dto.RequestApprovalRequest{}, testActor)
	require.NoError(t, err)

	approval, err := svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{
		Decision: "approved",
		Note:     "looks great",
	}, clientActor)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, approval.Status)
	require.NotNil(t, approval.ApprovedBy)
	assert.Equal(t, clientActor.ID, *approval.ApprovedBy)
	require.NotNil(t, approval.ApprovedAt)
	assert.Equal(t, "looks great", approval.Note)

	refreshed, err := svc.stageRepo.FindByID(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusApproved, refreshed.Status)
}

func TestRespondChangesRequested(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Design", 1, models.StageStatusTodo)

	svc := NewApprovalService()
	_, err := svc.RequestApproval(project.ID, stage.ID, dto.RequestApprovalRequest{}, testActor)
	require.NoError(t, err)

	approval, err := svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{
		Decision: "changes_requested",
		Note:     "logo is wrong",
	}, clientActor)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusChangesRequested, approval.Status)
	assert.Nil(t, approval.ApprovedBy)

	refreshed, err := svc.stageRepo.FindByID(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusTodo, refreshed.Status)
}

func TestRespondErrors(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Design", 1, models.StageStatusTodo)

	svc := NewApprovalService()

	// no open approval yet
	_, err := svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{Decision: "approved"}, clientActor)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.RequestApproval(project.ID, stage.ID, dto.RequestApprovalRequest{}, testActor)
	require.NoError(t, err)

	_, err = svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{Decision: "maybe"}, clientActor)
	assert.Error(t, err)

	// responding twice: the first decision closes the approval
	_, err = svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{Decision: "approved"}, clientActor)
	require.NoError(t, err)
	_, err = svc.Respond(project.ID, stage.ID, dto.RespondApprovalRequest{Decision: "approved"}, clientActor)
	assert.ErrorIs(t, err, ErrNotFound)
}
