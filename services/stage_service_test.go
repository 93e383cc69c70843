package services

import (
	"testing"

	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStages(statuses ...models.StageStatus) []models.Stage {
	stages := make([]models.Stage, len(statuses))
	for i, status := range statuses {
		stages[i] = models.Stage{
			ID:        string(rune('a' + i)),
			SortOrder: i + 1,
			Status:    status,
		}
	}
	return stages
}

func changesByStage(changes []StageChange) map[string]models.StageStatus {
	out := make(map[string]models.StageStatus, len(changes))
	for _, ch := range changes {
		out[ch.StageID] = ch.To
	}
	return out
}

func TestComputeTransitionTarget(t *testing.T) {
	// [1: done, 2: in_review, 3: todo, 4: done], target stage 2
	stages := makeStages(
		models.StageStatusDone,
		models.StageStatusInReview,
		models.StageStatusTodo,
		models.StageStatusDone,
	)

	changes, err := ComputeTransition(stages, "b")
	require.NoError(t, err)

	got := changesByStage(changes)
	// stage 1 already done: untouched; stage 2 reopens; stage 3 already
	// todo: untouched; stage 4 was done past the target: resets
	assert.Len(t, changes, 2)
	assert.Equal(t, models.StageStatusTodo, got["b"])
	assert.Equal(t, models.StageStatusTodo, got["d"])
}

func TestComputeTransitionClosesEarlierStages(t *testing.T) {
	stages := makeStages(
		models.StageStatusTodo,
		models.StageStatusWaitingClient,
		models.StageStatusTodo,
	)

	changes, err := ComputeTransition(stages, "c")
	require.NoError(t, err)

	got := changesByStage(changes)
	assert.Len(t, changes, 2)
	assert.Equal(t, models.StageStatusDone, got["a"])
	assert.Equal(t, models.StageStatusDone, got["b"])
}

func TestComputeTransitionLaterNonDoneUntouched(t *testing.T) {
	// blocked/in_review after the target keep their status; only done resets
	stages := makeStages(
		models.StageStatusTodo,
		models.StageStatusBlocked,
		models.StageStatusDone,
	)

	changes, err := ComputeTransition(stages, "a")
	require.NoError(t, err)

	got := changesByStage(changes)
	assert.Len(t, changes, 1)
	assert.Equal(t, models.StageStatusTodo, got["c"])
	assert.NotContains(t, got, "b")
}

func TestComputeTransitionFullReset(t *testing.T) {
	stages := makeStages(
		models.StageStatusDone,
		models.StageStatusInReview,
		models.StageStatusTodo,
		models.StageStatusDone,
	)

	changes, err := ComputeTransition(stages, "")
	require.NoError(t, err)

	got := changesByStage(changes)
	assert.Len(t, changes, 3)
	for _, id := range []string{"a", "b", "d"} {
		assert.Equal(t, models.StageStatusTodo, got[id])
	}
}

func TestComputeTransitionIdempotent(t *testing.T) {
	stages := makeStages(
		models.StageStatusDone,
		models.StageStatusTodo,
		models.StageStatusWaitingClient,
	)

	changes, err := ComputeTransition(stages, "b")
	require.NoError(t, err)

	// apply the changes, then recompute: nothing left to do
	byID := changesByStage(changes)
	for i := range stages {
		if to, ok := byID[stages[i].ID]; ok {
			stages[i].Status = to
		}
	}
	again, err := ComputeTransition(stages, "b")
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestComputeTransitionUnknownTarget(t *testing.T) {
	stages := makeStages(models.StageStatusTodo)

	_, err := ComputeTransition(stages, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetCurrentStage(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	intake := seedStage(t, project.ID, "Intake", 1, models.StageStatusDone)
	design := seedStage(t, project.ID, "Design", 2, models.StageStatusInReview)
	build := seedStage(t, project.ID, "Build", 3, models.StageStatusTodo)
	handoff := seedStage(t, project.ID, "Handoff", 4, models.StageStatusDone)

	svc := NewStageService()
	stages, err := svc.SetCurrentStage(project.ID, design.ID, testActor)
	require.NoError(t, err)
	require.Len(t, stages, 4)

	byID := map[string]models.StageStatus{}
	for _, s := range stages {
		byID[s.ID] = s.Status
	}
	assert.Equal(t, models.StageStatusDone, byID[intake.ID])
	assert.Equal(t, models.StageStatusTodo, byID[design.ID])
	assert.Equal(t, models.StageStatusTodo, byID[build.ID])
	assert.Equal(t, models.StageStatusTodo, byID[handoff.ID])

	// an audit record carries the new current stage
	entries, err := NewActivityService().Recent(project.ID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "stage.transition", entries[0].Action)
	assert.Equal(t, design.ID, entries[0].Details["currentStageId"])
}

func TestSetCurrentStageIdempotent(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	seedStage(t, project.ID, "Intake", 1, models.StageStatusDone)
	design := seedStage(t, project.ID, "Design", 2, models.StageStatusInReview)

	svc := NewStageService()
	first, err := svc.SetCurrentStage(project.ID, design.ID, testActor)
	require.NoError(t, err)
	second, err := svc.SetCurrentStage(project.ID, design.ID, testActor)
	require.NoError(t, err)
	assert.Equal(t, statusList(first), statusList(second))
}

func TestSetCurrentStageFullReset(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	seedStage(t, project.ID, "Intake", 1, models.StageStatusDone)
	seedStage(t, project.ID, "Design", 2, models.StageStatusApproved)
	seedStage(t, project.ID, "Build", 3, models.StageStatusDone)

	svc := NewStageService()
	stages, err := svc.SetCurrentStage(project.ID, "", testActor)
	require.NoError(t, err)
	for _, s := range stages {
		assert.Equal(t, models.StageStatusTodo, s.Status)
	}
}

func TestSetCurrentStageErrors(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	empty := seedProject(t, client.ID, "Empty")

	svc := NewStageService()
	_, err := svc.SetCurrentStage(empty.ID, "", testActor)
	assert.ErrorIs(t, err, ErrNotFound)

	withStages := seedProject(t, client.ID, "Website")
	seedStage(t, withStages.ID, "Intake", 1, models.StageStatusTodo)
	_, err = svc.SetCurrentStage(withStages.ID, "missing-stage", testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteStage(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Design", 1, models.StageStatusInReview)

	svc := NewStageService()
	done, err := svc.CompleteStage(project.ID, stage.ID, "shipped v1", testActor)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusDone, done.Status)
	assert.Equal(t, "shipped v1", done.CompletionNote)
	require.NotNil(t, done.CompletedAt)
}

func TestRequestMaterials(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	stage := seedStage(t, project.ID, "Intake", 1, models.StageStatusTodo)

	svc := NewStageService()
	component, err := svc.RequestMaterials(project.ID, stage.ID, "Brand assets", "please upload logos", testActor)
	require.NoError(t, err)
	assert.Equal(t, models.ComponentUploadRequest, component.ComponentType)
	assert.Equal(t, models.StageStatusWaitingClient, component.Status)
	assert.Equal(t, "please upload logos", component.Config["message"])

	refreshed, err := svc.stageRepo.FindByID(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusWaitingClient, refreshed.Status)
}

func TestStageScopedToProject(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	other := seedProject(t, client.ID, "App")
	stage := seedStage(t, other.ID, "Intake", 1, models.StageStatusTodo)

	svc := NewStageService()
	_, err := svc.CompleteStage(project.ID, stage.ID, "", testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func statusList(stages []models.Stage) []models.StageStatus {
	out := make([]models.StageStatus, len(stages))
	for i, s := range stages {
		out[i] = s.Status
	}
	return out
}
