package services

import (
	"testing"
	"time"

	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAggregatesEmpty(t *testing.T) {
	now := time.Now()
	agg := ComputeAggregates(nil, nil, now)

	assert.Equal(t, 0, agg.Progress)
	assert.Equal(t, 0, agg.TotalStages)
	assert.False(t, agg.WaitingOnClient)
	assert.False(t, agg.Overdue)
	assert.Nil(t, agg.CurrentStageID)
}

func TestComputeAggregatesProgress(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name     string
		statuses []models.StageStatus
		progress int
	}{
		{"none done", []models.StageStatus{models.StageStatusTodo, models.StageStatusTodo}, 0},
		{"half done", []models.StageStatus{models.StageStatusDone, models.StageStatusTodo}, 50},
		{"one of three rounds", []models.StageStatus{models.StageStatusDone, models.StageStatusTodo, models.StageStatusTodo}, 33},
		{"two of three rounds", []models.StageStatus{models.StageStatusDone, models.StageStatusDone, models.StageStatusTodo}, 67},
		{"all done", []models.StageStatus{models.StageStatusDone, models.StageStatusDone}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := ComputeAggregates(makeStages(tc.statuses...), nil, now)
			assert.Equal(t, tc.progress, agg.Progress)
		})
	}
}

func TestComputeAggregatesWaitingOnClient(t *testing.T) {
	now := time.Now()
	stages := makeStages(models.StageStatusDone, models.StageStatusWaitingClient, models.StageStatusTodo)
	agg := ComputeAggregates(stages, nil, now)
	assert.True(t, agg.WaitingOnClient)

	stages[1].Status = models.StageStatusInReview
	agg = ComputeAggregates(stages, nil, now)
	assert.False(t, agg.WaitingOnClient)
}

func TestComputeAggregatesOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	unfinished := makeStages(models.StageStatusDone, models.StageStatusTodo)
	assert.True(t, ComputeAggregates(unfinished, &past, now).Overdue)
	assert.False(t, ComputeAggregates(unfinished, &future, now).Overdue)
	assert.False(t, ComputeAggregates(unfinished, nil, now).Overdue)

	// a fully done project is never overdue
	finished := makeStages(models.StageStatusDone, models.StageStatusDone)
	assert.False(t, ComputeAggregates(finished, &past, now).Overdue)
}

func TestComputeAggregatesOverdueDespiteRoundedProgress(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)

	// 199 of 200 stages done rounds to 100%, but the open stage still
	// counts against a missed deadline
	statuses := make([]models.StageStatus, 200)
	for i := range statuses {
		statuses[i] = models.StageStatusDone
	}
	statuses[len(statuses)-1] = models.StageStatusTodo

	agg := ComputeAggregates(makeStages(statuses...), &past, now)
	assert.Equal(t, 100, agg.Progress)
	assert.Equal(t, 199, agg.DoneStages)
	assert.True(t, agg.Overdue)
}

func TestCurrentStageID(t *testing.T) {
	stages := makeStages(models.StageStatusDone, models.StageStatusInReview, models.StageStatusTodo)
	assert.Equal(t, "b", CurrentStageID(stages))

	agg := ComputeAggregates(stages, nil, time.Now())
	require.NotNil(t, agg.CurrentStageID)
	assert.Equal(t, "b", *agg.CurrentStageID)

	allDone := makeStages(models.StageStatusDone, models.StageStatusDone)
	assert.Equal(t, "", CurrentStageID(allDone))
	assert.Nil(t, ComputeAggregates(allDone, nil, time.Now()).CurrentStageID)
}
