package services

import (
	"time"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
)

// ComputeAggregates derives progress, waiting-on-client and overdue flags
// from a project's stages and deadline.
//
// Progress is the share of done stages as a rounded percentage, 0 when the
// project has no stages. Overdue means the deadline has passed while work
// remains; it checks stage counts rather than the rounded percentage, which
// can read 100 with stages still open.
func ComputeAggregates(stages []models.Stage, deadline *time.Time, now time.Time) dto.ProjectAggregates {
	agg := dto.ProjectAggregates{TotalStages: len(stages)}

	for i := range stages {
		switch stages[i].Status {
		case models.StageStatusDone:
			agg.DoneStages++
		case models.StageStatusWaitingClient:
			agg.WaitingOnClient = true
		}
	}

	if agg.TotalStages > 0 {
		agg.Progress = (agg.DoneStages*100 + agg.TotalStages/2) / agg.TotalStages
	}

	if id := CurrentStageID(stages); id != "" {
		agg.CurrentStageID = &id
	}

	allDone := agg.TotalStages > 0 && agg.DoneStages == agg.TotalStages
	if deadline != nil && deadline.Before(now) && !allDone {
		agg.Overdue = true
	}

	return agg
}

// CurrentStageID returns the id of the first stage by sort order whose
// status is not done, or "" when every stage is done (or there are none).
// Callers must pass stages already ordered by sort order.
func CurrentStageID(stages []models.Stage) string {
	for i := range stages {
		if stages[i].Status != models.StageStatusDone {
			return stages[i].ID
		}
	}
	return ""
}
