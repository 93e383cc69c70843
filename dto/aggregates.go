package dto

// ProjectAggregates are the derived display values for one project,
// computed from its stage list. Every query path carries real computed
// values here; there are no placeholder defaults.
type ProjectAggregates struct {
	Progress        int     `json:"progress"` // 0-100
	WaitingOnClient bool    `json:"waitingOnClient"`
	Overdue         bool    `json:"overdue"`
	TotalStages     int     `json:"totalStages"`
	DoneStages      int     `json:"doneStages"`
	CurrentStageID  *string `json:"currentStageId"`
}
