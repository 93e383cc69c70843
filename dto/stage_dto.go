package dto

// SetCurrentStageRequest moves the current-stage pointer. An empty stage
// id resets every stage in the project to todo.
type SetCurrentStageRequest struct {
	StageID string `json:"stageId"`
}

// CreateStageRequest appends a stage to a project
type CreateStageRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Owner        string `json:"owner" binding:"omitempty,oneof=provider client"`
	PlannedStart string `json:"plannedStart" binding:"omitempty,datetime=2006-01-02"`
	PlannedEnd   string `json:"plannedEnd" binding:"omitempty,datetime=2006-01-02"`
	Deadline     string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStageRequest applies a partial update to a stage; nil fields are
// left unchanged.
type UpdateStageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo waiting_client in_review approved blocked done"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// CompleteStageRequest marks a stage done with an optional note
type CompleteStageRequest struct {
	Note string `json:"note"`
}

// RequestMaterialsRequest asks the client for inputs on a stage
type RequestMaterialsRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

// CreateComponentRequest adds a work item to a stage
type CreateComponentRequest struct {
	ComponentType string                 `json:"componentType" binding:"required,oneof=upload_request checklist approval text_block form link milestone tasklist prototype"`
	Title         string                 `json:"title" binding:"required"`
	Config        map[string]interface{} `json:"config"`
}

// UpdateComponentRequest updates a component's title, status or config
type UpdateComponentRequest struct {
	Title  *string                `json:"title"`
	Status *string                `json:"status" binding:"omitempty,oneof=todo waiting_client in_review approved blocked done"`
	Config map[string]interface{} `json:"config"`
}
