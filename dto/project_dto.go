package dto

import (
	"github.com/limayamil/flowsync/models"
)

// ProjectFilter represents filter criteria for project listings
type ProjectFilter struct {
	ClientID  string
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse represents a paginated project list
type ProjectListResponse struct {
	Projects   []ProjectSummary `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// ProjectSummary is one project row with its computed aggregates.
type ProjectSummary struct {
	Project    models.Project    `json:"project"`
	Aggregates ProjectAggregates `json:"aggregates"`
}

// CreateProjectRequest represents the payload for creating a project from
// a template.
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ClientID    string `json:"clientId" binding:"required"`
	TemplateKey string `json:"templateKey"`
	StartDate   string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	Deadline    string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateProjectInfoRequest updates title and description
type UpdateProjectInfoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectDatesRequest updates the schedule fields. Empty strings
// clear the corresponding date.
type UpdateProjectDatesRequest struct {
	StartDate string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Deadline  string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateProjectStatusRequest updates the project status
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned in_progress on_hold done archived"`
}

// ProjectDetailResponse is the denormalized project view for display:
// the project with ordered stages (and components), plus every related
// collection and the computed aggregates.
type ProjectDetailResponse struct {
	Project    models.Project         `json:"project"`
	Aggregates ProjectAggregates      `json:"aggregates"`
	Members    []models.ProjectMember `json:"members"`
	Files      []models.File          `json:"files"`
	Comments   []models.Comment       `json:"comments"`
	Links      []models.ProjectLink   `json:"links"`
	Minutes    []models.ProjectMinute `json:"minutes"`
	Activity   []models.ActivityLog   `json:"activity"`
}

// DashboardResponse is the provider's cross-project overview.
type DashboardResponse struct {
	Projects        []ProjectSummary `json:"projects"`
	TotalProjects   int              `json:"totalProjects"`
	ActiveProjects  int              `json:"activeProjects"`
	OverdueProjects int              `json:"overdueProjects"`
	WaitingOnClient int              `json:"waitingOnClient"`
}

// ClientOverviewResponse lists one client's projects with aggregates.
type ClientOverviewResponse struct {
	Client   models.Client    `json:"client"`
	Projects []ProjectSummary `json:"projects"`
}
