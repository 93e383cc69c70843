package services

import (
	"testing"
	"time"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromTemplate(t *testing.T) {
	setupTestDB(t)
	seedTemplate(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")

	svc := NewProjectService()
	project, err := svc.CreateFromTemplate(dto.CreateProjectRequest{
		Title:    "Website relaunch",
		ClientID: client.ID,
		Deadline: "2026-12-01",
	}, "provider-1")
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusPlanned, project.Status)
	require.NotNil(t, project.Deadline)
	require.Len(t, project.Stages, 4)
	// stages come back in template order, all todo
	for i, stage := range project.Stages {
		assert.Equal(t, i+1, stage.SortOrder)
		assert.Equal(t, models.StageStatusTodo, stage.Status)
	}
	assert.Equal(t, "Intake", project.Stages[0].Title)
	assert.Equal(t, "Handoff", project.Stages[3].Title)
}

func TestCreateFromTemplateUnknownRefs(t *testing.T) {
	setupTestDB(t)
	seedTemplate(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")

	svc := NewProjectService()
	_, err := svc.CreateFromTemplate(dto.CreateProjectRequest{
		Title:    "Website",
		ClientID: "no-such-client",
	}, "provider-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateFromTemplate(dto.CreateProjectRequest{
		Title:       "Website",
		ClientID:    client.ID,
		TemplateKey: "no-such-template",
	}, "provider-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewProjectService()
	updated, err := svc.UpdateStatus(project.ID, models.ProjectStatusArchived, testActor)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusArchived, updated.Status)

	_, err = svc.UpdateStatus(project.ID, models.ProjectStatus("bogus"), testActor)
	assert.Error(t, err)
}

func TestUpdateDatesClearsWithEmptyString(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")

	svc := NewProjectService()
	updated, err := svc.UpdateDates(project.ID, dto.UpdateProjectDatesRequest{
		StartDate: "2026-01-15",
		Deadline:  "2026-06-01",
	}, testActor)
	require.NoError(t, err)
	require.NotNil(t, updated.StartDate)
	require.NotNil(t, updated.Deadline)

	updated, err = svc.UpdateDates(project.ID, dto.UpdateProjectDatesRequest{}, testActor)
	require.NoError(t, err)
	assert.Nil(t, updated.StartDate)
	assert.Nil(t, updated.Deadline)
}

func TestListProjectsPagination(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		seedProject(t, client.ID, title)
	}

	svc := NewProjectService()
	page, err := svc.ListProjects(dto.ProjectFilter{PageSize: 2, SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Projects, 2)
	assert.Equal(t, "Alpha", page.Projects[0].Project.Title)

	page, err = svc.ListProjects(dto.ProjectFilter{Page: 2, PageSize: 2, SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Projects, 1)
	assert.Equal(t, "Gamma", page.Projects[0].Project.Title)
}

func TestListProjectsSearch(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	seedProject(t, client.ID, "Website relaunch")
	seedProject(t, client.ID, "Mobile app")

	svc := NewProjectService()
	page, err := svc.ListProjects(dto.ProjectFilter{Search: "website"})
	require.NoError(t, err)
	require.Len(t, page.Projects, 1)
	assert.Equal(t, "Website relaunch", page.Projects[0].Project.Title)
}

func TestDashboard(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")

	active := seedProject(t, client.ID, "Active")
	require.NoError(t, setStatus(active.ID, models.ProjectStatusInProgress))
	seedStage(t, active.ID, "Intake", 1, models.StageStatusWaitingClient)

	overdue := seedProject(t, client.ID, "Overdue")
	require.NoError(t, setStatus(overdue.ID, models.ProjectStatusOnHold))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, setDeadline(overdue.ID, &past))
	seedStage(t, overdue.ID, "Intake", 1, models.StageStatusTodo)

	archived := seedProject(t, client.ID, "Archived")
	require.NoError(t, setStatus(archived.ID, models.ProjectStatusArchived))

	svc := NewProjectService()
	dash, err := svc.Dashboard()
	require.NoError(t, err)

	// archived projects stay off the dashboard
	assert.Equal(t, 2, dash.TotalProjects)
	assert.Equal(t, 1, dash.ActiveProjects)
	assert.Equal(t, 1, dash.OverdueProjects)
	assert.Equal(t, 1, dash.WaitingOnClient)
}

func TestClientOverview(t *testing.T) {
	setupTestDB(t)
	acme := seedClient(t, "Acme", "acme", "ops@acme.com")
	other := seedClient(t, "Globex", "globex", "ops@globex.com")
	seedProject(t, acme.ID, "Website")
	seedProject(t, other.ID, "Intranet")

	svc := NewProjectService()
	overview, err := svc.ClientOverview("acme")
	require.NoError(t, err)
	assert.Equal(t, acme.ID, overview.Client.ID)
	require.Len(t, overview.Projects, 1)
	assert.Equal(t, "Website", overview.Projects[0].Project.Title)

	_, err = svc.ClientOverview("no-such-slug")
	assert.Error(t, err)
}

func TestProjectDetail(t *testing.T) {
	setupTestDB(t)
	client := seedClient(t, "Acme", "acme", "ops@acme.com")
	project := seedProject(t, client.ID, "Website")
	seedStage(t, project.ID, "Intake", 1, models.StageStatusDone)
	design := seedStage(t, project.ID, "Design", 2, models.StageStatusTodo)

	svc := NewProjectService()
	detail, err := svc.ProjectDetail(project.ID)
	require.NoError(t, err)

	require.Len(t, detail.Project.Stages, 2)
	assert.Equal(t, 50, detail.Aggregates.Progress)
	require.NotNil(t, detail.Aggregates.CurrentStageID)
	assert.Equal(t, design.ID, *detail.Aggregates.CurrentStageID)
	assert.Empty(t, detail.Members)
	assert.Empty(t, detail.Files)
	assert.Empty(t, detail.Comments)
	assert.Empty(t, detail.Links)
	assert.Empty(t, detail.Minutes)
	assert.Empty(t, detail.Activity)

	_, err = svc.ProjectDetail("missing-project")
	assert.Error(t, err)
}
