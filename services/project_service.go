package services

import (
	"fmt"
	"log"
	"time"

	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
	"gorm.io/gorm"
)

// defaultTemplateKey is used when a create request names no template.
const defaultTemplateKey = "standard"

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	stageRepo    *repositories.StageRepository
	clientRepo   *repositories.ClientRepository
	templateRepo *repositories.TemplateRepository
	memberRepo   *repositories.MemberRepository
	fileRepo     *repositories.FileRepository
	commentRepo  *repositories.CommentRepository
	linkRepo     *repositories.LinkRepository
	minuteRepo   *repositories.MinuteRepository
	activity     *ActivityService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		stageRepo:    repositories.NewStageRepository(),
		clientRepo:   repositories.NewClientRepository(),
		templateRepo: repositories.NewTemplateRepository(),
		memberRepo:   repositories.NewMemberRepository(),
		fileRepo:     repositories.NewFileRepository(),
		commentRepo:  repositories.NewCommentRepository(),
		linkRepo:     repositories.NewLinkRepository(),
		minuteRepo:   repositories.NewMinuteRepository(),
		activity:     NewActivityService(),
	}
}

// CreateFromTemplate creates a project and instantiates its stages from the
// named template (the built-in one when the request names none). Project
// and stages are created in one transaction.
func (s *ProjectService) CreateFromTemplate(req dto.CreateProjectRequest, creatorID string) (models.Project, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		return models.Project{}, fmt.Errorf("%w: client %s", ErrNotFound, req.ClientID)
	}

	templateKey := req.TemplateKey
	if templateKey == "" {
		templateKey = defaultTemplateKey
	}
	template, err := s.templateRepo.FindByKey(templateKey)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: template %q", ErrNotFound, templateKey)
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.ProjectStatusPlanned,
		ClientID:    req.ClientID,
		CreatedBy:   creatorID,
		StartDate:   parseDate(req.StartDate),
		Deadline:    parseDate(req.Deadline),
	}

	err = s.projectRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		for _, blueprint := range template.Stages {
			stage := models.Stage{
				ProjectID:   project.ID,
				Title:       blueprint.Title,
				Description: blueprint.Description,
				SortOrder:   blueprint.SortOrder,
				Type:        blueprint.Type,
				Owner:       blueprint.Owner,
				Status:      models.StageStatusTodo,
			}
			if err := tx.Create(&stage).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	s.activity.Record(project.ID, Actor{Type: models.ActorProvider, ID: creatorID}, "project.created", map[string]interface{}{
		"title":    project.Title,
		"template": templateKey,
	})
	return s.projectRepo.WithStages(project.ID)
}

// UpdateInfo updates a project's title and description.
func (s *ProjectService) UpdateInfo(projectID string, req dto.UpdateProjectInfoRequest, actor Actor) (models.Project, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.Project{}, err
	}

	err := s.projectRepo.UpdateFields(projectID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	})
	if err != nil {
		return models.Project{}, err
	}

	s.activity.Record(projectID, actor, "project.info_updated", map[string]interface{}{
		"title": req.Title,
	})
	return s.projectRepo.FindByID(projectID)
}

// UpdateDates updates a project's schedule fields. Empty strings clear the
// corresponding date.
func (s *ProjectService) UpdateDates(projectID string, req dto.UpdateProjectDatesRequest, actor Actor) (models.Project, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.Project{}, err
	}

	err := s.projectRepo.UpdateFields(projectID, map[string]interface{}{
		"start_date": parseDate(req.StartDate),
		"end_date":   parseDate(req.EndDate),
		"deadline":   parseDate(req.Deadline),
	})
	if err != nil {
		return models.Project{}, err
	}

	s.activity.Record(projectID, actor, "project.dates_updated", map[string]interface{}{
		"startDate": req.StartDate,
		"endDate":   req.EndDate,
		"deadline":  req.Deadline,
	})
	return s.projectRepo.FindByID(projectID)
}

// UpdateStatus moves a project to another lifecycle status. Transitions are
// free-form within the enum; archival happens here, never via deletion.
func (s *ProjectService) UpdateStatus(projectID string, status models.ProjectStatus, actor Actor) (models.Project, error) {
	if !models.ValidProjectStatus(status) {
		return models.Project{}, fmt.Errorf("invalid project status: %q", status)
	}
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.Project{}, err
	}

	if err := s.projectRepo.UpdateFields(projectID, map[string]interface{}{"status": status}); err != nil {
		return models.Project{}, err
	}

	s.activity.Record(projectID, actor, "project.status_updated", map[string]interface{}{
		"status": string(status),
	})
	return s.projectRepo.FindByID(projectID)
}

// ListProjects retrieves projects with pagination, filtering and sorting,
// each row carrying computed aggregates.
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"deadline":   true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.ClientID,
		filter.Status,
		filter.Search,
	)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   s.summarize(projects),
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// Dashboard assembles the provider's cross-project overview. Read-side
// failures on individual projects degrade to empty stage lists rather than
// failing the whole view.
func (s *ProjectService) Dashboard() (dto.DashboardResponse, error) {
	var projects []models.Project
	err := s.projectRepo.DB().
		Where("status <> ?", models.ProjectStatusArchived).
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := dto.DashboardResponse{
		Projects:      s.summarize(projects),
		TotalProjects: len(projects),
	}
	for _, summary := range response.Projects {
		if summary.Project.Status == models.ProjectStatusInProgress {
			response.ActiveProjects++
		}
		if summary.Aggregates.Overdue {
			response.OverdueProjects++
		}
		if summary.Aggregates.WaitingOnClient {
			response.WaitingOnClient++
		}
	}
	return response, nil
}

// EnsureInNamespace verifies that a project belongs to the client owning
// the given namespace slug. Foreign projects surface as not-found so the
// response never confirms their existence.
func (s *ProjectService) EnsureInNamespace(projectID, slug string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	client, err := s.clientRepo.FindByID(project.ClientID)
	if err != nil {
		return err
	}
	if client.Slug != slug {
		return fmt.Errorf("%w: project %s is not part of this client namespace", ErrNotFound, projectID)
	}
	return nil
}

// ClientOverview lists one client's projects with aggregates, scoped by the
// client's URL slug.
func (s *ProjectService) ClientOverview(slug string) (dto.ClientOverviewResponse, error) {
	client, err := s.clientRepo.FindBySlug(slug)
	if err != nil {
		return dto.ClientOverviewResponse{}, err
	}

	projects, err := s.projectRepo.FindByClientID(client.ID)
	if err != nil {
		return dto.ClientOverviewResponse{}, err
	}

	return dto.ClientOverviewResponse{
		Client:   client,
		Projects: s.summarize(projects),
	}, nil
}

// ProjectDetail assembles the denormalized project view: project with
// ordered stages and components, every related collection, recent activity
// and computed aggregates. Secondary reads fail soft: an error yields an
// empty list for that collection, logged, so the page still renders.
func (s *ProjectService) ProjectDetail(projectID string) (dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.WithStages(projectID)
	if err != nil {
		return dto.ProjectDetailResponse{}, err
	}

	detail := dto.ProjectDetailResponse{
		Project:    project,
		Aggregates: ComputeAggregates(project.Stages, project.Deadline, time.Now()),
	}

	if detail.Members, err = s.memberRepo.FindByProjectID(projectID); err != nil {
		log.Printf("Warning: failed to load members for project %s: %v", projectID, err)
		detail.Members = []models.ProjectMember{}
	}
	if detail.Files, err = s.fileRepo.FindByProjectID(projectID); err != nil {
		log.Printf("Warning: failed to load files for project %s: %v", projectID, err)
		detail.Files = []models.File{}
	}
	if detail.Comments, err = s.commentRepo.FindByProjectID(projectID); err != nil {
		log.Printf("Warning: failed to load comments for project %s: %v", projectID, err)
		detail.Comments = []models.Comment{}
	}
	if detail.Links, err = s.linkRepo.FindByProjectID(projectID); err != nil {
		log.Printf("Warning: failed to load links for project %s: %v", projectID, err)
		detail.Links = []models.ProjectLink{}
	}
	if detail.Minutes, err = s.minuteRepo.FindByProjectID(projectID); err != nil {
		log.Printf("Warning: failed to load minutes for project %s: %v", projectID, err)
		detail.Minutes = []models.ProjectMinute{}
	}
	if detail.Activity, err = s.activity.Recent(projectID, 20); err != nil {
		log.Printf("Warning: failed to load activity for project %s: %v", projectID, err)
		detail.Activity = []models.ActivityLog{}
	}

	return detail, nil
}

// summarize attaches computed aggregates to each project row.
func (s *ProjectService) summarize(projects []models.Project) []dto.ProjectSummary {
	now := time.Now()
	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for _, project := range projects {
		stages, err := s.stageRepo.FindByProjectID(project.ID)
		if err != nil {
			log.Printf("Warning: failed to load stages for project %s: %v", project.ID, err)
			stages = nil
		}
		summaries = append(summaries, dto.ProjectSummary{
			Project:    project,
			Aggregates: ComputeAggregates(stages, project.Deadline, now),
		})
	}
	return summaries
}

// parseDate converts a YYYY-MM-DD string to a time pointer, nil when empty
// or malformed. Format validation happens at binding time.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
