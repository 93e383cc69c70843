package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/services"
)

var projectService = services.NewProjectService()

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Tags projects
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param status query string false "Filter by project status"
// @Param clientId query string false "Filter by client"
// @Param search query string false "Search term for title/description"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.ProjectFilter{
		ClientID:  c.Query("clientId"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := projectService.ListProjects(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, response)
}

// CreateProject creates a project from a stage template
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	userID, _ := c.Get("userId")
	project, err := projectService.CreateFromTemplate(req, userID.(string))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, project)
}

// GetProject returns the denormalized project detail view
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	detail, err := projectService.ProjectDetail(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, detail)
}

// UpdateProjectInfo updates a project's title and description
// @Router /projects/{id}/info [put]
func UpdateProjectInfo(c *gin.Context) {
	var req dto.UpdateProjectInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	project, err := projectService.UpdateInfo(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, project)
}

// UpdateProjectDates updates a project's schedule
// @Router /projects/{id}/dates [put]
func UpdateProjectDates(c *gin.Context) {
	var req dto.UpdateProjectDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	project, err := projectService.UpdateDates(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, project)
}

// UpdateProjectStatus moves a project between lifecycle statuses
// @Router /projects/{id}/status [put]
func UpdateProjectStatus(c *gin.Context) {
	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	project, err := projectService.UpdateStatus(c.Param("id"), models.ProjectStatus(req.Status), currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, project)
}

// GetDashboard returns the provider's cross-project overview
// @Router /dashboard [get]
func GetDashboard(c *gin.Context) {
	dashboard, err := projectService.Dashboard()
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, dashboard)
}
