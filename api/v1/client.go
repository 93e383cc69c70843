package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var clientService = services.NewClientService()

// ListClients returns every client organization
// @Router /clients [get]
func ListClients(c *gin.Context) {
	clients, err := clientService.ListClients()
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, clients)
}

// CreateClient registers a client organization and mints its URL slug
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	client, err := clientService.CreateClient(req)
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, client)
}

// ClientOverview lists one client namespace's projects with aggregates
// @Router /c/{slug}/projects [get]
func ClientOverview(c *gin.Context) {
	overview, err := projectService.ClientOverview(c.Param("slug"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, overview)
}

// ClientProjectScope guards every /c/{slug}/projects/{id} route: the
// project must belong to the namespace's client or the request stops here
// with a 404, before any handler touches the project's data.
func ClientProjectScope(c *gin.Context) {
	if err := projectService.EnsureInNamespace(c.Param("id"), c.Param("slug")); err != nil {
		serviceError(c, err)
		c.Abort()
		return
	}
	c.Next()
}

// ClientProjectDetail returns the project detail view within a client
// namespace. Runs behind ClientProjectScope.
// @Router /c/{slug}/projects/{id} [get]
func ClientProjectDetail(c *gin.Context) {
	detail, err := projectService.ProjectDetail(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, detail)
}
