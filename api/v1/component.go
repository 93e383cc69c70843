package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var componentService = services.NewComponentService()

// AddComponent attaches a work item to a stage
// @Router /projects/{id}/stages/{stageId}/components [post]
func AddComponent(c *gin.Context) {
	var req dto.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	component, err := componentService.AddComponent(c.Param("id"), c.Param("stageId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, component)
}

// UpdateComponent updates a component's title, status or config
// @Router /projects/{id}/stages/{stageId}/components/{componentId} [put]
func UpdateComponent(c *gin.Context) {
	var req dto.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	component, err := componentService.UpdateComponent(
		c.Param("id"), c.Param("stageId"), c.Param("componentId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, component)
}

// DeleteComponent removes a component from a stage
// @Router /projects/{id}/stages/{stageId}/components/{componentId} [delete]
func DeleteComponent(c *gin.Context) {
	err := componentService.DeleteComponent(c.Param("id"), c.Param("stageId"), c.Param("componentId"), currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Component deleted successfully",
	})
}
