package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/services"
)

var stageService = services.NewStageService()

// parseDateParam converts a YYYY-MM-DD string (already validated at
// binding time) to a time pointer, nil when empty.
func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// SetCurrentStage applies the stage transition rule: stages before the
// target close as done, the target reopens, done stages after it reset.
// An empty stageId resets the whole project.
// @Router /projects/{id}/stages/current [put]
func SetCurrentStage(c *gin.Context) {
	var req dto.SetCurrentStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	stages, err := stageService.SetCurrentStage(c.Param("id"), req.StageID, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, stages)
}

// AddStage appends a stage to a project
// @Router /projects/{id}/stages [post]
func AddStage(c *gin.Context) {
	var req dto.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	owner := models.StageOwner(req.Owner)
	if req.Owner == "" {
		owner = models.StageOwnerProvider
	}

	stage := models.Stage{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Owner:        owner,
		PlannedStart: parseDateParam(req.PlannedStart),
		PlannedEnd:   parseDateParam(req.PlannedEnd),
		Deadline:     parseDateParam(req.Deadline),
	}
	created, err := stageService.AddStage(c.Param("id"), stage, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, created)
}

// UpdateStage applies a partial update to a stage
// @Router /projects/{id}/stages/{stageId} [put]
func UpdateStage(c *gin.Context) {
	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Deadline != nil {
		fields["deadline"] = parseDateParam(*req.Deadline)
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No fields to update",
		})
		return
	}

	stage, err := stageService.UpdateStage(c.Param("id"), c.Param("stageId"), fields, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, stage)
}

// CompleteStage marks a stage done with a completion note
// @Router /projects/{id}/stages/{stageId}/complete [post]
func CompleteStage(c *gin.Context) {
	var req dto.CompleteStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	stage, err := stageService.CompleteStage(c.Param("id"), c.Param("stageId"), req.Note, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, stage)
}

// RequestMaterials flags a stage as waiting on client inputs
// @Router /projects/{id}/stages/{stageId}/request-materials [post]
func RequestMaterials(c *gin.Context) {
	var req dto.RequestMaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	component, err := stageService.RequestMaterials(c.Param("id"), c.Param("stageId"), req.Title, req.Message, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, component)
}

// DeleteStage removes a stage and its components
// @Router /projects/{id}/stages/{stageId} [delete]
func DeleteStage(c *gin.Context) {
	if err := stageService.DeleteStage(c.Param("id"), c.Param("stageId"), currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stage deleted successfully",
	})
}
