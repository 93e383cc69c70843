package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var minuteService = services.NewMinuteService()

// ListMinutes returns the meeting minutes of a project
// @Router /projects/{id}/minutes [get]
func ListMinutes(c *gin.Context) {
	minutes, err := minuteService.ListMinutes(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, minutes)
}

// AddMinute records meeting notes for one date
// @Router /projects/{id}/minutes [post]
func AddMinute(c *gin.Context) {
	var req dto.AddMinuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	minute, err := minuteService.AddMinute(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, minute)
}

// UpdateMinute changes a minute's date or notes
// @Router /projects/{id}/minutes/{minuteId} [put]
func UpdateMinute(c *gin.Context) {
	var req dto.UpdateMinuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	minute, err := minuteService.UpdateMinute(c.Param("id"), c.Param("minuteId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, minute)
}

// DeleteMinute removes a minute from a project
// @Router /projects/{id}/minutes/{minuteId} [delete]
func DeleteMinute(c *gin.Context) {
	if err := minuteService.DeleteMinute(c.Param("id"), c.Param("minuteId"), currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Minute deleted successfully",
	})
}
