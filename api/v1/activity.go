package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/services"
)

var activityService = services.NewActivityService()

// ListActivity returns the recent audit records for a project
// @Router /projects/{id}/activity [get]
func ListActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	entries, err := activityService.Recent(c.Param("id"), limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, entries)
}
