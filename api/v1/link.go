package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var linkService = services.NewLinkService()

// AddLink attaches an external URL to a project
// @Router /projects/{id}/links [post]
func AddLink(c *gin.Context) {
	var req dto.AddLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	link, err := linkService.AddLink(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, link)
}

// UpdateLink changes a link's title or URL
// @Router /projects/{id}/links/{linkId} [put]
func UpdateLink(c *gin.Context) {
	var req dto.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	link, err := linkService.UpdateLink(c.Param("id"), c.Param("linkId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, link)
}

// DeleteLink removes a link from a project
// @Router /projects/{id}/links/{linkId} [delete]
func DeleteLink(c *gin.Context) {
	if err := linkService.DeleteLink(c.Param("id"), c.Param("linkId"), currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Link removed successfully",
	})
}
