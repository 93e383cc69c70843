package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var commentService = services.NewCommentService()

// ListComments returns the comments on a project
// @Router /projects/{id}/comments [get]
func ListComments(c *gin.Context) {
	comments, err := commentService.ListComments(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, comments)
}

// AddComment posts a comment on a project or one of its stages
// @Router /projects/{id}/comments [post]
func AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	comment, err := commentService.AddComment(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, comment)
}
