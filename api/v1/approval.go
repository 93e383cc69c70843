package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var approvalService = services.NewApprovalService()

// RequestApproval opens a client sign-off request on a stage
// @Router /projects/{id}/stages/{stageId}/approvals [post]
func RequestApproval(c *gin.Context) {
	var req dto.RequestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	approval, err := approvalService.RequestApproval(c.Param("id"), c.Param("stageId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, approval)
}

// RespondApproval records the client's decision on the open approval
// @Router /projects/{id}/stages/{stageId}/approvals/respond [post]
func RespondApproval(c *gin.Context) {
	var req dto.RespondApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	approval, err := approvalService.Respond(c.Param("id"), c.Param("stageId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, approval)
}
