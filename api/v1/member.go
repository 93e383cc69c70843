package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var memberService = services.NewMemberService()

// ListMembers returns the client members of a project
// @Router /projects/{id}/members [get]
func ListMembers(c *gin.Context) {
	members, err := memberService.ListMembers(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, members)
}

// AddMember invites a client email to a project
// @Router /projects/{id}/members [post]
func AddMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	member, err := memberService.AddMember(c.Param("id"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusCreated, member)
}

// UpdateMember changes a member's name or role
// @Router /projects/{id}/members/{memberId} [put]
func UpdateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	member, err := memberService.UpdateMember(c.Param("id"), c.Param("memberId"), req, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, member)
}

// RemoveMember deletes a membership
// @Router /projects/{id}/members/{memberId} [delete]
func RemoveMember(c *gin.Context) {
	if err := memberService.RemoveMember(c.Param("id"), c.Param("memberId"), currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member removed successfully",
	})
}
