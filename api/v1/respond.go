package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/services"
	"github.com/limayamil/flowsync/utils"
	"gorm.io/gorm"
)

// ok writes the uniform success envelope.
func ok(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

// bindingError writes a 400 with field-level validation messages.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"error":  utils.BindingErrors(err),
	})
}

// serviceError maps a service-layer error to a response code. Every
// handler funnels uncaught errors through here so nothing propagates past
// the boundary.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found: " + err.Error(),
		})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
	}
}

// currentActor builds the audit actor from the authenticated context.
func currentActor(c *gin.Context) services.Actor {
	actor := services.Actor{Type: models.ActorProvider}

	if role, exists := c.Get("role"); exists {
		if roleStr, _ := role.(string); roleStr == "client" {
			actor.Type = models.ActorClient
		}
	}
	if userID, exists := c.Get("userId"); exists {
		actor.ID, _ = userID.(string)
	}
	if email, exists := c.Get("email"); exists {
		actor.Name, _ = email.(string)
	}
	return actor
}
