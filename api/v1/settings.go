package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/services"
)

var settingsService = services.NewSettingsService()

// GetSettings returns the provider's key/value settings
// @Router /settings [get]
func GetSettings(c *gin.Context) {
	settings, err := settingsService.GetSettings()
	if err != nil {
		serviceError(c, err)
		return
	}

	ok(c, http.StatusOK, settings)
}

// UpdateSetting creates or replaces one setting key
// @Router /settings [put]
func UpdateSetting(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := settingsService.UpdateSetting(req, currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setting updated successfully",
	})
}
