package api

import (
	"net/http"
	"strings"
	"ucstore-api/internal/response"
	"ucstore-api/internal/services"

	"github.com/gin-gonic/gin"
)

// GetSettings returns project settings as a key/value map.
// GET /api/settings          - all settings
// GET /api/settings?key=foo  - a single setting
func GetSettings(c *gin.Context) {
	key := strings.TrimSpace(c.Query("key"))

	settingsService := services.NewSettingsService()
	settings, err := settingsService.GetSettings(c.Request.Context(), key)
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
