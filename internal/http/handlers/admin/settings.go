package admin

import (
	"github.com/scentlab/scentlab/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateSettingsRequest upsert site settings. InnerCityKeywords replaces the
// delivery-zone keyword list when present.
type UpdateSettingsRequest struct {
	Values            map[string]string `json:"values"`
	InnerCityKeywords []string          `json:"inner_city_keywords"`
}

// ListSettings returns all site settings with the effective delivery-zone keywords
func (h *Handler) ListSettings(c *gin.Context) {
	settings, err := h.SettingService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.Success(c, gin.H{
		"settings":            settings,
		"inner_city_keywords": h.SettingService.InnerCityKeywords(),
	})
}

// UpdateSettings upserts site settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	for key, value := range req.Values {
		if key == "" {
			respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
			return
		}
		if err := h.SettingService.Set(key, value); err != nil {
			respondError(c, response.CodeInternal, "error.save_failed", err)
			return
		}
	}

	if req.InnerCityKeywords != nil {
		if err := h.SettingService.SetInnerCityKeywords(req.InnerCityKeywords); err != nil {
			respondError(c, response.CodeInternal, "error.save_failed", err)
			return
		}
	}

	response.Success(c, gin.H{
		"inner_city_keywords": h.SettingService.InnerCityKeywords(),
	})
}
