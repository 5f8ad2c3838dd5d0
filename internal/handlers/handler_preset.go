package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

type presetHandler struct {
	presetService portssvc.PresetSvcFacade
}

func registerPresetRoutes(rg *gin.RouterGroup, presetService portssvc.PresetSvcFacade) {
	h := &presetHandler{presetService: presetService}

	presets := rg.Group("/presets")
	{
		presets.POST("", h.createPreset)
		presets.GET("", h.listPresets)
		presets.GET("/:id", h.getPreset)
		presets.PUT("/:id", h.updatePreset)
		presets.DELETE("/:id", h.deletePreset)
	}
}

// createPreset godoc
// @Summary Create a preset
// @Description FIXED presets need an amount and a day of month; FREQUENT presets ignore the day.
// @Tags presets
// @Accept json
// @Produce json
// @Param preset body dto.CreatePresetRequest true "Preset"
// @Success 201 {object} dto.PresetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [post]
func (h *presetHandler) createPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	preset, err := h.presetService.CreatePreset(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create preset")
		return
	}
	logger.Info("Preset created", slog.String("preset_id", preset.PresetID))
	c.JSON(http.StatusCreated, dto.ToPresetResponse(preset))
}

// listPresets godoc
// @Summary List presets
// @Description Fixed presets sorted by day of month then name, frequent presets sorted by name.
// @Tags presets
// @Produce json
// @Success 200 {object} dto.PresetGroupsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [get]
func (h *presetHandler) listPresets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	groups, err := h.presetService.ListPresets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list presets")
		return
	}
	c.JSON(http.StatusOK, dto.ToPresetGroupsResponse(groups))
}

// getPreset godoc
// @Summary Get a preset
// @Tags presets
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} dto.PresetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets/{id} [get]
func (h *presetHandler) getPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	preset, err := h.presetService.GetPresetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve preset")
		return
	}
	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

// updatePreset godoc
// @Summary Update a preset
// @Tags presets
// @Accept json
// @Produce json
// @Param id path string true "Preset ID"
// @Param preset body dto.UpdatePresetRequest true "Preset"
// @Success 200 {object} dto.PresetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets/{id} [put]
func (h *presetHandler) updatePreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	preset, err := h.presetService.UpdatePreset(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update preset")
		return
	}
	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

// deletePreset godoc
// @Summary Delete a preset
// @Tags presets
// @Param id path string true "Preset ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets/{id} [delete]
func (h *presetHandler) deletePreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.presetService.DeletePreset(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete preset")
		return
	}
	c.Status(http.StatusNoContent)
}
