package rest

import (
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/labstack/echo/v4"
)

// Settings handles GET /api/settings
// @Summary Get settings
// @Description Returns the settings record, creating it with defaults on first access
// @Tags settings
// @Produce json
// @Success 200 {object} campus.Settings
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/settings [get]
func (h *Handler) Settings(c echo.Context) error {
	s, err := h.manager.Settings(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch settings")
	}

	return c.JSON(http.StatusOK, s)
}

// UpdateSettings handles PATCH /api/settings
// @Summary Update settings
// @Description Merges the given fields into the settings record; omitted fields are left untouched
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body campus.SettingsPatch true "Partial settings"
// @Success 200 {object} campus.Settings
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/settings [patch]
func (h *Handler) UpdateSettings(c echo.Context) error {
	var patch campus.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid settings data")
	}

	s, err := h.manager.UpdateSettings(c.Request().Context(), patch)
	if err != nil {
		return h.handleWriteError(c, err, "Invalid settings data", "Failed to update settings")
	}

	return c.JSON(http.StatusOK, s)
}
