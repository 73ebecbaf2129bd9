package rest

import (
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/labstack/echo/v4"
)

// QuickLinks handles GET /api/links
// @Summary List quick links
// @Tags links
// @Produce json
// @Success 200 {array} campus.QuickLink
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/links [get]
func (h *Handler) QuickLinks(c echo.Context) error {
	list, err := h.manager.QuickLinks(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch quick links")
	}

	return c.JSON(http.StatusOK, list)
}

// QuickLink handles GET /api/links/:id
// @Summary Get quick link
// @Tags links
// @Produce json
// @Param id path int true "Quick link ID"
// @Success 200 {object} campus.QuickLink
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/links/{id} [get]
func (h *Handler) QuickLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid quick link id")
	}

	link, err := h.manager.QuickLink(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch quick link")
	}
	if link == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Quick link not found")
	}

	return c.JSON(http.StatusOK, link)
}

// CreateQuickLink handles POST /api/links
// @Summary Create quick link
// @Description isExternal defaults to true
// @Tags links
// @Accept json
// @Produce json
// @Param link body campus.NewQuickLink true "Quick link"
// @Success 201 {object} campus.QuickLink
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/links [post]
func (h *Handler) CreateQuickLink(c echo.Context) error {
	var in campus.NewQuickLink
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid quick link data")
	}

	link, err := h.manager.CreateQuickLink(c.Request().Context(), in)
	if err != nil {
		return h.handleWriteError(c, err, "Invalid quick link data", "Failed to create quick link")
	}

	return c.JSON(http.StatusCreated, link)
}
