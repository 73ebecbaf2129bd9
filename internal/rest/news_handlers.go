package rest

import (
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/labstack/echo/v4"
)

// NewsItems handles GET /api/news
// @Summary List news
// @Description Returns all news items sorted by publishedAt DESC
// @Tags news
// @Produce json
// @Success 200 {array} campus.NewsItem
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/news [get]
func (h *Handler) NewsItems(c echo.Context) error {
	list, err := h.manager.NewsItems(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch news items")
	}

	return c.JSON(http.StatusOK, list)
}

// NewsItem handles GET /api/news/:id
// @Summary Get news item
// @Tags news
// @Produce json
// @Param id path int true "News item ID"
// @Success 200 {object} campus.NewsItem
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/news/{id} [get]
func (h *Handler) NewsItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid news item id")
	}

	item, err := h.manager.NewsItem(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch news item")
	}
	if item == nil {
		return h.handleError(c, nil, http.StatusNotFound, "News item not found")
	}

	return c.JSON(http.StatusOK, item)
}

// CreateNewsItem handles POST /api/news
// @Summary Create news item
// @Tags news
// @Accept json
// @Produce json
// @Param item body campus.NewNewsItem true "News item"
// @Success 201 {object} campus.NewsItem
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/news [post]
func (h *Handler) CreateNewsItem(c echo.Context) error {
	var in campus.NewNewsItem
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid news item data")
	}

	item, err := h.manager.CreateNewsItem(c.Request().Context(), in)
	if err != nil {
		return h.handleWriteError(c, err, "Invalid news item data", "Failed to create news item")
	}

	return c.JSON(http.StatusCreated, item)
}
