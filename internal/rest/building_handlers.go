package rest

import (
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/labstack/echo/v4"
)

// CampusBuildings handles GET /api/buildings
// @Summary List campus buildings
// @Tags buildings
// @Produce json
// @Success 200 {array} campus.CampusBuilding
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/buildings [get]
func (h *Handler) CampusBuildings(c echo.Context) error {
	list, err := h.manager.CampusBuildings(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch campus buildings")
	}

	return c.JSON(http.StatusOK, list)
}

// CampusBuilding handles GET /api/buildings/:id
// @Summary Get campus building
// @Tags buildings
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} campus.CampusBuilding
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/buildings/{id} [get]
func (h *Handler) CampusBuilding(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid building id")
	}

	building, err := h.manager.CampusBuilding(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch campus building")
	}
	if building == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Building not found")
	}

	return c.JSON(http.StatusOK, building)
}

// CreateCampusBuilding handles POST /api/buildings
// @Summary Create campus building
// @Description latitude and longitude are stored as text
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body campus.NewCampusBuilding true "Building"
// @Success 201 {object} campus.CampusBuilding
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/buildings [post]
func (h *Handler) CreateCampusBuilding(c echo.Context) error {
	var in campus.NewCampusBuilding
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid building data")
	}

	building, err := h.manager.CreateCampusBuilding(c.Request().Context(), in)
	if err != nil {
		return h.handleWriteError(c, err, "Invalid building data", "Failed to create building")
	}

	return c.JSON(http.StatusCreated, building)
}
