package rest

import (
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

// Teachers handles GET /api/teachers
// @Summary List teachers
// @Description Without filters returns all teachers sorted by name. search matches name, department or specialization case-insensitively and wins over department, which must match exactly.
// @Tags teachers
// @Produce json
// @Param search query string false "Case-insensitive substring"
// @Param department query string false "Exact department"
// @Success 200 {array} campus.Teacher
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/teachers [get]
func (h *Handler) Teachers(c echo.Context) error {
	ctx := c.Request().Context()

	var req TeachersRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid teacher query")
	}

	list, err := h.manager.Teachers(ctx, campus.TeacherFilter{
		Search:     req.Search,
		Department: req.Department,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch teachers")
	}

	return c.JSON(http.StatusOK, list)
}

// Teacher handles GET /api/teachers/:id
// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} campus.Teacher
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/teachers/{id} [get]
func (h *Handler) Teacher(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid teacher id")
	}

	teacher, err := h.manager.Teacher(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch teacher")
	}
	if teacher == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Teacher not found")
	}

	return c.JSON(http.StatusOK, teacher)
}

// CreateTeacher handles POST /api/teachers
// @Summary Create teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacher body campus.NewTeacher true "Teacher"
// @Success 201 {object} campus.Teacher
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/teachers [post]
func (h *Handler) CreateTeacher(c echo.Context) error {
	var in campus.NewTeacher
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "Invalid teacher data")
	}

	teacher, err := h.manager.CreateTeacher(c.Request().Context(), in)
	if err != nil {
		return h.handleWriteError(c, err, "Invalid teacher data", "Failed to create teacher")
	}

	return c.JSON(http.StatusCreated, teacher)
}
