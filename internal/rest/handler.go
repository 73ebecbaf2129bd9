package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/labstack/echo/v4"
)

var errInvalidID = errors.New("id must be an integer")

type Handler struct {
	manager   *campus.Manager
	log       *slog.Logger
	staticDir string
}

// NewHandler serves the API of manager. Static client assets are served from
// staticDir when it is not empty.
func NewHandler(manager *campus.Manager, log *slog.Logger, staticDir string) *Handler {
	return &Handler{
		manager:   manager,
		log:       log,
		staticDir: staticDir,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Info("request rejected", "error", err, "statusCode", statusCode, "message", message)
	}
	return c.JSON(statusCode, ErrorResponse{Message: message})
}

// handleWriteError maps a create or update failure: validation is the
// caller's fault, anything else is the store's.
func (h *Handler) handleWriteError(c echo.Context, err error, invalidMessage, failedMessage string) error {
	if campus.IsValidation(err) {
		return h.handleError(c, err, http.StatusBadRequest, invalidMessage)
	}
	return h.handleError(c, err, http.StatusInternalServerError, failedMessage)
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
