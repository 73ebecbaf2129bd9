package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	apiPrefix = "/api"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"

	healthTimeout = 2 * time.Second
)

// RegisterRoutes builds the echo router serving the JSON API, health and
// swagger endpoints and, when configured, the static client.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.requestLogger())

	h.registerAPIRoutes(e.Group(apiPrefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)

	h.registerStaticRoutes(e)

	return e
}

func (h *Handler) registerAPIRoutes(g *echo.Group) {
	g.GET("/news", h.NewsItems)
	g.GET("/news/:id", h.NewsItem)
	g.POST("/news", h.CreateNewsItem)

	g.GET("/teachers", h.Teachers)
	g.GET("/teachers/:id", h.Teacher)
	g.POST("/teachers", h.CreateTeacher)

	g.GET("/links", h.QuickLinks)
	g.GET("/links/:id", h.QuickLink)
	g.POST("/links", h.CreateQuickLink)

	g.GET("/buildings", h.CampusBuildings)
	g.GET("/buildings/:id", h.CampusBuilding)
	g.POST("/buildings", h.CreateCampusBuilding)

	g.GET("/settings", h.Settings)
	g.PATCH("/settings", h.UpdateSettings)
}

// registerStaticRoutes serves the client build with index.html as the
// fallback for client-side routes. API paths are never rewritten.
func (h *Handler) registerStaticRoutes(e *echo.Echo) {
	if h.staticDir == "" {
		return
	}

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  h.staticDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, apiPrefix+"/") || strings.HasPrefix(p, "/rpc")
		},
	}))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("request_id", v.RequestID),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}

// handleHealth reports whether the store answers a ping.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} rest.HealthResponse
// @Failure 503 {object} rest.HealthResponse
// @Router /health [get]
func (h *Handler) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.manager.Ping(ctx); err != nil {
		h.log.Error("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to read API documentation")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
