package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-directory/internal/view"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// FetchStatusReporter exposes the container's fetch phase.
type FetchStatusReporter interface {
	Status() (view.FetchStatus, error)
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// The service is ready once the users fetch has loaded.
type ReadinessHandler struct {
	fetch FetchStatusReporter
}

func NewReadinessHandler(fetch FetchStatusReporter) *ReadinessHandler {
	return &ReadinessHandler{fetch: fetch}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /health/ready.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	status, err := h.fetch.Status()

	users := dependencyStatus{Status: string(status)}
	if err != nil {
		users.Error = err.Error()
	}

	if status != view.StatusLoaded {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status:       "degraded",
			Dependencies: map[string]dependencyStatus{"users_api": users},
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{
		Status:       "ok",
		Dependencies: map[string]dependencyStatus{"users_api": users},
	})
}
