package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/certflow/certification-system/internal/core/ports"
)

// HealthHandler serves the liveness and readiness probes. With no external
// dependencies to ping, readiness reports the sizes of the in-memory stores.
type HealthHandler struct {
	directory ports.UserDirectory
	store     ports.CertificationRepository
}

func NewHealthHandler(directory ports.UserDirectory, store ports.CertificationRepository) *HealthHandler {
	return &HealthHandler{directory: directory, store: store}
}

// Liveness handles GET /health — is the process alive?
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type readinessResponse struct {
	Status   string `json:"status"`
	Users    int    `json:"users"`
	Requests int    `json:"requests"`
}

// Readiness handles GET /health/ready — are the stores seeded?
func (h *HealthHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, readinessResponse{
		Status:   "ok",
		Users:    h.directory.Count(),
		Requests: h.store.Count(),
	})
}
