package handlers

import (
	"frontdesk/internal/config"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "Frontdesk API", fiber.Map{
		"service": "frontdesk",
		"docs":    "/swagger/index.html",
	})
}

// APIInfo returns API version info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return response.Success(c, "Frontdesk API v1", fiber.Map{
		"version": "v1",
	})
}

// HealthCheck returns service health
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	if err := config.HealthCheck(); err != nil {
		return response.ServiceUnavailable(c, "Database unavailable")
	}

	return response.Success(c, "Service healthy", fiber.Map{
		"status":   "ok",
		"database": "up",
	})
}
