package handlers

import (
	"errors"
	"strings"
	"time"

	"frontdesk/internal/core/domain"
	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles channel manager token settings
type SettingsHandler struct {
	tokenService *services.TokenService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(tokenService *services.TokenService) *SettingsHandler {
	return &SettingsHandler{tokenService: tokenService}
}

// SaveTokenRequest represents the token save request body
type SaveTokenRequest struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"` // RFC 3339
}

// TokenStatus returns the stored token status without exposing its value
// @Summary Get channel manager token status
// @Description Report whether a token is configured, expired or close to expiry
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /settings/token [get]
func (h *SettingsHandler) TokenStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	status, err := h.tokenService.Status(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return response.ServiceUnavailable(c, "Token store unavailable, please try again")
		}
		return response.InternalServerError(c, "Failed to read token status")
	}

	return response.Success(c, "Token status retrieved", status)
}

// SaveToken stores the channel manager token for the current user
// @Summary Save channel manager token
// @Description Save or replace the Beds24 API token. Each user keeps one token.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveTokenRequest true "Token data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /settings/token [put]
func (h *SettingsHandler) SaveToken(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SaveTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		return response.BadRequest(c, "Token is required")
	}
	if req.ExpiresAt == "" {
		return response.BadRequest(c, "Expiry is required")
	}

	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return response.BadRequest(c, "Expiry must be an RFC 3339 timestamp")
	}
	if expiresAt.Before(time.Now()) {
		return response.BadRequest(c, "Expiry must be in the future")
	}

	record, err := h.tokenService.SaveToken(c.Context(), userID, token, expiresAt)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return response.ServiceUnavailable(c, "Token store unavailable, please try again")
		}
		return response.InternalServerError(c, "Failed to save token")
	}

	return response.Success(c, "Token saved successfully", fiber.Map{
		"expires_at": record.ExpiresAt,
	})
}

// DeleteToken removes the stored channel manager token
// @Summary Delete channel manager token
// @Description Remove the stored Beds24 API token for the current user
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /settings/token [delete]
func (h *SettingsHandler) DeleteToken(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.tokenService.DeleteToken(c.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return response.ServiceUnavailable(c, "Token store unavailable, please try again")
		}
		return response.InternalServerError(c, "Failed to delete token")
	}

	return response.Success(c, "Token deleted successfully", nil)
}
