package handlers

import (
	"errors"

	"frontdesk/internal/core/domain"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// respondChannelError maps channel manager failures to HTTP responses:
// a missing token is a precondition failure the operator must fix in
// Settings, an expired or rejected token requires a fresh one, a store
// failure means we cannot know either way, and everything else is an
// upstream API error.
func respondChannelError(c *fiber.Ctx, err error) error {
	var apiErr *domain.APIError

	switch {
	case errors.Is(err, domain.ErrTokenNotConfigured):
		return response.PreconditionFailed(c, "Channel manager token not configured. Save a token in Settings.")
	case errors.Is(err, domain.ErrTokenExpired):
		return response.Unauthorized(c, "Channel manager token expired. Save a fresh token in Settings.")
	case errors.Is(err, domain.ErrAuthRejected):
		return response.Unauthorized(c, "Channel manager rejected the token. Save a fresh token in Settings.")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Token store unavailable, please try again")
	case errors.As(err, &apiErr):
		return response.BadGateway(c, apiErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Resource not found")
	default:
		return response.BadGateway(c, "Channel manager request failed")
	}
}
