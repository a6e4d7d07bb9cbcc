package handlers

import (
	"errors"
	"strconv"

	"frontdesk/internal/core/domain"
	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NoticeHandler serves dashboard notices
type NoticeHandler struct {
	notices *services.NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(notices *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// List returns the active notices for the current user
// @Summary List notices
// @Description Fetch undismissed dashboard notices, newest first
// @Tags Notices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /notices [get]
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	notices, err := h.notices.List(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list notices")
	}

	return response.Success(c, "Notices retrieved successfully", notices)
}

// Dismiss dismisses a notice
// @Summary Dismiss notice
// @Description Dismiss a dashboard notice
// @Tags Notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notices/{id}/dismiss [put]
func (h *NoticeHandler) Dismiss(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	noticeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || noticeID == 0 {
		return response.BadRequest(c, "Invalid notice ID")
	}

	if err := h.notices.Dismiss(c.Context(), userID, uint(noticeID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Notice not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this notice")
		default:
			return response.InternalServerError(c, "Failed to dismiss notice")
		}
	}

	return response.Success(c, "Notice dismissed", nil)
}
