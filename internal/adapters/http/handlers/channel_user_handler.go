package handlers

import (
	"strconv"

	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChannelUserHandler manages channel manager account users (admin only)
type ChannelUserHandler struct {
	beds24 *services.Beds24Service
}

// NewChannelUserHandler creates a new channel user handler
func NewChannelUserHandler(beds24 *services.Beds24Service) *ChannelUserHandler {
	return &ChannelUserHandler{beds24: beds24}
}

// List returns channel manager account users
// @Summary List channel users
// @Description Fetch account users of the channel manager
// @Tags ChannelUsers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /channel/users [get]
func (h *ChannelUserHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	users, err := h.beds24.GetChannelUsers(c.Context(), userID)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Channel users retrieved successfully", users)
}

// Update updates a channel manager account user
// @Summary Update channel user
// @Description Update fields of a channel manager account user
// @Tags ChannelUsers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel user ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /channel/users/{id} [put]
func (h *ChannelUserHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	channelUserID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || channelUserID <= 0 {
		return response.BadRequest(c, "Invalid channel user ID")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(fields) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	result, err := h.beds24.UpdateChannelUser(c.Context(), userID, channelUserID, fields)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Channel user updated successfully", result)
}

// Delete deletes a channel manager account user
// @Summary Delete channel user
// @Description Remove a channel manager account user
// @Tags ChannelUsers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel user ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /channel/users/{id} [delete]
func (h *ChannelUserHandler) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	channelUserID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || channelUserID <= 0 {
		return response.BadRequest(c, "Invalid channel user ID")
	}

	if err := h.beds24.DeleteChannelUser(c.Context(), userID, channelUserID); err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Channel user deleted successfully", nil)
}
