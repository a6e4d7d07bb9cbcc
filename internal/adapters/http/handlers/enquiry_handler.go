package handlers

import (
	"errors"
	"strconv"

	"frontdesk/internal/core/domain"
	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/pagination"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EnquiryHandler serves the operator's enquiry inbox
type EnquiryHandler struct {
	enquiries *services.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiries *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// List returns the operator's enquiries, newest first
// @Summary List enquiries
// @Description Fetch booking enquiries submitted through the public landing page
// @Tags Enquiries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /enquiries [get]
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	enquiries, total, err := h.enquiries.List(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list enquiries")
	}

	return response.Success(c, "Enquiries retrieved successfully",
		pagination.NewResponse(enquiries, params, total))
}

// MarkRead marks an enquiry as read
// @Summary Mark enquiry as read
// @Description Mark a booking enquiry as read
// @Tags Enquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enquiries/{id}/read [put]
func (h *EnquiryHandler) MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	enquiryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || enquiryID == 0 {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	if err := h.enquiries.MarkRead(c.Context(), userID, uint(enquiryID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Enquiry not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this enquiry")
		default:
			return response.InternalServerError(c, "Failed to mark enquiry as read")
		}
	}

	return response.Success(c, "Enquiry marked as read", nil)
}
