package handlers

import (
	"errors"
	"strconv"

	"frontdesk/internal/core/domain"
	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the unauthenticated property landing pages and the
// booking enquiry form. Guests never learn why the channel manager is
// unreachable; token problems surface as a plain 503.
type PublicHandler struct {
	beds24    *services.Beds24Service
	enquiries *services.EnquiryService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(beds24 *services.Beds24Service, enquiries *services.EnquiryService) *PublicHandler {
	return &PublicHandler{
		beds24:    beds24,
		enquiries: enquiries,
	}
}

// respondPublicError hides token state from guests
func respondPublicError(c *fiber.Ctx, err error) error {
	var apiErr *domain.APIError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Property not found")
	case errors.Is(err, domain.ErrTokenNotConfigured),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrAuthRejected),
		errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Property information temporarily unavailable")
	case errors.As(err, &apiErr):
		return response.BadGateway(c, "Property information temporarily unavailable")
	default:
		return response.BadGateway(c, "Property information temporarily unavailable")
	}
}

// Properties returns the operator's property catalog for the landing page
// @Summary Public property listing
// @Description Fetch an operator's properties for the public landing page
// @Tags Public
// @Produce json
// @Param id path int true "Operator ID"
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /public/operators/{id}/properties [get]
func (h *PublicHandler) Properties(c *fiber.Ctx) error {
	operatorID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || operatorID == 0 {
		return response.BadRequest(c, "Invalid operator ID")
	}

	properties, err := h.beds24.GetProperties(c.Context(), uint(operatorID))
	if err != nil {
		return respondPublicError(c, err)
	}

	return response.Success(c, "Properties retrieved successfully", properties)
}

// Property returns one property for the landing page
// @Summary Public property detail
// @Description Fetch one property of an operator for the public landing page
// @Tags Public
// @Produce json
// @Param id path int true "Operator ID"
// @Param propertyId path int true "Property ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /public/operators/{id}/properties/{propertyId} [get]
func (h *PublicHandler) Property(c *fiber.Ctx) error {
	operatorID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || operatorID == 0 {
		return response.BadRequest(c, "Invalid operator ID")
	}

	propertyID, err := strconv.ParseInt(c.Params("propertyId"), 10, 64)
	if err != nil || propertyID <= 0 {
		return response.BadRequest(c, "Invalid property ID")
	}

	property, err := h.beds24.GetProperty(c.Context(), uint(operatorID), propertyID)
	if err != nil {
		return respondPublicError(c, err)
	}

	return response.Success(c, "Property retrieved successfully", property)
}

// CreateEnquiry files a booking enquiry from the public booking form
// @Summary Submit booking enquiry
// @Description Submit a booking enquiry for one of the operator's properties
// @Tags Public
// @Accept json
// @Produce json
// @Param id path int true "Operator ID"
// @Param body body services.CreateEnquiryInput true "Enquiry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /public/operators/{id}/enquiries [post]
func (h *PublicHandler) CreateEnquiry(c *fiber.Ctx) error {
	operatorID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || operatorID == 0 {
		return response.BadRequest(c, "Invalid operator ID")
	}

	var input services.CreateEnquiryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if input.PropertyID <= 0 {
		return response.BadRequest(c, "Property is required")
	}
	if input.GuestName == "" {
		return response.BadRequest(c, "Name is required")
	}
	if input.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if input.CheckIn == "" || input.CheckOut == "" {
		return response.BadRequest(c, "Check-in and check-out dates are required")
	}

	enquiry, err := h.enquiries.Create(c.Context(), uint(operatorID), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Dates must use the YYYY-MM-DD format")
		case errors.Is(err, services.ErrEnquiryDatesInvalid):
			return response.BadRequest(c, "Check-out must be after check-in")
		default:
			return respondPublicError(c, err)
		}
	}

	return response.Created(c, "Enquiry submitted successfully", fiber.Map{
		"enquiry_id": enquiry.ID,
	})
}
