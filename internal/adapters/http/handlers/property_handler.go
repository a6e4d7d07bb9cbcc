package handlers

import (
	"strconv"

	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PropertyHandler proxies property reads from the channel manager
type PropertyHandler struct {
	beds24 *services.Beds24Service
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(beds24 *services.Beds24Service) *PropertyHandler {
	return &PropertyHandler{beds24: beds24}
}

// List returns all properties of the operator's channel manager account
// @Summary List properties
// @Description Fetch the property catalog with pictures, texts and rooms
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 412 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	properties, err := h.beds24.GetProperties(c.Context(), userID)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Properties retrieved successfully", properties)
}

// Get returns a single property
// @Summary Get property
// @Description Fetch one property by ID
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	propertyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || propertyID <= 0 {
		return response.BadRequest(c, "Invalid property ID")
	}

	property, err := h.beds24.GetProperty(c.Context(), userID, propertyID)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Property retrieved successfully", property)
}
