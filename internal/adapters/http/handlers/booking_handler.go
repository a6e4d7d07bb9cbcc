package handlers

import (
	"strconv"
	"strings"
	"time"

	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler proxies booking reads from the channel manager
type BookingHandler struct {
	beds24 *services.Beds24Service
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(beds24 *services.Beds24Service) *BookingHandler {
	return &BookingHandler{beds24: beds24}
}

// StatusChangeRequest represents a booking status change request body
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// List returns bookings matching the query filters
// @Summary List bookings
// @Description Fetch bookings, optionally filtered by property, dates and status
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param property_id query int false "Property ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	filter := services.BookingFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    strings.ToLower(c.Query("status")),
	}

	if raw := c.Query("property_id"); raw != "" {
		propertyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || propertyID <= 0 {
			return response.BadRequest(c, "Invalid property ID")
		}
		filter.PropertyID = propertyID
	}
	if filter.StartDate != "" {
		if _, err := time.Parse(services.DateLayout, filter.StartDate); err != nil {
			return response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
		}
	}
	if filter.EndDate != "" {
		if _, err := time.Parse(services.DateLayout, filter.EndDate); err != nil {
			return response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
		}
	}

	bookings, err := h.beds24.GetBookings(c.Context(), userID, filter)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Bookings retrieved successfully", bookings)
}

// ChangeStatus records a requested booking status change.
// Status writes are not yet propagated to the channel manager; the response
// carries synced=false so the dashboard can show the pending state honestly.
// @Summary Change booking status
// @Description Request a booking status change (not synced upstream yet)
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param body body StatusChangeRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) ChangeStatus(c *fiber.Ctx) error {
	if _, ok := c.Locals("userID").(uint); !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	bookingID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		return response.BadRequest(c, "Invalid booking ID")
	}

	var req StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case services.BookingStatusConfirmed, services.BookingStatusPending, services.BookingStatusCancelled:
	default:
		return response.BadRequest(c, "Status must be confirmed, pending or cancelled")
	}

	return response.Success(c, "Status change recorded", fiber.Map{
		"booking_id": bookingID,
		"status":     status,
		"synced":     false,
	})
}
