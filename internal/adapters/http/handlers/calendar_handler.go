package handlers

import (
	"strconv"
	"time"

	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CalendarHandler proxies availability reads from the channel manager
type CalendarHandler struct {
	beds24 *services.Beds24Service
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(beds24 *services.Beds24Service) *CalendarHandler {
	return &CalendarHandler{beds24: beds24}
}

// Availabilities returns room availabilities for the calendar view
// @Summary Get availabilities
// @Description Fetch availabilities for a date range, passed through as-is
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param property_id query int false "Property ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /calendar/availabilities [get]
func (h *CalendarHandler) Availabilities(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return response.BadRequest(c, "start_date and end_date are required")
	}

	start, err := time.Parse(services.DateLayout, startDate)
	if err != nil {
		return response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(services.DateLayout, endDate)
	if err != nil {
		return response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return response.BadRequest(c, "End date must not be before start date")
	}

	var propertyID int64
	if raw := c.Query("property_id"); raw != "" {
		propertyID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || propertyID <= 0 {
			return response.BadRequest(c, "Invalid property ID")
		}
	}

	availabilities, err := h.beds24.GetAvailabilities(c.Context(), userID, propertyID, startDate, endDate)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Availabilities retrieved successfully", availabilities)
}
