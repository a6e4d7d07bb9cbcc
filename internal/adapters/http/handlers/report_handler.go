package handlers

import (
	"strconv"
	"time"

	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves revenue, occupancy and channel reports
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Revenue returns the revenue report for one month
// @Summary Monthly revenue report
// @Description Sum of confirmed revenue for a month. Month is zero-based (0 = January).
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (0-11)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	month, err := strconv.Atoi(c.Query("month", "-1"))
	if err != nil || month < 0 || month > 11 {
		return response.BadRequest(c, "Month must be between 0 and 11")
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			return response.BadRequest(c, "Invalid year")
		}
	}

	report, err := h.reports.MonthlyRevenue(c.Context(), userID, month, year)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Revenue report generated", report)
}

// Occupancy returns the trailing six-month occupancy history
// @Summary Occupancy report
// @Description Occupancy percentage per month for the trailing six months
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	history, err := h.reports.MonthlyOccupancy(c.Context(), userID)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Occupancy report generated", history)
}

// Channels returns the booking channel distribution
// @Summary Channel distribution report
// @Description Bookings grouped by channel over the last 90 days
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param percent query bool false "Return percentages instead of counts"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /reports/channels [get]
func (h *ReportHandler) Channels(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	percent := c.QueryBool("percent", false)

	distribution, err := h.reports.ChannelReport(c.Context(), userID, percent)
	if err != nil {
		return respondChannelError(c, err)
	}

	return response.Success(c, "Channel report generated", distribution)
}
