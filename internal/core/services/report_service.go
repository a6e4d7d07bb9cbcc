package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"
)

// ReportService builds revenue, occupancy and channel reports over bookings
// fetched from the channel manager. The arithmetic lives in pure helpers so
// it can be tested without any I/O.
type ReportService struct {
	beds24 *Beds24Service
}

// NewReportService creates a new report service
func NewReportService(beds24 *Beds24Service) *ReportService {
	return &ReportService{beds24: beds24}
}

// RevenueReport summarizes confirmed revenue for one month
type RevenueReport struct {
	Month    int     `json:"month"` // zero-based: 0 = January
	Year     int     `json:"year"`
	Total    float64 `json:"total"`
	Bookings int     `json:"bookings"`
}

// OccupancyPoint is one month of the trailing occupancy history
type OccupancyPoint struct {
	Month     string `json:"month"` // formatted as 2006-01
	Occupancy int    `json:"occupancy"`
}

// ChannelCount is the number of bookings attributed to one channel
type ChannelCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyRevenue sums confirmed revenue for the given month.
// The month is zero-based (0 = January), matching the dashboard month picker.
func (s *ReportService) MonthlyRevenue(ctx context.Context, userID uint, month, year int) (*RevenueReport, error) {
	first, last := monthBounds(month, year)

	bookings, err := s.beds24.GetBookings(ctx, userID, BookingFilter{
		StartDate: first.Format(DateLayout),
		EndDate:   last.Format(DateLayout),
		Status:    BookingStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	total, count := SumConfirmedRevenue(bookings, month, year)
	return &RevenueReport{
		Month:    month,
		Year:     year,
		Total:    total,
		Bookings: count,
	}, nil
}

// MonthlyOccupancy computes occupancy for the trailing six months
func (s *ReportService) MonthlyOccupancy(ctx context.Context, userID uint) ([]OccupancyPoint, error) {
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	windowEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)

	properties, err := s.beds24.GetProperties(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.beds24.GetBookings(ctx, userID, BookingFilter{
		StartDate: windowStart.Format(DateLayout),
		EndDate:   windowEnd.Format(DateLayout),
		Status:    BookingStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	return OccupancyHistory(bookings, len(properties), now), nil
}

// ChannelReport returns the channel distribution for the last 90 days of
// bookings, as counts or as independently rounded percentages
func (s *ReportService) ChannelReport(ctx context.Context, userID uint, percent bool) ([]ChannelCount, error) {
	now := time.Now()
	bookings, err := s.beds24.GetBookings(ctx, userID, BookingFilter{
		StartDate: now.AddDate(0, 0, -90).Format(DateLayout),
		EndDate:   now.Format(DateLayout),
	})
	if err != nil {
		return nil, err
	}

	if percent {
		return ChannelPercentages(bookings), nil
	}
	return ChannelDistribution(bookings), nil
}

// monthBounds returns the first and last day of a zero-based month
func monthBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// SumConfirmedRevenue sums totalCost of confirmed bookings whose check-in
// falls inside the zero-based month. Missing costs count as zero; no
// currency conversion happens here (single-currency assumption).
func SumConfirmedRevenue(bookings []Booking, month, year int) (float64, int) {
	first, last := monthBounds(month, year)

	var total float64
	var count int
	for i := range bookings {
		b := &bookings[i]
		if !b.IsConfirmed() {
			continue
		}
		checkIn, ok := b.CheckInDate()
		if !ok {
			continue
		}
		if checkIn.Before(first) || checkIn.After(last) {
			continue
		}
		total += b.TotalCost
		count++
	}
	return total, count
}

// OccupancyHistory computes bookedRoomNights / (propertyCount * daysInMonth)
// for each of the trailing six months, oldest first. Bookings spanning a
// month boundary are prorated by intersecting [checkIn, checkOut) with the
// month. Months with zero properties yield 0.
func OccupancyHistory(bookings []Booking, propertyCount int, now time.Time) []OccupancyPoint {
	points := make([]OccupancyPoint, 0, 6)

	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		daysInMonth := int(monthEnd.Sub(monthStart).Hours() / 24)

		occupancy := 0
		if propertyCount > 0 {
			nights := 0
			for j := range bookings {
				b := &bookings[j]
				if !b.IsConfirmed() {
					continue
				}
				checkIn, ok := b.CheckInDate()
				if !ok {
					continue
				}
				checkOut, ok := b.CheckOutDate()
				if !ok {
					continue
				}
				nights += overlapNights(checkIn, checkOut, monthStart, monthEnd)
			}
			occupancy = int(math.Round(float64(nights) / (float64(propertyCount) * float64(daysInMonth)) * 100))
		}

		points = append(points, OccupancyPoint{
			Month:     monthStart.Format("2006-01"),
			Occupancy: occupancy,
		})
	}

	return points
}

// overlapNights counts the nights of [checkIn, checkOut) inside
// [monthStart, monthEnd)
func overlapNights(checkIn, checkOut, monthStart, monthEnd time.Time) int {
	start := checkIn
	if start.Before(monthStart) {
		start = monthStart
	}
	end := checkOut
	if end.After(monthEnd) {
		end = monthEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// ChannelDistribution groups bookings by channel, defaulting missing
// channels to "Direto". Groups are ordered by count descending, then name.
func ChannelDistribution(bookings []Booking) []ChannelCount {
	counts := make(map[string]int)
	for i := range bookings {
		counts[bookings[i].ChannelOrDefault()]++
	}

	result := make([]ChannelCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, ChannelCount{Name: name, Value: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return strings.Compare(result[i].Name, result[j].Name) < 0
	})
	return result
}

// ChannelPercentages converts the distribution into percentages, rounding
// each group independently. Because of that, the values are not guaranteed
// to sum to exactly 100; this is intended display behavior, not a bug.
func ChannelPercentages(bookings []Booking) []ChannelCount {
	distribution := ChannelDistribution(bookings)
	total := 0
	for _, group := range distribution {
		total += group.Value
	}
	if total == 0 {
		return []ChannelCount{}
	}

	result := make([]ChannelCount, len(distribution))
	for i, group := range distribution {
		result[i] = ChannelCount{
			Name:  group.Name,
			Value: int(math.Round(float64(group.Value) / float64(total) * 100)),
		}
	}
	return result
}
