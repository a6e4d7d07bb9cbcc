package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumConfirmedRevenueZeroBasedMonth(t *testing.T) {
	bookings := []Booking{
		{CheckIn: "2023-11-10", CheckOut: "2023-11-12", Status: "confirmed", TotalCost: 100},
		{CheckIn: "2023-10-28", CheckOut: "2023-11-02", Status: "confirmed", TotalCost: 50}, // October check-in
		{CheckIn: "2023-11-15", CheckOut: "2023-11-18", Status: "cancelled", TotalCost: 80},
		{CheckIn: "2023-12-01", CheckOut: "2023-12-03", Status: "confirmed", TotalCost: 40},
	}

	// Month 10 is November
	total, count := SumConfirmedRevenue(bookings, 10, 2023)
	assert.Equal(t, 100.0, total)
	assert.Equal(t, 1, count)
}

func TestSumConfirmedRevenueMissingCostAndDates(t *testing.T) {
	bookings := []Booking{
		{CheckIn: "2023-11-05", CheckOut: "2023-11-07", Status: "confirmed"}, // no cost
		{CheckIn: "", CheckOut: "2023-11-07", Status: "confirmed", TotalCost: 500},
	}

	total, count := SumConfirmedRevenue(bookings, 10, 2023)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 1, count)
}

func TestSumConfirmedRevenueEmpty(t *testing.T) {
	total, count := SumConfirmedRevenue(nil, 0, 2024)
	assert.Equal(t, 0.0, total)
	assert.Zero(t, count)
}

func TestOccupancyHistoryProrates(t *testing.T) {
	// April 2026 has 30 days; a 3-night booking across 2 properties
	// gives round(3 / (2*30) * 100) = 5
	now := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)
	bookings := []Booking{
		{CheckIn: "2026-04-10", CheckOut: "2026-04-13", Status: "confirmed"},
	}

	points := OccupancyHistory(bookings, 2, now)
	require.Len(t, points, 6)

	// Oldest first, current month last
	assert.Equal(t, "2025-11", points[0].Month)
	assert.Equal(t, "2026-04", points[5].Month)
	assert.Equal(t, 5, points[5].Occupancy)
	assert.Zero(t, points[0].Occupancy)
}

func TestOccupancyHistorySplitsMonthBoundary(t *testing.T) {
	now := time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)
	bookings := []Booking{
		// 2 nights in April, 2 nights in May
		{CheckIn: "2026-04-29", CheckOut: "2026-05-03", Status: "confirmed"},
	}

	points := OccupancyHistory(bookings, 1, now)
	require.Len(t, points, 6)

	// April: round(2/30*100) = 7, May: round(2/31*100) = 6
	assert.Equal(t, 7, points[4].Occupancy)
	assert.Equal(t, 6, points[5].Occupancy)
}

func TestOccupancyHistoryZeroProperties(t *testing.T) {
	now := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)
	bookings := []Booking{
		{CheckIn: "2026-04-10", CheckOut: "2026-04-13", Status: "confirmed"},
	}

	for _, p := range OccupancyHistory(bookings, 0, now) {
		assert.Zero(t, p.Occupancy)
	}
}

func TestChannelPercentagesRoundsIndependently(t *testing.T) {
	bookings := []Booking{
		{Channel: "airbnb", Status: "confirmed"},
		{Channel: "airbnb", Status: "confirmed"},
		{Channel: "booking.com", Status: "confirmed"},
	}

	percentages := ChannelPercentages(bookings)
	require.Len(t, percentages, 2)
	assert.Equal(t, ChannelCount{Name: "airbnb", Value: 67}, percentages[0])
	assert.Equal(t, ChannelCount{Name: "booking.com", Value: 33}, percentages[1])
}

func TestChannelDistributionDefaultsDireto(t *testing.T) {
	bookings := []Booking{
		{Channel: "", Status: "confirmed"},
		{Channel: "  ", Status: "pending"},
		{Channel: "airbnb", Status: "confirmed"},
	}

	distribution := ChannelDistribution(bookings)
	require.Len(t, distribution, 2)
	assert.Equal(t, ChannelCount{Name: DefaultChannel, Value: 2}, distribution[0])
	assert.Equal(t, ChannelCount{Name: "airbnb", Value: 1}, distribution[1])
}

func TestChannelPercentagesEmpty(t *testing.T) {
	assert.Empty(t, ChannelPercentages(nil))
	assert.Empty(t, ChannelDistribution(nil))
}
