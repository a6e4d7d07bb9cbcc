package services

import (
	"strings"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates
const DateLayout = "2006-01-02"

// Booking statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// DefaultChannel is attributed to bookings without a channel
const DefaultChannel = "Direto"

// Picture represents a property picture
type Picture struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Room represents a bookable room nested under a property
type Room struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"basePrice"`
	MaxGuests   int     `json:"maxGuests"`
	Description string  `json:"description,omitempty"`
}

// Property represents a property owned by the channel manager.
// Frontdesk never creates or mutates properties, only reads them.
type Property struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	City     string    `json:"city,omitempty"`
	Country  string    `json:"country,omitempty"`
	Pictures []Picture `json:"pictures,omitempty"`
	Rooms    []Room    `json:"rooms,omitempty"`
}

// Booking represents a reservation held by the channel manager. Dates stay
// in their wire format so unknown or missing values never turn into
// zero-time surprises; the aggregation helpers parse them defensively.
type Booking struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"propertyId"`
	RoomID     int64   `json:"roomId,omitempty"`
	GuestName  string  `json:"guestName,omitempty"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Status     string  `json:"status"`
	Channel    string  `json:"channel,omitempty"`
	TotalCost  float64 `json:"totalCost,omitempty"`
}

// CheckInDate parses the check-in date
func (b *Booking) CheckInDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, b.CheckIn)
	return t, err == nil
}

// CheckOutDate parses the check-out date
func (b *Booking) CheckOutDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, b.CheckOut)
	return t, err == nil
}

// IsConfirmed reports whether the booking counts toward revenue and occupancy
func (b *Booking) IsConfirmed() bool {
	return strings.EqualFold(b.Status, BookingStatusConfirmed)
}

// ChannelOrDefault returns the booking channel, defaulting empty values
func (b *Booking) ChannelOrDefault() string {
	if strings.TrimSpace(b.Channel) == "" {
		return DefaultChannel
	}
	return b.Channel
}

// ChannelUser represents a channel manager account user
type ChannelUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// BookingFilter narrows a bookings query
type BookingFilter struct {
	PropertyID int64
	StartDate  string
	EndDate    string
	Status     string
}
