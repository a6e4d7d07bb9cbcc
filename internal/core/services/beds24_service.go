package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"frontdesk/internal/core/domain"

	"github.com/tidwall/gjson"
)

// Beds24Config holds channel manager API configuration
type Beds24Config struct {
	BaseURL string
	Timeout time.Duration
}

// Beds24Service performs authenticated calls against the Beds24 channel
// manager API on behalf of an operator. It obtains tokens through the
// token service and classifies failures; it never retries and never
// mutates the cache or the store itself.
type Beds24Service struct {
	tokens  *TokenService
	client  *http.Client
	baseURL string
}

// NewBeds24Service creates a new channel manager client
func NewBeds24Service(tokens *TokenService, cfg Beds24Config) *Beds24Service {
	return &Beds24Service{
		tokens:  tokens,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Request performs one authenticated call and returns the parsed JSON body
// untouched.
//
// Token failures propagate without a network call. HTTP 401, or a body whose
// error text mentions the token, fails with domain.ErrAuthRejected; any other
// non-2xx status fails with *domain.APIError carrying the body message when
// present, else the status text.
func (s *Beds24Service) Request(ctx context.Context, userID uint, method, endpoint string, body interface{}) (json.RawMessage, error) {
	token, err := s.tokens.GetToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("channel manager request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read channel manager response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || isTokenError(respBody) {
		return nil, domain.ErrAuthRejected
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, resp.Status),
		}
	}

	if len(respBody) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(respBody) {
		return nil, &domain.APIError{Status: resp.StatusCode, Message: "invalid JSON response from channel manager"}
	}
	return json.RawMessage(respBody), nil
}

// isTokenError detects token rejections the API reports inside an otherwise
// successful response body
func isTokenError(body []byte) bool {
	if !gjson.ValidBytes(body) {
		return false
	}
	if success := gjson.GetBytes(body, "success"); success.Exists() && success.Bool() {
		return false
	}
	msg := strings.ToLower(gjson.GetBytes(body, "error").String())
	if msg == "" {
		msg = strings.ToLower(gjson.GetBytes(body, "message").String())
	}
	return strings.Contains(msg, "token")
}

// errorMessage extracts a human-readable message from an error body,
// falling back to the HTTP status text
func errorMessage(body []byte, statusText string) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error").String(); msg != "" {
			return msg
		}
		if msg := gjson.GetBytes(body, "message").String(); msg != "" {
			return msg
		}
	}
	return statusText
}

// decodeInto unmarshals a response into target, unwrapping the channel
// manager's {"success": ..., "data": [...]} envelope when present
func decodeInto(raw json.RawMessage, target interface{}) error {
	if raw == nil {
		return nil
	}
	data := []byte(raw)
	if res := gjson.GetBytes(data, "data"); res.Exists() {
		data = []byte(res.Raw)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &domain.APIError{Status: http.StatusBadGateway, Message: "malformed channel manager payload"}
	}
	return nil
}

// GetProperties fetches the full property catalog including pictures,
// property texts and all rooms
func (s *Beds24Service) GetProperties(ctx context.Context, userID uint) ([]Property, error) {
	raw, err := s.Request(ctx, userID, http.MethodGet,
		"/properties?includePictures=true&includeTexts=property&includeAllRooms=true", nil)
	if err != nil {
		return nil, err
	}

	properties := []Property{}
	if err := decodeInto(raw, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty fetches a single property by ID
func (s *Beds24Service) GetProperty(ctx context.Context, userID uint, propertyID int64) (*Property, error) {
	raw, err := s.Request(ctx, userID, http.MethodGet,
		fmt.Sprintf("/properties?id=%d&includePictures=true&includeTexts=property&includeAllRooms=true", propertyID), nil)
	if err != nil {
		return nil, err
	}

	properties := []Property{}
	if err := decodeInto(raw, &properties); err != nil {
		return nil, err
	}
	for i := range properties {
		if properties[i].ID == propertyID {
			return &properties[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetBookings fetches bookings matching the filter
func (s *Beds24Service) GetBookings(ctx context.Context, userID uint, filter BookingFilter) ([]Booking, error) {
	params := url.Values{}
	if filter.PropertyID > 0 {
		params.Set("propId", strconv.FormatInt(filter.PropertyID, 10))
	}
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}

	endpoint := "/bookings"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	raw, err := s.Request(ctx, userID, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	bookings := []Booking{}
	if err := decodeInto(raw, &bookings); err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Status = strings.ToLower(bookings[i].Status)
	}
	return bookings, nil
}

// GetAvailabilities fetches calendar availabilities. The payload is passed
// through opaquely; the dashboard calendar renders it as-is.
func (s *Beds24Service) GetAvailabilities(ctx context.Context, userID uint, propertyID int64, startDate, endDate string) (json.RawMessage, error) {
	params := url.Values{}
	if propertyID > 0 {
		params.Set("propId", strconv.FormatInt(propertyID, 10))
	}
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)

	return s.Request(ctx, userID, http.MethodGet, "/availabilities?"+params.Encode(), nil)
}

// GetChannelUsers fetches account users of the channel manager
func (s *Beds24Service) GetChannelUsers(ctx context.Context, userID uint) ([]ChannelUser, error) {
	raw, err := s.Request(ctx, userID, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	users := []ChannelUser{}
	if err := decodeInto(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateChannelUser updates a channel manager account user
func (s *Beds24Service) UpdateChannelUser(ctx context.Context, userID uint, channelUserID int64, fields map[string]interface{}) (json.RawMessage, error) {
	return s.Request(ctx, userID, http.MethodPut, fmt.Sprintf("/users/%d", channelUserID), fields)
}

// DeleteChannelUser deletes a channel manager account user
func (s *Beds24Service) DeleteChannelUser(ctx context.Context, userID uint, channelUserID int64) error {
	_, err := s.Request(ctx, userID, http.MethodDelete, fmt.Sprintf("/users/%d", channelUserID), nil)
	return err
}
