package services

import (
	"context"
	"errors"
	"log"
	"time"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/adapters/persistence/repositories"
	"frontdesk/internal/core/domain"

	"gorm.io/gorm"
)

// Enquiry errors
var (
	ErrEnquiryDatesInvalid = errors.New("check-out must be after check-in")
)

// EnquiryService handles booking enquiries submitted through the public
// landing page. Enquiries are messages to the operator; nothing is written
// to the channel manager.
type EnquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	beds24      *Beds24Service
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(enquiryRepo repositories.EnquiryRepository, beds24 *Beds24Service) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		beds24:      beds24,
	}
}

// CreateEnquiryInput represents a public booking enquiry submission
type CreateEnquiryInput struct {
	PropertyID int64  `json:"property_id" validate:"required"`
	RoomID     *int64 `json:"room_id"`
	GuestName  string `json:"guest_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"max=30"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
	Guests     int    `json:"guests"`
	Message    string `json:"message" validate:"max=2000"`
}

// Create files an enquiry against the operator who owns the landing page.
// The property is verified to belong to the operator's channel manager
// account before the enquiry is stored.
func (s *EnquiryService) Create(ctx context.Context, operatorID uint, input *CreateEnquiryInput) (*models.Enquiry, error) {
	checkIn, err := time.Parse(DateLayout, input.CheckIn)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	checkOut, err := time.Parse(DateLayout, input.CheckOut)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !checkOut.After(checkIn) {
		return nil, ErrEnquiryDatesInvalid
	}

	if _, err := s.beds24.GetProperty(ctx, operatorID, input.PropertyID); err != nil {
		return nil, err
	}

	guests := input.Guests
	if guests < 1 {
		guests = 1
	}

	enquiry := &models.Enquiry{
		UserID:     operatorID,
		PropertyID: input.PropertyID,
		RoomID:     input.RoomID,
		GuestName:  input.GuestName,
		Email:      input.Email,
		Phone:      input.Phone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		Message:    input.Message,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	log.Printf("✅ Enquiry received for property %d (operator ID: %d)", input.PropertyID, operatorID)
	return enquiry, nil
}

// List returns the operator's enquiries, newest first, paginated
func (s *EnquiryService) List(ctx context.Context, userID uint, offset, limit int) ([]*models.Enquiry, int64, error) {
	return s.enquiryRepo.ListByUserID(ctx, userID, offset, limit)
}

// MarkRead marks an enquiry as read after checking ownership
func (s *EnquiryService) MarkRead(ctx context.Context, userID, enquiryID uint) error {
	enquiry, err := s.enquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if enquiry.UserID != userID {
		return domain.ErrForbidden
	}
	if enquiry.IsRead {
		return nil
	}

	return s.enquiryRepo.MarkRead(ctx, enquiryID)
}
