package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'OWNER'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ApiToken represents api_tokens table: the bearer credential used against
// the Beds24 channel manager API. Each user has at most one logical token;
// saves are upserts keyed by user identity.
type ApiToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Token     string    `gorm:"size:512;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (ApiToken) TableName() string {
	return "api_tokens"
}

// IsExpired reports whether the token is past its expiry, even by a second.
func (t *ApiToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// ExpiresWithin reports whether the token expires inside the given window
func (t *ApiToken) ExpiresWithin(d time.Duration) bool {
	return time.Until(t.ExpiresAt) <= d
}

// Enquiry represents enquiries table: booking-form submissions from the
// public property landing page. There is no booking engine behind this;
// an enquiry is a message to the operator, not a reservation.
type Enquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	PropertyID int64     `gorm:"not null;index" json:"property_id"`
	RoomID     *int64    `json:"room_id"`
	GuestName  string    `gorm:"size:100;not null" json:"guest_name"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	CheckIn    time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut   time.Time `gorm:"type:date;not null" json:"check_out"`
	Guests     int       `gorm:"default:1" json:"guests"`
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

// Notice levels
const (
	NoticeLevelInfo    = "INFO"
	NoticeLevelWarning = "WARNING"
	NoticeLevelError   = "ERROR"
)

// Notice codes
const (
	NoticeCodeTokenExpiring = "TOKEN_EXPIRING"
	NoticeCodeTokenExpired  = "TOKEN_EXPIRED"
)

// Notice represents notices table: dismissable messages surfaced to the
// operator in the dashboard (token expiry warnings and the like)
type Notice struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Level       string     `gorm:"size:20;not null;default:'INFO'" json:"level"`
	Code        string     `gorm:"size:40;index" json:"code"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	DismissedAt *time.Time `gorm:"index" json:"dismissed_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Notice) TableName() string {
	return "notices"
}

func (n *Notice) IsDismissed() bool {
	return n.DismissedAt != nil
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&ApiToken{},
		&Enquiry{},
		&Notice{},
	)
}
