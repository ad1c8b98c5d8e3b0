package models

import (
	"time"

	"gorm.io/gorm"
)

// Account types distinguish who can organize events from who attends them.
const (
	AccountTypeAttendee  = "attendee"
	AccountTypeOrganizer = "organizer"
)

// KYC statuses a user moves through.
const (
	KycStatusNotSubmitted = "not_submitted"
	KycStatusPending      = "pending"
	KycStatusApproved     = "approved"
	KycStatusRejected     = "rejected"
)

// KYC types.
const (
	KycTypePersonal = "personal"
	KycTypeBusiness = "business"
)

type User struct {
	gorm.Model
	FirstName          string     `gorm:"not null" json:"firstName"`
	LastName           string     `gorm:"not null" json:"lastName"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"not null" json:"-"`
	AccountType        string     `gorm:"default:'attendee'" json:"accountType"`
	IsAdmin            bool       `gorm:"default:false" json:"isAdmin"`
	KycStatus          string     `gorm:"default:'not_submitted'" json:"kycStatus"`
	KycType            string     `json:"kycType,omitempty"`
	PaystackSplitCode  *string    `gorm:"default:null" json:"paystackSplitCode,omitempty"`
	KycSubmittedAt     *time.Time `json:"kycSubmittedAt,omitempty"`
	KycApprovedAt      *time.Time `json:"kycApprovedAt,omitempty"`
	KycRejectedAt      *time.Time `json:"kycRejectedAt,omitempty"`
	KycRejectionReason string     `json:"kycRejectionReason,omitempty"`
	TokenVersion       int        `gorm:"default:1" json:"-"`
}

// FullName is the display name used in organizer summaries and activity feeds.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PublicUser is the subset of user fields safe to embed in API responses.
type PublicUser struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	AccountType string    `json:"accountType"`
	IsAdmin     bool      `json:"isAdmin"`
	KycStatus   string    `json:"kycStatus"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		AccountType: u.AccountType,
		IsAdmin:     u.IsAdmin,
		KycStatus:   u.KycStatus,
		CreatedAt:   u.CreatedAt,
	}
}
