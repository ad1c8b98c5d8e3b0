package models

import (
	"time"

	"gorm.io/gorm"
)

// KycRequest holds the identity, business and bank details an organizer
// submits for verification. One row per user, updated in place on
// resubmission.
type KycRequest struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex;not null" json:"userId"`
	User    *User  `gorm:"foreignKey:UserID" json:"-"`
	KycType string `gorm:"not null" json:"kycType"`

	// Personal verification
	FullName      string     `json:"fullName,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	Address       string     `json:"address,omitempty"`
	IDType        string     `json:"idType,omitempty"`
	IDNumber      string     `json:"idNumber,omitempty"`
	IDDocumentURL string     `json:"idDocumentUrl,omitempty"`

	// Business verification
	BusinessName      string `json:"businessName,omitempty"`
	BusinessRegNumber string `json:"businessRegNumber,omitempty"`
	BusinessAddress   string `json:"businessAddress,omitempty"`
	BusinessType      string `json:"businessType,omitempty"`
	CacDocumentURL    string `json:"cacDocumentUrl,omitempty"`

	// Payout bank details
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
}

// KycRequestWithUser pairs a request with its owner's summary for the admin
// review queue.
type KycRequestWithUser struct {
	KycRequest
	UserSummary *PublicUser `json:"user,omitempty"`
}
