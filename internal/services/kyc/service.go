// Package kyc implements organizer identity verification.
//
// Status transitions: not_submitted -> pending -> approved or rejected, and
// rejected -> pending again on resubmission. Approval is final; there is no
// approved -> pending transition.
package kyc

import (
	"context"
	"errors"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories"
)

const defaultRejectionReason = "KYC verification failed"

var (
	ErrKycTypeRequired   = errors.New("kycType must be personal or business")
	ErrSplitCodeRequired = errors.New("split code is required for approval")
)

// SubmitInput is the union of personal, business and bank fields. Fields
// irrelevant to the chosen kycType are stored as sent; no cross-field
// consistency is enforced.
type SubmitInput struct {
	KycType string `json:"kycType"`

	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	IDType        string `json:"idType"`
	IDNumber      string `json:"idNumber"`
	IDDocumentURL string `json:"idDocumentUrl"`

	BusinessName      string `json:"businessName"`
	BusinessRegNumber string `json:"businessRegNumber"`
	BusinessAddress   string `json:"businessAddress"`
	BusinessType      string `json:"businessType"`
	CacDocumentURL    string `json:"cacDocumentUrl"`

	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// StatusResponse reports a user's verification state together with the
// submitted request, if any.
type StatusResponse struct {
	KycStatus          string             `json:"kycStatus"`
	KycType            string             `json:"kycType,omitempty"`
	KycSubmittedAt     *time.Time         `json:"kycSubmittedAt,omitempty"`
	KycApprovedAt      *time.Time         `json:"kycApprovedAt,omitempty"`
	KycRejectedAt      *time.Time         `json:"kycRejectedAt,omitempty"`
	KycRejectionReason string             `json:"kycRejectionReason,omitempty"`
	Request            *models.KycRequest `json:"request,omitempty"`
}

type Service interface {
	// Submit upserts the user's KYC request and moves them to pending.
	// The second return reports whether this was a resubmission.
	Submit(ctx context.Context, userID uint, input SubmitInput) (*models.KycRequest, bool, error)

	// Status returns the user's verification state.
	Status(ctx context.Context, userID uint) (*StatusResponse, error)

	// List returns all requests with user summaries for the review queue.
	List(ctx context.Context) ([]*models.KycRequestWithUser, error)

	// Approve marks the user verified and assigns the payout split code.
	Approve(ctx context.Context, userID uint, splitCode string) error

	// Reject marks the user rejected, recording the reason.
	Reject(ctx context.Context, userID uint, reason string) error
}

type service struct {
	kycRepo  repositories.KycRepository
	userRepo repositories.UserRepository
}

// NewService creates a new kyc Service.
func NewService(kycRepo repositories.KycRepository, userRepo repositories.UserRepository) Service {
	return &service{kycRepo: kycRepo, userRepo: userRepo}
}

func (s *service) Submit(ctx context.Context, userID uint, input SubmitInput) (*models.KycRequest, bool, error) {
	if input.KycType != models.KycTypePersonal && input.KycType != models.KycTypeBusiness {
		return nil, false, ErrKycTypeRequired
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, false, err
	}
	resubmission := user.KycStatus != models.KycStatusNotSubmitted

	request := &models.KycRequest{
		UserID:            userID,
		KycType:           input.KycType,
		FullName:          input.FullName,
		PhoneNumber:       input.PhoneNumber,
		Address:           input.Address,
		IDType:            input.IDType,
		IDNumber:          input.IDNumber,
		IDDocumentURL:     input.IDDocumentURL,
		BusinessName:      input.BusinessName,
		BusinessRegNumber: input.BusinessRegNumber,
		BusinessAddress:   input.BusinessAddress,
		BusinessType:      input.BusinessType,
		CacDocumentURL:    input.CacDocumentURL,
		BankName:          input.BankName,
		AccountNumber:     input.AccountNumber,
		AccountName:       input.AccountName,
	}
	if input.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", input.DateOfBirth); err == nil {
			request.DateOfBirth = &dob
		}
	}

	saved, err := s.kycRepo.Upsert(request)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	user.KycStatus = models.KycStatusPending
	user.KycType = input.KycType
	user.KycSubmittedAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, false, err
	}

	return saved, resubmission, nil
}

func (s *service) Status(ctx context.Context, userID uint) (*StatusResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	resp := &StatusResponse{
		KycStatus:          user.KycStatus,
		KycType:            user.KycType,
		KycSubmittedAt:     user.KycSubmittedAt,
		KycApprovedAt:      user.KycApprovedAt,
		KycRejectedAt:      user.KycRejectedAt,
		KycRejectionReason: user.KycRejectionReason,
	}
	if request, err := s.kycRepo.GetByUserID(userID); err == nil {
		resp.Request = request
	}
	return resp, nil
}

func (s *service) List(ctx context.Context) ([]*models.KycRequestWithUser, error) {
	requests, err := s.kycRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]*models.KycRequestWithUser, 0, len(requests))
	for _, request := range requests {
		entry := &models.KycRequestWithUser{KycRequest: *request}
		if request.User != nil {
			public := request.User.Public()
			entry.UserSummary = &public
		}
		out = append(out, entry)
	}
	return out, nil
}

// Approve trusts the split code as operator input; it is not verified against
// the payment gateway.
func (s *service) Approve(ctx context.Context, userID uint, splitCode string) error {
	if splitCode == "" {
		return ErrSplitCodeRequired
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	user.KycStatus = models.KycStatusApproved
	user.PaystackSplitCode = &splitCode
	user.KycApprovedAt = &now
	return s.userRepo.Update(user)
}

func (s *service) Reject(ctx context.Context, userID uint, reason string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if reason == "" {
		reason = defaultRejectionReason
	}
	now := time.Now()
	user.KycStatus = models.KycStatusRejected
	user.KycRejectedAt = &now
	user.KycRejectionReason = reason
	return s.userRepo.Update(user)
}
