package repositories

import "tixara/internal/models"

// KycRepository defines KYC request database operations.
type KycRepository interface {
	// Upsert creates the user's KYC request or updates it in place when one
	// already exists. One request per user.
	Upsert(request *models.KycRequest) (*models.KycRequest, error)

	// GetByUserID retrieves the KYC request belonging to a user.
	GetByUserID(userID uint) (*models.KycRequest, error)

	// List retrieves all KYC requests with their users, newest first.
	List() ([]*models.KycRequest, error)

	// Recent returns the latest submissions for the activity feed.
	Recent(limit int) ([]*models.KycRequest, error)
}
