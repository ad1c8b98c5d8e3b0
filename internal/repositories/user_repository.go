package repositories

import "tixara/internal/models"

// UserRepository defines user-related database operations.
type UserRepository interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Create(user *models.User) error

	// GetByID retrieves a user by primary key.
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user.
	Update(user *models.User) error

	// Delete removes a user. KYC requests are removed first; users that still
	// organize events are refused with ErrUserHasEvents.
	Delete(id uint) error

	// List retrieves a page of users filtered by role: "organizer",
	// "attendee", "admin" or "" for everyone. Newest first. Also returns the
	// total count matching the filter.
	List(filter string, offset, limit int) ([]*models.User, int64, error)

	// ListAdmins retrieves all users holding the admin flag, newest first.
	ListAdmins() ([]*models.User, error)

	// SetAdmin grants or revokes the admin flag. Revocation runs inside a
	// transaction and fails with ErrLastAdmin when it would leave no admin.
	SetAdmin(userID uint, isAdmin bool) error

	// IncrementTokenVersion invalidates all outstanding tokens for a user.
	IncrementTokenVersion(userID uint) error

	// Recent returns the latest registered users for the activity feed.
	Recent(limit int) ([]*models.User, error)
}
