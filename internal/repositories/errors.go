package repositories

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrEventNotFound     = errors.New("event not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrKycNotFound       = errors.New("kyc request not found")
	ErrSoldOut           = errors.New("event is sold out")
	ErrLastAdmin         = errors.New("cannot revoke the last admin account")
	ErrUserHasEvents     = errors.New("cannot delete user with existing events")
	ErrDatabaseOperation = errors.New("database operation failed")
)
