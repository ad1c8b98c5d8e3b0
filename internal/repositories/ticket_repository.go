package repositories

import "tixara/internal/models"

// TicketRepository defines ticket-related database operations.
type TicketRepository interface {
	// Create inserts a new ticket row.
	Create(ticket *models.Ticket) error

	// GetByCode retrieves a ticket by its ticket code.
	GetByCode(code string) (*models.Ticket, error)

	// GetPendingByReference retrieves the pending ticket created for a
	// payment reference. Exact match on the reference recorded at purchase
	// time.
	GetPendingByReference(reference string) (*models.Ticket, error)

	// UpdateStatus sets a ticket's status.
	UpdateStatus(ticketID uint, status string) error

	// ListByUser retrieves a user's tickets with events preloaded, newest
	// first.
	ListByUser(userID uint) ([]*models.Ticket, error)
}
