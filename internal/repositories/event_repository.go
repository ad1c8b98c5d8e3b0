package repositories

import "tixara/internal/models"

// EventFilter selects events by date relative to now.
type EventFilter string

const (
	EventFilterAll      EventFilter = "all"
	EventFilterUpcoming EventFilter = "upcoming"
	EventFilterPast     EventFilter = "past"
)

// EventRepository defines event-related database operations.
type EventRepository interface {
	// Create inserts a new event.
	Create(event *models.Event) error

	// GetBySlug retrieves an event by its public slug, with organizer and
	// tickets preloaded.
	GetBySlug(slug string) (*models.Event, error)

	// GetByID retrieves an event by primary key, with organizer and tickets
	// preloaded.
	GetByID(id uint) (*models.Event, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(slug string) (bool, error)

	// ListPublic retrieves events for discovery, optionally narrowed to a
	// category, ordered by event date ascending.
	ListPublic(category string) ([]*models.Event, error)

	// ListByOrganizer retrieves an organizer's events, newest first.
	ListByOrganizer(organizerID uint) ([]*models.Event, error)

	// List retrieves events matching the date filter with organizers
	// preloaded, event date descending.
	List(filter EventFilter) ([]*models.Event, error)

	// ReserveTicket atomically claims one unit of capacity. Returns
	// ErrSoldOut when no capacity remains.
	ReserveTicket(event *models.Event) error

	// ReleaseTicket returns one previously reserved unit of capacity.
	ReleaseTicket(event *models.Event) error

	// Delete removes an event and its tickets.
	Delete(event *models.Event) error
}
