package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories/cache"

	"gorm.io/gorm"
)

type eventRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *gorm.DB, cache *cache.CacheService) EventRepository {
	return &eventRepository{db: db, cache: cache}
}

func (r *eventRepository) Create(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *eventRepository) GetBySlug(slug string) (*models.Event, error) {
	key := r.cache.GenerateKey("event", "slug", slug)
	if event, err := r.cache.GetEvent(context.Background(), key); err == nil {
		return event, nil
	}

	var event models.Event
	err := r.db.Preload("Organizer").Preload("Tickets").
		Where("slug = ?", slug).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheEvent(context.Background(), &event); err != nil {
		log.Printf("failed to cache event %s: %v", event.Slug, err)
	}
	return &event, nil
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Organizer").Preload("Tickets").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &event, nil
}

func (r *eventRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *eventRepository) ListPublic(category string) ([]*models.Event, error) {
	query := r.db.Preload("Organizer").Order("event_date ASC")
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var events []*models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return events, nil
}

func (r *eventRepository) ListByOrganizer(organizerID uint) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Where("organizer_id = ?", organizerID).
		Order("created_at DESC").Find(&events).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return events, nil
}

func (r *eventRepository) List(filter EventFilter) ([]*models.Event, error) {
	query := r.db.Preload("Organizer").Order("event_date DESC")
	switch filter {
	case EventFilterUpcoming:
		query = query.Where("event_date >= ?", time.Now())
	case EventFilterPast:
		query = query.Where("event_date < ?", time.Now())
	}

	var events []*models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return events, nil
}

// ReserveTicket is the serialization point for inventory: the guard in the
// WHERE clause makes check and increment one statement, so concurrent buyers
// of the last ticket cannot both succeed.
func (r *eventRepository) ReserveTicket(event *models.Event) error {
	result := r.db.Model(&models.Event{}).
		Where("id = ? AND tickets_sold < total_tickets", event.ID).
		UpdateColumn("tickets_sold", gorm.Expr("tickets_sold + 1"))
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrSoldOut
	}
	r.invalidate(event)
	return nil
}

func (r *eventRepository) ReleaseTicket(event *models.Event) error {
	result := r.db.Model(&models.Event{}).
		Where("id = ? AND tickets_sold > 0", event.ID).
		UpdateColumn("tickets_sold", gorm.Expr("tickets_sold - 1"))
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(event)
	return nil
}

func (r *eventRepository) Delete(event *models.Event) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Ticket{}).Error; err != nil {
			return ErrDatabaseOperation
		}
		result := tx.Delete(&models.Event{}, event.ID)
		if result.Error != nil {
			return ErrDatabaseOperation
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}
		r.invalidate(event)
		return nil
	})
}

func (r *eventRepository) invalidate(event *models.Event) {
	if err := r.cache.InvalidateEvent(context.Background(), event.ID, event.Slug); err != nil {
		log.Printf("failed to invalidate event cache %d: %v", event.ID, err)
	}
}
