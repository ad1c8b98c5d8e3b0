// Package event implements the event lifecycle: creation, lookup with
// derived availability, listing and deletion.
package event

import (
	"context"
	"errors"
	"strconv"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/services/fees"
	"tixara/internal/utils"
	"tixara/internal/validation"
)

var (
	ErrMissingFields = errors.New("all required fields must be filled")
	ErrVenueRequired = errors.New("physical events must have a venue and location")
	ErrPriceRequired = errors.New("paid events must have a valid ticket price")
)

// CreateInput carries the organizer-supplied fields of a new event.
type CreateInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	EventDate    string   `json:"eventDate"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	EventType    string   `json:"eventType"`
	Venue        string   `json:"venue"`
	Location     string   `json:"location"`
	TicketType   string   `json:"ticketType"`
	TicketPrice  *float64 `json:"ticketPrice"`
	TotalTickets int      `json:"totalTickets"`
	FeeBearer    string   `json:"feeBearer"`
	ImageURL     string   `json:"imageUrl"`
	BannerURL    string   `json:"bannerUrl"`
}

type Service interface {
	Create(ctx context.Context, organizerID uint, input CreateInput) (*models.Event, error)
	Get(ctx context.Context, slugOrID string) (*models.EventDetail, error)
	ListPublic(ctx context.Context, category string) ([]*models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uint) ([]*models.Event, error)
	List(ctx context.Context, filter string) ([]*models.Event, error)
	Delete(ctx context.Context, eventID uint) error
}

type service struct {
	eventRepo repositories.EventRepository
}

// NewService creates a new event Service.
func NewService(eventRepo repositories.EventRepository) Service {
	return &service{eventRepo: eventRepo}
}

func (s *service) Create(ctx context.Context, organizerID uint, input CreateInput) (*models.Event, error) {
	v := validation.New()
	v.Required("title", input.Title)
	v.Required("description", input.Description)
	v.Required("category", input.Category)
	v.Required("eventDate", input.EventDate)
	v.Required("startTime", input.StartTime)
	v.Required("endTime", input.EndTime)
	v.Required("eventType", input.EventType)
	v.Required("totalTickets", input.TotalTickets)
	v.MaxLength("title", input.Title, validation.MaxTitleLength)
	if !v.Valid() {
		return nil, ErrMissingFields
	}

	if input.EventType == models.EventTypePhysical && (input.Venue == "" || input.Location == "") {
		return nil, ErrVenueRequired
	}
	if input.TicketType == models.TicketTypePaid && (input.TicketPrice == nil || *input.TicketPrice <= 0) {
		return nil, ErrPriceRequired
	}

	eventDate, startTime, endTime, err := utils.ParseEventSchedule(input.EventDate, input.StartTime, input.EndTime)
	if err != nil {
		return nil, ErrMissingFields
	}

	slug := utils.Slugify(input.Title)
	taken, err := s.eventRepo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		// Single collision check only; a second collision within the same
		// millisecond surfaces as a unique index violation.
		slug = utils.TimestampedSlug(slug)
	}

	ticketType := input.TicketType
	if ticketType == "" {
		ticketType = models.TicketTypeFree
	}
	feeBearer := input.FeeBearer
	if feeBearer == "" {
		feeBearer = models.FeeBearerOrganizer
	}

	event := &models.Event{
		Slug:               slug,
		OrganizerID:        organizerID,
		Title:              input.Title,
		Description:        input.Description,
		Category:           input.Category,
		EventDate:          eventDate,
		StartTime:          startTime,
		EndTime:            endTime,
		EventType:          input.EventType,
		TicketType:         ticketType,
		TotalTickets:       input.TotalTickets,
		TicketsSold:        0,
		PlatformFeePercent: models.DefaultPlatformFeePercent,
		FeeBearer:          feeBearer,
		ImageURL:           input.ImageURL,
		BannerURL:          input.BannerURL,
	}
	if input.EventType == models.EventTypePhysical {
		event.Venue = &input.Venue
		event.Location = &input.Location
	}
	if ticketType == models.TicketTypePaid {
		event.TicketPrice = input.TicketPrice
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get looks up by slug first; a numeric key falls back to an ID lookup for
// older links that predate slugs.
func (s *service) Get(ctx context.Context, slugOrID string) (*models.EventDetail, error) {
	event, err := s.eventRepo.GetBySlug(slugOrID)
	if errors.Is(err, repositories.ErrEventNotFound) {
		if id, convErr := strconv.ParseUint(slugOrID, 10, 32); convErr == nil {
			event, err = s.eventRepo.GetByID(uint(id))
		}
	}
	if err != nil {
		return nil, err
	}

	sold := 0
	for _, ticket := range event.Tickets {
		if ticket.Status == models.TicketStatusConfirmed {
			sold++
		}
	}

	detail := &models.EventDetail{
		Event:            *event,
		TicketsSold:      sold,
		TicketsAvailable: event.TotalTickets - sold,
	}
	if event.TicketType == models.TicketTypePaid {
		breakdown := fees.Calculate(event)
		detail.Pricing = &breakdown
	}
	if event.Organizer != nil {
		detail.OrganizerInfo = &models.OrganizerSummary{
			ID:                event.Organizer.ID,
			Name:              event.Organizer.FullName(),
			Email:             event.Organizer.Email,
			PaystackSplitCode: event.Organizer.PaystackSplitCode,
		}
	}
	return detail, nil
}

func (s *service) ListPublic(ctx context.Context, category string) ([]*models.Event, error) {
	return s.eventRepo.ListPublic(category)
}

func (s *service) ListByOrganizer(ctx context.Context, organizerID uint) ([]*models.Event, error) {
	return s.eventRepo.ListByOrganizer(organizerID)
}

func (s *service) List(ctx context.Context, filter string) ([]*models.Event, error) {
	return s.eventRepo.List(repositories.EventFilter(filter))
}

func (s *service) Delete(ctx context.Context, eventID uint) error {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	return s.eventRepo.Delete(event)
}
