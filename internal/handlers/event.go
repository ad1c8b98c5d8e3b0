package handlers

import (
	"errors"
	"log"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/services/event"
	"tixara/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService event.Service
}

func NewEventHandler(eventService event.Service) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEvent creates a listing owned by the calling organizer.
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input event.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.eventService.Create(c.Context(), claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrMissingFields),
			errors.Is(err, event.ErrVenueRequired),
			errors.Is(err, event.ErrPriceRequired):
			return utils.BadRequest(c, err.Error())
		default:
			log.Printf("create event failed: %v", err)
			return utils.InternalError(c, "Failed to create event")
		}
	}

	return utils.Created(c, fiber.Map{
		"message": "Event created successfully",
		"event": fiber.Map{
			"id":        created.ID,
			"slug":      created.Slug,
			"title":     created.Title,
			"eventDate": created.EventDate,
		},
	})
}

// GetEvent returns event detail by slug, falling back to numeric id.
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	detail, err := h.eventService.Get(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.NotFound(c, "Event not found")
		}
		log.Printf("fetch event failed: %v", err)
		return utils.InternalError(c, "Failed to fetch event")
	}
	return utils.Success(c, fiber.Map{"event": detail})
}

// ListPublicEvents lists events for discovery, optionally by category.
func (h *EventHandler) ListPublicEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListPublic(c.Context(), c.Query("category"))
	if err != nil {
		log.Printf("list public events failed: %v", err)
		return utils.InternalError(c, "Failed to fetch events")
	}

	formatted := make([]fiber.Map, 0, len(events))
	for _, e := range events {
		entry := fiber.Map{
			"id":           e.ID,
			"slug":         e.Slug,
			"title":        e.Title,
			"description":  e.Description,
			"category":     e.Category,
			"eventDate":    e.EventDate,
			"startTime":    e.StartTime,
			"endTime":      e.EndTime,
			"eventType":    e.EventType,
			"venue":        e.Venue,
			"location":     e.Location,
			"ticketType":   e.TicketType,
			"ticketPrice":  e.TicketPrice,
			"totalTickets": e.TotalTickets,
			"imageUrl":     e.ImageURL,
			"createdAt":    e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if e.Organizer != nil {
			entry["organizerName"] = e.Organizer.FullName()
		}
		formatted = append(formatted, entry)
	}

	return utils.Success(c, fiber.Map{"events": formatted})
}

// ListMyEvents lists the calling organizer's events.
func (h *EventHandler) ListMyEvents(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	events, err := h.eventService.ListByOrganizer(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("list organizer events failed: %v", err)
		return utils.InternalError(c, "Failed to fetch events")
	}
	return utils.Success(c, fiber.Map{"events": events})
}
