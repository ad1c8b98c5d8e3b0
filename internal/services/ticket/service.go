// Package ticket implements ticket purchase, webhook reconciliation and
// ticket rendering.
package ticket

import (
	"context"
	"errors"
	"log"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/utils"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentStatusSuccess is the caller-supplied status that confirms a ticket
// immediately. Anything else leaves it pending until the gateway webhook
// settles it.
const PaymentStatusSuccess = "success"

var ErrMissingFields = errors.New("userId and eventId are required, and paid purchases need a paymentReference")

// PurchaseInput carries a purchase request. For free events the reference,
// amount and status are synthesized server-side; any caller-supplied values
// are ignored.
type PurchaseInput struct {
	UserID           uint    `json:"userId"`
	EventID          uint    `json:"eventId"`
	PaymentReference string  `json:"paymentReference"`
	Amount           float64 `json:"amount"`
	PaymentStatus    string  `json:"paymentStatus"`
}

type Service interface {
	// Purchase reserves capacity and creates the ticket row. Returns
	// repositories.ErrSoldOut when no capacity remains; no ticket row is
	// created in that case.
	Purchase(ctx context.Context, input PurchaseInput) (*models.PurchasedTicket, error)

	// ConfirmByReference promotes the pending ticket recorded for a gateway
	// reference to confirmed. Unknown references are a silent no-op.
	ConfirmByReference(ctx context.Context, reference string) error

	// ListForUser returns a user's tickets, newest first.
	ListForUser(ctx context.Context, userID uint) ([]*models.Ticket, error)

	// RenderQR returns a PNG QR image of the ticket code.
	RenderQR(ctx context.Context, code string) ([]byte, error)
}

type service struct {
	ticketRepo repositories.TicketRepository
	eventRepo  repositories.EventRepository
	userRepo   repositories.UserRepository
}

// NewService creates a new ticket Service.
func NewService(ticketRepo repositories.TicketRepository, eventRepo repositories.EventRepository, userRepo repositories.UserRepository) Service {
	return &service{ticketRepo: ticketRepo, eventRepo: eventRepo, userRepo: userRepo}
}

func (s *service) Purchase(ctx context.Context, input PurchaseInput) (*models.PurchasedTicket, error) {
	if input.UserID == 0 || input.EventID == 0 {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, err
	}

	// Free events never touch the gateway: the reference is synthesized here
	// and the ticket confirms immediately.
	if event.TicketType == models.TicketTypeFree {
		input.PaymentReference = utils.GeneratePaymentReference()
		input.Amount = 0
		input.PaymentStatus = PaymentStatusSuccess
	} else if input.PaymentReference == "" {
		return nil, ErrMissingFields
	}

	// Check and increment are one guarded statement, so two buyers of the
	// last ticket cannot both get past this point.
	if err := s.eventRepo.ReserveTicket(event); err != nil {
		return nil, err
	}

	status := models.TicketStatusPending
	if input.PaymentStatus == PaymentStatusSuccess {
		status = models.TicketStatusConfirmed
	}

	ticket := &models.Ticket{
		EventID:          event.ID,
		UserID:           user.ID,
		TicketCode:       utils.GenerateTicketCode(),
		PaymentReference: input.PaymentReference,
		AmountPaid:       input.Amount,
		Status:           status,
		PurchaseDate:     time.Now(),
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		// Give the reserved slot back so the failed insert does not leak
		// capacity.
		if releaseErr := s.eventRepo.ReleaseTicket(event); releaseErr != nil {
			log.Printf("failed to release ticket slot for event %d: %v", event.ID, releaseErr)
		}
		return nil, err
	}

	return &models.PurchasedTicket{
		ID:         ticket.ID,
		TicketCode: ticket.TicketCode,
		Status:     ticket.Status,
		AmountPaid: ticket.AmountPaid,
		Event: &models.TicketEventSummary{
			Title:     event.Title,
			EventDate: event.EventDate,
			StartTime: event.StartTime,
			Venue:     event.Venue,
			Location:  event.Location,
		},
		User: &models.TicketUserSummary{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	}, nil
}

func (s *service) ConfirmByReference(ctx context.Context, reference string) error {
	ticket, err := s.ticketRepo.GetPendingByReference(reference)
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			// Nothing pending for this reference. The charge may have been
			// confirmed synchronously at purchase time.
			log.Printf("webhook: no pending ticket for reference %s", reference)
			return nil
		}
		return err
	}
	return s.ticketRepo.UpdateStatus(ticket.ID, models.TicketStatusConfirmed)
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*models.Ticket, error) {
	return s.ticketRepo.ListByUser(userID)
}

func (s *service) RenderQR(ctx context.Context, code string) ([]byte, error) {
	ticket, err := s.ticketRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(ticket.TicketCode, qrcode.Medium, 256)
}
