package handlers

import (
	"errors"
	"log"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/services/ticket"
	"tixara/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	ticketService ticket.Service
}

func NewTicketHandler(ticketService ticket.Service) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// PurchaseTicket claims capacity on an event for the caller. For paid events
// the client completes the gateway popup first and passes its reference here;
// free events pass a synthetic success status.
func (h *TicketHandler) PurchaseTicket(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input ticket.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	purchased, err := h.ticketService.Purchase(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingFields):
			return utils.BadRequest(c, "Missing required fields")
		case errors.Is(err, repositories.ErrEventNotFound):
			return utils.NotFound(c, "Event not found")
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, repositories.ErrSoldOut):
			return utils.BadRequest(c, "Event is sold out")
		default:
			log.Printf("ticket purchase failed: %v", err)
			return utils.InternalError(c, "Failed to purchase ticket")
		}
	}

	return utils.Created(c, fiber.Map{
		"success": true,
		"message": "Ticket purchased successfully",
		"ticket":  purchased,
	})
}

// GetMyTickets lists the caller's tickets with event summaries.
func (h *TicketHandler) GetMyTickets(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	tickets, err := h.ticketService.ListForUser(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("list tickets failed: %v", err)
		return utils.InternalError(c, "Failed to fetch tickets")
	}
	return utils.Success(c, fiber.Map{"tickets": tickets})
}

// GetTicketQR renders the ticket code as a PNG QR image.
func (h *TicketHandler) GetTicketQR(c *fiber.Ctx) error {
	png, err := h.ticketService.RenderQR(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return utils.NotFound(c, "Ticket not found")
		}
		log.Printf("render ticket qr failed: %v", err)
		return utils.InternalError(c, "Failed to render ticket")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
