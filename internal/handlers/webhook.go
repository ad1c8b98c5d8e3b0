package handlers

import (
	"log"

	"tixara/internal/services/paystack"
	"tixara/internal/services/ticket"
	"tixara/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler receives gateway callbacks. This is the one endpoint with a
// security-relevant failure mode: it fails closed on signature mismatch.
type WebhookHandler struct {
	ticketService ticket.Service
	secret        string
}

func NewWebhookHandler(ticketService ticket.Service, secret string) *WebhookHandler {
	return &WebhookHandler{ticketService: ticketService, secret: secret}
}

// HandlePaystack verifies the HMAC signature over the exact raw body bytes
// before any parsing, then settles pending tickets on charge.success.
func (h *WebhookHandler) HandlePaystack(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(paystack.SignatureHeader)

	if !paystack.VerifySignature(h.secret, body, signature) {
		log.Printf("webhook rejected: invalid signature from %s", c.IP())
		return utils.Unauthorized(c, "Invalid signature")
	}

	event, err := paystack.ParseEvent(body)
	if err != nil {
		log.Printf("webhook payload parse failed: %v", err)
		return utils.InternalError(c, "Webhook processing failed")
	}

	if event.Event == paystack.EventChargeSuccess {
		if err := h.ticketService.ConfirmByReference(c.Context(), event.Data.Reference); err != nil {
			log.Printf("webhook reconciliation failed for %s: %v", event.Data.Reference, err)
			return utils.InternalError(c, "Webhook processing failed")
		}
	}

	return utils.Success(c, fiber.Map{"received": true})
}
