package handlers

import (
	"errors"
	"log"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/services/kyc"
	"tixara/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type KycHandler struct {
	kycService kyc.Service
}

func NewKycHandler(kycService kyc.Service) *KycHandler {
	return &KycHandler{kycService: kycService}
}

// Submit upserts the caller's KYC request and moves them to pending review.
func (h *KycHandler) Submit(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input kyc.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	request, resubmitted, err := h.kycService.Submit(c.Context(), claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, kyc.ErrKycTypeRequired):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			log.Printf("kyc submit failed for user %d: %v", claims.UserID, err)
			return utils.InternalError(c, "Failed to submit KYC")
		}
	}

	message := "KYC submitted successfully"
	if resubmitted {
		message = "KYC updated and resubmitted for review"
	}
	return utils.Success(c, fiber.Map{
		"message":    message,
		"kycRequest": request,
	})
}

// Status reports the caller's verification state.
func (h *KycHandler) Status(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	status, err := h.kycService.Status(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		log.Printf("kyc status failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to fetch KYC status")
	}
	return utils.Success(c, status)
}
