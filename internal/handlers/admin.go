package handlers

import (
	"errors"
	"log"
	"strconv"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/services/dashboard"
	"tixara/internal/services/event"
	"tixara/internal/services/kyc"
	"tixara/internal/utils"
	"tixara/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler serves the admin console: dashboards, KYC review and
// user/admin/event management. All routes behind AdminOnly middleware.
type AdminHandler struct {
	userRepo         repositories.UserRepository
	eventService     event.Service
	kycService       kyc.Service
	dashboardService dashboard.Service
}

func NewAdminHandler(userRepo repositories.UserRepository, eventService event.Service, kycService kyc.Service, dashboardService dashboard.Service) *AdminHandler {
	return &AdminHandler{
		userRepo:         userRepo,
		eventService:     eventService,
		kycService:       kycService,
		dashboardService: dashboardService,
	}
}

// Dashboard returns aggregate platform stats with a recent-activity feed.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.Admin(c.Context())
	if err != nil {
		log.Printf("admin dashboard failed: %v", err)
		return utils.InternalError(c, "Failed to fetch dashboard data")
	}
	return utils.Success(c, data)
}

// ListKycRequests returns the review queue, newest first.
func (h *AdminHandler) ListKycRequests(c *fiber.Ctx) error {
	requests, err := h.kycService.List(c.Context())
	if err != nil {
		log.Printf("list kyc requests failed: %v", err)
		return utils.InternalError(c, "Failed to fetch KYC requests")
	}
	return utils.Success(c, fiber.Map{"kycRequests": requests})
}

// ReviewKyc approves or rejects a pending verification.
func (h *AdminHandler) ReviewKyc(c *fiber.Ctx) error {
	var input struct {
		UserID          uint   `json:"userId"`
		Action          string `json:"action"`
		SplitCode       string `json:"splitCode"`
		RejectionReason string `json:"rejectionReason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 {
		return utils.BadRequest(c, "User ID is required")
	}

	switch input.Action {
	case "approve":
		if err := h.kycService.Approve(c.Context(), input.UserID, input.SplitCode); err != nil {
			if errors.Is(err, kyc.ErrSplitCodeRequired) {
				return utils.BadRequest(c, "Split code is required for approval")
			}
			if errors.Is(err, repositories.ErrUserNotFound) {
				return utils.NotFound(c, "User not found")
			}
			log.Printf("kyc approve failed for user %d: %v", input.UserID, err)
			return utils.InternalError(c, "Failed to process KYC")
		}
		return utils.Success(c, fiber.Map{"message": "KYC approved and split code assigned"})
	case "reject":
		if err := h.kycService.Reject(c.Context(), input.UserID, input.RejectionReason); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return utils.NotFound(c, "User not found")
			}
			log.Printf("kyc reject failed for user %d: %v", input.UserID, err)
			return utils.InternalError(c, "Failed to process KYC")
		}
		return utils.Success(c, fiber.Map{"message": "KYC rejected"})
	default:
		return utils.BadRequest(c, "Invalid action")
	}
}

// ListAdmins returns every account holding the admin flag.
func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.userRepo.ListAdmins()
	if err != nil {
		log.Printf("list admins failed: %v", err)
		return utils.InternalError(c, "Failed to fetch admins")
	}

	public := make([]models.PublicUser, 0, len(admins))
	for _, admin := range admins {
		public = append(public, admin.Public())
	}
	return utils.Success(c, fiber.Map{"admins": public})
}

// CreateAdmin provisions a new admin account.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var input struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("firstName", input.FirstName)
	v.Required("lastName", input.LastName)
	v.Required("email", input.Email)
	v.Required("password", input.Password)
	if input.Password != "" {
		v.MinLength("password", input.Password, validation.MinPasswordLength)
	}
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalError(c, "Failed to create admin account")
	}

	admin := &models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    string(hashedPassword),
		AccountType: models.AccountTypeOrganizer,
		IsAdmin:     true,
		KycStatus:   models.KycStatusNotSubmitted,
	}
	if err := h.userRepo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.BadRequest(c, "Email already registered")
		}
		log.Printf("create admin failed: %v", err)
		return utils.InternalError(c, "Failed to create admin account")
	}

	return utils.Created(c, fiber.Map{
		"success": true,
		"message": "Admin account created successfully",
		"admin":   admin.Public(),
	})
}

// RevokeAdmin removes the admin flag. The last remaining admin can never be
// revoked.
func (h *AdminHandler) RevokeAdmin(c *fiber.Ctx) error {
	var input struct {
		UserID uint `json:"userId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 {
		return utils.BadRequest(c, "User ID is required")
	}

	if err := h.userRepo.SetAdmin(input.UserID, false); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLastAdmin):
			return utils.BadRequest(c, "Cannot revoke the last admin account")
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			log.Printf("revoke admin failed for user %d: %v", input.UserID, err)
			return utils.InternalError(c, "Failed to revoke admin privileges")
		}
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"message": "Admin privileges revoked successfully",
	})
}

// ListUsers returns a page of users filtered by role: organizer, attendee
// or admin.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	pagination := utils.GetPagination(c, 1, 20)

	users, total, err := h.userRepo.List(c.Query("filter"), pagination.Offset, pagination.Limit)
	if err != nil {
		log.Printf("list users failed: %v", err)
		return utils.InternalError(c, "Failed to fetch users")
	}
	pagination.SetTotal(total)

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return utils.Success(c, utils.NewPaginatedResponse(public, pagination))
}

// UpdateUser grants or revokes the admin flag on a user.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var input struct {
		UserID  uint  `json:"userId"`
		IsAdmin *bool `json:"isAdmin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 || input.IsAdmin == nil {
		return utils.BadRequest(c, "User ID and isAdmin are required")
	}

	if err := h.userRepo.SetAdmin(input.UserID, *input.IsAdmin); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLastAdmin):
			return utils.BadRequest(c, "Cannot revoke the last admin account")
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			log.Printf("update user %d failed: %v", input.UserID, err)
			return utils.InternalError(c, "Failed to update user")
		}
	}

	return utils.Success(c, fiber.Map{"success": true})
}

// DeleteUser removes a user without events; their KYC request goes with them.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	var input struct {
		UserID uint `json:"userId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 {
		return utils.BadRequest(c, "User ID is required")
	}

	if err := h.userRepo.Delete(input.UserID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserHasEvents):
			return utils.BadRequest(c, "Cannot delete user with existing events")
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			log.Printf("delete user %d failed: %v", input.UserID, err)
			return utils.InternalError(c, "Failed to delete user")
		}
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

// ListEvents returns all events, filtered by all|upcoming|past.
func (h *AdminHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventService.List(c.Context(), c.Query("filter"))
	if err != nil {
		log.Printf("admin list events failed: %v", err)
		return utils.InternalError(c, "Failed to fetch events")
	}

	formatted := make([]fiber.Map, 0, len(events))
	for _, e := range events {
		entry := fiber.Map{
			"id":           e.ID,
			"slug":         e.Slug,
			"title":        e.Title,
			"category":     e.Category,
			"eventDate":    e.EventDate,
			"eventType":    e.EventType,
			"ticketType":   e.TicketType,
			"totalTickets": e.TotalTickets,
			"ticketsSold":  e.TicketsSold,
		}
		if e.Organizer != nil {
			entry["organizer"] = fiber.Map{
				"name":  e.Organizer.FullName(),
				"email": e.Organizer.Email,
			}
		}
		formatted = append(formatted, entry)
	}
	return utils.Success(c, fiber.Map{"events": formatted})
}

// DeleteEvent removes an event and its tickets.
func (h *AdminHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Event ID is required")
	}

	if err := h.eventService.Delete(c.Context(), uint(eventID)); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return utils.NotFound(c, "Event not found")
		}
		log.Printf("delete event %d failed: %v", eventID, err)
		return utils.InternalError(c, "Failed to delete event")
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}
