// Package routes wires repositories, services and handlers into the
// Fiber route tree.
package routes

import (
	"tixara/internal/config"
	"tixara/internal/handlers"
	"tixara/internal/middleware"
	"tixara/internal/repositories"
	"tixara/internal/services/auth"
	"tixara/internal/services/dashboard"
	"tixara/internal/services/event"
	"tixara/internal/services/kyc"
	"tixara/internal/services/ticket"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes, grouped by audience:
// public, authenticated and admin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	eventRepo := repositories.NewEventRepository(db, repositories.CacheService)
	ticketRepo := repositories.NewTicketRepository(db)
	kycRepo := repositories.NewKycRepository(db)

	// Services
	authService := auth.NewService(userRepo)
	eventService := event.NewService(eventRepo)
	kycService := kyc.NewService(kycRepo, userRepo)
	ticketService := ticket.NewService(ticketRepo, eventRepo, userRepo)
	dashboardService := dashboard.NewService(db, userRepo, kycRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	kycHandler := handlers.NewKycHandler(kycService)
	adminHandler := handlers.NewAdminHandler(userRepo, eventService, kycService, dashboardService)
	webhookHandler := handlers.NewWebhookHandler(ticketService, config.GetEnv("PAYSTACK_SECRET_KEY", ""))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Tixara API",
			"version": "1.0.0",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/events", eventHandler.ListPublicEvents)
	api.Get("/events/:slug", eventHandler.GetEvent)

	// Payment gateway callbacks are authenticated by signature, not JWT.
	app.Post("/webhooks/paystack", webhookHandler.HandlePaystack)

	// Authenticated endpoints
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)

	protected.Post("/events", middleware.OrganizerOnly, eventHandler.CreateEvent)
	protected.Get("/my-events", middleware.OrganizerOnly, eventHandler.ListMyEvents)

	protected.Post("/tickets/purchase", ticketHandler.PurchaseTicket)
	protected.Get("/my-tickets", ticketHandler.GetMyTickets)
	protected.Get("/tickets/:code/qr", ticketHandler.GetTicketQR)

	protected.Post("/kyc/submit", middleware.OrganizerOnly, kycHandler.Submit)
	protected.Get("/kyc/status", kycHandler.Status)

	setupAdminRoutes(app, authMiddleware, adminHandler)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, h *handlers.AdminHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminOnly)

	admin.Get("/dashboard", h.Dashboard)

	admin.Get("/kyc", h.ListKycRequests)
	admin.Post("/kyc/review", h.ReviewKyc)

	admin.Get("/admins", h.ListAdmins)
	admin.Post("/admins", h.CreateAdmin)
	admin.Post("/admins/revoke", h.RevokeAdmin)

	admin.Get("/users", h.ListUsers)
	admin.Patch("/users", h.UpdateUser)
	admin.Delete("/users", h.DeleteUser)

	admin.Get("/events", h.ListEvents)
	admin.Delete("/events/:id", h.DeleteEvent)
}
