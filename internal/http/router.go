package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/http/handlers"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/rbac"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	adRequestHandler *handlers.AdRequestHandler,
	dashboardHandler *handlers.DashboardHandler,
	adminHandler *handlers.AdminHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute, log))

	// Auth (public)
	api.Post("/auth/register/:role", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, rdb, log))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/me", userHandler.GetMe)
	protected.Get("/dashboard", dashboardHandler.Dashboard)

	// Campaigns: listing and single view are visibility-filtered per role
	// inside the services; mutations are sponsor-only routes.
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Post("/campaigns", middleware.RequirePermission(rbac.PermCreateCampaign), campaignHandler.CreateCampaign)
	protected.Put("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.DeleteCampaign)

	// Ad requests. Creation and listing are shared between sponsor and
	// influencer; the service derives created_by and scoping from the role.
	protected.Post("/campaigns/:id/adrequests", adRequestHandler.CreateForCampaign)
	protected.Get("/campaigns/:id/adrequests", adRequestHandler.ListForCampaign)
	protected.Put("/adrequests/:id", middleware.RequirePermission(rbac.PermManageAdRequest), adRequestHandler.UpdateAdRequest)
	protected.Delete("/adrequests/:id", middleware.RequirePermission(rbac.PermManageAdRequest), adRequestHandler.DeleteAdRequest)
	protected.Post("/adrequests/:id/accept", middleware.RequirePermission(rbac.PermRespondAdRequest), adRequestHandler.AcceptAdRequest)
	protected.Post("/adrequests/:id/reject", middleware.RequirePermission(rbac.PermRespondAdRequest), adRequestHandler.RejectAdRequest)

	// Influencer pool (sponsor view)
	sponsor := protected.Group("", middleware.RequirePermission(rbac.PermViewInfluencers))
	sponsor.Get("/influencers", userHandler.ListInfluencers)
	sponsor.Get("/influencers/:id", userHandler.GetInfluencer)

	// Admin oversight
	admin := protected.Group("/admin", middleware.RequirePermission(rbac.PermViewAllUsers))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/audit/:entityType/:id", adminHandler.GetAuditLog)
}
