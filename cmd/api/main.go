package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/db"
	"github.com/sponsorlink/backend/internal/events"
	apphttp "github.com/sponsorlink/backend/internal/http"
	"github.com/sponsorlink/backend/internal/http/handlers"
	"github.com/sponsorlink/backend/internal/repositories"
	"github.com/sponsorlink/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	adRequestRepo := repositories.NewAdRequestRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)

	// Services
	userService := services.NewUserService(userRepo, auditRepo, publisher, cfg, log)
	campaignService := services.NewCampaignService(campaignRepo, auditRepo, publisher, log)
	adRequestService := services.NewAdRequestService(adRequestRepo, campaignRepo, userRepo, auditRepo, publisher, cfg, log)
	dashboardService := services.NewDashboardService(userRepo, campaignRepo, adRequestRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, rdb, cfg, log)
	userHandler := handlers.NewUserHandler(userService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	adRequestHandler := handlers.NewAdRequestHandler(adRequestService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	adminHandler := handlers.NewAdminHandler(userService, auditRepo, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, userHandler, campaignHandler, adRequestHandler, dashboardHandler, adminHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
