package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/services"
)

type AuthHandler struct {
	userService *services.UserService
	rdb         *redis.Client
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(userService *services.UserService, rdb *redis.Client, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, rdb: rdb, cfg: cfg, log: log}
}

// Register creates an account for the role given in the path:
// POST /auth/register/:role with role in {admin, sponsor, influencer}.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.userService.Register(c.Context(), services.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     c.Params("role"),
		Industry: req.Industry,
		Budget:   req.Budget,
		Category: req.Category,
		Niche:    req.Niche,
		Reach:    req.Reach,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Role, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

// Logout revokes the presented token: its id is held in redis until the
// token would have expired anyway.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenID := middleware.GetTokenID(c)
	if tokenID != "" {
		if err := h.rdb.Set(c.Context(), middleware.RevokedTokenKey(tokenID), "1", h.cfg.JWTExpiration).Err(); err != nil {
			h.log.Error("failed to revoke token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
