package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/repositories"
	"github.com/sponsorlink/backend/internal/services"
)

type AdminHandler struct {
	userService *services.UserService
	auditRepo   *repositories.AuditRepo
	log         *zap.Logger
}

func NewAdminHandler(userService *services.UserService, auditRepo *repositories.AuditRepo, log *zap.Logger) *AdminHandler {
	return &AdminHandler{userService: userService, auditRepo: auditRepo, log: log}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := 50, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	users, err := h.userService.ListAll(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: users})
}

// DeleteUser removes an account; the user's campaigns and targeted ad
// requests cascade away with it.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	identity := middleware.GetIdentity(c)
	if err := h.userService.Delete(c.Context(), identity, id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AdminHandler) GetAuditLog(c *fiber.Ctx) error {
	entityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid entity id"})
	}

	logs, err := h.auditRepo.GetByEntity(c.Context(), c.Params("entityType"), entityID, 50, 0)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: logs})
}
