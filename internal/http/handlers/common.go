package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/services"
)

// respondError maps the service failure taxonomy to HTTP statuses. Denials
// return a deliberately generic message so responses do not reveal which
// role or resource the check tripped on; the detail goes to the log.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "authentication required"})
	case errors.Is(err, services.ErrForbidden):
		log.Debug("access denied", zap.Error(err))
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "access denied"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error("internal error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
