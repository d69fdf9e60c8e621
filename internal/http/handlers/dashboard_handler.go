package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	log              *zap.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, log: log}
}

// Dashboard returns the aggregated view for the caller's role.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	identity := middleware.GetIdentity(c)

	var (
		data any
		err  error
	)
	switch identity.Role {
	case models.RoleAdmin:
		data, err = h.dashboardService.Admin(c.Context())
	case models.RoleSponsor:
		data, err = h.dashboardService.Sponsor(c.Context(), identity)
	case models.RoleInfluencer:
		data, err = h.dashboardService.Influencer(c.Context(), identity)
	default:
		return respondError(c, h.log, services.ErrForbidden)
	}
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: data})
}
