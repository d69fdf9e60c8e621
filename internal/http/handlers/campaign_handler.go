package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

// parseDate rejects malformed dates instead of coercing them.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: end_date is required", services.ErrValidation)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", services.ErrValidation)
	}
	return t, nil
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return respondError(c, h.log, err)
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		EndDate:     endDate,
		Budget:      req.Budget,
		Visibility:  req.Visibility,
		Goals:       req.Goals,
	}

	identity := middleware.GetIdentity(c)
	if err := h.campaignService.Create(c.Context(), identity, campaign); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	identity := middleware.GetIdentity(c)
	campaign, err := h.campaignService.GetByID(c.Context(), identity, id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// ListCampaigns returns the campaigns the caller may see. For influencers,
// ?search_query= switches to search mode (public campaigns of any status).
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	limit, offset := 20, 0
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

	identity := middleware.GetIdentity(c)
	campaigns, err := h.campaignService.ListFor(c.Context(), identity, c.Query("search_query"), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return respondError(c, h.log, err)
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		EndDate:     endDate,
		Budget:      req.Budget,
		Visibility:  req.Visibility,
		Goals:       req.Goals,
		Status:      req.Status,
	}

	identity := middleware.GetIdentity(c)
	if err := h.campaignService.Update(c.Context(), identity, id, campaign); err != nil {
		return respondError(c, h.log, err)
	}

	updated, err := h.campaignService.GetByID(c.Context(), identity, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	identity := middleware.GetIdentity(c)
	if err := h.campaignService.Delete(c.Context(), identity, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
