package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/http/dto"
	"github.com/sponsorlink/backend/internal/middleware"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/services"
)

type AdRequestHandler struct {
	adRequestService *services.AdRequestService
	log              *zap.Logger
}

func NewAdRequestHandler(adRequestService *services.AdRequestService, log *zap.Logger) *AdRequestHandler {
	return &AdRequestHandler{adRequestService: adRequestService, log: log}
}

// CreateForCampaign serves both entry points: a sponsor targets an
// influencer on an owned campaign, an influencer proposes terms on a public
// campaign. created_by is derived from the caller's role, never the body.
func (h *AdRequestHandler) CreateForCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.CreateAdRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	identity := middleware.GetIdentity(c)
	in := services.CreateAdRequestInput{
		Messages:      req.Messages,
		Requirements:  req.Requirements,
		PaymentAmount: req.PaymentAmount,
	}
	if identity.Role == models.RoleSponsor {
		influencerID, err := uuid.Parse(req.InfluencerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer_id"})
		}
		in.InfluencerID = influencerID
	}

	adRequest, err := h.adRequestService.Create(c.Context(), identity, campaignID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: adRequest})
}

func (h *AdRequestHandler) ListForCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	identity := middleware.GetIdentity(c)
	requests, err := h.adRequestService.ListForCampaign(c.Context(), identity, campaignID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}

func (h *AdRequestHandler) UpdateAdRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad request id"})
	}

	var req dto.UpdateAdRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	identity := middleware.GetIdentity(c)
	updated, err := h.adRequestService.Update(c.Context(), identity, id, services.UpdateAdRequestInput{
		Messages:      req.Messages,
		Requirements:  req.Requirements,
		PaymentAmount: req.PaymentAmount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *AdRequestHandler) DeleteAdRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad request id"})
	}

	identity := middleware.GetIdentity(c)
	if err := h.adRequestService.Delete(c.Context(), identity, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AdRequestHandler) AcceptAdRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad request id"})
	}

	identity := middleware.GetIdentity(c)
	if err := h.adRequestService.Accept(c.Context(), identity, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AdRequestHandler) RejectAdRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad request id"})
	}

	identity := middleware.GetIdentity(c)
	if err := h.adRequestService.Reject(c.Context(), identity, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
