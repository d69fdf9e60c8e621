package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/events"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/repositories"
)

type AdRequestService struct {
	adRequestRepo *repositories.AdRequestRepo
	campaignRepo  *repositories.CampaignRepo
	userRepo      *repositories.UserRepo
	auditRepo     *repositories.AuditRepo
	publisher     events.Publisher
	cfg           *config.Config
	log           *zap.Logger
}

func NewAdRequestService(
	adRequestRepo *repositories.AdRequestRepo,
	campaignRepo *repositories.CampaignRepo,
	userRepo *repositories.UserRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *AdRequestService {
	return &AdRequestService{
		adRequestRepo: adRequestRepo,
		campaignRepo:  campaignRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		publisher:     publisher,
		cfg:           cfg,
		log:           log,
	}
}

// RespondAuthz decides whether actor may move a pending ad request to a
// terminal status. The permitted responder is always the counter-party of
// the creator:
//
//   - created by sponsor: only the targeted influencer;
//   - created by influencer: only a sponsor. Historically any sponsor
//     session qualifies; requireCampaignOwner narrows it to the sponsor
//     owning the parent campaign.
//
// Pure decision function; it never touches storage.
func RespondAuthz(a *models.AdRequestWithCampaign, actor auth.Identity, requireCampaignOwner bool) error {
	switch a.CreatedBy {
	case models.CreatedBySponsor:
		if actor.Role != models.RoleInfluencer {
			return fmt.Errorf("%w: only the targeted influencer may respond to a sponsor-created request", ErrForbidden)
		}
		if actor.UserID != a.InfluencerID {
			return fmt.Errorf("%w: ad request targets another influencer", ErrForbidden)
		}
	case models.CreatedByInfluencer:
		if actor.Role != models.RoleSponsor {
			return fmt.Errorf("%w: only a sponsor may respond to an influencer-created request", ErrForbidden)
		}
		if requireCampaignOwner && actor.UserID != a.CampaignSponsor {
			return fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: unknown creator %q", ErrForbidden, a.CreatedBy)
	}
	return nil
}

type CreateAdRequestInput struct {
	InfluencerID  uuid.UUID // ignored for influencer-initiated requests
	Messages      *string
	Requirements  string
	PaymentAmount int64
}

// Create records a new pending ad request. Sponsors create requests on
// campaigns they own, picking a target influencer; influencers propose terms
// on a public campaign, targeting themselves. created_by follows the actor's
// role.
func (s *AdRequestService) Create(ctx context.Context, actor auth.Identity, campaignID uuid.UUID, in CreateAdRequestInput) (*models.AdRequest, error) {
	if in.Requirements == "" {
		return nil, fmt.Errorf("%w: requirements are required", ErrValidation)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	a := &models.AdRequest{
		CampaignID:    campaignID,
		Messages:      in.Messages,
		Requirements:  in.Requirements,
		PaymentAmount: in.PaymentAmount,
		Status:        models.AdRequestStatusPending,
	}

	switch actor.Role {
	case models.RoleSponsor:
		if campaign.SponsorID != actor.UserID {
			return nil, fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
		}
		target, err := s.userRepo.GetByID(ctx, in.InfluencerID)
		if err != nil {
			return nil, fmt.Errorf("influencer: %w", notFoundOr(err))
		}
		if target.Role != models.RoleInfluencer {
			return nil, fmt.Errorf("%w: target user is not an influencer", ErrValidation)
		}
		a.InfluencerID = target.ID
		a.CreatedBy = models.CreatedBySponsor
	case models.RoleInfluencer:
		if campaign.Visibility != models.VisibilityPublic {
			return nil, fmt.Errorf("%w: campaign is not public", ErrForbidden)
		}
		a.InfluencerID = actor.UserID
		a.CreatedBy = models.CreatedByInfluencer
	default:
		return nil, fmt.Errorf("%w: role %q may not create ad requests", ErrForbidden, actor.Role)
	}

	if err := s.adRequestRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "ad_request_created",
		EntityType:  "ad_request",
		EntityID:    &a.ID,
		Meta:        map[string]any{"created_by": a.CreatedBy, "campaign_id": campaignID.String()},
	})
	_ = s.publisher.Publish(ctx, "events:ad_request", events.Event{
		Type: events.EventAdRequestCreated,
		Payload: map[string]any{
			"ad_request_id": a.ID.String(),
			"campaign_id":   campaignID.String(),
			"influencer_id": a.InfluencerID.String(),
			"created_by":    a.CreatedBy,
		},
	})

	return a, nil
}

// ListForCampaign scopes the listing to the caller: the owning sponsor sees
// every request under the campaign, an influencer only the ones targeting
// them, an admin everything.
func (s *AdRequestService) ListForCampaign(ctx context.Context, actor auth.Identity, campaignID uuid.UUID) ([]models.AdRequest, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	f := repositories.AdRequestFilter{CampaignID: &campaignID, Limit: 100}
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleSponsor:
		if campaign.SponsorID != actor.UserID {
			return nil, fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
		}
	case models.RoleInfluencer:
		influencerID := actor.UserID
		f.InfluencerID = &influencerID
	default:
		return nil, ErrForbidden
	}

	return s.adRequestRepo.List(ctx, f)
}

type UpdateAdRequestInput struct {
	Messages      *string
	Requirements  string
	PaymentAmount int64
}

// Update edits the negotiable fields. Only the sponsor owning the parent
// campaign may edit.
func (s *AdRequestService) Update(ctx context.Context, actor auth.Identity, id uuid.UUID, in UpdateAdRequestInput) (*models.AdRequest, error) {
	if in.Requirements == "" {
		return nil, fmt.Errorf("%w: requirements are required", ErrValidation)
	}

	existing, err := s.adRequestRepo.GetByIDWithCampaign(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if existing.CampaignSponsor != actor.UserID {
		return nil, fmt.Errorf("%w: ad request belongs to another sponsor's campaign", ErrForbidden)
	}

	a := existing.AdRequest
	a.Messages = in.Messages
	a.Requirements = in.Requirements
	a.PaymentAmount = in.PaymentAmount
	if err := s.adRequestRepo.Update(ctx, &a); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "ad_request_updated",
		EntityType:  "ad_request",
		EntityID:    &id,
	})
	return &a, nil
}

// Delete removes an ad request. Only the sponsor owning the parent campaign
// may delete.
func (s *AdRequestService) Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	existing, err := s.adRequestRepo.GetByIDWithCampaign(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}
	if existing.CampaignSponsor != actor.UserID {
		return fmt.Errorf("%w: ad request belongs to another sponsor's campaign", ErrForbidden)
	}

	if err := s.adRequestRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "ad_request_deleted",
		EntityType:  "ad_request",
		EntityID:    &id,
	})
	return nil
}

func (s *AdRequestService) Accept(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	return s.respond(ctx, actor, id, models.AdRequestStatusAccepted)
}

func (s *AdRequestService) Reject(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	return s.respond(ctx, actor, id, models.AdRequestStatusRejected)
}

func (s *AdRequestService) respond(ctx context.Context, actor auth.Identity, id uuid.UUID, to string) error {
	a, err := s.adRequestRepo.GetByIDWithCampaign(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}

	if !models.IsValidAdRequestTransition(a.Status, to) {
		return fmt.Errorf("%w: ad request is already %s", ErrConflict, a.Status)
	}
	if err := RespondAuthz(a, actor, s.cfg.RespondRequireCampaignOwner); err != nil {
		return err
	}

	// Conditional single-row update: a racing response loses here instead of
	// overwriting a terminal status.
	if err := s.adRequestRepo.UpdateStatus(ctx, id, a.Status, to); err != nil {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	oldStatus := a.Status
	a.Status = to

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      fmt.Sprintf("ad_request_%s_to_%s", oldStatus, to),
		EntityType:  "ad_request",
		EntityID:    &id,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": to},
	})
	_ = s.publisher.Publish(ctx, "events:ad_request", events.Event{
		Type: events.EventAdRequestStatusChanged,
		Payload: map[string]any{
			"ad_request_id": id.String(),
			"old_status":    oldStatus,
			"new_status":    to,
		},
	})

	return nil
}
