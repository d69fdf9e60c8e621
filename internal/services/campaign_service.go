package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/events"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/repositories"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		log:          log,
	}
}

func validateCampaign(c *models.Campaign) error {
	if c.Name == "" || c.Description == "" {
		return fmt.Errorf("%w: name and description are required", ErrValidation)
	}
	if c.EndDate.IsZero() {
		return fmt.Errorf("%w: end_date is required", ErrValidation)
	}
	if !c.StartDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end_date must not precede start_date", ErrValidation)
	}
	if !models.IsValidVisibility(c.Visibility) {
		return fmt.Errorf("%w: visibility must be public or private", ErrValidation)
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return fmt.Errorf("%w: invalid campaign status %q", ErrValidation, c.Status)
	}
	return nil
}

func (s *CampaignService) Create(ctx context.Context, actor auth.Identity, c *models.Campaign) error {
	c.SponsorID = actor.UserID
	if c.StartDate.IsZero() {
		c.StartDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if c.Status == "" {
		c.Status = models.CampaignStatusOngoing
	}
	if err := validateCampaign(c); err != nil {
		return err
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})
	_ = s.publisher.Publish(ctx, "events:campaign", events.Event{
		Type:    events.EventCampaignCreated,
		Payload: map[string]any{"campaign_id": c.ID.String(), "sponsor_id": c.SponsorID.String()},
	})

	return nil
}

// GetByID applies the per-role read rule: admins read anything, sponsors
// only their own campaigns, influencers any campaign (view only).
func (s *CampaignService) GetByID(ctx context.Context, actor auth.Identity, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	switch actor.Role {
	case models.RoleAdmin, models.RoleInfluencer:
		return c, nil
	case models.RoleSponsor:
		if c.SponsorID != actor.UserID {
			return nil, fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
		}
		return c, nil
	default:
		return nil, ErrForbidden
	}
}

func (s *CampaignService) ListFor(ctx context.Context, viewer auth.Identity, search string, limit, offset int) ([]models.Campaign, error) {
	f, err := CampaignFilterFor(viewer, search)
	if err != nil {
		return nil, err
	}
	f.Limit = limit
	f.Offset = offset
	return s.campaignRepo.List(ctx, f)
}

func (s *CampaignService) Update(ctx context.Context, actor auth.Identity, id uuid.UUID, c *models.Campaign) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}
	if existing.SponsorID != actor.UserID {
		return fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
	}

	c.ID = id
	c.SponsorID = existing.SponsorID
	c.StartDate = existing.StartDate
	if c.Status == "" {
		c.Status = existing.Status
	}
	if err := validateCampaign(c); err != nil {
		return err
	}

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "campaign_updated",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	return nil
}

func (s *CampaignService) Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}
	if existing.SponsorID != actor.UserID {
		return fmt.Errorf("%w: campaign belongs to another sponsor", ErrForbidden)
	}

	// Ad requests under the campaign go with it (FK cascade).
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "campaign_deleted",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	_ = s.publisher.Publish(ctx, "events:campaign", events.Event{
		Type:    events.EventCampaignDeleted,
		Payload: map[string]any{"campaign_id": id.String()},
	})
	return nil
}
