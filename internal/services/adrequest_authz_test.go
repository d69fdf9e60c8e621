package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/models"
)

func TestRespondAuthz(t *testing.T) {
	targetInfluencer := uuid.New()
	otherInfluencer := uuid.New()
	owningSponsor := uuid.New()
	otherSponsor := uuid.New()

	request := func(createdBy string) *models.AdRequestWithCampaign {
		return &models.AdRequestWithCampaign{
			AdRequest: models.AdRequest{
				ID:           uuid.New(),
				InfluencerID: targetInfluencer,
				CreatedBy:    createdBy,
				Status:       models.AdRequestStatusPending,
			},
			CampaignSponsor: owningSponsor,
		}
	}

	tests := []struct {
		name        string
		createdBy   string
		actor       auth.Identity
		strictOwner bool
		allowed     bool
	}{
		{
			name:      "sponsor-created, targeted influencer responds",
			createdBy: models.CreatedBySponsor,
			actor:     auth.Identity{UserID: targetInfluencer, Role: models.RoleInfluencer},
			allowed:   true,
		},
		{
			name:      "sponsor-created, another influencer is denied",
			createdBy: models.CreatedBySponsor,
			actor:     auth.Identity{UserID: otherInfluencer, Role: models.RoleInfluencer},
			allowed:   false,
		},
		{
			name:      "sponsor-created, owning sponsor may not respond to own request",
			createdBy: models.CreatedBySponsor,
			actor:     auth.Identity{UserID: owningSponsor, Role: models.RoleSponsor},
			allowed:   false,
		},
		{
			name:      "sponsor-created, admin is denied",
			createdBy: models.CreatedBySponsor,
			actor:     auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin},
			allowed:   false,
		},
		{
			name:      "influencer-created, owning sponsor responds",
			createdBy: models.CreatedByInfluencer,
			actor:     auth.Identity{UserID: owningSponsor, Role: models.RoleSponsor},
			allowed:   true,
		},
		{
			// Historical behavior: any sponsor session may respond.
			name:      "influencer-created, non-owning sponsor responds under loose policy",
			createdBy: models.CreatedByInfluencer,
			actor:     auth.Identity{UserID: otherSponsor, Role: models.RoleSponsor},
			allowed:   true,
		},
		{
			name:        "influencer-created, non-owning sponsor denied under strict policy",
			createdBy:   models.CreatedByInfluencer,
			actor:       auth.Identity{UserID: otherSponsor, Role: models.RoleSponsor},
			strictOwner: true,
			allowed:     false,
		},
		{
			name:        "influencer-created, owning sponsor still allowed under strict policy",
			createdBy:   models.CreatedByInfluencer,
			actor:       auth.Identity{UserID: owningSponsor, Role: models.RoleSponsor},
			strictOwner: true,
			allowed:     true,
		},
		{
			name:      "influencer-created, the proposing influencer may not respond",
			createdBy: models.CreatedByInfluencer,
			actor:     auth.Identity{UserID: targetInfluencer, Role: models.RoleInfluencer},
			allowed:   false,
		},
		{
			name:      "unknown creator is denied",
			createdBy: "admin",
			actor:     auth.Identity{UserID: targetInfluencer, Role: models.RoleInfluencer},
			allowed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RespondAuthz(request(tt.createdBy), tt.actor, tt.strictOwner)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatal("expected deny, got allow")
				}
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("deny should be ErrForbidden, got %v", err)
				}
			}
		})
	}
}
