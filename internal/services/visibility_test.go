package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/models"
)

func TestCampaignFilterForAdmin(t *testing.T) {
	f, err := CampaignFilterFor(auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.SponsorID != nil || f.Status != nil || f.Visibility != nil || f.Search != nil {
		t.Errorf("admin filter should be unconstrained, got %+v", f)
	}
}

func TestCampaignFilterForSponsor(t *testing.T) {
	sponsorID := uuid.New()
	f, err := CampaignFilterFor(auth.Identity{UserID: sponsorID, Role: models.RoleSponsor}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.SponsorID == nil || *f.SponsorID != sponsorID {
		t.Errorf("sponsor filter must scope to own campaigns, got %+v", f)
	}
	if f.Status != nil || f.Visibility != nil {
		t.Errorf("sponsor filter must not constrain status or visibility, got %+v", f)
	}
}

func TestCampaignFilterForInfluencerDefault(t *testing.T) {
	f, err := CampaignFilterFor(auth.Identity{UserID: uuid.New(), Role: models.RoleInfluencer}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Visibility == nil || *f.Visibility != models.VisibilityPublic {
		t.Error("influencer default listing must be restricted to public campaigns")
	}
	if f.Status == nil || *f.Status != models.CampaignStatusOngoing {
		t.Error("influencer default listing must be restricted to ongoing campaigns")
	}
	if f.SponsorID != nil {
		t.Error("influencer listing must not be sponsor-scoped")
	}
}

func TestCampaignFilterForInfluencerSearch(t *testing.T) {
	// Search mode: the ongoing constraint is dropped so completed/cancelled
	// public campaigns match, but private campaigns never do.
	f, err := CampaignFilterFor(auth.Identity{UserID: uuid.New(), Role: models.RoleInfluencer}, "sale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Visibility == nil || *f.Visibility != models.VisibilityPublic {
		t.Error("influencer search must keep the public-only constraint")
	}
	if f.Status != nil {
		t.Error("influencer search must drop the ongoing constraint")
	}
	if f.Search == nil || *f.Search != "sale" {
		t.Errorf("search term not carried into filter: %+v", f)
	}
}

func TestCampaignFilterForUnknownRole(t *testing.T) {
	for _, role := range []string{"", "moderator", "bot"} {
		_, err := CampaignFilterFor(auth.Identity{UserID: uuid.New(), Role: role}, "")
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("role %q: want ErrForbidden, got %v", role, err)
		}
	}
}
