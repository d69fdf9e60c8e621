package services

import (
	"fmt"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/repositories"
)

// CampaignFilterFor computes which campaigns a viewer may list.
//
// Admins see everything. Sponsors see only their own. Influencers see
// ongoing public campaigns by default; supplying a search term drops the
// ongoing constraint (a search reaches completed and cancelled public
// campaigns too) but never the public one. Unknown roles are an
// authorization failure, not an empty list.
func CampaignFilterFor(viewer auth.Identity, search string) (repositories.CampaignFilter, error) {
	f := repositories.CampaignFilter{}
	if search != "" {
		f.Search = &search
	}

	switch viewer.Role {
	case models.RoleAdmin:
		return f, nil
	case models.RoleSponsor:
		sponsorID := viewer.UserID
		f.SponsorID = &sponsorID
		return f, nil
	case models.RoleInfluencer:
		visibility := models.VisibilityPublic
		f.Visibility = &visibility
		if search == "" {
			status := models.CampaignStatusOngoing
			f.Status = &status
		}
		return f, nil
	default:
		return repositories.CampaignFilter{}, fmt.Errorf("%w: role %q may not list campaigns", ErrForbidden, viewer.Role)
	}
}
