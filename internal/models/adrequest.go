package models

import (
	"time"

	"github.com/google/uuid"
)

// Ad request statuses
const (
	AdRequestStatusPending  = "pending"
	AdRequestStatusAccepted = "accepted"
	AdRequestStatusRejected = "rejected"
)

// Who initiated the ad request. The responding side is always the
// counter-party of the creator.
const (
	CreatedBySponsor    = "sponsor"
	CreatedByInfluencer = "influencer"
)

// Valid state transitions: from -> []to. Accepted and rejected are terminal;
// a request never returns to pending.
var ValidAdRequestTransitions = map[string][]string{
	AdRequestStatusPending:  {AdRequestStatusAccepted, AdRequestStatusRejected},
	AdRequestStatusAccepted: {},
	AdRequestStatusRejected: {},
}

func IsValidAdRequestTransition(from, to string) bool {
	allowed, ok := ValidAdRequestTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ResponderRole returns the role allowed to accept or reject the request:
// the counter-party of whoever created it.
func ResponderRole(createdBy string) string {
	switch createdBy {
	case CreatedBySponsor:
		return RoleInfluencer
	case CreatedByInfluencer:
		return RoleSponsor
	default:
		return ""
	}
}

type AdRequest struct {
	ID            uuid.UUID `json:"id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	InfluencerID  uuid.UUID `json:"influencer_id"`
	Messages      *string   `json:"messages,omitempty"`
	Requirements  string    `json:"requirements"`
	PaymentAmount int64     `json:"payment_amount"`
	CreatedBy     string    `json:"created_by"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AdRequestWithCampaign embeds AdRequest and adds campaign info to avoid N+1 queries.
type AdRequestWithCampaign struct {
	AdRequest
	CampaignName    string    `json:"campaign_name"`
	CampaignStatus  string    `json:"campaign_status"`
	CampaignSponsor uuid.UUID `json:"campaign_sponsor_id"`
}
