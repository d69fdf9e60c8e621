package events

import "context"

// Event types
const (
	EventAdRequestCreated       = "ad_request_created"
	EventAdRequestStatusChanged = "ad_request_status_changed"
	EventCampaignCreated        = "campaign_created"
	EventCampaignDeleted        = "campaign_deleted"
	EventUserDeleted            = "user_deleted"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}
