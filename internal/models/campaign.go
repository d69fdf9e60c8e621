package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusOngoing   = "ongoing"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Campaign visibility
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

func IsValidCampaignStatus(status string) bool {
	return status == CampaignStatusOngoing || status == CampaignStatusCompleted || status == CampaignStatusCancelled
}

func IsValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Campaign struct {
	ID          uuid.UUID `json:"id"`
	SponsorID   uuid.UUID `json:"sponsor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      int64     `json:"budget"`
	Visibility  string    `json:"visibility"`
	Goals       *string   `json:"goals,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
