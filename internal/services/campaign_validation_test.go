package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sponsorlink/backend/internal/models"
)

func TestValidateCampaign(t *testing.T) {
	day := 24 * time.Hour
	base := func() *models.Campaign {
		start := time.Now().UTC().Truncate(day)
		return &models.Campaign{
			Name:        "Spring Launch",
			Description: "Product launch push",
			StartDate:   start,
			EndDate:     start.Add(14 * day),
			Visibility:  models.VisibilityPublic,
			Status:      models.CampaignStatusOngoing,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *models.Campaign)
		valid  bool
	}{
		{"valid campaign", func(c *models.Campaign) {}, true},
		{"end date equals start date", func(c *models.Campaign) { c.EndDate = c.StartDate }, true},
		{"missing name", func(c *models.Campaign) { c.Name = "" }, false},
		{"missing description", func(c *models.Campaign) { c.Description = "" }, false},
		{"missing end date", func(c *models.Campaign) { c.EndDate = time.Time{} }, false},
		{"end date before start date", func(c *models.Campaign) { c.EndDate = c.StartDate.Add(-day) }, false},
		{"bad visibility", func(c *models.Campaign) { c.Visibility = "secret" }, false},
		{"bad status", func(c *models.Campaign) { c.Status = "paused" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := validateCampaign(c)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("want ErrValidation, got %v", err)
				}
			}
		})
	}
}
