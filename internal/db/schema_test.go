package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The deletion contract lives in the schema: removing a user removes their
// campaigns and the ad requests targeting them, removing a campaign removes
// its ad requests. These assertions pin the clauses that carry it.
func TestInitSchemaConstraints(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "0001_init.up.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	ddl := strings.Join(strings.Fields(string(raw)), " ")

	tests := []struct {
		name     string
		fragment string
	}{
		{
			"campaigns cascade away with their sponsor",
			"sponsor_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE",
		},
		{
			"ad requests cascade away with their campaign",
			"campaign_id UUID NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE",
		},
		{
			"ad requests cascade away with their influencer",
			"influencer_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE",
		},
		{
			"role column is constrained",
			"CHECK (role IN ('admin', 'sponsor', 'influencer'))",
		},
		{
			"ad request status is constrained",
			"CHECK (status IN ('pending', 'accepted', 'rejected'))",
		},
		{
			"campaign dates are ordered",
			"CHECK (end_date >= start_date)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(ddl, tt.fragment) {
				t.Errorf("schema is missing %q", tt.fragment)
			}
		})
	}
}
