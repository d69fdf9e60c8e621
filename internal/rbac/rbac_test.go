package rbac

import (
	"testing"

	"github.com/sponsorlink/backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{models.RoleAdmin, PermViewAllUsers, true},
		{models.RoleAdmin, PermViewAllCampaigns, true},
		{models.RoleAdmin, PermViewAllAdRequests, true},
		{models.RoleAdmin, PermDeleteUser, true},
		{models.RoleAdmin, PermCreateCampaign, false},
		{models.RoleAdmin, PermManageAdRequest, false},

		{models.RoleSponsor, PermCreateCampaign, true},
		{models.RoleSponsor, PermManageCampaign, true},
		{models.RoleSponsor, PermCreateAdRequest, true},
		{models.RoleSponsor, PermViewInfluencers, true},
		{models.RoleSponsor, PermRespondAdRequest, true},
		{models.RoleSponsor, PermViewAllUsers, false},
		{models.RoleSponsor, PermSendAdRequest, false},

		{models.RoleInfluencer, PermViewPublicCampaigns, true},
		{models.RoleInfluencer, PermSendAdRequest, true},
		{models.RoleInfluencer, PermRespondAdRequest, true},
		{models.RoleInfluencer, PermCreateCampaign, false},
		{models.RoleInfluencer, PermViewInfluencers, false},
		{models.RoleInfluencer, PermDeleteUser, false},

		// Unknown roles have no permissions
		{"moderator", PermViewAllUsers, false},
		{"", PermSendAdRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestAllRolesHavePermissionEntry(t *testing.T) {
	for _, role := range []string{models.RoleAdmin, models.RoleSponsor, models.RoleInfluencer} {
		if _, ok := RolePermissions[role]; !ok {
			t.Errorf("role %q missing from RolePermissions map", role)
		}
	}
}
