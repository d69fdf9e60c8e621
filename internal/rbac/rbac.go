package rbac

import "github.com/sponsorlink/backend/internal/models"

// Permission constants
const (
	PermViewAllUsers        = "view_all_users"
	PermViewAllCampaigns    = "view_all_campaigns"
	PermViewAllAdRequests   = "view_all_ad_requests"
	PermDeleteUser          = "delete_user"
	PermCreateCampaign      = "create_campaign"
	PermManageCampaign      = "manage_campaign"
	PermCreateAdRequest     = "create_ad_request"
	PermManageAdRequest     = "manage_ad_request"
	PermViewInfluencers     = "view_influencers"
	PermSendAdRequest       = "send_ad_request"
	PermViewPublicCampaigns = "view_public_campaigns"
	PermRespondAdRequest    = "respond_ad_request"
)

// RolePermissions defines what each role can do. Ownership and
// counter-party checks are enforced separately against the stored resource.
var RolePermissions = map[string][]string{
	models.RoleAdmin: {
		PermViewAllUsers, PermViewAllCampaigns, PermViewAllAdRequests,
		PermDeleteUser,
		// Admin is read-only oversight: no create/manage permissions.
	},
	models.RoleSponsor: {
		PermCreateCampaign, PermManageCampaign,
		PermCreateAdRequest, PermManageAdRequest,
		PermViewInfluencers, PermRespondAdRequest,
	},
	models.RoleInfluencer: {
		PermViewPublicCampaigns, PermSendAdRequest, PermRespondAdRequest,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
