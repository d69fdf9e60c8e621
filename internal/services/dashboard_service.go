package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/repositories"
)

type DashboardService struct {
	userRepo      *repositories.UserRepo
	campaignRepo  *repositories.CampaignRepo
	adRequestRepo *repositories.AdRequestRepo
	log           *zap.Logger
}

func NewDashboardService(
	userRepo *repositories.UserRepo,
	campaignRepo *repositories.CampaignRepo,
	adRequestRepo *repositories.AdRequestRepo,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo:      userRepo,
		campaignRepo:  campaignRepo,
		adRequestRepo: adRequestRepo,
		log:           log,
	}
}

type AdminDashboard struct {
	OngoingCampaigns []models.Campaign              `json:"ongoing_campaigns"`
	AllCampaigns     []models.Campaign              `json:"all_campaigns"`
	AllUsers         []models.User                  `json:"all_users"`
	AllAdRequests    []models.AdRequestWithCampaign `json:"all_ad_requests"`
}

type SponsorDashboard struct {
	OngoingCampaigns []models.Campaign              `json:"ongoing_campaigns"`
	PendingRequests  []models.AdRequestWithCampaign `json:"pending_requests"`
}

type InfluencerDashboard struct {
	OngoingCampaigns []models.Campaign              `json:"ongoing_campaigns"`
	PendingRequests  []models.AdRequestWithCampaign `json:"pending_requests"`
}

func (s *DashboardService) Admin(ctx context.Context) (*AdminDashboard, error) {
	ongoingStatus := models.CampaignStatusOngoing
	ongoing, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{Status: &ongoingStatus, Limit: 100})
	if err != nil {
		return nil, err
	}
	all, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{Limit: 100})
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx, repositories.UserFilter{Limit: 100})
	if err != nil {
		return nil, err
	}
	reqs, err := s.adRequestRepo.ListAllWithCampaign(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		OngoingCampaigns: ongoing,
		AllCampaigns:     all,
		AllUsers:         users,
		AllAdRequests:    reqs,
	}, nil
}

func (s *DashboardService) Sponsor(ctx context.Context, viewer auth.Identity) (*SponsorDashboard, error) {
	sponsorID := viewer.UserID
	ongoingStatus := models.CampaignStatusOngoing
	ongoing, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{
		SponsorID: &sponsorID,
		Status:    &ongoingStatus,
		Limit:     100,
	})
	if err != nil {
		return nil, err
	}
	pending, err := s.adRequestRepo.ListPendingInboundForSponsor(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	return &SponsorDashboard{OngoingCampaigns: ongoing, PendingRequests: pending}, nil
}

func (s *DashboardService) Influencer(ctx context.Context, viewer auth.Identity) (*InfluencerDashboard, error) {
	ongoing, err := s.campaignRepo.ListOngoingWithAcceptedRequest(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}
	pending, err := s.adRequestRepo.ListPendingInboundForInfluencer(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}
	return &InfluencerDashboard{OngoingCampaigns: ongoing, PendingRequests: pending}, nil
}
