package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Sponsor profile
	Industry *string `json:"industry,omitempty"`
	Budget   *int64  `json:"budget,omitempty"`

	// Influencer profile
	Category *string `json:"category,omitempty"`
	Niche    *string `json:"niche,omitempty"`
	Reach    *int64  `json:"reach,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateCampaignRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EndDate     string  `json:"end_date"` // YYYY-MM-DD
	Budget      int64   `json:"budget"`
	Visibility  string  `json:"visibility"`
	Goals       *string `json:"goals,omitempty"`
}

type UpdateCampaignRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EndDate     string  `json:"end_date"` // YYYY-MM-DD
	Budget      int64   `json:"budget"`
	Visibility  string  `json:"visibility"`
	Goals       *string `json:"goals,omitempty"`
	Status      string  `json:"status,omitempty"`
}

type CreateAdRequestRequest struct {
	InfluencerID  string  `json:"influencer_id,omitempty"` // required for sponsors, ignored for influencers
	Messages      *string `json:"messages,omitempty"`
	Requirements  string  `json:"requirements"`
	PaymentAmount int64   `json:"payment_amount"`
}

type UpdateAdRequestRequest struct {
	Messages      *string `json:"messages,omitempty"`
	Requirements  string  `json:"requirements"`
	PaymentAmount int64   `json:"payment_amount"`
}
