package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sponsorlink/backend/internal/models"
)

type AdRequestRepo struct {
	pool *pgxpool.Pool
}

func NewAdRequestRepo(pool *pgxpool.Pool) *AdRequestRepo {
	return &AdRequestRepo{pool: pool}
}

func (r *AdRequestRepo) Create(ctx context.Context, a *models.AdRequest) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO ad_requests (campaign_id, influencer_id, messages, requirements, payment_amount, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Messages, a.Requirements, a.PaymentAmount, a.CreatedBy, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AdRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AdRequest, error) {
	var a models.AdRequest
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, messages, requirements, payment_amount, created_by, status, created_at, updated_at
		FROM ad_requests WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages, &a.Requirements,
		&a.PaymentAmount, &a.CreatedBy, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByIDWithCampaign joins campaign owner and status so the counter-party
// check runs off one read.
func (r *AdRequestRepo) GetByIDWithCampaign(ctx context.Context, id uuid.UUID) (*models.AdRequestWithCampaign, error) {
	var a models.AdRequestWithCampaign
	err := r.pool.QueryRow(ctx, `
		SELECT ar.id, ar.campaign_id, ar.influencer_id, ar.messages, ar.requirements, ar.payment_amount,
		       ar.created_by, ar.status, ar.created_at, ar.updated_at,
		       c.name, c.status, c.sponsor_id
		FROM ad_requests ar
		JOIN campaigns c ON c.id = ar.campaign_id
		WHERE ar.id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages, &a.Requirements, &a.PaymentAmount,
		&a.CreatedBy, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.CampaignName, &a.CampaignStatus, &a.CampaignSponsor)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdRequestRepo) Update(ctx context.Context, a *models.AdRequest) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE ad_requests SET influencer_id = $1, messages = $2, requirements = $3, payment_amount = $4, updated_at = now()
		WHERE id = $5
	`, a.InfluencerID, a.Messages, a.Requirements, a.PaymentAmount, a.ID)
	return err
}

// UpdateStatus moves a request from one status to another as a single
// conditional row update, so a racing response cannot overwrite a terminal
// status.
func (r *AdRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ad_requests SET status = $1, updated_at = now() WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ad request %s is no longer %s", id, from)
	}
	return nil
}

func (r *AdRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ad_requests WHERE id = $1`, id)
	return err
}

type AdRequestFilter struct {
	CampaignID   *uuid.UUID
	InfluencerID *uuid.UUID
	Status       *string
	CreatedBy    *string
	Limit        int
	Offset       int
}

func (r *AdRequestRepo) List(ctx context.Context, f AdRequestFilter) ([]models.AdRequest, error) {
	query := `
		SELECT id, campaign_id, influencer_id, messages, requirements, payment_amount, created_by, status, created_at, updated_at
		FROM ad_requests
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.CampaignID != nil {
		where = append(where, fmt.Sprintf("campaign_id = $%d", argIdx))
		args = append(args, *f.CampaignID)
		argIdx++
	}
	if f.InfluencerID != nil {
		where = append(where, fmt.Sprintf("influencer_id = $%d", argIdx))
		args = append(args, *f.InfluencerID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.CreatedBy != nil {
		where = append(where, fmt.Sprintf("created_by = $%d", argIdx))
		args = append(args, *f.CreatedBy)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []models.AdRequest
	for rows.Next() {
		var a models.AdRequest
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages, &a.Requirements,
			&a.PaymentAmount, &a.CreatedBy, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, a)
	}
	return reqs, nil
}

// ListPendingInboundForInfluencer: sponsor-created pending requests targeting
// the influencer on still-ongoing campaigns (dashboard view).
func (r *AdRequestRepo) ListPendingInboundForInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.AdRequestWithCampaign, error) {
	return r.listInbound(ctx, `
		WHERE c.status = 'ongoing' AND ar.influencer_id = $1
		  AND ar.status = 'pending' AND ar.created_by = 'sponsor'
	`, influencerID)
}

// ListPendingInboundForSponsor: influencer-created pending requests on
// campaigns the sponsor owns (dashboard view).
func (r *AdRequestRepo) ListPendingInboundForSponsor(ctx context.Context, sponsorID uuid.UUID) ([]models.AdRequestWithCampaign, error) {
	return r.listInbound(ctx, `
		WHERE c.sponsor_id = $1 AND ar.status = 'pending' AND ar.created_by = 'influencer'
	`, sponsorID)
}

// ListAllWithCampaign returns every ad request joined with its campaign
// (admin oversight view).
func (r *AdRequestRepo) ListAllWithCampaign(ctx context.Context) ([]models.AdRequestWithCampaign, error) {
	return r.listInbound(ctx, "", nil)
}

func (r *AdRequestRepo) listInbound(ctx context.Context, whereClause string, arg any) ([]models.AdRequestWithCampaign, error) {
	query := `
		SELECT ar.id, ar.campaign_id, ar.influencer_id, ar.messages, ar.requirements, ar.payment_amount,
		       ar.created_by, ar.status, ar.created_at, ar.updated_at,
		       c.name, c.status, c.sponsor_id
		FROM ad_requests ar
		JOIN campaigns c ON c.id = ar.campaign_id
	` + whereClause + ` ORDER BY ar.created_at, ar.id`

	var (
		rows pgx.Rows
		err  error
	)
	if arg != nil {
		rows, err = r.pool.Query(ctx, query, arg)
	} else {
		rows, err = r.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []models.AdRequestWithCampaign
	for rows.Next() {
		var a models.AdRequestWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages, &a.Requirements, &a.PaymentAmount,
			&a.CreatedBy, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.CampaignName, &a.CampaignStatus, &a.CampaignSponsor); err != nil {
			return nil, err
		}
		reqs = append(reqs, a)
	}
	return reqs, nil
}
