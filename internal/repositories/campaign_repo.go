package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sponsorlink/backend/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, sponsor_id, name, description, start_date, end_date,
	budget, visibility, goals, status, created_at, updated_at`

func scanCampaign(row interface{ Scan(dest ...any) error }, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.SponsorID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.Budget, &c.Visibility, &c.Goals, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (sponsor_id, name, description, start_date, end_date, budget, visibility, goals, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, start_date, created_at, updated_at
	`, c.SponsorID, c.Name, c.Description, c.StartDate, c.EndDate,
		c.Budget, c.Visibility, c.Goals, c.Status,
	).Scan(&c.ID, &c.StartDate, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id), &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET name = $1, description = $2, end_date = $3, budget = $4,
		       visibility = $5, goals = $6, status = $7, updated_at = now()
		WHERE id = $8
	`, c.Name, c.Description, c.EndDate, c.Budget, c.Visibility, c.Goals, c.Status, c.ID)
	return err
}

// Delete removes the campaign and, through the FK cascade, its ad requests.
func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

type CampaignFilter struct {
	SponsorID  *uuid.UUID
	Status     *string
	Visibility *string
	Search     *string // ILIKE on name, description, goals
	Limit      int
	Offset     int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.SponsorID != nil {
		where = append(where, fmt.Sprintf("sponsor_id = $%d", argIdx))
		args = append(args, *f.SponsorID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.Visibility != nil {
		where = append(where, fmt.Sprintf("visibility = $%d", argIdx))
		args = append(args, *f.Visibility)
		argIdx++
	}
	if f.Search != nil {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR goals ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*f.Search+"%")
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
	// Insertion order keeps listings reproducible.
	query += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// ListOngoingWithAcceptedRequest returns the ongoing campaigns an influencer
// is engaged on through an accepted ad request (dashboard view).
func (r *CampaignRepo) ListOngoingWithAcceptedRequest(ctx context.Context, influencerID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (c.id) c.id, c.sponsor_id, c.name, c.description, c.start_date, c.end_date,
		       c.budget, c.visibility, c.goals, c.status, c.created_at, c.updated_at
		FROM campaigns c
		JOIN ad_requests ar ON ar.campaign_id = c.id
		WHERE c.status = 'ongoing' AND ar.influencer_id = $1 AND ar.status = 'accepted'
		ORDER BY c.id, c.created_at
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
