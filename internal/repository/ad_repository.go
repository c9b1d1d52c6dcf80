package repository

import (
	"context"
	"time"

	"farmconnect/internal/database"

	"github.com/google/uuid"
)

type AdCampaign struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Name       string
	Content    string
	TargetRole string
	Budget     float64
	Status     string
	CreatedAt  time.Time
}

type AdRepository interface {
	CreateCampaign(ctx context.Context, c AdCampaign) (AdCampaign, error)
}

type PostgresAdRepository struct {
	db database.DB
}

func NewPostgresAdRepository(db database.DB) *PostgresAdRepository {
	return &PostgresAdRepository{db: db}
}

func (r *PostgresAdRepository) CreateCampaign(ctx context.Context, c AdCampaign) (AdCampaign, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = "active"
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO ads (id, company_id, campaign_name, ad_content, target_role, budget, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID, c.CompanyID, c.Name, c.Content, c.TargetRole, c.Budget, c.Status, c.CreatedAt,
	)
	if err != nil {
		return AdCampaign{}, err
	}
	return c, nil
}
