package repository

import (
	"context"
	"errors"
	"time"

	"farmconnect/internal/database"
	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository interface {
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = job.StatusOpen
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs
			(id, farmer_id, title, skill_required, workers_needed, wage_per_day, job_date, location_lat, location_lng, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.FarmerID, p.Title, p.SkillRequired, p.WorkersNeeded, p.WagePerDay,
		p.JobDate, p.Location.Lat, p.Location.Lng, p.Status, p.CreatedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	var p job.Posting
	var lat, lng float64
	err := r.db.QueryRow(ctx,
		`SELECT id, farmer_id, title, skill_required, workers_needed, wage_per_day, job_date, location_lat, location_lng, status, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.FarmerID, &p.Title, &p.SkillRequired, &p.WorkersNeeded, &p.WagePerDay,
		&p.JobDate, &lat, &lng, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}
	p.Location = geo.Coordinate{Lat: lat, Lng: lng}
	return p, nil
}
