package repository

import (
	"context"
	"errors"
	"time"

	"farmconnect/internal/database"
	"farmconnect/internal/domain/match"
	"farmconnect/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PendingMatchRow is a pending match joined with worker and job details
// for listing.
type PendingMatchRow struct {
	Match       match.Match
	WorkerName  string
	WorkerPhone string
	JobTitle    string
	WagePerDay  float64
}

type MatchRepository interface {
	// CreateAll persists every proposal for one matching run inside a
	// single transaction: either all surviving candidates become pending
	// matches or none do.
	CreateAll(ctx context.Context, jobID uuid.UUID, proposals []matching.Proposal) ([]match.Match, error)
	GetByID(ctx context.Context, id uuid.UUID) (match.Match, error)
	// Transition performs a conditional status update guarded on the
	// current status. It returns match.ErrNotFound when the id does not
	// exist and match.ErrInvalidTransition when the guard fails, so two
	// concurrent accepts resolve to exactly one success.
	Transition(ctx context.Context, id uuid.UUID, from, to string) (match.Match, error)
	ListPending(ctx context.Context, limit int) ([]PendingMatchRow, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) CreateAll(ctx context.Context, jobID uuid.UUID, proposals []matching.Proposal) ([]match.Match, error) {
	if jobID == uuid.Nil || len(proposals) == 0 {
		return []match.Match{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	out := make([]match.Match, 0, len(proposals))
	for _, p := range proposals {
		m := match.Match{
			ID:         uuid.New(),
			JobID:      jobID,
			WorkerID:   p.WorkerID,
			Score:      p.Score,
			DistanceKm: p.DistanceKm,
			Status:     match.StatusPending,
			CreatedAt:  now,
		}
		// The ranker already dedupes per run; the conflict guard covers
		// a re-run of the same job.
		_, err := tx.Exec(ctx,
			`INSERT INTO matches (id, job_id, worker_id, match_score, distance_km, status, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)
			 ON CONFLICT (job_id, worker_id) DO NOTHING`,
			m.ID, m.JobID, m.WorkerID, m.Score, m.DistanceKm, m.Status, m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	var m match.Match
	err := r.db.QueryRow(ctx,
		`SELECT id, job_id, worker_id, match_score, distance_km, status, created_at
		 FROM matches WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.JobID, &m.WorkerID, &m.Score, &m.DistanceKm, &m.Status, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) Transition(ctx context.Context, id uuid.UUID, from, to string) (match.Match, error) {
	var m match.Match
	err := r.db.QueryRow(ctx,
		`UPDATE matches SET status = $1
		 WHERE id = $2 AND status = $3
		 RETURNING id, job_id, worker_id, match_score, distance_km, status, created_at`,
		to, id, from,
	).Scan(&m.ID, &m.JobID, &m.WorkerID, &m.Score, &m.DistanceKm, &m.Status, &m.CreatedAt)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return match.Match{}, err
	}

	// The guard failed: distinguish a missing match from one that is no
	// longer in the expected status.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return match.Match{}, getErr
	}
	return match.Match{}, match.ErrInvalidTransition
}

func (r *PostgresMatchRepository) ListPending(ctx context.Context, limit int) ([]PendingMatchRow, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.job_id, m.worker_id, m.match_score, m.distance_km, m.status, m.created_at,
			u.name, u.phone, j.title, j.wage_per_day
		 FROM matches m
		 JOIN users u ON m.worker_id = u.id
		 JOIN jobs j ON m.job_id = j.id
		 WHERE m.status = $1
		 ORDER BY m.match_score DESC
		 LIMIT $2`,
		match.StatusPending, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PendingMatchRow, 0)
	for rows.Next() {
		var row PendingMatchRow
		if err := rows.Scan(
			&row.Match.ID, &row.Match.JobID, &row.Match.WorkerID,
			&row.Match.Score, &row.Match.DistanceKm, &row.Match.Status, &row.Match.CreatedAt,
			&row.WorkerName, &row.WorkerPhone, &row.JobTitle, &row.WagePerDay,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
