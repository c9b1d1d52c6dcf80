package repository

import (
	"context"
	"errors"

	"farmconnect/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReputationRepository reads the external worker rating. Absence of a
// rating is not an error; the ranker substitutes the policy default.
type ReputationRepository interface {
	Rating(ctx context.Context, workerID uuid.UUID) (float64, bool, error)
}

type PostgresReputationRepository struct {
	db database.DB
}

func NewPostgresReputationRepository(db database.DB) *PostgresReputationRepository {
	return &PostgresReputationRepository{db: db}
}

func (r *PostgresReputationRepository) Rating(ctx context.Context, workerID uuid.UUID) (float64, bool, error) {
	var rating *float64
	err := r.db.QueryRow(ctx,
		`SELECT rating FROM users WHERE id = $1`,
		workerID,
	).Scan(&rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if rating == nil {
		return 0, false, nil
	}
	return *rating, true, nil
}
