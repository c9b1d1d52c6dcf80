package repository

import (
	"context"
	"time"

	"farmconnect/internal/database"
	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/worker"

	"github.com/google/uuid"
)

type WorkerAvailabilityRepository interface {
	Create(ctx context.Context, a worker.Availability) (worker.Availability, error)
	// FindEligible returns availability records whose skills field
	// contains skillToken as a substring and whose status matches. An
	// empty result is not an error.
	FindEligible(ctx context.Context, skillToken, status string) ([]worker.Availability, error)
}

type PostgresWorkerAvailabilityRepository struct {
	db database.DB
}

func NewPostgresWorkerAvailabilityRepository(db database.DB) *PostgresWorkerAvailabilityRepository {
	return &PostgresWorkerAvailabilityRepository{db: db}
}

func (r *PostgresWorkerAvailabilityRepository) Create(ctx context.Context, a worker.Availability) (worker.Availability, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = worker.StatusAvailable
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO worker_availability
			(id, worker_id, skills, availability_date, location_lat, location_lng, hourly_rate, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.WorkerID, a.Skills, a.AvailabilityDate,
		a.Location.Lat, a.Location.Lng, a.HourlyRate, a.Status, a.CreatedAt,
	)
	if err != nil {
		return worker.Availability{}, err
	}
	return a, nil
}

func (r *PostgresWorkerAvailabilityRepository) FindEligible(ctx context.Context, skillToken, status string) ([]worker.Availability, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, worker_id, skills, availability_date, location_lat, location_lng, hourly_rate, status, created_at
		 FROM worker_availability
		 WHERE status = $1
		 AND skills LIKE '%' || $2 || '%'`,
		status, skillToken,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]worker.Availability, 0)
	for rows.Next() {
		var a worker.Availability
		var lat, lng float64
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Skills, &a.AvailabilityDate, &lat, &lng, &a.HourlyRate, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Location = geo.Coordinate{Lat: lat, Lng: lng}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
