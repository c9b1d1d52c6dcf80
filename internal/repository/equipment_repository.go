package repository

import (
	"context"
	"errors"
	"time"

	"farmconnect/internal/database"
	"farmconnect/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type Equipment struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	Type             string
	RentalRatePerDay float64
	Location         geo.Coordinate
	Available        bool
	CreatedAt        time.Time
}

type EquipmentWithDistance struct {
	Equipment
	DistanceKm float64
}

type Booking struct {
	ID          uuid.UUID
	RenterID    uuid.UUID
	EquipmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalCost   float64
	Status      string
	CreatedAt   time.Time
}

type EquipmentRepository interface {
	Create(ctx context.Context, e Equipment) (Equipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (Equipment, error)
	// FindNearby orders available equipment by the same planar distance
	// approximation the matcher uses, computed in SQL.
	FindNearby(ctx context.Context, origin geo.Coordinate, limit int) ([]EquipmentWithDistance, error)
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
}

type PostgresEquipmentRepository struct {
	db database.DB
}

func NewPostgresEquipmentRepository(db database.DB) *PostgresEquipmentRepository {
	return &PostgresEquipmentRepository{db: db}
}

func (r *PostgresEquipmentRepository) Create(ctx context.Context, e Equipment) (Equipment, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO equipment
			(id, owner_id, equipment_name, equipment_type, rental_rate_per_day, location_lat, location_lng, available, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.OwnerID, e.Name, e.Type, e.RentalRatePerDay,
		e.Location.Lat, e.Location.Lng, e.Available, e.CreatedAt,
	)
	if err != nil {
		return Equipment{}, err
	}
	return e, nil
}

func (r *PostgresEquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (Equipment, error) {
	var e Equipment
	var lat, lng float64
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, equipment_name, equipment_type, rental_rate_per_day, location_lat, location_lng, available, created_at
		 FROM equipment WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.OwnerID, &e.Name, &e.Type, &e.RentalRatePerDay, &lat, &lng, &e.Available, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Equipment{}, ErrEquipmentNotFound
		}
		return Equipment{}, err
	}
	e.Location = geo.Coordinate{Lat: lat, Lng: lng}
	return e, nil
}

func (r *PostgresEquipmentRepository) FindNearby(ctx context.Context, origin geo.Coordinate, limit int) ([]EquipmentWithDistance, error) {
	if limit <= 0 || limit > 20 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, equipment_name, equipment_type, rental_rate_per_day, location_lat, location_lng, available, created_at,
			SQRT(POW(location_lat - $1, 2) + POW(location_lng - $2, 2)) * 111 AS distance_km
		 FROM equipment
		 WHERE available = TRUE
		 ORDER BY distance_km ASC
		 LIMIT $3`,
		origin.Lat, origin.Lng, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EquipmentWithDistance, 0)
	for rows.Next() {
		var e EquipmentWithDistance
		var lat, lng float64
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Type, &e.RentalRatePerDay,
			&lat, &lng, &e.Available, &e.CreatedAt, &e.DistanceKm); err != nil {
			return nil, err
		}
		e.Location = geo.Coordinate{Lat: lat, Lng: lng}
		e.DistanceKm = geo.Round2(e.DistanceKm)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEquipmentRepository) CreateBooking(ctx context.Context, b Booking) (Booking, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = "pending"
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, renter_id, equipment_id, start_date, end_date, total_cost, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.RenterID, b.EquipmentID, b.StartDate, b.EndDate, b.TotalCost, b.Status, b.CreatedAt,
	)
	if err != nil {
		return Booking{}, err
	}
	return b, nil
}
