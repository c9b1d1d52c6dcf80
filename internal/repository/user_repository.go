package repository

import (
	"context"
	"errors"
	"time"

	"farmconnect/internal/database"
	"farmconnect/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	GetByPhone(ctx context.Context, phone string) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	ListByRole(ctx context.Context, role string, limit int) ([]user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, phone, password, role, rating, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, u.Name, u.Phone, u.PasswordHash, u.Role, u.Rating, u.CreatedAt,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`,
		phone,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	return r.getOne(ctx,
		`SELECT id, name, phone, password, role, rating, created_at FROM users WHERE phone = $1`,
		phone)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.getOne(ctx,
		`SELECT id, name, phone, password, role, rating, created_at FROM users WHERE id = $1`,
		id)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg any) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Phone, &u.PasswordHash, &u.Role, &u.Rating, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ListByRole(ctx context.Context, role string, limit int) ([]user.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, role
		 FROM users WHERE role = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		role, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
