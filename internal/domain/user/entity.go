package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleFarmer  = "farmer"
	RoleWorker  = "worker"
	RoleCompany = "company"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	PasswordHash string
	Role         string
	// Rating is the worker reputation on a 0..5 scale, nil when the
	// worker has never been rated.
	Rating    *float64
	CreatedAt time.Time
}

func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleWorker, RoleCompany:
		return true
	}
	return false
}
