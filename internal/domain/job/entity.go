package job

import (
	"errors"
	"time"

	"farmconnect/internal/domain/geo"

	"github.com/google/uuid"
)

const (
	StatusOpen      = "open"
	StatusFilled    = "filled"
	StatusCancelled = "cancelled"
)

var ErrNotFound = errors.New("job not found")

type Posting struct {
	ID            uuid.UUID
	FarmerID      uuid.UUID
	Title         string
	SkillRequired string
	WorkersNeeded int
	WagePerDay    float64
	JobDate       time.Time
	Location      geo.Coordinate
	Status        string
	CreatedAt     time.Time
}
