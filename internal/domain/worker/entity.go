package worker

import (
	"strings"
	"time"

	"farmconnect/internal/domain/geo"

	"github.com/google/uuid"
)

const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
	StatusInactive  = "inactive"
)

// Availability is a worker's offer to take jobs on a given date. Skills
// is a free-text field that may hold several comma-separated tokens.
type Availability struct {
	ID               uuid.UUID
	WorkerID         uuid.UUID
	Skills           string
	AvailabilityDate time.Time
	Location         geo.Coordinate
	HourlyRate       float64
	Status           string
	CreatedAt        time.Time
}

// HasSkill reports whether the skills field contains the required token
// as a case-sensitive substring. The SQL eligibility filter mirrors this
// predicate with a LIKE clause.
func (a Availability) HasSkill(token string) bool {
	return HasSkillToken(a.Skills, token)
}

func HasSkillToken(skills, token string) bool {
	return strings.Contains(skills, token)
}
