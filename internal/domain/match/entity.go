package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var (
	ErrNotFound          = errors.New("match not found")
	ErrInvalidTransition = errors.New("invalid match transition")
)

// Match is a scored pairing of a job and a worker. Score and DistanceKm
// are fixed at creation; Status is the only mutable field and moves
// exactly once from pending to a terminal state.
type Match struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	WorkerID   uuid.UUID
	Score      float64
	DistanceKm float64
	Status     string
	CreatedAt  time.Time
}

func Terminal(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// CanTransition reports whether a status change is allowed. The only
// legal moves are pending -> accepted and pending -> rejected.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return Terminal(to)
}
