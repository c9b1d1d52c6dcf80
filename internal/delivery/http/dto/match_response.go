package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	WorkerID   uuid.UUID `json:"worker_id"`
	MatchScore float64   `json:"match_score"`
	DistanceKm float64   `json:"distance_km"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type PendingMatchResponse struct {
	MatchResponse
	WorkerName  string  `json:"worker_name"`
	WorkerPhone string  `json:"worker_phone"`
	JobTitle    string  `json:"job_title"`
	WagePerDay  float64 `json:"wage_per_day"`
}

type PendingMatchListResponse struct {
	Matches []PendingMatchResponse `json:"matches"`
	Count   int                    `json:"count"`
}
