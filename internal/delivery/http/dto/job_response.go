package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID            uuid.UUID `json:"id"`
	FarmerID      uuid.UUID `json:"farmer_id"`
	Title         string    `json:"title"`
	SkillRequired string    `json:"skill_required"`
	WorkersNeeded int       `json:"workers_needed"`
	WagePerDay    float64   `json:"wage_per_day"`
	JobDate       time.Time `json:"job_date"`
	LocationLat   float64   `json:"location_lat"`
	LocationLng   float64   `json:"location_lng"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	ID               uuid.UUID `json:"id"`
	WorkerID         uuid.UUID `json:"worker_id"`
	Skills           string    `json:"skills"`
	AvailabilityDate time.Time `json:"availability_date"`
	LocationLat      float64   `json:"location_lat"`
	LocationLng      float64   `json:"location_lng"`
	HourlyRate       float64   `json:"hourly_rate"`
	Status           string    `json:"status"`
}
