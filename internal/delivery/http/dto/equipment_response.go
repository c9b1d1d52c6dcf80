package dto

import (
	"time"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Name             string    `json:"equipment_name"`
	Type             string    `json:"equipment_type"`
	RentalRatePerDay float64   `json:"rental_rate_per_day"`
	LocationLat      float64   `json:"location_lat"`
	LocationLng      float64   `json:"location_lng"`
	Available        bool      `json:"available"`
}

type NearbyEquipmentResponse struct {
	EquipmentResponse
	DistanceKm float64 `json:"distance_km"`
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RenterID    uuid.UUID `json:"renter_id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalCost   float64   `json:"total_cost"`
	Status      string    `json:"status"`
	Days        int       `json:"days"`
}

type CampaignResponse struct {
	ID         uuid.UUID `json:"id"`
	CompanyID  uuid.UUID `json:"company_id"`
	Name       string    `json:"campaign_name"`
	Content    string    `json:"ad_content"`
	TargetRole string    `json:"target_role"`
	Budget     float64   `json:"budget"`
	Status     string    `json:"status"`
}
