package handler

import (
	"errors"
	"time"

	"farmconnect/internal/delivery/http/dto"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/domain/geo"
	"farmconnect/internal/pkg/response"
	"farmconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// LabourHandler serves job postings and worker availability.
type LabourHandler struct {
	jobs         usecase.JobUsecase
	availability usecase.AvailabilityUsecase
}

type postJobRequest struct {
	JobTitle      string   `json:"job_title"`
	SkillRequired string   `json:"skill_required"`
	WorkersNeeded int      `json:"workers_needed"`
	WagePerDay    float64  `json:"wage_per_day"`
	JobDate       string   `json:"job_date"`
	LocationLat   *float64 `json:"location_lat"`
	LocationLng   *float64 `json:"location_lng"`
}

type postAvailabilityRequest struct {
	Skills           string   `json:"skills"`
	AvailabilityDate string   `json:"availability_date"`
	HourlyRate       float64  `json:"hourly_rate"`
	LocationLat      *float64 `json:"location_lat"`
	LocationLng      *float64 `json:"location_lng"`
}

func NewLabourHandler(jobs usecase.JobUsecase, availability usecase.AvailabilityUsecase) *LabourHandler {
	return &LabourHandler{jobs: jobs, availability: availability}
}

func (h *LabourHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.PostJob)
	r.Post("/availability", h.PostAvailability)
}

func (h *LabourHandler) PostJob(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobDate, err := parseDate(req.JobDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_date", nil, err)
	}

	posting, err := h.jobs.PostJob(c.Context(), usecase.PostJobInput{
		FarmerID:      actorID,
		Title:         req.JobTitle,
		SkillRequired: req.SkillRequired,
		WorkersNeeded: req.WorkersNeeded,
		WagePerDay:    req.WagePerDay,
		JobDate:       jobDate,
		Location:      coordinateFromRequest(req.LocationLat, req.LocationLng),
	})
	if err != nil {
		return mapLabourUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job posted successfully", dto.JobResponse{
		ID:            posting.ID,
		FarmerID:      posting.FarmerID,
		Title:         posting.Title,
		SkillRequired: posting.SkillRequired,
		WorkersNeeded: posting.WorkersNeeded,
		WagePerDay:    posting.WagePerDay,
		JobDate:       posting.JobDate,
		LocationLat:   posting.Location.Lat,
		LocationLng:   posting.Location.Lng,
		Status:        posting.Status,
		CreatedAt:     posting.CreatedAt,
	})
}

func (h *LabourHandler) PostAvailability(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req postAvailabilityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	date, err := parseDate(req.AvailabilityDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid availability_date", nil, err)
	}

	av, err := h.availability.PostAvailability(c.Context(), usecase.PostAvailabilityInput{
		WorkerID:         actorID,
		Skills:           req.Skills,
		AvailabilityDate: date,
		HourlyRate:       req.HourlyRate,
		Location:         coordinateFromRequest(req.LocationLat, req.LocationLng),
	})
	if err != nil {
		return mapLabourUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Availability posted successfully", dto.AvailabilityResponse{
		ID:               av.ID,
		WorkerID:         av.WorkerID,
		Skills:           av.Skills,
		AvailabilityDate: av.AvailabilityDate,
		LocationLat:      av.Location.Lat,
		LocationLng:      av.Location.Lng,
		HourlyRate:       av.HourlyRate,
		Status:           av.Status,
	})
}

func coordinateFromRequest(lat, lng *float64) *geo.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Coordinate{Lat: *lat, Lng: *lng}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func mapLabourUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrDataAccess):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
