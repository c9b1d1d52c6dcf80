package handler

import (
	"errors"

	"farmconnect/internal/delivery/http/dto"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/domain/geo"
	"farmconnect/internal/pkg/response"
	"farmconnect/internal/repository"
	"farmconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	uc usecase.EquipmentUsecase
}

type listEquipmentRequest struct {
	EquipmentName    string   `json:"equipment_name"`
	EquipmentType    string   `json:"equipment_type"`
	RentalRatePerDay float64  `json:"rental_rate_per_day"`
	LocationLat      *float64 `json:"location_lat"`
	LocationLng      *float64 `json:"location_lng"`
}

type bookEquipmentRequest struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func NewEquipmentHandler(uc usecase.EquipmentUsecase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

func (h *EquipmentHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/", h.List, auth)
	r.Get("/nearby", h.Nearby)
	r.Post("/bookings", h.Book, auth)
}

func (h *EquipmentHandler) List(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req listEquipmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	eq, err := h.uc.ListEquipment(c.Context(), usecase.ListEquipmentInput{
		OwnerID:          actorID,
		Name:             req.EquipmentName,
		Type:             req.EquipmentType,
		RentalRatePerDay: req.RentalRatePerDay,
		Location:         coordinateFromRequest(req.LocationLat, req.LocationLng),
	})
	if err != nil {
		return mapEquipmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Equipment listed successfully", toEquipmentResponse(eq))
}

func (h *EquipmentHandler) Nearby(c fiber.Ctx) error {
	lat := fiber.Query[float64](c, "lat")
	lng := fiber.Query[float64](c, "lng")
	if c.Query("lat") == "" || c.Query("lng") == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Latitude and longitude required", nil, nil)
	}

	items, err := h.uc.FindNearby(c.Context(), geo.Coordinate{Lat: lat, Lng: lng}, fiber.Query[int](c, "limit", 20))
	if err != nil {
		return mapEquipmentUsecaseError(err)
	}

	out := make([]dto.NearbyEquipmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NearbyEquipmentResponse{
			EquipmentResponse: toEquipmentResponse(it.Equipment),
			DistanceKm:        it.DistanceKm,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *EquipmentHandler) Book(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req bookEquipmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	equipmentID, err := uuid.Parse(req.EquipmentID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid equipment id", nil, err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid end_date", nil, err)
	}

	booking, days, err := h.uc.Book(c.Context(), usecase.BookEquipmentInput{
		RenterID:    actorID,
		EquipmentID: equipmentID,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return mapEquipmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Booking created successfully", dto.BookingResponse{
		ID:          booking.ID,
		RenterID:    booking.RenterID,
		EquipmentID: booking.EquipmentID,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		TotalCost:   booking.TotalCost,
		Status:      booking.Status,
		Days:        days,
	})
}

func toEquipmentResponse(e repository.Equipment) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:               e.ID,
		OwnerID:          e.OwnerID,
		Name:             e.Name,
		Type:             e.Type,
		RentalRatePerDay: e.RentalRatePerDay,
		LocationLat:      e.Location.Lat,
		LocationLng:      e.Location.Lng,
		Available:        e.Available,
	}
}

func mapEquipmentUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Equipment not found", nil, err)
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
