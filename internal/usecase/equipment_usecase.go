package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type ListEquipmentInput struct {
	OwnerID          uuid.UUID
	Name             string
	Type             string
	RentalRatePerDay float64
	Location         *geo.Coordinate
}

type BookEquipmentInput struct {
	RenterID    uuid.UUID
	EquipmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
}

type EquipmentUsecase interface {
	ListEquipment(ctx context.Context, in ListEquipmentInput) (repository.Equipment, error)
	FindNearby(ctx context.Context, origin geo.Coordinate, limit int) ([]repository.EquipmentWithDistance, error)
	Book(ctx context.Context, in BookEquipmentInput) (repository.Booking, int, error)
}

type EquipmentService struct {
	equipment repository.EquipmentRepository
}

func NewEquipmentUsecase(equipment repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{equipment: equipment}
}

func (s *EquipmentService) ListEquipment(ctx context.Context, in ListEquipmentInput) (repository.Equipment, error) {
	if in.OwnerID == uuid.Nil {
		return repository.Equipment{}, ErrUnauthorized
	}
	if in.Name == "" || in.Type == "" || in.RentalRatePerDay <= 0 {
		return repository.Equipment{}, ErrInvalidInput
	}

	loc := DefaultLocation
	if in.Location != nil {
		if err := in.Location.Validate(); err != nil {
			return repository.Equipment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		loc = *in.Location
	}

	created, err := s.equipment.Create(ctx, repository.Equipment{
		OwnerID:          in.OwnerID,
		Name:             in.Name,
		Type:             in.Type,
		RentalRatePerDay: in.RentalRatePerDay,
		Location:         loc,
		Available:        true,
	})
	if err != nil {
		return repository.Equipment{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return created, nil
}

func (s *EquipmentService) FindNearby(ctx context.Context, origin geo.Coordinate, limit int) ([]repository.EquipmentWithDistance, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out, err := s.equipment.FindNearby(ctx, origin, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return out, nil
}

// Book creates a pending booking billed per started day.
func (s *EquipmentService) Book(ctx context.Context, in BookEquipmentInput) (repository.Booking, int, error) {
	if in.RenterID == uuid.Nil {
		return repository.Booking{}, 0, ErrUnauthorized
	}
	if in.EquipmentID == uuid.Nil || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return repository.Booking{}, 0, ErrInvalidInput
	}

	days := RentalDays(in.StartDate, in.EndDate)
	if days <= 0 {
		return repository.Booking{}, 0, ErrInvalidInput
	}

	eq, err := s.equipment.GetByID(ctx, in.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return repository.Booking{}, 0, ErrEquipmentNotFound
		}
		return repository.Booking{}, 0, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	booking, err := s.equipment.CreateBooking(ctx, repository.Booking{
		RenterID:    in.RenterID,
		EquipmentID: in.EquipmentID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalCost:   float64(days) * eq.RentalRatePerDay,
	})
	if err != nil {
		return repository.Booking{}, 0, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return booking, days, nil
}

// RentalDays counts a partial trailing day as a full day.
func RentalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
