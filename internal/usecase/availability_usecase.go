package usecase

import (
	"context"
	"fmt"
	"time"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/worker"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

type PostAvailabilityInput struct {
	WorkerID         uuid.UUID
	Skills           string
	AvailabilityDate time.Time
	HourlyRate       float64
	Location         *geo.Coordinate
}

type AvailabilityUsecase interface {
	PostAvailability(ctx context.Context, in PostAvailabilityInput) (worker.Availability, error)
}

type Availability struct {
	availability repository.WorkerAvailabilityRepository
}

func NewAvailabilityUsecase(availability repository.WorkerAvailabilityRepository) *Availability {
	return &Availability{availability: availability}
}

func (u *Availability) PostAvailability(ctx context.Context, in PostAvailabilityInput) (worker.Availability, error) {
	if in.WorkerID == uuid.Nil {
		return worker.Availability{}, ErrUnauthorized
	}
	if in.Skills == "" || in.AvailabilityDate.IsZero() || in.HourlyRate <= 0 {
		return worker.Availability{}, ErrInvalidInput
	}

	loc := DefaultLocation
	if in.Location != nil {
		if err := in.Location.Validate(); err != nil {
			return worker.Availability{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		loc = *in.Location
	}

	created, err := u.availability.Create(ctx, worker.Availability{
		ID:               uuid.New(),
		WorkerID:         in.WorkerID,
		Skills:           in.Skills,
		AvailabilityDate: in.AvailabilityDate,
		Location:         loc,
		HourlyRate:       in.HourlyRate,
		Status:           worker.StatusAvailable,
	})
	if err != nil {
		return worker.Availability{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return created, nil
}
