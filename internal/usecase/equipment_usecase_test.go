package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

type memEquipmentRepo struct {
	equipment map[uuid.UUID]repository.Equipment
	bookings  []repository.Booking
}

func newMemEquipmentRepo() *memEquipmentRepo {
	return &memEquipmentRepo{equipment: make(map[uuid.UUID]repository.Equipment)}
}

func (r *memEquipmentRepo) Create(ctx context.Context, e repository.Equipment) (repository.Equipment, error) {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	r.equipment[e.ID] = e
	return e, nil
}

func (r *memEquipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (repository.Equipment, error) {
	e, ok := r.equipment[id]
	if !ok {
		return repository.Equipment{}, repository.ErrEquipmentNotFound
	}
	return e, nil
}

func (r *memEquipmentRepo) FindNearby(ctx context.Context, origin geo.Coordinate, limit int) ([]repository.EquipmentWithDistance, error) {
	out := make([]repository.EquipmentWithDistance, 0, len(r.equipment))
	for _, e := range r.equipment {
		out = append(out, repository.EquipmentWithDistance{
			Equipment:  e,
			DistanceKm: geo.Round2(geo.Distance(origin, e.Location)),
		})
	}
	return out, nil
}

func (r *memEquipmentRepo) CreateBooking(ctx context.Context, b repository.Booking) (repository.Booking, error) {
	b.ID = uuid.New()
	b.Status = "pending"
	r.bookings = append(r.bookings, b)
	return b, nil
}

func TestListEquipmentDefaultsLocation(t *testing.T) {
	repo := newMemEquipmentRepo()
	uc := NewEquipmentUsecase(repo)

	created, err := uc.ListEquipment(context.Background(), ListEquipmentInput{
		OwnerID:          uuid.New(),
		Name:             "Tractor",
		Type:             "tractor",
		RentalRatePerDay: 1500,
	})
	if err != nil {
		t.Fatalf("ListEquipment: %v", err)
	}
	if created.Location != DefaultLocation {
		t.Fatalf("location = %+v, want default", created.Location)
	}
	if !created.Available {
		t.Fatalf("new listing not available")
	}
}

func TestListEquipmentRejectsMissingFields(t *testing.T) {
	uc := NewEquipmentUsecase(newMemEquipmentRepo())

	_, err := uc.ListEquipment(context.Background(), ListEquipmentInput{
		OwnerID: uuid.New(),
		Name:    "Tractor",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestBookComputesCostPerStartedDay(t *testing.T) {
	repo := newMemEquipmentRepo()
	uc := NewEquipmentUsecase(repo)

	eq, err := repo.Create(context.Background(), repository.Equipment{
		OwnerID:          uuid.New(),
		Name:             "Harvester",
		Type:             "harvester",
		RentalRatePerDay: 1000,
		Location:         DefaultLocation,
		Available:        true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		end      time.Time
		wantDays int
		wantCost float64
	}{
		{"two full days", start.AddDate(0, 0, 2), 2, 2000},
		{"partial day rounds up", start.Add(36 * time.Hour), 2, 2000},
		{"under a day bills one", start.Add(6 * time.Hour), 1, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking, days, err := uc.Book(context.Background(), BookEquipmentInput{
				RenterID:    uuid.New(),
				EquipmentID: eq.ID,
				StartDate:   start,
				EndDate:     tc.end,
			})
			if err != nil {
				t.Fatalf("Book: %v", err)
			}
			if days != tc.wantDays {
				t.Fatalf("days = %d, want %d", days, tc.wantDays)
			}
			if booking.TotalCost != tc.wantCost {
				t.Fatalf("cost = %v, want %v", booking.TotalCost, tc.wantCost)
			}
		})
	}
}

func TestBookRejectsInvertedRange(t *testing.T) {
	repo := newMemEquipmentRepo()
	uc := NewEquipmentUsecase(repo)

	eq, _ := repo.Create(context.Background(), repository.Equipment{
		OwnerID:          uuid.New(),
		Name:             "Plough",
		Type:             "plough",
		RentalRatePerDay: 300,
	})

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.Book(context.Background(), BookEquipmentInput{
		RenterID:    uuid.New(),
		EquipmentID: eq.ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, -1),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("booking persisted for invalid range")
	}
}

func TestBookUnknownEquipment(t *testing.T) {
	uc := NewEquipmentUsecase(newMemEquipmentRepo())

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.Book(context.Background(), BookEquipmentInput{
		RenterID:    uuid.New(),
		EquipmentID: uuid.New(),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
	})
	if !errors.Is(err, ErrEquipmentNotFound) {
		t.Fatalf("err = %v, want ErrEquipmentNotFound", err)
	}
}
