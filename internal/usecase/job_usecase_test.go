package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/job"

	"github.com/google/uuid"
)

type memJobRepo struct {
	created []job.Posting
	err     error
}

func (r *memJobRepo) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if r.err != nil {
		return job.Posting{}, r.err
	}
	r.created = append(r.created, p)
	return p, nil
}

func (r *memJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	for _, p := range r.created {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, job.ErrNotFound
}

type recordingDispatcher struct {
	enqueued []job.Posting
}

func (d *recordingDispatcher) Enqueue(posting job.Posting) {
	d.enqueued = append(d.enqueued, posting)
}

func validPostJobInput() PostJobInput {
	return PostJobInput{
		FarmerID:      uuid.New(),
		Title:         "Rice transplanting",
		SkillRequired: "transplanting",
		WorkersNeeded: 5,
		WagePerDay:    600,
		JobDate:       time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPostJobDispatchesMatching(t *testing.T) {
	repo := &memJobRepo{}
	dispatcher := &recordingDispatcher{}
	uc := NewJobUsecase(repo, dispatcher)

	created, err := uc.PostJob(context.Background(), validPostJobInput())
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}
	if created.Status != job.StatusOpen {
		t.Fatalf("status = %q, want %q", created.Status, job.StatusOpen)
	}
	if len(dispatcher.enqueued) != 1 || dispatcher.enqueued[0].ID != created.ID {
		t.Fatalf("dispatcher enqueued = %+v", dispatcher.enqueued)
	}
}

func TestPostJobDefaultsLocation(t *testing.T) {
	repo := &memJobRepo{}
	uc := NewJobUsecase(repo, &recordingDispatcher{})

	created, err := uc.PostJob(context.Background(), validPostJobInput())
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}
	if created.Location != DefaultLocation {
		t.Fatalf("location = %+v, want default", created.Location)
	}

	in := validPostJobInput()
	in.Location = &geo.Coordinate{Lat: 12.97, Lng: 77.59}
	created, err = uc.PostJob(context.Background(), in)
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}
	if created.Location != *in.Location {
		t.Fatalf("location = %+v, want %+v", created.Location, *in.Location)
	}
}

func TestPostJobCreateFailureSkipsDispatch(t *testing.T) {
	repo := &memJobRepo{err: errors.New("down")}
	dispatcher := &recordingDispatcher{}
	uc := NewJobUsecase(repo, dispatcher)

	_, err := uc.PostJob(context.Background(), validPostJobInput())
	if !errors.Is(err, ErrDataAccess) {
		t.Fatalf("err = %v, want ErrDataAccess", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatalf("dispatched after failed create")
	}
}

func TestPostJobValidation(t *testing.T) {
	uc := NewJobUsecase(&memJobRepo{}, &recordingDispatcher{})

	in := validPostJobInput()
	in.FarmerID = uuid.Nil
	if _, err := uc.PostJob(context.Background(), in); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	in = validPostJobInput()
	in.WorkersNeeded = 0
	if _, err := uc.PostJob(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	in = validPostJobInput()
	bad := geo.Coordinate{Lat: 200, Lng: 0}
	in.Location = &bad
	if _, err := uc.PostJob(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
