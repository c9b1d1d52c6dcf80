package usecase

import (
	"context"
	"fmt"
	"time"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/job"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

// DefaultLocation is assumed when a posting omits coordinates, matching
// historical behavior.
var DefaultLocation = geo.Coordinate{Lat: 28.7041, Lng: 77.1025}

type PostJobInput struct {
	FarmerID      uuid.UUID
	Title         string
	SkillRequired string
	WorkersNeeded int
	WagePerDay    float64
	JobDate       time.Time
	Location      *geo.Coordinate
}

// MatchDispatcher hands a freshly created posting to the asynchronous
// matching pipeline. Enqueue must never block and never fail job
// creation.
type MatchDispatcher interface {
	Enqueue(posting job.Posting)
}

type JobUsecase interface {
	PostJob(ctx context.Context, in PostJobInput) (job.Posting, error)
}

type Jobs struct {
	jobs       repository.JobRepository
	dispatcher MatchDispatcher
}

func NewJobUsecase(jobs repository.JobRepository, dispatcher MatchDispatcher) *Jobs {
	return &Jobs{jobs: jobs, dispatcher: dispatcher}
}

func (u *Jobs) PostJob(ctx context.Context, in PostJobInput) (job.Posting, error) {
	if in.FarmerID == uuid.Nil {
		return job.Posting{}, ErrUnauthorized
	}
	if in.Title == "" || in.SkillRequired == "" || in.WorkersNeeded <= 0 || in.WagePerDay <= 0 || in.JobDate.IsZero() {
		return job.Posting{}, ErrInvalidInput
	}

	loc := DefaultLocation
	if in.Location != nil {
		if err := in.Location.Validate(); err != nil {
			return job.Posting{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		loc = *in.Location
	}

	created, err := u.jobs.Create(ctx, job.Posting{
		ID:            uuid.New(),
		FarmerID:      in.FarmerID,
		Title:         in.Title,
		SkillRequired: in.SkillRequired,
		WorkersNeeded: in.WorkersNeeded,
		WagePerDay:    in.WagePerDay,
		JobDate:       in.JobDate,
		Location:      loc,
		Status:        job.StatusOpen,
	})
	if err != nil {
		return job.Posting{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	// Matching is a best-effort side process: the posting exists whether
	// or not a run ever happens.
	if u.dispatcher != nil {
		u.dispatcher.Enqueue(created)
	}

	return created, nil
}
