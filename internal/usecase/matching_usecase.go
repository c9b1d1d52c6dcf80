package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/job"
	"farmconnect/internal/domain/match"
	"farmconnect/internal/domain/matching"
	"farmconnect/internal/domain/worker"
	"farmconnect/internal/repository"
)

// MatchNotifier receives the outcome of a successful matching run. The
// websocket hub implements it; a nil notifier is a no-op.
type MatchNotifier interface {
	MatchesCreated(jobID string, count int)
}

type MatchingUsecase interface {
	// RunMatching enumerates eligible workers for the job, ranks them and
	// persists all surviving candidates as pending matches. Candidate
	// enumeration failure aborts the run with ErrDataAccess and nothing
	// is persisted.
	RunMatching(ctx context.Context, posting job.Posting) ([]match.Match, error)
}

type Matching struct {
	availability repository.WorkerAvailabilityRepository
	matches      repository.MatchRepository
	ranker       *matching.Ranker
	notifier     MatchNotifier
	cache        MatchCache
	logger       *log.Logger
}

func NewMatchingUsecase(
	availability repository.WorkerAvailabilityRepository,
	matches repository.MatchRepository,
	ranker *matching.Ranker,
	notifier MatchNotifier,
	cache MatchCache,
	logger *log.Logger,
) *Matching {
	return &Matching{
		availability: availability,
		matches:      matches,
		ranker:       ranker,
		notifier:     notifier,
		cache:        cache,
		logger:       logger,
	}
}

func (u *Matching) RunMatching(ctx context.Context, posting job.Posting) ([]match.Match, error) {
	if err := posting.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	candidates, err := u.availability.FindEligible(ctx, posting.SkillRequired, worker.StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating candidates: %v", ErrDataAccess, err)
	}

	ranked := make([]matching.Candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, matching.Candidate{
			AvailabilityID: c.ID,
			WorkerID:       c.WorkerID,
			Skills:         c.Skills,
			Location:       c.Location,
		})
	}

	proposals, err := u.ranker.Rank(ctx, posting.Location, ranked)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	created, err := u.matches.CreateAll(ctx, posting.ID, proposals)
	if err != nil {
		return nil, fmt.Errorf("%w: persisting matches: %v", ErrDataAccess, err)
	}

	if u.logger != nil {
		u.logger.Printf("matching run complete | job=%s candidates=%d matches=%d", posting.ID, len(candidates), len(created))
	}
	if len(created) > 0 {
		if u.cache != nil {
			u.cache.InvalidatePending(ctx)
		}
		if u.notifier != nil {
			u.notifier.MatchesCreated(posting.ID.String(), len(created))
		}
	}

	return created, nil
}
