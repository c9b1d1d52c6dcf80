package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"farmconnect/internal/domain/match"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

// MatchCache caches pending-match listings and drops them after a state
// change. The redis cache implements it; nil disables caching.
type MatchCache interface {
	GetPending(ctx context.Context, limit int) ([]repository.PendingMatchRow, bool)
	SetPending(ctx context.Context, limit int, rows []repository.PendingMatchRow)
	InvalidatePending(ctx context.Context)
}

type MatchLifecycleUsecase interface {
	Accept(ctx context.Context, matchID, actorID uuid.UUID) (match.Match, error)
	Reject(ctx context.Context, matchID, actorID uuid.UUID) (match.Match, error)
	ListPending(ctx context.Context, limit int) ([]repository.PendingMatchRow, error)
}

type MatchLifecycle struct {
	matches repository.MatchRepository
	cache   MatchCache
	logger  *log.Logger
}

func NewMatchLifecycleUsecase(matches repository.MatchRepository, cache MatchCache, logger *log.Logger) *MatchLifecycle {
	return &MatchLifecycle{matches: matches, cache: cache, logger: logger}
}

func (u *MatchLifecycle) Accept(ctx context.Context, matchID, actorID uuid.UUID) (match.Match, error) {
	return u.transition(ctx, matchID, actorID, match.StatusAccepted)
}

func (u *MatchLifecycle) Reject(ctx context.Context, matchID, actorID uuid.UUID) (match.Match, error) {
	return u.transition(ctx, matchID, actorID, match.StatusRejected)
}

// transition moves a pending match to a terminal state. The store-level
// conditional update guards the exactly-once guarantee; authorization is
// checked first against the persisted worker reference.
func (u *MatchLifecycle) transition(ctx context.Context, matchID, actorID uuid.UUID, to string) (match.Match, error) {
	if actorID == uuid.Nil {
		return match.Match{}, ErrUnauthorized
	}
	if matchID == uuid.Nil {
		return match.Match{}, match.ErrNotFound
	}

	current, err := u.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	if current.WorkerID != actorID {
		return match.Match{}, ErrForbidden
	}

	updated, err := u.matches.Transition(ctx, matchID, match.StatusPending, to)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) || errors.Is(err, match.ErrInvalidTransition) {
			return match.Match{}, err
		}
		return match.Match{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	if u.logger != nil {
		u.logger.Printf("match transition | match=%s to=%s actor=%s", matchID, to, actorID)
	}
	if u.cache != nil {
		u.cache.InvalidatePending(ctx)
	}

	return updated, nil
}

func (u *MatchLifecycle) ListPending(ctx context.Context, limit int) ([]repository.PendingMatchRow, error) {
	if u.cache != nil {
		if rows, ok := u.cache.GetPending(ctx, limit); ok {
			return rows, nil
		}
	}

	rows, err := u.matches.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	if u.cache != nil {
		u.cache.SetPending(ctx, limit, rows)
	}
	return rows, nil
}
