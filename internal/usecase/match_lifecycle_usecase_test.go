package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"farmconnect/internal/domain/match"
	"farmconnect/internal/domain/matching"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

// memMatchRepo guards transitions with a mutex so concurrent accepts
// exercise the same compare-and-swap contract as the SQL conditional
// update.
type memMatchRepo struct {
	mu      sync.Mutex
	matches map[uuid.UUID]match.Match
	listed  int
}

func newMemMatchRepo(seed ...match.Match) *memMatchRepo {
	r := &memMatchRepo{matches: make(map[uuid.UUID]match.Match)}
	for _, m := range seed {
		r.matches[m.ID] = m
	}
	return r
}

func (r *memMatchRepo) CreateAll(ctx context.Context, jobID uuid.UUID, proposals []matching.Proposal) ([]match.Match, error) {
	return nil, errors.New("not implemented")
}

func (r *memMatchRepo) GetByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (r *memMatchRepo) Transition(ctx context.Context, id uuid.UUID, from, to string) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	if m.Status != from {
		return match.Match{}, match.ErrInvalidTransition
	}
	m.Status = to
	r.matches[id] = m
	return m, nil
}

func (r *memMatchRepo) ListPending(ctx context.Context, limit int) ([]repository.PendingMatchRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed++
	out := make([]repository.PendingMatchRow, 0)
	for _, m := range r.matches {
		if m.Status == match.StatusPending {
			out = append(out, repository.PendingMatchRow{Match: m})
		}
	}
	return out, nil
}

func pendingMatch(workerID uuid.UUID) match.Match {
	return match.Match{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		WorkerID:   workerID,
		Score:      92,
		DistanceKm: 0,
		Status:     match.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestAcceptPendingMatch(t *testing.T) {
	workerID := uuid.New()
	m := pendingMatch(workerID)
	repo := newMemMatchRepo(m)
	cache := newFakeCache()
	uc := NewMatchLifecycleUsecase(repo, cache, nil)

	updated, err := uc.Accept(context.Background(), m.ID, workerID)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if updated.Status != match.StatusAccepted {
		t.Fatalf("status = %q, want %q", updated.Status, match.StatusAccepted)
	}
	if cache.invalidated != 1 {
		t.Fatalf("cache invalidations = %d, want 1", cache.invalidated)
	}
}

func TestRejectPendingMatch(t *testing.T) {
	workerID := uuid.New()
	m := pendingMatch(workerID)
	uc := NewMatchLifecycleUsecase(newMemMatchRepo(m), nil, nil)

	updated, err := uc.Reject(context.Background(), m.ID, workerID)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if updated.Status != match.StatusRejected {
		t.Fatalf("status = %q, want %q", updated.Status, match.StatusRejected)
	}
}

func TestConcurrentAcceptsResolveToOne(t *testing.T) {
	workerID := uuid.New()
	m := pendingMatch(workerID)
	uc := NewMatchLifecycleUsecase(newMemMatchRepo(m), nil, nil)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Accept(context.Background(), m.ID, workerID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, match.ErrInvalidTransition):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("successful accepts = %d, want exactly 1", ok)
	}
	if conflict != attempts-1 {
		t.Fatalf("conflicts = %d, want %d", conflict, attempts-1)
	}
}

func TestAcceptAfterRejectIsInvalid(t *testing.T) {
	workerID := uuid.New()
	m := pendingMatch(workerID)
	uc := NewMatchLifecycleUsecase(newMemMatchRepo(m), nil, nil)

	if _, err := uc.Reject(context.Background(), m.ID, workerID); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	_, err := uc.Accept(context.Background(), m.ID, workerID)
	if !errors.Is(err, match.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestAcceptUnknownMatch(t *testing.T) {
	uc := NewMatchLifecycleUsecase(newMemMatchRepo(), nil, nil)

	_, err := uc.Accept(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("err = %v, want match.ErrNotFound", err)
	}
}

func TestAcceptByWrongWorker(t *testing.T) {
	m := pendingMatch(uuid.New())
	repo := newMemMatchRepo(m)
	uc := NewMatchLifecycleUsecase(repo, nil, nil)

	_, err := uc.Accept(context.Background(), m.ID, uuid.New())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	stored, _ := repo.GetByID(context.Background(), m.ID)
	if stored.Status != match.StatusPending {
		t.Fatalf("status = %q, match mutated by forbidden actor", stored.Status)
	}
}

func TestAcceptWithoutActor(t *testing.T) {
	m := pendingMatch(uuid.New())
	uc := NewMatchLifecycleUsecase(newMemMatchRepo(m), nil, nil)

	_, err := uc.Accept(context.Background(), m.ID, uuid.Nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestListPendingReadsThroughCache(t *testing.T) {
	workerID := uuid.New()
	repo := newMemMatchRepo(pendingMatch(workerID), pendingMatch(workerID))
	cache := newFakeCache()
	uc := NewMatchLifecycleUsecase(repo, cache, nil)

	rows, err := uc.ListPending(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if repo.listed != 1 || cache.sets != 1 {
		t.Fatalf("first read: repo=%d sets=%d", repo.listed, cache.sets)
	}

	if _, err := uc.ListPending(context.Background(), 10); err != nil {
		t.Fatalf("ListPending cached: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("cached read hit the store, repo reads = %d", repo.listed)
	}
}
