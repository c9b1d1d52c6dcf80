package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"farmconnect/internal/domain/job"
	"farmconnect/internal/domain/match"

	"github.com/google/uuid"
)

type stubMatcher struct {
	mu   sync.Mutex
	runs []uuid.UUID
	err  error
	done chan struct{}
}

func (s *stubMatcher) RunMatching(_ context.Context, posting job.Posting) ([]match.Match, error) {
	s.mu.Lock()
	s.runs = append(s.runs, posting.ID)
	s.mu.Unlock()
	if s.done != nil {
		s.done <- struct{}{}
	}
	return nil, s.err
}

func TestMatchDispatcher_RunsQueuedPostings(t *testing.T) {
	m := &stubMatcher{done: make(chan struct{}, 1)}
	d := NewMatchDispatcher(m, 1, 8, time.Second, nil)
	d.Start()
	defer d.Stop()

	posting := job.Posting{ID: uuid.New()}
	d.Enqueue(posting)

	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("matching run never executed")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.runs) != 1 || m.runs[0] != posting.ID {
		t.Fatalf("expected one run for %s, got %v", posting.ID, m.runs)
	}
}

func TestMatchDispatcher_FailedRunDoesNotPropagate(t *testing.T) {
	m := &stubMatcher{err: errors.New("store down"), done: make(chan struct{}, 1)}
	d := NewMatchDispatcher(m, 1, 8, time.Second, nil)
	d.Start()

	// Enqueue must not block or panic even though every run fails.
	d.Enqueue(job.Posting{ID: uuid.New()})
	<-m.done
	d.Stop()
}

func TestMatchDispatcher_EnqueueAfterStopIsDropped(t *testing.T) {
	m := &stubMatcher{}
	d := NewMatchDispatcher(m, 1, 8, time.Second, nil)
	d.Start()
	d.Stop()

	d.Enqueue(job.Posting{ID: uuid.New()})

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.runs) != 0 {
		t.Fatalf("expected no runs after stop, got %d", len(m.runs))
	}
}

func TestMatchDispatcher_FullQueueDrops(t *testing.T) {
	block := make(chan struct{})
	m := &blockingMatcher{block: block, started: make(chan struct{})}
	d := NewMatchDispatcher(m, 1, 1, time.Second, nil)
	d.Start()

	// First posting occupies the worker, second fills the queue, third
	// must be dropped rather than blocking the producer.
	d.Enqueue(job.Posting{ID: uuid.New()})
	<-m.started
	d.Enqueue(job.Posting{ID: uuid.New()})

	enqueued := make(chan struct{})
	go func() {
		d.Enqueue(job.Posting{ID: uuid.New()})
		close(enqueued)
	}()

	select {
	case <-enqueued:
	case <-time.After(time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}

	close(block)
	d.Stop()
}

type blockingMatcher struct {
	block   chan struct{}
	started chan struct{}
	once    sync.Once
}

func (b *blockingMatcher) RunMatching(context.Context, job.Posting) ([]match.Match, error) {
	b.once.Do(func() { close(b.started) })
	<-b.block
	return nil, nil
}
