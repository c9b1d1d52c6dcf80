package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"farmconnect/internal/domain/job"
	"farmconnect/internal/usecase"
)

// MatchDispatcher decouples job creation from matching: postings are
// queued and matching runs execute on worker goroutines. A full queue or
// a failed run is logged and dropped, never surfaced to the producer, so
// a posting always outlives a broken matching pipeline. An external
// retry mechanism can re-run matching for jobs left without matches.
type MatchDispatcher struct {
	matcher    usecase.MatchingUsecase
	queue      chan job.Posting
	workers    int
	runTimeout time.Duration
	logger     *log.Logger

	wg sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func NewMatchDispatcher(matcher usecase.MatchingUsecase, workers, queueSize int, runTimeout time.Duration, logger *log.Logger) *MatchDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	if runTimeout <= 0 {
		runTimeout = 30 * time.Second
	}
	return &MatchDispatcher{
		matcher:    matcher,
		queue:      make(chan job.Posting, queueSize),
		workers:    workers,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// Start launches the worker goroutines. Workers drain the queue until
// Stop is called.
func (d *MatchDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Stop closes the queue and waits for in-flight runs to finish.
func (d *MatchDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue queues a posting for matching without blocking. Drops are
// logged; the caller's job creation is already durable at this point.
func (d *MatchDispatcher) Enqueue(posting job.Posting) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.logDrop(posting, "dispatcher stopped")
		return
	}

	select {
	case d.queue <- posting:
	default:
		d.logDrop(posting, "queue full")
	}
}

func (d *MatchDispatcher) worker() {
	defer d.wg.Done()

	for posting := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.runTimeout)
		_, err := d.matcher.RunMatching(ctx, posting)
		cancel()

		if err != nil && d.logger != nil {
			d.logger.Printf("matching run failed | job=%s error=%v", posting.ID, err)
		}
	}
}

func (d *MatchDispatcher) logDrop(posting job.Posting, reason string) {
	if d.logger != nil {
		d.logger.Printf("matching dispatch dropped | job=%s reason=%s", posting.ID, reason)
	}
}
