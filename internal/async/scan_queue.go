package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/pipeline"
)

type ScanQueue struct {
	scanner *pipeline.Scanner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*ScanQueue)

func WithWorkers(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ScanQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScanQueue(scanner *pipeline.Scanner, logger *slog.Logger, opts ...Option) *ScanQueue {
	q := &ScanQueue{
		scanner: scanner,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScanQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithScanID(ctx, job.ScanID.String())
					if job.TraceID != "" {
						ctx = common.WithRequestID(ctx, job.TraceID)
					}
					err := q.scanner.ProcessQueued(ctx, job.ScanID)
					cancel()

					if err != nil {
						q.logger.Error("scan processing failed", "worker_id", workerID, "scan_id", job.ScanID, "error", err)
					} else {
						q.logger.Info("scan processed", "worker_id", workerID, "scan_id", job.ScanID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a job to the workers. A full channel applies backpressure by
// blocking outside the mutex, so concurrent Enqueues and Shutdown stay
// responsive; the blocked send gives up when ctx is done.
func (q *ScanQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "scan_id", job.ScanID)
		return nil
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued scan for processing", "scan_id", job.ScanID)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "scan_id", job.ScanID)
	select {
	case q.ch <- job:
		q.logger.Info("queued scan for processing", "scan_id", job.ScanID)
		return nil
	case <-ctx.Done():
		q.logger.Warn("enqueue canceled, job stays QUEUED", "scan_id", job.ScanID)
		return ctx.Err()
	}
}

func (q *ScanQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// In-flight Enqueues still hold send permits; close only once they are
	// done so no send can hit a closed channel.
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
