package async

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/pipeline"
)

// memJobs is a minimal thread-safe ScanJobRepository for queue tests. When
// gate is set, GetByID signals entered and then holds until gate is closed,
// letting tests pin a worker mid-job.
type memJobs struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*ent.ScanJob
	traceIDs map[uuid.UUID]string

	gate    chan struct{}
	entered chan struct{}
}

func newMemJobs() *memJobs {
	return &memJobs{
		jobs:     make(map[uuid.UUID]*ent.ScanJob),
		traceIDs: make(map[uuid.UUID]string),
	}
}

func (m *memJobs) status(id uuid.UUID) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id].Status
}

func (m *memJobs) traceID(id uuid.UUID) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.traceIDs[id]
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.ScanJob, error) {
	if m.gate != nil {
		m.entered <- struct{}{}
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *job
	return &cp, nil
}

func (m *memJobs) create(rawText, stat string) (*ent.ScanJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw := rawText
	job := &ent.ScanJob{ID: uuid.New(), Status: stat, RawText: &raw}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *memJobs) Enqueue(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return m.create(rawText, string(constants.ScanStatusQueued))
}

func (m *memJobs) Start(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return m.create(rawText, string(constants.ScanStatusRunning))
}

func (m *memJobs) MarkRunning(_ context.Context, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[jobID].Status = string(constants.ScanStatusRunning)
	return nil
}

func (m *memJobs) FinishScanSuccess(ctx context.Context, jobID uuid.UUID, candidates, selection any, nameConfidence float64, needsReview bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traceIDs[jobID] = common.RequestIDFromContext(ctx)
	job := m.jobs[jobID]
	job.Candidates, _ = json.Marshal(candidates)
	job.Selection, _ = json.Marshal(selection)
	job.Status = string(constants.ScanStatusScanOK)
	return nil
}

func (m *memJobs) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[jobID].Status = string(constants.ScanStatusFailed)
	return nil
}

func (m *memJobs) Confirm(_ context.Context, jobID, contactID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[jobID].Status = string(constants.ScanStatusConfirmed)
	return nil
}

func TestQueueProcessesAndDrains(t *testing.T) {
	jobs := newMemJobs()
	scanner := pipeline.NewScanner(slog.Default(), jobs, nil, nil)
	q := NewScanQueue(scanner, slog.Default(),
		WithWorkers(2),
		WithQueueSize(16),
		WithProcessTimeout(5*time.Second),
	)

	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		job, err := scanner.Queue(context.Background(), "John Doe\nAcme Inc\njohn@acme.com")
		if err != nil {
			t.Fatalf("Queue: %v", err)
		}
		ids = append(ids, job.ID)
		if err := q.Enqueue(context.Background(), Job{ScanID: job.ID, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	for _, id := range ids {
		if got := jobs.status(id); got != string(constants.ScanStatusScanOK) {
			t.Errorf("job %s status = %s, want SCAN_OK", id, got)
		}
	}
}

func TestEnqueuePropagatesTraceID(t *testing.T) {
	jobs := newMemJobs()
	scanner := pipeline.NewScanner(slog.Default(), jobs, nil, nil)
	q := NewScanQueue(scanner, slog.Default(), WithWorkers(1))

	job, err := scanner.Queue(context.Background(), "John Doe\njohn@acme.com")
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if err := q.Enqueue(context.Background(), Job{ScanID: job.ID, SubmittedAt: time.Now(), TraceID: "req-123"}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := jobs.traceID(job.ID); got != "req-123" {
		t.Errorf("worker request_id = %q, want req-123", got)
	}
}

func TestBackpressuredEnqueueHonorsContext(t *testing.T) {
	jobs := newMemJobs()
	jobs.gate = make(chan struct{})
	jobs.entered = make(chan struct{}, 4)
	scanner := pipeline.NewScanner(slog.Default(), jobs, nil, nil)
	q := NewScanQueue(scanner, slog.Default(), WithWorkers(1), WithQueueSize(1))

	queueOne := func() uuid.UUID {
		t.Helper()
		job, err := scanner.Queue(context.Background(), "John Doe\njohn@acme.com")
		if err != nil {
			t.Fatalf("Queue: %v", err)
		}
		return job.ID
	}

	// First job occupies the only worker, second fills the channel buffer.
	first := queueOne()
	if err := q.Enqueue(context.Background(), Job{ScanID: first}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	<-jobs.entered
	second := queueOne()
	if err := q.Enqueue(context.Background(), Job{ScanID: second}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// The queue is now full; a canceled context must back out instead of
	// blocking.
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	third := queueOne()
	if err := q.Enqueue(canceled, Job{ScanID: third}); err != context.Canceled {
		t.Fatalf("Enqueue on full queue = %v, want context.Canceled", err)
	}

	close(jobs.gate)
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	q.Shutdown(ctx)

	for _, id := range []uuid.UUID{first, second} {
		if got := jobs.status(id); got != string(constants.ScanStatusScanOK) {
			t.Errorf("job %s status = %s, want SCAN_OK", id, got)
		}
	}
	if got := jobs.status(third); got != string(constants.ScanStatusQueued) {
		t.Errorf("dropped job status = %s, want QUEUED", got)
	}
}

func TestEnqueueAfterShutdownIsNoOp(t *testing.T) {
	jobs := newMemJobs()
	scanner := pipeline.NewScanner(slog.Default(), jobs, nil, nil)
	q := NewScanQueue(scanner, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{ScanID: uuid.New()}); err != nil {
		t.Errorf("Enqueue after shutdown: %v", err)
	}
}
