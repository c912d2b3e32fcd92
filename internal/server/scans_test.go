package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/gen/ent"
	contactspb "github.com/aferraro/badge-scanner/gen/proto/contacts/v1"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/ocr"
	"github.com/aferraro/badge-scanner/internal/pipeline"
)

// in-memory ScanJobRepository, just enough for the submit paths
type fakeJobs struct {
	jobs map[uuid.UUID]*ent.ScanJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: make(map[uuid.UUID]*ent.ScanJob)}
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.ScanJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobs) create(rawText, stat string) (*ent.ScanJob, error) {
	raw := rawText
	job := &ent.ScanJob{ID: uuid.New(), Status: stat, RawText: &raw}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobs) Enqueue(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return f.create(rawText, string(constants.ScanStatusQueued))
}

func (f *fakeJobs) Start(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return f.create(rawText, string(constants.ScanStatusRunning))
}

func (f *fakeJobs) MarkRunning(_ context.Context, jobID uuid.UUID) error {
	f.jobs[jobID].Status = string(constants.ScanStatusRunning)
	return nil
}

func (f *fakeJobs) FinishScanSuccess(_ context.Context, jobID uuid.UUID, candidates, selection any, nameConfidence float64, needsReview bool) error {
	job := f.jobs[jobID]
	job.Candidates, _ = json.Marshal(candidates)
	job.Selection, _ = json.Marshal(selection)
	job.NameConfidence = &nameConfidence
	job.NeedsReview = needsReview
	job.Status = string(constants.ScanStatusScanOK)
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	f.jobs[jobID].Status = string(constants.ScanStatusFailed)
	return nil
}

func (f *fakeJobs) Confirm(_ context.Context, jobID, contactID uuid.UUID) error {
	f.jobs[jobID].Status = string(constants.ScanStatusConfirmed)
	return nil
}

func TestSubmitScanImageGoesThroughOCR(t *testing.T) {
	var gotImage []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Image    []byte `json:"image"`
			MimeType string `json:"mime_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode ocr request: %v", err)
		}
		gotImage = req.Image
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "John Doe\nAcme Inc\njohn@acme.com"})
	}))
	defer srv.Close()

	client := ocr.NewClient(common.OCRConfig{
		APIURL:     srv.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	}, slog.Default())
	scanner := pipeline.NewScanner(slog.Default(), newFakeJobs(), nil, client)
	s := NewScanServer(scanner, nil, slog.Default())

	resp, err := s.SubmitScan(context.Background(), &contactspb.SubmitScanRequest{
		Image:    []byte("fake-png-bytes"),
		MimeType: "image/png",
	})
	if err != nil {
		t.Fatalf("SubmitScan: %v", err)
	}
	if string(gotImage) != "fake-png-bytes" {
		t.Errorf("ocr service received image %q, want fake-png-bytes", gotImage)
	}
	job := resp.GetJob()
	if job.GetStatus() != string(constants.ScanStatusScanOK) {
		t.Errorf("status = %s, want SCAN_OK", job.GetStatus())
	}
	if got := job.GetSelection()[string(constants.FieldName)]; got != "John Doe" {
		t.Errorf("selected name = %q, want John Doe", got)
	}
}

func TestSubmitScanRequiresTextOrImage(t *testing.T) {
	scanner := pipeline.NewScanner(slog.Default(), newFakeJobs(), nil, nil)
	s := NewScanServer(scanner, nil, slog.Default())

	_, err := s.SubmitScan(context.Background(), &contactspb.SubmitScanRequest{RawText: "   "})
	if st, ok := status.FromError(err); !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}
