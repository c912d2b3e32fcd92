package pipeline

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
	"github.com/aferraro/badge-scanner/internal/badge"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/contacts"
	"github.com/aferraro/badge-scanner/internal/ocr"
	"github.com/aferraro/badge-scanner/internal/repository"
)

const fullCard = "John Doe\nSenior Software Engineer\nTech Solutions Inc\njohn.doe@techsolutions.com\n+1 (555) 123-4567"

func strPtr(s string) *string { return &s }

// in-memory ScanJobRepository
type stubJobs struct {
	jobs map[uuid.UUID]*ent.ScanJob
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: make(map[uuid.UUID]*ent.ScanJob)}
}

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.ScanJob, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *job
	return &cp, nil
}

func (s *stubJobs) create(rawText, stat string) (*ent.ScanJob, error) {
	job := &ent.ScanJob{
		ID:      uuid.New(),
		Status:  stat,
		RawText: strPtr(rawText),
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobs) Enqueue(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return s.create(rawText, string(constants.ScanStatusQueued))
}

func (s *stubJobs) Start(_ context.Context, rawText string) (*ent.ScanJob, error) {
	return s.create(rawText, string(constants.ScanStatusRunning))
}

func (s *stubJobs) MarkRunning(_ context.Context, jobID uuid.UUID) error {
	s.jobs[jobID].Status = string(constants.ScanStatusRunning)
	return nil
}

func (s *stubJobs) FinishScanSuccess(_ context.Context, jobID uuid.UUID, candidates, selection any, nameConfidence float64, needsReview bool) error {
	job := s.jobs[jobID]
	job.Candidates, _ = json.Marshal(candidates)
	job.Selection, _ = json.Marshal(selection)
	job.NameConfidence = &nameConfidence
	job.NeedsReview = needsReview
	job.Status = string(constants.ScanStatusScanOK)
	return nil
}

func (s *stubJobs) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	job := s.jobs[jobID]
	job.Status = string(constants.ScanStatusFailed)
	job.ErrorMessage = &message
	return nil
}

func (s *stubJobs) Confirm(_ context.Context, jobID, contactID uuid.UUID) error {
	job := s.jobs[jobID]
	job.Status = string(constants.ScanStatusConfirmed)
	job.ContactID = &contactID
	return nil
}

// in-memory ContactRepository, just enough for the confirm flow
type stubContacts struct {
	created []*ent.Contact
}

func (s *stubContacts) GetByID(context.Context, uuid.UUID) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}

func (s *stubContacts) Create(_ context.Context, c *repository.Contact) (*ent.Contact, error) {
	row := &ent.Contact{
		ID:     uuid.New(),
		Name:   c.Name,
		Tags:   c.Tags,
		Source: c.Source,
	}
	if c.Company != "" {
		row.Company = strPtr(c.Company)
	}
	if c.Title != "" {
		row.Title = strPtr(c.Title)
	}
	if c.Email != "" {
		row.Email = strPtr(c.Email)
	}
	if c.Phone != "" {
		row.Phone = strPtr(c.Phone)
	}
	row.GroupID = c.GroupID
	s.created = append(s.created, row)
	return row, nil
}

func (s *stubContacts) Update(context.Context, uuid.UUID, *repository.Contact) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubContacts) Delete(context.Context, uuid.UUID) error { return nil }
func (s *stubContacts) List(context.Context, repository.ContactFilter) ([]*ent.Contact, error) {
	return nil, nil
}
func (s *stubContacts) FindByEmail(context.Context, string) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubContacts) SetHubSpotID(context.Context, uuid.UUID, string) error { return nil }

type stubGroups struct{}

func (stubGroups) GetByID(context.Context, uuid.UUID) (*ent.Group, error) {
	return nil, &ent.NotFoundError{}
}
func (stubGroups) Create(context.Context, string, string) (*ent.Group, error) {
	return nil, &ent.NotFoundError{}
}
func (stubGroups) List(context.Context) ([]*ent.Group, error) { return nil, nil }

func (stubGroups) Delete(context.Context, uuid.UUID) error { return nil }

func (stubGroups) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

func newTestScanner(jobs *stubJobs, contactRepo *stubContacts) *Scanner {
	logger := slog.Default()
	svc := contacts.NewService(contactRepo, stubGroups{}, nil, logger)
	return NewScanner(logger, jobs, svc, nil)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %v error, got nil", code)
	}
	if st, ok := status.FromError(err); !ok || st.Code() != code {
		t.Fatalf("want %v, got %v", code, err)
	}
}

func TestRunClassifiesAndPersists(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	job, err := s.Run(context.Background(), fullCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if job.Status != string(constants.ScanStatusScanOK) {
		t.Errorf("status = %s, want SCAN_OK", job.Status)
	}
	if job.NeedsReview {
		t.Error("full card should not need review")
	}
	if job.NameConfidence == nil || *job.NameConfidence <= 0.4 {
		t.Errorf("name confidence = %v, want > 0.4", job.NameConfidence)
	}
	if len(job.Candidates) == 0 || len(job.Selection) == 0 {
		t.Error("candidates and selection should be persisted")
	}
}

func TestRunUnusableTextNeedsReview(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	job, err := s.Run(context.Background(), "???\n###")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !job.NeedsReview {
		t.Error("scan without a name should need review")
	}
	if job.Status != string(constants.ScanStatusScanOK) {
		t.Errorf("status = %s, want SCAN_OK (unusable text is not a failure)", job.Status)
	}
}

func TestQueueThenProcess(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	queued, err := s.Queue(context.Background(), fullCard)
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if queued.Status != string(constants.ScanStatusQueued) {
		t.Errorf("status = %s, want QUEUED", queued.Status)
	}

	if err := s.ProcessQueued(context.Background(), queued.ID); err != nil {
		t.Fatalf("ProcessQueued: %v", err)
	}
	job, err := s.GetJob(context.Background(), queued.ID.String())
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.Status != string(constants.ScanStatusScanOK) {
		t.Errorf("status = %s, want SCAN_OK", job.Status)
	}
}

func newOCRTestScanner(t *testing.T, jobs *stubJobs, handler http.HandlerFunc) *Scanner {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.Default()
	svc := contacts.NewService(&stubContacts{}, stubGroups{}, nil, logger)
	client := ocr.NewClient(common.OCRConfig{
		APIURL:     srv.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	}, logger)
	return NewScanner(logger, jobs, svc, client)
}

func TestRunImageRecognizesAndClassifies(t *testing.T) {
	jobs := newStubJobs()
	s := newOCRTestScanner(t, jobs, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"text": fullCard})
	})

	job, err := s.RunImage(context.Background(), []byte("fake-png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("RunImage: %v", err)
	}
	if job.Status != string(constants.ScanStatusScanOK) {
		t.Errorf("status = %s, want SCAN_OK", job.Status)
	}
	var sel badge.Selection
	if err := json.Unmarshal(job.Selection, &sel); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if got := sel[constants.FieldName].Line.Text; got != "John Doe" {
		t.Errorf("selected name = %q, want John Doe", got)
	}
}

func TestRunImageOCRFailure(t *testing.T) {
	s := newOCRTestScanner(t, newStubJobs(), func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unsupported image", http.StatusBadRequest)
	})

	_, err := s.RunImage(context.Background(), []byte("not-an-image"), "image/png")
	wantCode(t, err, codes.Unavailable)
}

func TestRunImageWithoutOCRClient(t *testing.T) {
	s := newTestScanner(newStubJobs(), &stubContacts{})

	_, err := s.RunImage(context.Background(), []byte("fake-png-bytes"), "image/png")
	wantCode(t, err, codes.FailedPrecondition)
}

func TestProcessQueuedSkipsFinishedJobs(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	job, _ := s.Run(context.Background(), fullCard)
	if err := s.ProcessQueued(context.Background(), job.ID); err != nil {
		t.Fatalf("ProcessQueued: %v", err)
	}
	after, _ := s.GetJob(context.Background(), job.ID.String())
	if after.Status != string(constants.ScanStatusScanOK) {
		t.Errorf("status changed to %s, want SCAN_OK untouched", after.Status)
	}
}

func TestConfirmCreatesContact(t *testing.T) {
	jobs := newStubJobs()
	contactRepo := &stubContacts{}
	s := newTestScanner(jobs, contactRepo)

	job, err := s.Run(context.Background(), fullCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	contact, err := s.Confirm(context.Background(), job.ID.String(), ConfirmRequest{
		Fields: map[string]string{
			"TITLE":   "Principal Engineer", // user correction
			"COMPANY": "",                   // user cleared it
		},
		Tags: []string{"GopherCon", "gophercon"},
	})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if contact.Name != "John Doe" {
		t.Errorf("name = %q", contact.Name)
	}
	if contact.Title == nil || *contact.Title != "Principal Engineer" {
		t.Errorf("title = %v, want override", contact.Title)
	}
	if contact.Company != nil {
		t.Errorf("company = %v, want cleared", *contact.Company)
	}
	if contact.Email == nil || *contact.Email != "john.doe@techsolutions.com" {
		t.Errorf("email = %v", contact.Email)
	}
	if contact.Source != string(constants.SourceScan) {
		t.Errorf("source = %s, want SCAN", contact.Source)
	}
	if len(contact.Tags) != 1 || contact.Tags[0] != "gophercon" {
		t.Errorf("tags = %v, want deduped lowercase", contact.Tags)
	}

	after, _ := s.GetJob(context.Background(), job.ID.String())
	if after.Status != string(constants.ScanStatusConfirmed) {
		t.Errorf("job status = %s, want CONFIRMED", after.Status)
	}
	if after.ContactID == nil || *after.ContactID != contact.ID {
		t.Errorf("job contact_id = %v, want %v", after.ContactID, contact.ID)
	}
}

func TestConfirmRequiresName(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	job, _ := s.Run(context.Background(), fullCard)
	_, err := s.Confirm(context.Background(), job.ID.String(), ConfirmRequest{
		Fields: map[string]string{"NAME": ""},
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestConfirmRejectsUnknownCategory(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	job, _ := s.Run(context.Background(), fullCard)
	_, err := s.Confirm(context.Background(), job.ID.String(), ConfirmRequest{
		Fields: map[string]string{"NICKNAME": "JD"},
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestConfirmWrongStatus(t *testing.T) {
	jobs := newStubJobs()
	s := newTestScanner(jobs, &stubContacts{})

	queued, _ := s.Queue(context.Background(), fullCard)
	_, err := s.Confirm(context.Background(), queued.ID.String(), ConfirmRequest{})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestConfirmUnknownJob(t *testing.T) {
	s := newTestScanner(newStubJobs(), &stubContacts{})
	_, err := s.Confirm(context.Background(), uuid.NewString(), ConfirmRequest{})
	wantCode(t, err, codes.NotFound)
}
