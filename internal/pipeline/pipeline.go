package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/internal/badge"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/contacts"
	"github.com/aferraro/badge-scanner/internal/entity"
	"github.com/aferraro/badge-scanner/internal/ocr"
	"github.com/aferraro/badge-scanner/internal/repository"
	"github.com/aferraro/badge-scanner/internal/utils"
)

// Scanner coordinates one badge scan: normalize the raw text, classify lines
// into field candidates, auto-select the best guess per category, and persist
// the result on the scan job. Confirmation replays the classification and
// folds in the user's corrections before it creates a contact.
type Scanner struct {
	logger     *slog.Logger
	jobs       repository.ScanJobRepository
	contacts   *contacts.Service
	ocr        *ocr.Client
	classifier *badge.Classifier
	thresholds badge.Thresholds
}

func NewScanner(logger *slog.Logger, jobs repository.ScanJobRepository, contactSvc *contacts.Service, ocrClient *ocr.Client) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		logger:     logger,
		jobs:       jobs,
		contacts:   contactSvc,
		ocr:        ocrClient,
		classifier: badge.NewClassifier(),
		thresholds: badge.DefaultThresholds(),
	}
}

// Run classifies one badge's raw OCR text and stores the candidate set and
// auto-selection on a new scan job. Classification cannot fail on content:
// unusable text yields an empty selection flagged needs_review, not an error.
func (s *Scanner) Run(ctx context.Context, rawText string) (*entity.ScanJob, error) {
	normalized := ocr.Normalize(rawText)

	job, err := s.jobs.Start(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if err := s.classifyAndFinish(ctx, job.ID, normalized); err != nil {
		return nil, err
	}

	row, err := s.jobs.GetByID(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	return utils.ToScanJob(row), nil
}

// Queue stores the raw text as a QUEUED scan job without classifying it.
// A worker picks it up through ProcessQueued.
func (s *Scanner) Queue(ctx context.Context, rawText string) (*entity.ScanJob, error) {
	job, err := s.jobs.Enqueue(ctx, ocr.Normalize(rawText))
	if err != nil {
		return nil, err
	}
	return utils.ToScanJob(job), nil
}

// ProcessQueued classifies a previously queued scan job.
func (s *Scanner) ProcessQueued(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != string(constants.ScanStatusQueued) {
		s.logger.Warn("skipping scan job not in QUEUED state", "job_id", jobID, "status", job.Status)
		return nil
	}
	if err := s.jobs.MarkRunning(ctx, jobID); err != nil {
		return err
	}
	var rawText string
	if job.RawText != nil {
		rawText = *job.RawText
	}
	return s.classifyAndFinish(ctx, jobID, rawText)
}

func (s *Scanner) classifyAndFinish(ctx context.Context, jobID uuid.UUID, rawText string) error {
	cs := s.classifier.Classify(rawText)
	sel := badge.Select(cs, s.thresholds)

	var nameConfidence float64
	if name, ok := sel[constants.FieldName]; ok {
		nameConfidence = name.Confidence
	}
	needsReview := nameConfidence == 0

	if err := s.jobs.FinishScanSuccess(ctx, jobID, cs, sel, nameConfidence, needsReview); err != nil {
		_ = s.jobs.FinishFailure(ctx, jobID, err.Error())
		return err
	}
	s.logger.Info("scan classified",
		"job_id", jobID,
		"request_id", common.RequestIDFromContext(ctx),
		"relevant_lines", len(cs.Relevant),
		"filtered_lines", len(cs.Filtered),
		"selected", len(sel),
		"needs_review", needsReview,
	)
	return nil
}

// RunImage sends an image through the OCR service and classifies the result.
func (s *Scanner) RunImage(ctx context.Context, image []byte, mimeType string) (*entity.ScanJob, error) {
	if s.ocr == nil {
		return nil, status.Error(codes.FailedPrecondition, "ocr is not configured")
	}
	text, err := s.ocr.Recognize(ctx, image, mimeType)
	if err != nil {
		s.logger.Error("ocr recognize failed", "error", err)
		return nil, status.Error(codes.Unavailable, "ocr recognize failed")
	}
	return s.Run(ctx, text)
}

// GetJob returns a scan job by ID.
func (s *Scanner) GetJob(ctx context.Context, id string) (*entity.ScanJob, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	row, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "scan job not found")
		}
		return nil, status.Error(codes.Internal, "get scan job failed")
	}
	return utils.ToScanJob(row), nil
}

// ConfirmRequest carries the user's corrections for one scan job. Fields maps
// a category name to its final value; an empty value clears the category.
// Categories absent from the map keep their auto-selected value.
type ConfirmRequest struct {
	Fields    map[string]string
	Tags      []string
	GroupID   string
	PushToCRM bool
}

// Confirm finalizes a scanned badge into a contact. The stored raw text is
// re-classified (classification is deterministic, so this reproduces the
// original candidate set), the user's corrections are applied on top, and the
// sanitized result becomes a new contact with source SCAN.
func (s *Scanner) Confirm(ctx context.Context, id string, req ConfirmRequest) (*entity.Contact, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "scan job not found")
		}
		return nil, status.Error(codes.Internal, "get scan job failed")
	}
	if job.Status != string(constants.ScanStatusScanOK) {
		return nil, status.Errorf(codes.FailedPrecondition, "scan job is %s, want %s", job.Status, constants.ScanStatusScanOK)
	}
	if job.RawText == nil {
		return nil, status.Error(codes.FailedPrecondition, "scan job has no text")
	}

	cs := s.classifier.Classify(*job.RawText)
	asg := badge.NewAssignment()
	asg.Initialize(cs, s.thresholds)

	for name, value := range req.Fields {
		cat, ok := constants.ParseField(name)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown field category %q", name)
		}
		if value == "" {
			asg.RemoveAssignment(cat)
			continue
		}
		asg.AssignFreeText(cat, value)
	}

	contact := badge.Sanitize(asg.Finalize(), s.logger)
	if contact.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "a contact needs at least a name")
	}
	payload, err := json.Marshal(contact)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode contact failed")
	}
	if err := badge.ValidateContactJSON(payload); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "contact failed validation: %v", err)
	}

	created, err := s.contacts.CreateContact(ctx, contacts.UpsertContactRequest{
		Name:    contact.Name,
		Company: contact.Company,
		Title:   contact.Title,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Tags:    req.Tags,
		GroupID: req.GroupID,
		Source:  constants.SourceScan,
	})
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Confirm(ctx, jobID, created.ID); err != nil {
		return nil, status.Error(codes.Internal, "confirm scan job failed")
	}
	s.logger.Info("scan confirmed", "job_id", jobID, "contact_id", created.ID)

	if req.PushToCRM {
		// Best effort: the contact is already saved, a CRM outage should
		// not fail the confirmation.
		if hubspotID, err := s.contacts.SyncContact(ctx, created.ID.String()); err != nil {
			s.logger.Warn("crm push after confirm failed", "contact_id", created.ID, "error", err)
		} else {
			hid := hubspotID
			created.HubSpotID = &hid
		}
	}
	return created, nil
}
