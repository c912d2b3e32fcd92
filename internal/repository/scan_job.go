package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/gen/ent/scanjob"
)

type ScanJobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanJob, error)
	Enqueue(ctx context.Context, rawText string) (*ent.ScanJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	Start(ctx context.Context, rawText string) (*ent.ScanJob, error)
	FinishScanSuccess(ctx context.Context, jobID uuid.UUID, candidates, selection any, nameConfidence float64, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	Confirm(ctx context.Context, jobID, contactID uuid.UUID) error
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanJob, error) {
	return r.ent.ScanJob.Query().Where(scanjob.ID(id)).Only(ctx)
}

func (r *scanJobRepo) Enqueue(ctx context.Context, rawText string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetStatus(string(constants.ScanStatusQueued)).
		SetRawText(rawText).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job enqueue failed", "err", err)
		return nil, err
	}
	r.log.Info("scan_job queued", "job_id", job.ID, "raw_bytes", len(rawText))
	return job, nil
}

func (r *scanJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.ScanStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *scanJobRepo) Start(ctx context.Context, rawText string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetStatus(string(constants.ScanStatusRunning)).
		SetRawText(rawText).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "err", err)
		return nil, err
	}
	r.log.Info("scan_job started", "job_id", job.ID, "raw_bytes", len(rawText))
	return job, nil
}

func (r *scanJobRepo) FinishScanSuccess(ctx context.Context, jobID uuid.UUID, candidates, selection any, nameConfidence float64, needsReview bool) error {
	candJSON, err := json.Marshal(candidates)
	if err != nil {
		return err
	}
	selJSON, err := json.Marshal(selection)
	if err != nil {
		return err
	}
	_, err = r.ent.ScanJob.
		UpdateOneID(jobID).
		SetCandidates(candJSON).
		SetSelection(selJSON).
		SetNameConfidence(nameConfidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.ScanStatusScanOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished (SCAN_OK)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.ScanStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("scan_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *scanJobRepo) Confirm(ctx context.Context, jobID, contactID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetContactID(contactID).
		SetStatus(string(constants.ScanStatusConfirmed)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job confirm failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job confirmed", "job_id", jobID, "contact_id", contactID)
	return nil
}
