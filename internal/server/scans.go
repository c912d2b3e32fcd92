package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contactspb "github.com/aferraro/badge-scanner/gen/proto/contacts/v1"
	"github.com/aferraro/badge-scanner/internal/async"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/pipeline"
	"github.com/aferraro/badge-scanner/internal/utils"
)

type ScanServer struct {
	contactspb.UnimplementedScanServiceServer
	scanner *pipeline.Scanner
	queue   async.Queue
	logger  *slog.Logger
}

func NewScanServer(scanner *pipeline.Scanner, queue async.Queue, logger *slog.Logger) *ScanServer {
	return &ScanServer{
		scanner: scanner,
		queue:   queue,
		logger:  logger,
	}
}

// SubmitScan classifies one badge. Text submissions run synchronously or, if
// async is set, as a QUEUED job picked up by a worker. Image submissions go
// through the OCR service first and are always classified inline.
func (s *ScanServer) SubmitScan(ctx context.Context, req *contactspb.SubmitScanRequest) (*contactspb.SubmitScanResponse, error) {
	if image := req.GetImage(); len(image) > 0 {
		job, err := s.scanner.RunImage(ctx, image, req.GetMimeType())
		if err != nil {
			return nil, err
		}
		return &contactspb.SubmitScanResponse{Job: utils.ToPBScanJob(job)}, nil
	}

	rawText := req.GetRawText()
	if strings.TrimSpace(rawText) == "" {
		return nil, status.Error(codes.InvalidArgument, "raw_text or image is required")
	}

	if req.GetAsync() && s.queue != nil {
		job, err := s.scanner.Queue(ctx, rawText)
		if err != nil {
			s.logger.Error("queue scan failed", "error", err)
			return nil, status.Error(codes.Internal, "queue scan failed")
		}
		if err := s.queue.Enqueue(ctx, async.Job{
			ScanID:      job.ID,
			SubmittedAt: time.Now(),
			TraceID:     common.RequestIDFromContext(ctx),
		}); err != nil {
			s.logger.Warn("enqueue scan failed, job stays QUEUED", "scan_id", job.ID, "error", err)
		}
		return &contactspb.SubmitScanResponse{Job: utils.ToPBScanJob(job)}, nil
	}

	job, err := s.scanner.Run(ctx, rawText)
	if err != nil {
		s.logger.Error("scan failed", "error", err)
		return nil, status.Error(codes.Internal, "scan failed")
	}
	return &contactspb.SubmitScanResponse{Job: utils.ToPBScanJob(job)}, nil
}

func (s *ScanServer) GetScan(ctx context.Context, req *contactspb.GetScanRequest) (*contactspb.GetScanResponse, error) {
	job, err := s.scanner.GetJob(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &contactspb.GetScanResponse{Job: utils.ToPBScanJob(job)}, nil
}

// ConfirmScan turns a scanned badge into a contact after the user has
// reviewed the auto-selected fields.
func (s *ScanServer) ConfirmScan(ctx context.Context, req *contactspb.ConfirmScanRequest) (*contactspb.ConfirmScanResponse, error) {
	contact, err := s.scanner.Confirm(ctx, req.GetId(), pipeline.ConfirmRequest{
		Fields:    req.GetFields(),
		Tags:      req.GetTags(),
		GroupID:   req.GetGroupId(),
		PushToCRM: req.GetPushToCrm(),
	})
	if err != nil {
		return nil, err
	}
	return &contactspb.ConfirmScanResponse{Contact: utils.ToPBContact(contact)}, nil
}
