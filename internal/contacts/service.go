package contacts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/crm/hubspot"
	"github.com/aferraro/badge-scanner/internal/entity"
	"github.com/aferraro/badge-scanner/internal/repository"
	"github.com/aferraro/badge-scanner/internal/utils"
)

// Service handles contact business logic.
type Service struct {
	contactRepo repository.ContactRepository
	groupRepo   repository.GroupRepository
	crm         *hubspot.Client
	logger      *slog.Logger
}

// NewService creates a new contact service. crm may be a disabled client;
// SyncContact then reports FailedPrecondition.
func NewService(contactRepo repository.ContactRepository, groupRepo repository.GroupRepository, crm *hubspot.Client, logger *slog.Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		groupRepo:   groupRepo,
		crm:         crm,
		logger:      logger,
	}
}

// UpsertContactRequest carries the writable contact fields.
type UpsertContactRequest struct {
	Name    string
	Company string
	Title   string
	Email   string
	Phone   string
	Notes   string
	Tags    []string
	GroupID string
	Source  constants.ContactSource
}

func (s *Service) validate(req UpsertContactRequest) error {
	v := common.NewValidator()
	v.Field("name", req.Name, common.Required)
	v.Field("name", req.Name, func(f string, val interface{}) *common.ValidationError {
		return common.MaxLength(f, val, 100)
	})
	v.Field("email", req.Email, common.Email)
	v.Field("phone", req.Phone, common.Phone)
	if req.GroupID != "" {
		v.Field("group_id", req.GroupID, common.UUID)
	}
	return common.ValidateAndReturnError(v)
}

func (s *Service) resolveGroup(ctx context.Context, groupID string) (*uuid.UUID, error) {
	if groupID == "" {
		return nil, nil
	}
	gid, err := uuid.Parse(groupID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "group_id must be a UUID")
	}
	exists, err := s.groupRepo.Exists(ctx, gid)
	if err != nil {
		s.logger.Error("group lookup failed", "group_id", gid, "error", err)
		return nil, status.Error(codes.Internal, "group lookup failed")
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "group not found")
	}
	return &gid, nil
}

// CreateContact validates and stores a new contact. Name is the only
// mandatory field; this is where the "a contact needs at least a name"
// precondition from the scan flow is enforced.
func (s *Service) CreateContact(ctx context.Context, req UpsertContactRequest) (*entity.Contact, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	gid, err := s.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = constants.SourceManual
	}

	row, err := s.contactRepo.Create(ctx, &repository.Contact{
		Name:    strings.TrimSpace(req.Name),
		Company: req.Company,
		Title:   req.Title,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Tags:    normalizeTags(req.Tags),
		Source:  string(source),
		GroupID: gid,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "create contact failed")
	}
	return utils.ToContact(row), nil
}

// UpdateContact replaces the writable fields of an existing contact.
func (s *Service) UpdateContact(ctx context.Context, id string, req UpsertContactRequest) (*entity.Contact, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	gid, err := s.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	row, err := s.contactRepo.Update(ctx, cid, &repository.Contact{
		Name:    strings.TrimSpace(req.Name),
		Company: req.Company,
		Title:   req.Title,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Tags:    normalizeTags(req.Tags),
		GroupID: gid,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "contact not found")
		}
		return nil, status.Error(codes.Internal, "update contact failed")
	}
	return utils.ToContact(row), nil
}

// GetContact fetches one contact by ID.
func (s *Service) GetContact(ctx context.Context, id string) (*entity.Contact, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	row, err := s.contactRepo.GetByID(ctx, cid)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "contact not found")
		}
		s.logger.Error("get contact failed", "contact_id", cid, "error", err)
		return nil, status.Error(codes.Internal, "get contact failed")
	}
	return utils.ToContact(row), nil
}

// DeleteContact removes a contact.
func (s *Service) DeleteContact(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.contactRepo.Delete(ctx, cid); err != nil {
		if repository.IsNotFound(err) {
			return status.Error(codes.NotFound, "contact not found")
		}
		return status.Error(codes.Internal, "delete contact failed")
	}
	return nil
}

// ListContactsRequest represents contact listing parameters.
type ListContactsRequest struct {
	GroupID string
	Tag     string
	Query   string
}

// ListContacts returns contacts matching the filter.
func (s *Service) ListContacts(ctx context.Context, req ListContactsRequest) ([]*entity.Contact, error) {
	filter := repository.ContactFilter{Tag: req.Tag, Query: req.Query}
	if req.GroupID != "" {
		gid, err := uuid.Parse(req.GroupID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "group_id must be a UUID")
		}
		filter.GroupID = &gid
	}

	rows, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		return nil, status.Error(codes.Internal, "list contacts failed")
	}
	out := make([]*entity.Contact, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToContact(row))
	}
	return out, nil
}

// SyncContact pushes a contact to HubSpot and records the remote ID.
func (s *Service) SyncContact(ctx context.Context, id string) (string, error) {
	if s.crm == nil || !s.crm.Enabled() {
		return "", status.Error(codes.FailedPrecondition, "hubspot is not configured")
	}
	cid, err := uuid.Parse(id)
	if err != nil {
		return "", status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	row, err := s.contactRepo.GetByID(ctx, cid)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", status.Error(codes.NotFound, "contact not found")
		}
		return "", status.Error(codes.Internal, "get contact failed")
	}

	hubspotID, err := s.crm.UpsertContact(ctx, utils.ToContact(row))
	if err != nil {
		s.logger.Error("hubspot sync failed", "contact_id", cid, "error", err)
		return "", status.Error(codes.Unavailable, "hubspot sync failed")
	}
	if hubspotID != "" {
		if err := s.contactRepo.SetHubSpotID(ctx, cid, hubspotID); err != nil {
			return "", status.Error(codes.Internal, "record hubspot id failed")
		}
	}
	s.logger.Info("contact synced to hubspot", "contact_id", cid, "hubspot_id", hubspotID)
	return hubspotID, nil
}

// normalizeTags trims, lowercases and dedupes a tag list, preserving order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
