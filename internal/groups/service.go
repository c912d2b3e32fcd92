package groups

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aferraro/badge-scanner/internal/entity"
	"github.com/aferraro/badge-scanner/internal/repository"
	"github.com/aferraro/badge-scanner/internal/utils"
)

// Service handles contact group business logic.
type Service struct {
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// NewService creates a new group service.
func NewService(groupRepo repository.GroupRepository, logger *slog.Logger) *Service {
	return &Service{
		groupRepo: groupRepo,
		logger:    logger,
	}
}

// CreateGroup creates a new group, typically one per event.
func (s *Service) CreateGroup(ctx context.Context, name, description string) (*entity.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	row, err := s.groupRepo.Create(ctx, name, strings.TrimSpace(description))
	if err != nil {
		if repository.IsConstraintError(err) {
			return nil, status.Errorf(codes.AlreadyExists, "group %q already exists", name)
		}
		return nil, status.Errorf(codes.Internal, "create group: %v", err)
	}
	s.logger.Info("group created", "group_id", row.ID, "name", row.Name)
	return utils.ToGroup(row), nil
}

// ListGroups returns all groups.
func (s *Service) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	rows, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "list groups failed")
	}
	out := make([]*entity.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToGroup(row))
	}
	return out, nil
}

// DeleteGroup removes a group. Contacts in the group are kept and detached.
func (s *Service) DeleteGroup(ctx context.Context, id string) error {
	gid, err := uuid.Parse(id)
	if err != nil {
		return status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.groupRepo.Delete(ctx, gid); err != nil {
		if repository.IsNotFound(err) {
			return status.Error(codes.NotFound, "group not found")
		}
		return status.Error(codes.Internal, "delete group failed")
	}
	return nil
}
