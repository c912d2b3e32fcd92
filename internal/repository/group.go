package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/gen/ent/contact"
	"github.com/aferraro/badge-scanner/gen/ent/group"
)

type GroupRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Group, error)
	Create(ctx context.Context, name, description string) (*ent.Group, error)
	List(ctx context.Context) ([]*ent.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type groupRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGroupRepository(client *ent.Client, logger *slog.Logger) GroupRepository {
	return &groupRepository{
		client: client,
		logger: logger,
	}
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Group, error) {
	return r.client.Group.Query().Where(group.ID(id)).Only(ctx)
}

func (r *groupRepository) Create(ctx context.Context, name, description string) (*ent.Group, error) {
	builder := r.client.Group.Create().SetName(name)
	if description != "" {
		builder.SetDescription(description)
	}
	g, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create group", "name", name, "error", err)
		return nil, err
	}
	return g, nil
}

func (r *groupRepository) List(ctx context.Context) ([]*ent.Group, error) {
	glist, err := r.client.Group.Query().Order(group.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list groups", "error", err)
		return nil, err
	}
	return glist, nil
}

// Delete removes the group after detaching its contacts, so members survive
// the group they were scanned into.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	detached, err := r.client.Contact.
		Update().
		Where(contact.GroupID(id)).
		ClearGroupID().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to detach group contacts", "group_id", id, "error", err)
		return err
	}
	if detached > 0 {
		r.logger.Info("detached contacts from group", "group_id", id, "count", detached)
	}
	if err := r.client.Group.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete group", "group_id", id, "error", err)
		return err
	}
	return nil
}

func (r *groupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Group.Query().Where(group.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check group existence", "group_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
