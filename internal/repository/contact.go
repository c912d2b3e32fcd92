package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/gen/ent/contact"
	"github.com/aferraro/badge-scanner/gen/ent/predicate"
	"github.com/aferraro/badge-scanner/gen/ent/scanjob"
)

// Contact carries the writable fields for creates and updates.
type Contact struct {
	Name      string
	Company   string
	Title     string
	Email     string
	Phone     string
	Notes     string
	Tags      []string
	Source    string
	GroupID   *uuid.UUID
	HubSpotID string
}

// ContactFilter narrows ListContacts.
type ContactFilter struct {
	GroupID *uuid.UUID
	Tag     string
	Query   string // matches name, company or email, case-insensitive
}

type ContactRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Contact, error)
	Create(ctx context.Context, c *Contact) (*ent.Contact, error)
	Update(ctx context.Context, id uuid.UUID, c *Contact) (*ent.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ContactFilter) ([]*ent.Contact, error)
	FindByEmail(ctx context.Context, email string) (*ent.Contact, error)
	SetHubSpotID(ctx context.Context, id uuid.UUID, hubspotID string) error
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Contact, error) {
	return r.client.Contact.
		Query().
		Where(contact.ID(id)).
		Only(ctx)
}

func (r *contactRepository) Create(ctx context.Context, c *Contact) (*ent.Contact, error) {
	builder := r.client.Contact.Create().
		SetName(c.Name).
		SetSource(c.Source).
		SetTags(c.Tags)
	if c.Company != "" {
		builder.SetCompany(c.Company)
	}
	if c.Title != "" {
		builder.SetTitle(c.Title)
	}
	if c.Email != "" {
		builder.SetEmail(c.Email)
	}
	if c.Phone != "" {
		builder.SetPhone(c.Phone)
	}
	if c.Notes != "" {
		builder.SetNotes(c.Notes)
	}
	if c.GroupID != nil {
		builder.SetGroupID(*c.GroupID)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contact", "name", c.Name, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *contactRepository) Update(ctx context.Context, id uuid.UUID, c *Contact) (*ent.Contact, error) {
	builder := r.client.Contact.UpdateOneID(id).
		SetName(c.Name).
		SetTags(c.Tags)
	setOrClear := func(v string, set func(string) *ent.ContactUpdateOne, clear func() *ent.ContactUpdateOne) {
		if v != "" {
			set(v)
		} else {
			clear()
		}
	}
	setOrClear(c.Company, builder.SetCompany, builder.ClearCompany)
	setOrClear(c.Title, builder.SetTitle, builder.ClearTitle)
	setOrClear(c.Email, builder.SetEmail, builder.ClearEmail)
	setOrClear(c.Phone, builder.SetPhone, builder.ClearPhone)
	setOrClear(c.Notes, builder.SetNotes, builder.ClearNotes)
	if c.GroupID != nil {
		builder.SetGroupID(*c.GroupID)
	} else {
		builder.ClearGroupID()
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update contact", "contact_id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes a contact, detaching any scan jobs that produced it so the
// scan history survives.
func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.client.ScanJob.
		Update().
		Where(scanjob.ContactID(id)).
		ClearContactID().
		Save(ctx); err != nil {
		r.logger.Error("failed to detach contact scans", "contact_id", id, "error", err)
		return err
	}
	if err := r.client.Contact.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete contact", "contact_id", id, "error", err)
		return err
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]*ent.Contact, error) {
	preds := make([]predicate.Contact, 0, 3)
	if filter.GroupID != nil {
		preds = append(preds, contact.GroupID(*filter.GroupID))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		preds = append(preds, contact.Or(
			contact.NameContainsFold(q),
			contact.CompanyContainsFold(q),
			contact.EmailContainsFold(q),
		))
	}

	rows, err := r.client.Contact.Query().
		Where(preds...).
		Order(contact.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "error", err)
		return nil, err
	}

	// Tag membership is filtered in memory: tags live in a JSON column and
	// the predicate would not be portable across postgres and sqlite.
	if filter.Tag == "" {
		return rows, nil
	}
	out := rows[:0]
	for _, c := range rows {
		for _, tag := range c.Tags {
			if strings.EqualFold(tag, filter.Tag) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string) (*ent.Contact, error) {
	return r.client.Contact.Query().
		Where(contact.EmailEqualFold(email)).
		First(ctx)
}

func (r *contactRepository) SetHubSpotID(ctx context.Context, id uuid.UUID, hubspotID string) error {
	_, err := r.client.Contact.UpdateOneID(id).
		SetHubspotID(hubspotID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set hubspot id", "contact_id", id, "error", err)
	}
	return err
}
