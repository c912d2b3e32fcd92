package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/internal/repository"
)

func strPtr(s string) *string { return &s }

type stubContacts struct {
	rows       []*ent.Contact
	lastFilter repository.ContactFilter
}

func (s *stubContacts) List(_ context.Context, filter repository.ContactFilter) ([]*ent.Contact, error) {
	s.lastFilter = filter
	return s.rows, nil
}

func (s *stubContacts) GetByID(context.Context, uuid.UUID) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubContacts) Create(context.Context, *repository.Contact) (*ent.Contact, error) {
	return nil, nil
}
func (s *stubContacts) Update(context.Context, uuid.UUID, *repository.Contact) (*ent.Contact, error) {
	return nil, nil
}
func (s *stubContacts) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubContacts) FindByEmail(context.Context, string) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubContacts) SetHubSpotID(context.Context, uuid.UUID, string) error { return nil }

type stubGroups struct {
	rows []*ent.Group
}

func (s *stubGroups) List(context.Context) ([]*ent.Group, error) { return s.rows, nil }

func (s *stubGroups) GetByID(context.Context, uuid.UUID) (*ent.Group, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubGroups) Create(context.Context, string, string) (*ent.Group, error) {
	return nil, nil
}
func (s *stubGroups) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubGroups) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

func TestExportContactsXLSX(t *testing.T) {
	groupID := uuid.New()
	contactsRepo := &stubContacts{rows: []*ent.Contact{
		{
			ID:      uuid.New(),
			Name:    "Jane Smith",
			Title:   strPtr("VP of Sales"),
			Company: strPtr("Acme Corp"),
			Email:   strPtr("jane@acme.com"),
			Phone:   strPtr("(555) 123-4567"),
			Tags:    []string{"gophercon", "lead"},
			Source:  "SCAN",
			GroupID: &groupID,
		},
		{
			ID:     uuid.New(),
			Name:   "John Doe",
			Source: "MANUAL",
		},
	}}
	groupsRepo := &stubGroups{rows: []*ent.Group{
		{ID: groupID, Name: "GopherCon 2026"},
	}}

	svc := NewService(contactsRepo, groupsRepo, nil)
	xlsx, rows, err := svc.ExportContactsXLSX(context.Background(), &groupID, "lead")
	if err != nil {
		t.Fatalf("ExportContactsXLSX: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	if contactsRepo.lastFilter.GroupID == nil || *contactsRepo.lastFilter.GroupID != groupID {
		t.Errorf("filter group = %v, want %v", contactsRepo.lastFilter.GroupID, groupID)
	}
	if contactsRepo.lastFilter.Tag != "lead" {
		t.Errorf("filter tag = %q, want lead", contactsRepo.lastFilter.Tag)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Contacts", ref)
		if err != nil {
			t.Fatalf("cell %s: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Name" {
		t.Errorf("A1 = %q, want header Name", got)
	}
	if got := cell("A2"); got != "Jane Smith" {
		t.Errorf("A2 = %q", got)
	}
	if got := cell("D2"); got != "jane@acme.com" {
		t.Errorf("D2 = %q", got)
	}
	if got := cell("F2"); got != "GopherCon 2026" {
		t.Errorf("F2 = %q, want resolved group name", got)
	}
	if got := cell("G2"); got != "gophercon, lead" {
		t.Errorf("G2 = %q", got)
	}
	if got := cell("A3"); got != "John Doe" {
		t.Errorf("A3 = %q", got)
	}
	if got := cell("F3"); got != "" {
		t.Errorf("F3 = %q, want empty for ungrouped contact", got)
	}
}

func TestExportEmpty(t *testing.T) {
	svc := NewService(&stubContacts{}, &stubGroups{}, nil)
	xlsx, rows, err := svc.ExportContactsXLSX(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("ExportContactsXLSX: %v", err)
	}
	if rows != 0 {
		t.Errorf("rows = %d, want 0", rows)
	}
	if len(xlsx) == 0 {
		t.Error("want a valid workbook even with no contacts")
	}
}
