package contacts

import (
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/gen/ent"
	"github.com/aferraro/badge-scanner/internal/repository"
)

func strPtr(s string) *string { return &s }

type stubContactRepo struct {
	byID    map[uuid.UUID]*ent.Contact
	lastReq *repository.Contact
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{byID: make(map[uuid.UUID]*ent.Contact)}
}

func (s *stubContactRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Contact, error) {
	row, ok := s.byID[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (s *stubContactRepo) Create(_ context.Context, c *repository.Contact) (*ent.Contact, error) {
	s.lastReq = c
	row := &ent.Contact{
		ID:      uuid.New(),
		Name:    c.Name,
		Tags:    c.Tags,
		Source:  c.Source,
		GroupID: c.GroupID,
	}
	if c.Email != "" {
		row.Email = strPtr(c.Email)
	}
	s.byID[row.ID] = row
	return row, nil
}

func (s *stubContactRepo) Update(_ context.Context, id uuid.UUID, c *repository.Contact) (*ent.Contact, error) {
	row, ok := s.byID[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	s.lastReq = c
	row.Name = c.Name
	row.Tags = c.Tags
	return row, nil
}

func (s *stubContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return &ent.NotFoundError{}
	}
	delete(s.byID, id)
	return nil
}

func (s *stubContactRepo) List(context.Context, repository.ContactFilter) ([]*ent.Contact, error) {
	out := make([]*ent.Contact, 0, len(s.byID))
	for _, row := range s.byID {
		out = append(out, row)
	}
	return out, nil
}

func (s *stubContactRepo) FindByEmail(context.Context, string) (*ent.Contact, error) {
	return nil, &ent.NotFoundError{}
}

func (s *stubContactRepo) SetHubSpotID(context.Context, uuid.UUID, string) error { return nil }

type stubGroupRepo struct {
	existing map[uuid.UUID]bool
}

func (s *stubGroupRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return s.existing[id], nil
}

func (s *stubGroupRepo) GetByID(context.Context, uuid.UUID) (*ent.Group, error) {
	return nil, &ent.NotFoundError{}
}
func (s *stubGroupRepo) Create(context.Context, string, string) (*ent.Group, error) {
	return nil, nil
}
func (s *stubGroupRepo) List(context.Context) ([]*ent.Group, error) { return nil, nil }

func (s *stubGroupRepo) Delete(context.Context, uuid.UUID) error { return nil }

func newTestService(contactRepo *stubContactRepo, groupRepo *stubGroupRepo) *Service {
	if groupRepo == nil {
		groupRepo = &stubGroupRepo{}
	}
	return NewService(contactRepo, groupRepo, nil, slog.Default())
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

func TestCreateContactDefaults(t *testing.T) {
	repo := newStubContactRepo()
	svc := newTestService(repo, nil)

	c, err := svc.CreateContact(context.Background(), UpsertContactRequest{
		Name: "  Jane Smith  ",
		Tags: []string{"Lead", "lead", " GopherCon "},
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.Name != "Jane Smith" {
		t.Errorf("name = %q, want trimmed", c.Name)
	}
	if c.Source != string(constants.SourceManual) {
		t.Errorf("source = %q, want MANUAL default", c.Source)
	}
	if want := []string{"lead", "gophercon"}; !reflect.DeepEqual(c.Tags, want) {
		t.Errorf("tags = %v, want %v", c.Tags, want)
	}
}

func TestCreateContactValidation(t *testing.T) {
	svc := newTestService(newStubContactRepo(), nil)

	tests := []struct {
		name string
		req  UpsertContactRequest
	}{
		{"missing name", UpsertContactRequest{}},
		{"bad email", UpsertContactRequest{Name: "Jane", Email: "nope"}},
		{"bad phone", UpsertContactRequest{Name: "Jane", Phone: "abc"}},
		{"bad group id", UpsertContactRequest{Name: "Jane", GroupID: "not-a-uuid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContact(context.Background(), tt.req)
			wantCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestCreateContactUnknownGroup(t *testing.T) {
	svc := newTestService(newStubContactRepo(), &stubGroupRepo{existing: map[uuid.UUID]bool{}})
	_, err := svc.CreateContact(context.Background(), UpsertContactRequest{
		Name:    "Jane",
		GroupID: uuid.NewString(),
	})
	wantCode(t, err, codes.NotFound)
}

func TestCreateContactWithGroup(t *testing.T) {
	gid := uuid.New()
	repo := newStubContactRepo()
	svc := newTestService(repo, &stubGroupRepo{existing: map[uuid.UUID]bool{gid: true}})

	c, err := svc.CreateContact(context.Background(), UpsertContactRequest{
		Name:    "Jane",
		GroupID: gid.String(),
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.GroupID == nil || *c.GroupID != gid {
		t.Errorf("group = %v, want %v", c.GroupID, gid)
	}
}

func TestGetContactNotFound(t *testing.T) {
	svc := newTestService(newStubContactRepo(), nil)
	_, err := svc.GetContact(context.Background(), uuid.NewString())
	wantCode(t, err, codes.NotFound)
}

func TestGetContactBadID(t *testing.T) {
	svc := newTestService(newStubContactRepo(), nil)
	_, err := svc.GetContact(context.Background(), "nope")
	wantCode(t, err, codes.InvalidArgument)
}

func TestDeleteContact(t *testing.T) {
	repo := newStubContactRepo()
	svc := newTestService(repo, nil)

	c, err := svc.CreateContact(context.Background(), UpsertContactRequest{Name: "Jane"})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if err := svc.DeleteContact(context.Background(), c.ID.String()); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	err = svc.DeleteContact(context.Background(), c.ID.String())
	wantCode(t, err, codes.NotFound)
}

func TestSyncContactWithoutCRM(t *testing.T) {
	svc := newTestService(newStubContactRepo(), nil)
	_, err := svc.SyncContact(context.Background(), uuid.NewString())
	wantCode(t, err, codes.FailedPrecondition)
}
