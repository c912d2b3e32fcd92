package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/entity"
)

func strPtr(s string) *string { return &s }

func testContact() *entity.Contact {
	return &entity.Contact{
		ID:      uuid.New(),
		Name:    "Jane Ann Smith",
		Company: strPtr("Acme Corp"),
		Title:   strPtr("VP of Sales"),
		Email:   strPtr("jane@acme.com"),
		Phone:   strPtr("+1 (555) 123-4567"),
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(common.HubSpotConfig{
		BaseURL:    srv.URL,
		Token:      "test-token",
		Timeout:    5 * time.Second,
		MaxRetries: 0,
	}, nil)
}

func TestUpsertCreatesWhenMissing(t *testing.T) {
	var createdProps properties
	mux := http.NewServeMux()
	mux.HandleFunc("/crm/v3/objects/contacts/search", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Total: 0})
	})
	mux.HandleFunc("/crm/v3/objects/contacts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req upsertRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		createdProps = req.Properties
		_ = json.NewEncoder(w).Encode(upsertResponse{ID: "hs-123"})
	})

	c := newTestClient(t, mux)
	id, err := c.UpsertContact(context.Background(), testContact())
	if err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}
	if id != "hs-123" {
		t.Errorf("id = %q, want hs-123", id)
	}
	if createdProps.FirstName != "Jane" || createdProps.LastName != "Smith" {
		t.Errorf("name split = %q/%q, want Jane/Smith", createdProps.FirstName, createdProps.LastName)
	}
	if createdProps.JobTitle != "VP of Sales" {
		t.Errorf("jobtitle = %q", createdProps.JobTitle)
	}
}

func TestUpsertPatchesWhenFound(t *testing.T) {
	var patchCalled bool
	mux := http.NewServeMux()
	mux.HandleFunc("/crm/v3/objects/contacts/search", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{
			Total:   1,
			Results: []upsertResponse{{ID: "hs-777"}},
		})
	})
	mux.HandleFunc("/crm/v3/objects/contacts/hs-777", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		patchCalled = true
		_ = json.NewEncoder(w).Encode(upsertResponse{ID: "hs-777"})
	})

	c := newTestClient(t, mux)
	id, err := c.UpsertContact(context.Background(), testContact())
	if err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}
	if !patchCalled {
		t.Error("expected PATCH to existing object")
	}
	if id != "hs-777" {
		t.Errorf("id = %q, want hs-777", id)
	}
}

func TestUpsertSkipsWithoutEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for contact without email")
	}))
	contact := testContact()
	contact.Email = nil

	id, err := c.UpsertContact(context.Background(), contact)
	if err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}
	if id != "" {
		t.Errorf("id = %q, want empty", id)
	}
}

func TestDisabledClientIsNoOp(t *testing.T) {
	c := NewClient(common.HubSpotConfig{BaseURL: "http://hubspot.invalid"}, nil)
	if c.Enabled() {
		t.Fatal("client without token should be disabled")
	}
	id, err := c.UpsertContact(context.Background(), testContact())
	if err != nil || id != "" {
		t.Errorf("got (%q, %v), want no-op", id, err)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"", "", ""},
		{"Cher", "Cher", ""},
		{"Jane Smith", "Jane", "Smith"},
		{"Jane Ann Smith", "Jane", "Smith"},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		if first != tt.first || last != tt.last {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tt.in, first, last, tt.first, tt.last)
		}
	}
}
