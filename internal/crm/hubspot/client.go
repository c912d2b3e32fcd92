package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/entity"
)

// Client is a thin bridge to the HubSpot contacts API. Field mapping is a
// plain key rename; enrichment and dedup beyond upsert-by-email live on the
// HubSpot side.
type Client struct {
	cfg        common.HubSpotConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// properties is the HubSpot contact property bag.
type properties struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"jobtitle,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type upsertRequest struct {
	Properties properties `json:"properties"`
}

type upsertResponse struct {
	ID string `json:"id"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int              `json:"total"`
	Results []upsertResponse `json:"results"`
}

func NewClient(cfg common.HubSpotConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Enabled reports whether a token is configured; without one every push is a
// silent no-op so the scan flow works standalone.
func (c *Client) Enabled() bool {
	return c.cfg.Token != ""
}

// UpsertContact creates or updates the HubSpot contact keyed by email and
// returns the HubSpot object ID. Contacts without an email are skipped:
// there is nothing stable to key the upsert on.
func (c *Client) UpsertContact(ctx context.Context, contact *entity.Contact) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	email := strDeref(contact.Email)
	if email == "" {
		c.logger.Debug("hubspot.upsert.skipped", "contact_id", contact.ID, "reason", "no email")
		return "", nil
	}

	existingID, err := c.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	first, last := splitName(contact.Name)
	req := upsertRequest{Properties: properties{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Company:   strDeref(contact.Company),
		JobTitle:  strDeref(contact.Title),
		Phone:     strDeref(contact.Phone),
	}}

	path := "/crm/v3/objects/contacts"
	method := http.MethodPost
	if existingID != "" {
		path += "/" + url.PathEscape(existingID)
		method = http.MethodPatch
	}

	var out upsertResponse
	if err := c.do(ctx, method, path, req, &out); err != nil {
		c.logger.Error("hubspot.upsert.failed", "contact_id", contact.ID, "error", err)
		return "", err
	}
	if out.ID == "" {
		out.ID = existingID
	}
	c.logger.Info("hubspot.upsert.ok", "contact_id", contact.ID, "hubspot_id", out.ID)
	return out.ID, nil
}

func (c *Client) findByEmail(ctx context.Context, email string) (string, error) {
	req := searchRequest{
		FilterGroups: []filterGroup{{Filters: []filter{{
			PropertyName: "email",
			Operator:     "EQ",
			Value:        email,
		}}}},
		Limit: 1,
	}
	var out searchResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", req, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].ID, nil
}

// do performs one API call with retries on transient failures.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("hubspot request: %w", err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("hubspot %d: %s", resp.StatusCode, raw)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("hubspot %d: %s", resp.StatusCode, raw))
		}
		if out != nil {
			if err := json.Unmarshal(raw, out); err != nil {
				return backoff.Permanent(fmt.Errorf("parse response: %w", err))
			}
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries),
		ctx,
	)
	return backoff.Retry(operation, policy)
}

func splitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[len(fields)-1]
	}
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
