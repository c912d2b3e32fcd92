package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one badge-scan session for data transfer between layers.
type ScanJob struct {
	ID             uuid.UUID       `json:"id"`
	ContactID      *uuid.UUID      `json:"contact_id,omitempty"`
	Status         string          `json:"status"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     *time.Time      `json:"finished_at,omitempty"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	RawText        *string         `json:"raw_text,omitempty"`
	Candidates     json.RawMessage `json:"candidates,omitempty"`
	Selection      json.RawMessage `json:"selection,omitempty"`
	NameConfidence *float64        `json:"name_confidence,omitempty"`
	NeedsReview    bool            `json:"needs_review"`
}
