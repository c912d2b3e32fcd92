package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a contact for data transfer between layers.
type Contact struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Company   *string    `json:"company,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Source    string     `json:"source"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	HubSpotID *string    `json:"hubspot_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
