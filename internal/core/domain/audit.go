package domain

import (
	"encoding/json"
	"time"
)

const (
	ActionShowCreated = "show.created"
	ActionShowUpdated = "show.updated"
	ActionShowDeleted = "show.deleted"
)

// MutationMetadata describes who changed a show and within which request.
type MutationMetadata struct {
	Actor      string
	RequestID  string
	OccurredAt time.Time
}

func (m MutationMetadata) Normalize() MutationMetadata {
	if m.Actor == "" {
		m.Actor = "api"
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}
	return m
}

type AuditEvent struct {
	ID         int64           `json:"id"`
	EventID    string          `json:"eventId"`
	ShowID     int64           `json:"showId"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor"`
	RequestID  string          `json:"requestId"`
	BeforeJSON json.RawMessage `json:"before,omitempty"`
	AfterJSON  json.RawMessage `json:"after,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type AuditFilter struct {
	ShowID  int64
	AfterID int64
	Limit   int
}
