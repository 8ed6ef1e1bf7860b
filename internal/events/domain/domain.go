package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event represents an audit event.
// Type examples: "notify.email.sent", "notify.confirmation.sent"
// Meta may contain recipient, session_id, provider, etc.
type Event struct {
	Type   string
	UserID uuid.UUID
	Meta   map[string]string
	Time   time.Time
}

// Publisher publishes events to an external system (log, queue, etc.).
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
