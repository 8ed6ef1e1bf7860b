package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotParticipant is returned when a session does not exist or the caller
// is not its user or coach. The two cases are deliberately not distinguished
// so that probing for foreign session IDs leaks nothing.
var ErrNotParticipant = errors.New("session not accessible")

// Participant is the user- or coach-side party of a session.
type Participant struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// BookingType names the kind of engagement booked (e.g. "Private Lesson").
type BookingType struct {
	ID   uuid.UUID
	Name string
}

// Session is a read-only view of a scheduled coaching engagement.
type Session struct {
	ID              uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Price           float64
	User            Participant
	Coach           Participant
	BookingType     BookingType
	CreatedAt       time.Time
}

type CreateInput struct {
	UserID        uuid.UUID
	CoachID       uuid.UUID
	BookingTypeID uuid.UUID
	ScheduledAt   time.Time
	Duration      int
	Price         float64
}

type Service interface {
	// FindOne fetches a session, enforcing that the caller is a participant.
	// Admin callers see all sessions. Returns ErrNotParticipant both when the
	// session is absent and when the caller is neither its user nor its coach.
	FindOne(ctx context.Context, sessionID, callerID uuid.UUID, callerRole string) (Session, error)
	// ListForCaller returns the sessions the caller participates in.
	ListForCaller(ctx context.Context, callerID uuid.UUID, callerRole string) ([]Session, error)
	Create(ctx context.Context, in CreateInput) (Session, error)
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]Session, error)
	ListAll(ctx context.Context) ([]Session, error)
	Create(ctx context.Context, id uuid.UUID, in CreateInput) error
}
