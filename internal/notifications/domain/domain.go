package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
)

// ErrNoRecipientEmail indicates a session whose user record carries no email
// address. This is a data integrity failure, not a user-facing condition.
var ErrNoRecipientEmail = errors.New("session user has no email address")

// SendEmailInput mirrors the direct-send request body. Text and HTML are
// passed through to the transport unchanged, empty or not.
type SendEmailInput struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Service interface {
	// SendEmail delivers a caller-supplied email. Transport failure is
	// reported in-band via the Result, never as an error.
	SendEmail(ctx context.Context, in SendEmailInput) edomain.Result
	// SendBookingConfirmation emails the session's user a confirmation.
	// The in-band mail result is not surfaced; authorization, data, and
	// hard transport errors propagate.
	SendBookingConfirmation(ctx context.Context, sessionID, callerID uuid.UUID, callerRole string) error
}
