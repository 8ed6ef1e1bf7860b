package domain

import "context"

// Message is a transient outbound email. At least one of HTML/Text should be
// set; senders pass whatever they are given through to the provider.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Result is the normalized outcome of a send attempt. A provider rejection
// is reported in-band (Success=false plus Errors), not as a Go error; a Go
// error is reserved for hard transport failure (connection refused, etc.).
type Result struct {
	Success    bool     `json:"success"`
	MessageIDs []string `json:"message_ids,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// Sender is a pluggable email transport.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}
