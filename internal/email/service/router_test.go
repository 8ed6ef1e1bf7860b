package service

import (
	"context"
	"testing"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
)

type captureSender struct {
	called  bool
	lastMsg edomain.Message
}

func (c *captureSender) Send(ctx context.Context, msg edomain.Message) (edomain.Result, error) {
	c.called = true
	c.lastMsg = msg
	return edomain.Result{Success: true}, nil
}

var _ edomain.Sender = (*captureSender)(nil)

func TestRouter_SelectsSMTP(t *testing.T) {
	cfg := config.Config{EmailProvider: "smtp"}
	r := NewRouter(cfg)
	// swap implementations with captures so we don't hit network
	smtpCap := &captureSender{}
	brevoCap := &captureSender{}
	r.smtp = smtpCap
	r.brevo = brevoCap

	if _, err := r.Send(context.Background(), edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !smtpCap.called || brevoCap.called {
		t.Fatalf("expected smtp called, brevo not called")
	}
}

func TestRouter_SelectsBrevo(t *testing.T) {
	cfg := config.Config{EmailProvider: "brevo"}
	r := NewRouter(cfg)
	smtpCap := &captureSender{}
	brevoCap := &captureSender{}
	r.smtp = smtpCap
	r.brevo = brevoCap

	if _, err := r.Send(context.Background(), edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !brevoCap.called || smtpCap.called {
		t.Fatalf("expected brevo called, smtp not called")
	}
}

func TestRouter_DefaultsToSMTP(t *testing.T) {
	r := NewRouter(config.Config{})
	smtpCap := &captureSender{}
	brevoCap := &captureSender{}
	r.smtp = smtpCap
	r.brevo = brevoCap

	if _, err := r.Send(context.Background(), edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !smtpCap.called {
		t.Fatalf("expected smtp fallback")
	}
}
