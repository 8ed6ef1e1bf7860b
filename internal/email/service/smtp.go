package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/metrics"
)

// Ensure SMTP implements domain.Sender
var _ edomain.Sender = (*SMTP)(nil)

type SMTP struct {
	cfg config.Config
}

func NewSMTP(cfg config.Config) *SMTP { return &SMTP{cfg: cfg} }

func (s *SMTP) Send(ctx context.Context, msg edomain.Message) (edomain.Result, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	raw := buildMIME(s.cfg.MailFrom, msg)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, s.cfg.MailFrom, []string{msg.To}, raw); err != nil {
		metrics.IncEmailSent("smtp", "error")
		return edomain.Result{}, err
	}
	metrics.IncEmailSent("smtp", "success")
	// SMTP gives no provider message ID; synthesize one for the audit trail.
	return edomain.Result{Success: true, MessageIDs: []string{uuid.New().String() + "@" + s.cfg.SMTPHost}}, nil
}

// buildMIME renders the message as text/plain, text/html, or
// multipart/alternative depending on which bodies are present.
func buildMIME(from string, msg edomain.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\n", from, msg.To, msg.Subject)

	switch {
	case msg.HTML != "" && msg.Text != "":
		boundary := "b-" + uuid.New().String()
		fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, msg.Text)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, msg.HTML)
		fmt.Fprintf(&b, "--%s--\r\n", boundary)
	case msg.HTML != "":
		fmt.Fprintf(&b, "Content-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", msg.HTML)
	default:
		fmt.Fprintf(&b, "Content-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", msg.Text)
	}
	return []byte(b.String())
}
