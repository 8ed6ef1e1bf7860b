package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/metrics"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Ensure Brevo implements domain.Sender
var _ edomain.Sender = (*Brevo)(nil)

type Brevo struct {
	cfg  config.Config
	http *http.Client
	// url overrides the API endpoint in tests.
	url string
}

func NewBrevo(cfg config.Config) *Brevo {
	return &Brevo{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}, url: brevoEndpoint}
}

type brevoEmail struct {
	To          []map[string]string `json:"to"`
	Sender      map[string]string   `json:"sender"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent,omitempty"`
	TextContent string              `json:"textContent,omitempty"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func (b *Brevo) Send(ctx context.Context, msg edomain.Message) (edomain.Result, error) {
	if b.cfg.BrevoAPIKey == "" || b.cfg.MailFrom == "" {
		return edomain.Result{}, fmt.Errorf("brevo not configured")
	}
	payload := brevoEmail{
		To:          []map[string]string{{"email": msg.To}},
		Sender:      map[string]string{"email": b.cfg.MailFrom},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: msg.Text,
	}
	buf, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(buf))
	if err != nil {
		return edomain.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.cfg.BrevoAPIKey)
	resp, err := b.http.Do(req)
	if err != nil {
		metrics.IncEmailSent("brevo", "error")
		return edomain.Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var br brevoResponse
	_ = json.Unmarshal(body, &br)

	if resp.StatusCode >= 300 {
		metrics.IncEmailSent("brevo", "failure")
		reason := br.Message
		if reason == "" {
			reason = resp.Status
		}
		return edomain.Result{Success: false, Errors: []string{reason}}, nil
	}
	metrics.IncEmailSent("brevo", "success")
	res := edomain.Result{Success: true}
	if br.MessageID != "" {
		res.MessageIDs = []string{br.MessageID}
	}
	return res, nil
}
