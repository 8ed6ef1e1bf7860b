package service

import (
	"context"
	"strings"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
)

// Ensure Router implements domain.Sender
var _ edomain.Sender = (*Router)(nil)

// Router selects the configured transport per send. Constructed once at
// process start and shared; the underlying HTTP/SMTP clients are reused
// across requests.
type Router struct {
	cfg   config.Config
	smtp  edomain.Sender
	brevo edomain.Sender
}

func NewRouter(cfg config.Config) *Router {
	return &Router{cfg: cfg, smtp: NewSMTP(cfg), brevo: NewBrevo(cfg)}
}

func (r *Router) Send(ctx context.Context, msg edomain.Message) (edomain.Result, error) {
	switch strings.ToLower(r.cfg.EmailProvider) {
	case "brevo":
		return r.brevo.Send(ctx, msg)
	default:
		return r.smtp.Send(ctx, msg)
	}
}
