package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
	evdomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/events/domain"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/logger"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/metrics"
	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/notifications/domain"
	sdomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

const confirmationSubject = "Booking Confirmation - Tennis Coaching Session"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type service struct {
	sessions sdomain.Service
	sender   edomain.Sender
	pub      evdomain.Publisher
	log      zerolog.Logger
}

func New(sessions sdomain.Service, sender edomain.Sender) *service {
	return &service{sessions: sessions, sender: sender, log: logger.Nop()}
}

func (s *service) SetLogger(l zerolog.Logger) { s.log = l }

func (s *service) SetPublisher(p evdomain.Publisher) { s.pub = p }

var _ domain.Service = (*service)(nil)

func (s *service) SendEmail(ctx context.Context, in domain.SendEmailInput) edomain.Result {
	res, err := s.sender.Send(ctx, edomain.Message{
		To:      in.To,
		Subject: in.Subject,
		HTML:    in.HTML,
		Text:    in.Text,
	})
	if err != nil {
		// Hard transport failure becomes an in-band result so callers can
		// treat delivery failure as a normal outcome.
		res = edomain.Result{Success: false, Errors: []string{err.Error()}}
	}
	s.publish(ctx, "notify.email.sent", uuid.Nil, map[string]string{
		"to":      in.To,
		"success": strconv.FormatBool(res.Success),
	})
	return res
}

func (s *service) SendBookingConfirmation(ctx context.Context, sessionID, callerID uuid.UUID, callerRole string) error {
	sess, err := s.sessions.FindOne(ctx, sessionID, callerID, callerRole)
	if err != nil {
		metrics.IncBookingConfirmation("denied")
		return err
	}
	if sess.User.Email == "" {
		metrics.IncBookingConfirmation("error")
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNoRecipientEmail)
	}

	html := confirmationHTML(sess)
	res, err := s.sender.Send(ctx, edomain.Message{
		To:      sess.User.Email,
		Subject: confirmationSubject,
		HTML:    html,
		Text:    stripTags(html),
	})
	if err != nil {
		// Hard transport failure surfaces to the caller. Only the in-band
		// mail result below is discarded.
		metrics.IncBookingConfirmation("error")
		return fmt.Errorf("send confirmation for session %s: %w", sessionID, err)
	}
	// The mail result is not surfaced to the caller; delivery failure is
	// only visible in logs and metrics.
	if !res.Success {
		metrics.IncBookingConfirmation("error")
		s.log.Warn().
			Str("session_id", sessionID.String()).
			Strs("errors", res.Errors).
			Msg("confirmation email delivery failed")
	} else {
		metrics.IncBookingConfirmation("sent")
	}
	s.publish(ctx, "notify.confirmation.sent", callerID, map[string]string{
		"session_id": sessionID.String(),
		"success":    strconv.FormatBool(res.Success),
	})
	return nil
}

func (s *service) publish(ctx context.Context, typ string, userID uuid.UUID, meta map[string]string) {
	if s.pub == nil {
		return
	}
	_ = s.pub.Publish(ctx, evdomain.Event{Type: typ, UserID: userID, Meta: meta, Time: time.Now()})
}

func confirmationHTML(sess sdomain.Session) string {
	return fmt.Sprintf(`<h2>Booking Confirmation</h2>
<p>Hi %s,</p>
<p>Your tennis coaching session is confirmed. See you on court!</p>
<ul>
<li>Coach: %s</li>
<li>Session: %s</li>
<li>When: %s</li>
<li>Duration: %d minutes</li>
<li>Price: %s</li>
</ul>
<p>The Courtside Team</p>`,
		sess.User.Name,
		sess.Coach.Name,
		sess.BookingType.Name,
		sess.ScheduledAt.Format("Monday, January 2, 2006 at 3:04 PM"),
		sess.DurationMinutes,
		formatPrice(sess.Price),
	)
}

// stripTags derives the plain-text body by removing <...> tag sequences.
// Deliberately not a real HTML-to-text conversion; whitespace structure is
// whatever the template's newlines give us.
func stripTags(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
