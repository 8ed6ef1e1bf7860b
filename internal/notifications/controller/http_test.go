package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	edomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/domain"
	svc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/notifications/service"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/validation"
	sdomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

type captureSender struct {
	messages []edomain.Message
	result   edomain.Result
	err      error
}

func (c *captureSender) Send(ctx context.Context, msg edomain.Message) (edomain.Result, error) {
	c.messages = append(c.messages, msg)
	return c.result, c.err
}

type fakeSessions struct {
	session sdomain.Session
}

func (f *fakeSessions) FindOne(ctx context.Context, sessionID, callerID uuid.UUID, callerRole string) (sdomain.Session, error) {
	if f.session.ID != sessionID {
		return sdomain.Session{}, sdomain.ErrNotParticipant
	}
	if callerRole != "admin" && f.session.User.ID != callerID && f.session.Coach.ID != callerID {
		return sdomain.Session{}, sdomain.ErrNotParticipant
	}
	return f.session, nil
}

func (f *fakeSessions) ListForCaller(ctx context.Context, callerID uuid.UUID, callerRole string) ([]sdomain.Session, error) {
	return nil, nil
}

func (f *fakeSessions) Create(ctx context.Context, in sdomain.CreateInput) (sdomain.Session, error) {
	return sdomain.Session{}, nil
}

func testConfig() config.Config {
	return config.Config{JWTSigningKey: "test-signing-key", AppEnv: "test"}
}

func bearerFor(t *testing.T, cfg config.Config, userID uuid.UUID, role string) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(cfg.JWTSigningKey))
	require.NoError(t, err)
	return "Bearer " + signed
}

func setup(t *testing.T, sessions *fakeSessions, sender *captureSender) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	cfg := testConfig()
	s := svc.New(sessions, sender)
	New(s, cfg).Register(e)
	return e
}

func postJSON(e *echo.Echo, path, bearer string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func demoSession() sdomain.Session {
	return sdomain.Session{
		ID:              uuid.New(),
		ScheduledAt:     time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Price:           100,
		User:            sdomain.Participant{ID: uuid.New(), Name: "John Doe", Email: "john@example.com"},
		Coach:           sdomain.Participant{ID: uuid.New(), Name: "Coach Smith", Email: "smith@example.com"},
		BookingType:     sdomain.BookingType{ID: uuid.New(), Name: "Private Lesson"},
	}
}

func TestSendEmail_Unauthenticated(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{}, sender)

	rec := postJSON(e, "/api/notifications/email", "", map[string]string{"to": "a@b.com", "subject": "s"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sender.messages, "transport must not be called without auth")
}

func TestSendEmail_InvalidDTO(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{}, sender)
	bearer := bearerFor(t, testConfig(), uuid.New(), "user")

	t.Run("bad email", func(t *testing.T) {
		rec := postJSON(e, "/api/notifications/email", bearer, map[string]string{"to": "not-an-email", "subject": "s"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("missing subject", func(t *testing.T) {
		rec := postJSON(e, "/api/notifications/email", bearer, map[string]string{"to": "a@b.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	assert.Empty(t, sender.messages)
}

func TestSendEmail_Success(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: true, MessageIDs: []string{"mid-1"}}}
	e := setup(t, &fakeSessions{}, sender)
	bearer := bearerFor(t, testConfig(), uuid.New(), "user")

	rec := postJSON(e, "/api/notifications/email", bearer, map[string]string{
		"to": "a@b.com", "subject": "hello", "html": "<p>hi</p>",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var res edomain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, []string{"mid-1"}, res.MessageIDs)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "a@b.com", sender.messages[0].To)
	assert.Equal(t, "hello", sender.messages[0].Subject)
}

func TestSendEmail_DeliveryFailureStill201(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: false, Errors: []string{"SMTP connection failed"}}}
	e := setup(t, &fakeSessions{}, sender)
	bearer := bearerFor(t, testConfig(), uuid.New(), "coach")

	rec := postJSON(e, "/api/notifications/email", bearer, map[string]string{
		"to": "a@b.com", "subject": "s", "text": "t",
	})

	require.Equal(t, http.StatusCreated, rec.Code, "delivery failure is in-band, not an HTTP error")
	var res edomain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, []string{"SMTP connection failed"}, res.Errors)
}

func TestSendEmail_AdminRoleForbidden(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{}, sender)
	bearer := bearerFor(t, testConfig(), uuid.New(), "admin")

	rec := postJSON(e, "/api/notifications/email", bearer, map[string]string{"to": "a@b.com", "subject": "s"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, sender.messages)
}

func TestConfirm_SendsConfirmationEmail(t *testing.T) {
	sess := demoSession()
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{session: sess}, sender)
	bearer := bearerFor(t, testConfig(), sess.User.ID, "user")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": sess.ID.String()})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "john@example.com", msg.To)
	assert.Equal(t, "Booking Confirmation - Tennis Coaching Session", msg.Subject)
	assert.Contains(t, msg.HTML, "John Doe")
	assert.Contains(t, msg.HTML, "Coach Smith")
	assert.Contains(t, msg.HTML, "60 minutes")
	assert.Contains(t, msg.HTML, "100")
}

func TestConfirm_ForeignSessionUnauthorized(t *testing.T) {
	sess := demoSession()
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{session: sess}, sender)
	// authenticated, but not a participant of the session
	bearer := bearerFor(t, testConfig(), uuid.New(), "user")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": sess.ID.String()})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sender.messages)
}

func TestConfirm_UnknownSessionUnauthorized(t *testing.T) {
	sess := demoSession()
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{session: sess}, sender)
	bearer := bearerFor(t, testConfig(), sess.User.ID, "user")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": uuid.New().String()})

	// not-found and not-authorized share the same status
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sender.messages)
}

func TestConfirm_TransportErrorIs500(t *testing.T) {
	sess := demoSession()
	sender := &captureSender{err: errors.New("connection refused")}
	e := setup(t, &fakeSessions{session: sess}, sender)
	bearer := bearerFor(t, testConfig(), sess.User.ID, "user")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": sess.ID.String()})

	// unlike an in-band delivery failure, a thrown transport error is a 500
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestConfirm_InvalidSessionID(t *testing.T) {
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{}, sender)
	bearer := bearerFor(t, testConfig(), uuid.New(), "user")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirm_CoachParticipantAllowed(t *testing.T) {
	sess := demoSession()
	sender := &captureSender{result: edomain.Result{Success: true}}
	e := setup(t, &fakeSessions{session: sess}, sender)
	bearer := bearerFor(t, testConfig(), sess.Coach.ID, "coach")

	rec := postJSON(e, "/api/notifications/confirm", bearer, map[string]string{"sessionId": sess.ID.String()})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, sender.messages, 1)
	// confirmation still goes to the session's user, not the coach
	assert.Equal(t, sess.User.Email, sender.messages[0].To)
}
