package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	adomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/domain"
	mw "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/middleware"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/notifications/domain"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/ratelimit"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/validation"
	sdomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

type Controller struct {
	svc domain.Service
	cfg config.Config
	rl  ratelimit.Store
}

func New(svc domain.Service, cfg config.Config) *Controller {
	return &Controller{svc: svc, cfg: cfg}
}

// WithRateLimit enables store-backed rate limiting when provided.
func (h *Controller) WithRateLimit(store ratelimit.Store) *Controller {
	h.rl = store
	return h
}

// Register mounts notification routes under /api/notifications.
// Both endpoints require an authenticated user or coach.
func (h *Controller) Register(e *echo.Echo) {
	g := e.Group("/api/notifications", mw.NewJWT(h.cfg, adomain.RoleUser, adomain.RoleCoach))

	principal := func(c echo.Context) (string, bool) {
		id, ok := mw.UserID(c)
		if !ok {
			return "", false
		}
		return id.String(), true
	}
	mkMW := func(p ratelimit.Policy) echo.MiddlewareFunc {
		if h.rl != nil {
			return ratelimit.MiddlewareWithStore(p, h.rl)
		}
		return ratelimit.Middleware(p)
	}
	rlEmail := mkMW(ratelimit.Policy{Name: "notify:email", Limit: 30, Window: time.Minute,
		Key: ratelimit.KeyPrincipalOrIP("notify:email", principal)})
	rlConfirm := mkMW(ratelimit.Policy{Name: "notify:confirm", Limit: 30, Window: time.Minute,
		Key: ratelimit.KeyPrincipalOrIP("notify:confirm", principal)})

	g.POST("/email", h.sendEmail, rlEmail)
	g.POST("/confirm", h.confirm, rlConfirm)
}

type sendEmailReq struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type confirmReq struct {
	SessionID string `json:"sessionId" validate:"required,uuid"`
}

func (h *Controller) sendEmail(c echo.Context) error {
	var req sendEmailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	res := h.svc.SendEmail(c.Request().Context(), domain.SendEmailInput{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	// Delivery failure is reported in-band; the dispatch attempt itself is
	// what gets the 201.
	return c.JSON(http.StatusCreated, res)
}

func (h *Controller) confirm(c echo.Context) error {
	uid, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	role, _ := mw.Role(c)

	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sessionId"})
	}

	if err := h.svc.SendBookingConfirmation(c.Request().Context(), sessionID, uid, role); err != nil {
		if errors.Is(err, sdomain.ErrNotParticipant) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "confirmation failed"})
	}
	return c.NoContent(http.StatusCreated)
}
