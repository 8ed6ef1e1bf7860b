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
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/validation"
	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

type Controller struct {
	svc domain.Service
	cfg config.Config
}

func New(svc domain.Service, cfg config.Config) *Controller {
	return &Controller{svc: svc, cfg: cfg}
}

// Register mounts session routes under /api/sessions.
func (h *Controller) Register(e *echo.Echo) {
	g := e.Group("/api/sessions", mw.NewJWT(h.cfg, adomain.RoleUser, adomain.RoleCoach, adomain.RoleAdmin))
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
}

type createSessionReq struct {
	CoachID       string  `json:"coach_id" validate:"required,uuid"`
	BookingTypeID string  `json:"booking_type_id" validate:"required,uuid"`
	ScheduledAt   string  `json:"scheduled_at" validate:"required"`
	Duration      int     `json:"duration_minutes" validate:"required,gt=0"`
	Price         float64 `json:"price" validate:"gte=0"`
}

type participantResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionResp struct {
	ID              string          `json:"id"`
	ScheduledAt     string          `json:"scheduled_at"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           float64         `json:"price"`
	User            participantResp `json:"user"`
	Coach           participantResp `json:"coach"`
	BookingType     string          `json:"booking_type"`
}

func toResp(s domain.Session) sessionResp {
	return sessionResp{
		ID:              s.ID.String(),
		ScheduledAt:     s.ScheduledAt.UTC().Format(time.RFC3339),
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		User:            participantResp{ID: s.User.ID.String(), Name: s.User.Name, Email: s.User.Email},
		Coach:           participantResp{ID: s.Coach.ID.String(), Name: s.Coach.Name, Email: s.Coach.Email},
		BookingType:     s.BookingType.Name,
	}
}

func (h *Controller) create(c echo.Context) error {
	uid, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var req createSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	coachID, _ := uuid.Parse(req.CoachID)
	btID, _ := uuid.Parse(req.BookingTypeID)
	at, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "scheduled_at must be RFC3339"})
	}
	sess, err := h.svc.Create(c.Request().Context(), domain.CreateInput{
		UserID:        uid,
		CoachID:       coachID,
		BookingTypeID: btID,
		ScheduledAt:   at,
		Duration:      req.Duration,
		Price:         req.Price,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, toResp(sess))
}

func (h *Controller) list(c echo.Context) error {
	uid, _ := mw.UserID(c)
	role, _ := mw.Role(c)
	items, err := h.svc.ListForCaller(c.Request().Context(), uid, role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "list failed"})
	}
	out := make([]sessionResp, 0, len(items))
	for _, s := range items {
		out = append(out, toResp(s))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Controller) get(c echo.Context) error {
	uid, _ := mw.UserID(c)
	role, _ := mw.Role(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id"})
	}
	sess, err := h.svc.FindOne(c.Request().Context(), id, uid, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotParticipant) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, toResp(sess))
}
