package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/domain"
	mw "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/middleware"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/ratelimit"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/validation"
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

// Register mounts auth routes under /api/auth.
func (h *Controller) Register(e *echo.Echo) {
	g := e.Group("/api/auth")

	mkMW := func(p ratelimit.Policy) echo.MiddlewareFunc {
		if h.rl != nil {
			return ratelimit.MiddlewareWithStore(p, h.rl)
		}
		return ratelimit.Middleware(p)
	}
	rlSignup := mkMW(ratelimit.Policy{Name: "auth:signup", Limit: 5, Window: time.Minute,
		Key: ratelimit.KeyPrincipalOrIP("auth:signup", nil)})
	rlLogin := mkMW(ratelimit.Policy{Name: "auth:login", Limit: 10, Window: time.Minute,
		Key: ratelimit.KeyPrincipalOrIP("auth:login", nil)})

	g.POST("/signup", h.signup, rlSignup)
	g.POST("/login", h.login, rlLogin)
	g.GET("/me", h.me, mw.NewJWT(h.cfg))
}

type signupReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user coach USER COACH"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *Controller) signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	tok, err := h.svc.Signup(c.Request().Context(), domain.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, tok)
}

func (h *Controller) login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	tok, err := h.svc.Login(c.Request().Context(), domain.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, tok)
}

func (h *Controller) me(c echo.Context) error {
	uid, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	u, err := h.svc.Me(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, profileResp{ID: u.ID.String(), Email: u.Email, Name: u.Name, Role: u.Role})
}
