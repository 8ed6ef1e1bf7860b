package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
)

const (
	ctxUserIDKey = "auth_user_id"
	ctxRoleKey   = "auth_role"
)

// NewJWT returns an Echo middleware that validates access JWTs and
// stores the caller's user ID and role in the context. When roles are
// given, callers whose role is not listed are rejected.
func NewJWT(cfg config.Config, roles ...string) echo.MiddlewareFunc {
	allowed := map[string]bool{}
	for _, r := range roles {
		allowed[strings.ToLower(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			tokStr := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(tokStr, func(token *jwt.Token) (any, error) {
				return []byte(cfg.JWTSigningKey), nil
			}, jwt.WithLeeway(30*time.Second), jwt.WithIssuedAt(), jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid claims"})
			}
			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			uid, err := uuid.Parse(sub)
			if err != nil || role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid subject or role"})
			}
			if len(allowed) > 0 && !allowed[strings.ToLower(role)] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}

			c.Set(ctxUserIDKey, uid)
			c.Set(ctxRoleKey, strings.ToLower(role))
			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID from context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(ctxUserIDKey)
	if v == nil {
		return uuid.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Role returns the authenticated caller's role from context.
func Role(c echo.Context) (string, bool) {
	v := c.Get(ctxRoleKey)
	if v == nil {
		return "", false
	}
	r, ok := v.(string)
	return r, ok
}
