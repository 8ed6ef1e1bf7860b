package middleware

import (
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
)

func signToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func run(t *testing.T, mw echo.MiddlewareFunc, bearer string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := mw(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, captured
}

func TestNewJWT_ValidToken(t *testing.T) {
	cfg := config.Config{JWTSigningKey: "k"}
	uid := uuid.New()
	tok := signToken(t, "k", jwt.MapClaims{
		"sub": uid.String(), "role": "user",
		"iat": time.Now().Unix(), "exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, c := run(t, NewJWT(cfg), "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, uid, gotID)
	role, ok := Role(c)
	require.True(t, ok)
	assert.Equal(t, "user", role)
}

func TestNewJWT_MissingToken(t *testing.T) {
	rec, _ := run(t, NewJWT(config.Config{JWTSigningKey: "k"}), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewJWT_WrongKey(t *testing.T) {
	tok := signToken(t, "other", jwt.MapClaims{
		"sub": uuid.New().String(), "role": "user",
		"iat": time.Now().Unix(), "exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := run(t, NewJWT(config.Config{JWTSigningKey: "k"}), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewJWT_ExpiredToken(t *testing.T) {
	tok := signToken(t, "k", jwt.MapClaims{
		"sub": uuid.New().String(), "role": "user",
		"iat": time.Now().Add(-2 * time.Hour).Unix(), "exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _ := run(t, NewJWT(config.Config{JWTSigningKey: "k"}), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewJWT_RoleRestriction(t *testing.T) {
	cfg := config.Config{JWTSigningKey: "k"}
	tok := signToken(t, "k", jwt.MapClaims{
		"sub": uuid.New().String(), "role": "admin",
		"iat": time.Now().Unix(), "exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := run(t, NewJWT(cfg, "user", "coach"), "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = run(t, NewJWT(cfg, "user", "coach", "admin"), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}
