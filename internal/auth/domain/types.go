package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the platform.
const (
	RoleUser  = "user"
	RoleCoach = "coach"
	RoleAdmin = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// User is an account on the platform: a player, a coach, or an admin.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AccessToken is the issued bearer token payload.
type AccessToken struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service interface {
	Signup(ctx context.Context, in SignupInput) (AccessToken, error)
	Login(ctx context.Context, in LoginInput) (AccessToken, error)
	// Me returns the current user's profile.
	Me(ctx context.Context, userID uuid.UUID) (User, error)
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
